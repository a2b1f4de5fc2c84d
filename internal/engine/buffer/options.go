package buffer

// Option configures a Buffer at construction time.
type Option func(*Buffer)

// WithHistoryLimit bounds the undo stack to n entries.
// n <= 0 means unbounded.
func WithHistoryLimit(n int) Option {
	return func(b *Buffer) {
		b.historyLimit = n
	}
}
