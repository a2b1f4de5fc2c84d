package editor

// Store is the persistence surface the editor depends on. Note names
// are store-relative paths without the ".md" extension.
type Store interface {
	// Load returns a note's text.
	Load(name string) (string, error)

	// Save writes a note's text, creating it if needed.
	Save(name, text string) error

	// Exists reports whether a note is present.
	Exists(name string) bool

	// EnsureDefault creates a note with seed text unless it already
	// exists. It is idempotent.
	EnsureDefault(name, seed string) error
}
