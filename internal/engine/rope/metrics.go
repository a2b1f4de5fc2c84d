package rope

// CharOffset represents an absolute character (rune) position in the rope.
type CharOffset int

// Point represents a line/column position.
// Line and Column are both 0-indexed; Column is measured in characters.
type Point struct {
	Line   int
	Column int
}

// TextSummary holds aggregated metrics for a text span.
// Summaries combine with Add, which lets internal nodes describe whole
// subtrees without rescanning text.
type TextSummary struct {
	// Chars is the character (rune) count.
	Chars CharOffset

	// Bytes is the UTF-8 byte count.
	Bytes int

	// Lines is the number of newline characters.
	Lines int
}

// Add combines two summaries.
func (s TextSummary) Add(o TextSummary) TextSummary {
	return TextSummary{
		Chars: s.Chars + o.Chars,
		Bytes: s.Bytes + o.Bytes,
		Lines: s.Lines + o.Lines,
	}
}

// ComputeSummary scans a string and computes its metrics.
func ComputeSummary(s string) TextSummary {
	sum := TextSummary{Bytes: len(s)}
	for _, r := range s {
		sum.Chars++
		if r == '\n' {
			sum.Lines++
		}
	}
	return sum
}
