package markdown

// Result holds the clean view derived from one source snapshot, along
// with the offset mapping back to the source. It is immutable once
// built; rebuild it whenever the source changes.
type Result struct {
	// Clean is the display text with decoration removed.
	Clean string

	// Spans are style annotations over Clean, in emission order.
	Spans []Span

	// Links pairs clean ranges with URLs.
	Links []Link

	srcLen     int
	cleanLen   int
	srcToClean []int
	cleanToSrc []int
}

// builder accumulates the clean text and both mapping arrays during the
// single left-to-right scan.
type builder struct {
	src        []rune
	clean      []rune
	srcToClean []int
	cleanToSrc []int
	spans      []Span
	links      []Link
}

// emit copies the source character at i into the clean text.
func (b *builder) emit(i int) {
	b.emitAs(i, b.src[i])
}

// emitAs writes r into the clean text, mapped to source position i.
func (b *builder) emitAs(i int, r rune) {
	b.srcToClean[i] = len(b.clean)
	b.cleanToSrc = append(b.cleanToSrc, i)
	b.clean = append(b.clean, r)
}

// find returns the index of the first r in src[from:to), or -1.
func (b *builder) find(from, to int, r rune) int {
	for i := from; i < to; i++ {
		if b.src[i] == r {
			return i
		}
	}
	return -1
}

// findDouble returns the index of the first "**" in src[from:to), or -1.
func (b *builder) findDouble(from, to int) int {
	for i := from; i+1 < to; i++ {
		if b.src[i] == '*' && b.src[i+1] == '*' {
			return i
		}
	}
	return -1
}

// Decorate computes the clean view of src.
func Decorate(src string) *Result {
	b := &builder{
		src:        []rune(src),
		srcToClean: make([]int, len([]rune(src))+1),
	}
	for i := range b.srcToClean {
		b.srcToClean[i] = -1
	}

	inCodeBlock := false
	i := 0
	for i < len(b.src) {
		j := i
		for j < len(b.src) && b.src[j] != '\n' {
			j++
		}
		hasNewline := j < len(b.src)

		switch {
		case isFence(b.src[i:j]):
			// Fence lines vanish from the clean view, newline included.
			inCodeBlock = !inCodeBlock
		case inCodeBlock:
			start := len(b.clean)
			for t := i; t < j; t++ {
				b.emit(t)
			}
			if len(b.clean) > start {
				b.spans = append(b.spans, Span{Start: start, End: len(b.clean), Kind: KindCodeBlock})
			}
			if hasNewline {
				b.emit(j)
			}
		default:
			b.line(i, j)
			if hasNewline {
				b.emit(j)
			}
		}
		i = j + 1
	}

	return b.finish()
}

// isFence reports whether a line opens or closes a code fence. A
// language tag after the backticks is allowed.
func isFence(line []rune) bool {
	return len(line) >= 3 && line[0] == '`' && line[1] == '`' && line[2] == '`'
}

// line processes one non-fence line src[from:to) outside code blocks,
// handling the line-start construct before inline decoration.
func (b *builder) line(from, to int) {
	start := len(b.clean)

	hashes := 0
	for from+hashes < to && b.src[from+hashes] == '#' {
		hashes++
	}
	switch {
	case hashes >= 1 && hashes <= 3 && from+hashes < to && b.src[from+hashes] == ' ':
		b.inline(from+hashes+1, to)
		if len(b.clean) > start {
			kind := KindH1 + SpanKind(hashes-1)
			b.spans = append(b.spans, Span{Start: start, End: len(b.clean), Kind: kind})
		}
	case to-from >= 2 && (b.src[from] == '-' || b.src[from] == '*') && b.src[from+1] == ' ':
		b.emitAs(from, '•')
		b.emit(from + 1)
		b.inline(from+2, to)
		b.spans = append(b.spans, Span{Start: start, End: len(b.clean), Kind: KindListItem})
	case to-from >= 2 && b.src[from] == '>' && b.src[from+1] == ' ':
		b.inline(from+2, to)
		if len(b.clean) > start {
			b.spans = append(b.spans, Span{Start: start, End: len(b.clean), Kind: KindQuote})
		}
	default:
		b.inline(from, to)
	}
}

// inline emits src[from:to) handling inline code, bold, italic, and
// links. Unmatched markers come through literally.
func (b *builder) inline(from, to int) {
	for p := from; p < to; {
		switch b.src[p] {
		case '`':
			q := b.find(p+1, to, '`')
			if q < 0 {
				b.emit(p)
				p++
				continue
			}
			start := len(b.clean)
			for t := p + 1; t < q; t++ {
				b.emit(t)
			}
			if len(b.clean) > start {
				b.spans = append(b.spans, Span{Start: start, End: len(b.clean), Kind: KindInlineCode})
			}
			p = q + 1
		case '*':
			if p+1 < to && b.src[p+1] == '*' {
				q := b.findDouble(p+2, to)
				if q < 0 {
					// Opening ** with no closer is literal text.
					b.emit(p)
					b.emit(p + 1)
					p += 2
					continue
				}
				start := len(b.clean)
				for t := p + 2; t < q; t++ {
					b.emit(t)
				}
				if len(b.clean) > start {
					b.spans = append(b.spans, Span{Start: start, End: len(b.clean), Kind: KindBold})
				}
				p = q + 2
				continue
			}
			q := b.find(p+1, to, '*')
			if q <= p+1 {
				b.emit(p)
				p++
				continue
			}
			start := len(b.clean)
			for t := p + 1; t < q; t++ {
				b.emit(t)
			}
			b.spans = append(b.spans, Span{Start: start, End: len(b.clean), Kind: KindItalic})
			p = q + 1
		case '[':
			closeBracket := b.find(p+1, to, ']')
			if closeBracket < 0 || closeBracket+1 >= to || b.src[closeBracket+1] != '(' {
				b.emit(p)
				p++
				continue
			}
			closeParen := b.find(closeBracket+2, to, ')')
			if closeParen < 0 {
				b.emit(p)
				p++
				continue
			}
			start := len(b.clean)
			for t := p + 1; t < closeBracket; t++ {
				b.emit(t)
			}
			if len(b.clean) > start {
				url := string(b.src[closeBracket+2 : closeParen])
				b.spans = append(b.spans, Span{Start: start, End: len(b.clean), Kind: KindLink})
				b.links = append(b.links, Link{Start: start, End: len(b.clean), URL: url})
			}
			p = closeParen + 1
		default:
			b.emit(p)
			p++
		}
	}
}

// finish backfills dropped positions so both mapping arrays are total
// and monotone, then freezes the result.
func (b *builder) finish() *Result {
	b.srcToClean[len(b.src)] = len(b.clean)
	for i := len(b.src) - 1; i >= 0; i-- {
		if b.srcToClean[i] < 0 {
			// Dropped characters map to the next preserved position.
			b.srcToClean[i] = b.srcToClean[i+1]
		}
	}
	b.cleanToSrc = append(b.cleanToSrc, len(b.src))

	return &Result{
		Clean:      string(b.clean),
		Spans:      b.spans,
		Links:      b.links,
		srcLen:     len(b.src),
		cleanLen:   len(b.clean),
		srcToClean: b.srcToClean,
		cleanToSrc: b.cleanToSrc,
	}
}

// CleanLen returns the clean text length in characters.
func (r *Result) CleanLen() int { return r.cleanLen }

// SourceToClean maps a source character offset to a clean offset. A
// dropped source character maps to the nearest preserved character
// after it. Out-of-range offsets are clamped.
func (r *Result) SourceToClean(src int) int {
	if src < 0 {
		src = 0
	}
	if src > r.srcLen {
		src = r.srcLen
	}
	return r.srcToClean[src]
}

// CleanToSource maps a clean character offset back to its source
// offset. Out-of-range offsets are clamped.
func (r *Result) CleanToSource(clean int) int {
	if clean < 0 {
		clean = 0
	}
	if clean > r.cleanLen {
		clean = r.cleanLen
	}
	return r.cleanToSrc[clean]
}

// LinkAt returns the link covering the clean offset, if any.
func (r *Result) LinkAt(clean int) (Link, bool) {
	for _, l := range r.Links {
		if clean >= l.Start && clean < l.End {
			return l, true
		}
	}
	return Link{}, false
}
