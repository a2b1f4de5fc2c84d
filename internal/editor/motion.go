package editor

import "unicode"

// Word motions treat a word as a maximal run of non-whitespace, the
// vim "W" notion rather than the punctuation-aware "w".

func (e *Editor) nextWord() int {
	src := []rune(e.buf.Text())
	i := e.cursor
	for i < len(src) && !unicode.IsSpace(src[i]) {
		i++
	}
	for i < len(src) && unicode.IsSpace(src[i]) {
		i++
	}
	return i
}

func (e *Editor) prevWord() int {
	src := []rune(e.buf.Text())
	i := e.cursor
	if i > len(src) {
		i = len(src)
	}
	for i > 0 && unicode.IsSpace(src[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(src[i-1]) {
		i--
	}
	return i
}
