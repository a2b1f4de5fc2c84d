package main

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/plumanotes/pluma/internal/input/mode"
	"github.com/plumanotes/pluma/internal/markdown"
)

var (
	styleDefault = tcell.StyleDefault
	styleStatus  = tcell.StyleDefault.Reverse(true)
	styleSidebar = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleChosen  = tcell.StyleDefault.Reverse(true).Bold(true)
)

// spanStyle maps a style span kind to a terminal style.
func spanStyle(k markdown.SpanKind) tcell.Style {
	switch k {
	case markdown.KindH1:
		return styleDefault.Bold(true).Foreground(tcell.ColorYellow)
	case markdown.KindH2:
		return styleDefault.Bold(true).Foreground(tcell.ColorOrange)
	case markdown.KindH3:
		return styleDefault.Bold(true)
	case markdown.KindBold:
		return styleDefault.Bold(true)
	case markdown.KindItalic:
		return styleDefault.Italic(true)
	case markdown.KindInlineCode, markdown.KindCodeBlock:
		return styleDefault.Foreground(tcell.ColorGreen)
	case markdown.KindLink:
		return styleDefault.Underline(true).Foreground(tcell.ColorBlue)
	case markdown.KindQuote:
		return styleDefault.Dim(true)
	default:
		return styleDefault
	}
}

func (u *UI) draw() {
	u.screen.Clear()
	width, height := u.screen.Size()
	if width == 0 || height == 0 {
		u.screen.Show()
		return
	}
	viewHeight := height - 1

	originX := 0
	if u.sidebar {
		u.drawSidebar(viewHeight)
		originX = sidebarWidth
	}

	text := []rune(u.frame.Text)
	styles := u.charStyles(len(text))
	lines, starts := splitLines(u.frame.Text)

	cursorLine, cursorCol := locate(starts, lines, u.frame.Cursor)
	u.scrollTo(cursorLine, viewHeight)

	for row := 0; row < viewHeight; row++ {
		lineIdx := u.topLine + row
		if lineIdx >= len(lines) {
			break
		}
		x := originX
		for col, r := range lines[lineIdx] {
			if x >= width {
				break
			}
			off := starts[lineIdx] + col
			if r == '\t' {
				x += tabWidth
				continue
			}
			u.screen.SetContent(x, row, r, nil, styles[off])
			x += runewidth.RuneWidth(r)
		}
	}

	u.drawStatus(width, height-1)

	if u.sidebar || cursorLine < u.topLine || cursorLine >= u.topLine+viewHeight {
		u.screen.HideCursor()
	} else {
		x := originX
		if cursorLine < len(lines) {
			x += cellWidth(lines[cursorLine], cursorCol)
		}
		u.screen.ShowCursor(x, cursorLine-u.topLine)
	}
	u.screen.Show()
}

// charStyles builds the per-character style table from spans, with the
// selection reversed on top.
func (u *UI) charStyles(n int) []tcell.Style {
	styles := make([]tcell.Style, n)
	for i := range styles {
		styles[i] = styleDefault
	}
	for _, s := range u.frame.Spans {
		st := spanStyle(s.Kind)
		for i := s.Start; i < s.End && i < n; i++ {
			styles[i] = st
		}
	}
	for i := u.frame.SelectionStart; i < u.frame.SelectionEnd && i < n; i++ {
		if i >= 0 {
			styles[i] = styles[i].Reverse(true)
		}
	}
	return styles
}

func (u *UI) scrollTo(cursorLine, viewHeight int) {
	if viewHeight < 1 {
		return
	}
	if cursorLine < u.topLine {
		u.topLine = cursorLine
	}
	if cursorLine >= u.topLine+viewHeight {
		u.topLine = cursorLine - viewHeight + 1
	}
}

func (u *UI) drawStatus(width, row int) {
	var left string
	switch {
	case u.frame.Mode == mode.Command:
		left = ":" + u.frame.CommandLine
	case u.frame.Notice != "":
		left = u.frame.Notice
	default:
		name := u.ed.Note()
		if name == "" {
			name = "[scratch]"
		}
		dirty := ""
		if u.frame.Dirty {
			dirty = " [+]"
		}
		left = " " + u.frame.Mode.DisplayName() + "  " + name + dirty
	}
	for x := 0; x < width; x++ {
		u.screen.SetContent(x, row, ' ', nil, styleStatus)
	}
	x := 0
	for _, r := range left {
		if x >= width {
			break
		}
		u.screen.SetContent(x, row, r, nil, styleStatus)
		x += runewidth.RuneWidth(r)
	}
}

func (u *UI) drawSidebar(viewHeight int) {
	for y := 0; y < viewHeight; y++ {
		for x := 0; x < sidebarWidth; x++ {
			u.screen.SetContent(x, y, ' ', nil, styleSidebar)
		}
	}
	title := " NOTES"
	for i, r := range []rune(title) {
		if i >= sidebarWidth {
			break
		}
		u.screen.SetContent(i, 0, r, nil, styleSidebar.Bold(true))
	}
	for i, n := range u.notes {
		row := i + 1
		if row >= viewHeight {
			break
		}
		st := styleSidebar
		if i == u.selected {
			st = styleChosen
		}
		label := runewidth.Truncate(" "+n.Name, sidebarWidth-1, "…")
		x := 0
		for _, r := range label {
			if x >= sidebarWidth {
				break
			}
			u.screen.SetContent(x, row, r, nil, st)
			x += runewidth.RuneWidth(r)
		}
	}
}

// displayOffsetAt converts text-area screen coordinates to a character
// offset in the display text.
func (u *UI) displayOffsetAt(x, y int) int {
	lines, starts := splitLines(u.frame.Text)
	lineIdx := u.topLine + y
	if lineIdx >= len(lines) {
		return len([]rune(u.frame.Text))
	}
	if lineIdx < 0 {
		return 0
	}
	line := lines[lineIdx]
	cells := 0
	for col, r := range line {
		w := runewidth.RuneWidth(r)
		if r == '\t' {
			w = tabWidth
		}
		if cells+w > x {
			return starts[lineIdx] + col
		}
		cells += w
	}
	return starts[lineIdx] + len(line)
}

// splitLines returns the display text's lines as rune slices plus each
// line's starting character offset.
func splitLines(text string) ([][]rune, []int) {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	starts := make([]int, len(parts))
	off := 0
	for i, p := range parts {
		lines[i] = []rune(p)
		starts[i] = off
		off += len(lines[i]) + 1
	}
	return lines, starts
}

// locate finds the line and column of a character offset.
func locate(starts []int, lines [][]rune, off int) (int, int) {
	for i := len(starts) - 1; i >= 0; i-- {
		if off >= starts[i] {
			col := off - starts[i]
			if col > len(lines[i]) {
				col = len(lines[i])
			}
			return i, col
		}
	}
	return 0, 0
}

// cellWidth sums the screen width of the first col runes of a line.
func cellWidth(line []rune, col int) int {
	w := 0
	for i := 0; i < col && i < len(line); i++ {
		if line[i] == '\t' {
			w += tabWidth
			continue
		}
		w += runewidth.RuneWidth(line[i])
	}
	return w
}
