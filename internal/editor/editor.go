package editor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"

	"github.com/plumanotes/pluma/internal/editor/action"
	"github.com/plumanotes/pluma/internal/engine/buffer"
	"github.com/plumanotes/pluma/internal/input/key"
	"github.com/plumanotes/pluma/internal/input/keymap"
	"github.com/plumanotes/pluma/internal/input/mode"
	"github.com/plumanotes/pluma/internal/markdown"
)

// ErrNoNote is returned by Save when no note has been opened yet.
var ErrNoNote = errors.New("editor: no note open")

// Editor is the controller tying buffer, modes, keymaps, decorator, and
// store together. Not safe for concurrent use; drive it from one loop.
type Editor struct {
	buf   *buffer.Buffer
	modes *mode.Machine
	keys  *keymap.Resolver
	store Store
	log   *slog.Logger

	note   string
	cursor int

	// Selection anchor. The selection is [min(anchor,cursor), max(...)).
	anchor       int
	hasSelection bool

	renderEnabled bool
	historyLimit  int
	savedSum      uint64

	cmdline  []rune
	lastText string
	haveLast bool

	// Set while the editor itself is mutating; widget echoes of those
	// mutations must not be adopted back.
	inUserAction bool

	pendingRequest RequestKind
	pendingNotice  string
}

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) { e.log = l }
}

// WithRendering enables or disables the Markdown clean view.
func WithRendering(enabled bool) Option {
	return func(e *Editor) { e.renderEnabled = enabled }
}

// WithHistoryLimit caps the undo history. Zero means unbounded.
func WithHistoryLimit(n int) Option {
	return func(e *Editor) { e.historyLimit = n }
}

// WithResolver replaces the default keymap resolver.
func WithResolver(r *keymap.Resolver) Option {
	return func(e *Editor) { e.keys = r }
}

// New creates an editor with an empty unnamed buffer.
func New(store Store, opts ...Option) *Editor {
	e := &Editor{
		store:         store,
		modes:         mode.NewMachine(),
		renderEnabled: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	if e.keys == nil {
		e.keys = keymap.NewDefaultResolver()
	}
	e.buf = buffer.New(buffer.WithHistoryLimit(e.historyLimit))
	e.savedSum = xxhash.Sum64String("")
	return e
}

// Open loads a note into the editor, replacing the current buffer and
// resetting cursor, selection, and history. A load failure leaves the
// prior document intact.
func (e *Editor) Open(name string) error {
	text, err := e.store.Load(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	e.buf = buffer.FromText(text, buffer.WithHistoryLimit(e.historyLimit))
	e.note = name
	e.cursor = 0
	e.hasSelection = false
	e.cmdline = nil
	e.haveLast = false
	e.savedSum = xxhash.Sum64String(e.buf.Text())
	if cur := e.modes.Current(); cur != mode.Normal {
		// Command and Visual both allow the transition; Insert does too.
		_ = e.modes.Switch(mode.Normal)
	}
	e.log.Info("note opened", "note", name, "chars", int(e.buf.Len()))
	return nil
}

// Note returns the name of the open note, empty for a scratch buffer.
func (e *Editor) Note() string { return e.note }

// Mode returns the current editing mode.
func (e *Editor) Mode() mode.Mode { return e.modes.Current() }

// Cursor returns the source-offset cursor position.
func (e *Editor) Cursor() int { return e.cursor }

// Buffer exposes the underlying document for read-only inspection.
func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

// Dirty reports whether the document differs from the last saved
// snapshot.
func (e *Editor) Dirty() bool {
	return xxhash.Sum64String(e.buf.Text()) != e.savedSum
}

// Save writes the current text to the store and, on success, resets the
// dirty baseline. On failure dirty stays set so the next autosave
// retries.
func (e *Editor) Save() error {
	if e.note == "" {
		return ErrNoNote
	}
	text := e.buf.Text()
	if err := e.store.Save(e.note, text); err != nil {
		e.log.Error("save failed", "note", e.note, "error", err)
		return err
	}
	e.savedSum = xxhash.Sum64String(text)
	e.log.Debug("note saved", "note", e.note, "chars", len([]rune(text)))
	return nil
}

// HandleKey resolves one key event and applies the resulting action.
func (e *Editor) HandleKey(ev key.Event) Frame {
	if e.modes.Current() == mode.Command {
		return e.handleCommandKey(ev)
	}
	return e.Apply(e.keys.Resolve(e.modes.Current(), ev))
}

// Apply executes a single action and returns the refreshed frame.
func (e *Editor) Apply(a action.Action) Frame {
	if a.IsMutation() {
		e.inUserAction = true
		defer func() { e.inUserAction = false }()
	}

	switch a.Kind {
	case action.None:
		// Unmapped input refreshes nothing but still reports state.

	case action.MoveCursorLeft:
		e.setCursor(e.cursor - 1)
	case action.MoveCursorRight:
		e.setCursor(e.cursor + 1)
	case action.MoveCursorUp:
		e.moveVertical(-1)
	case action.MoveCursorDown:
		e.moveVertical(1)
	case action.MoveCursorLineStart:
		line := e.buf.CharToLine(buffer.CharOffset(e.cursor))
		e.setCursor(int(e.buf.LineToChar(line)))
	case action.MoveCursorLineEnd:
		line := e.buf.CharToLine(buffer.CharOffset(e.cursor))
		e.setCursor(int(e.buf.LineCharRange(line).End))
	case action.MoveCursorDocStart:
		e.setCursor(0)
	case action.MoveCursorDocEnd:
		e.setCursor(int(e.buf.Len()))
	case action.MoveCursorNextWord:
		e.setCursor(e.nextWord())
	case action.MoveCursorPrevWord:
		e.setCursor(e.prevWord())

	case action.InsertChar:
		e.insertText(string(a.Rune))
	case action.InsertNewline:
		e.insertText("\n")
	case action.DeleteCharBefore:
		e.deleteBackward()
	case action.DeleteCharAfter:
		e.deleteForward()
	case action.DeleteSelection:
		e.deleteSelection()
	case action.DeleteLine:
		e.deleteLine()

	case action.ChangeMode:
		e.changeMode(a.Mode)

	case action.Undo:
		if r, ok := e.buf.Undo(); ok {
			e.setCursor(int(r.End))
		}
		e.dropSelection()
	case action.Redo:
		if r, ok := e.buf.Redo(); ok {
			e.setCursor(int(r.End))
		}
		e.dropSelection()

	case action.Save:
		if err := e.Save(); err != nil {
			e.pendingNotice = fmt.Sprintf("save failed: %v", err)
		}
	case action.Quit:
		e.pendingRequest = RequestQuit
	case action.SaveAndQuit:
		if err := e.Save(); err != nil {
			e.pendingNotice = fmt.Sprintf("save failed: %v", err)
		} else {
			e.pendingRequest = RequestQuit
		}
	case action.ForceQuit:
		e.pendingRequest = RequestForceQuit
	case action.OpenSidebar:
		e.pendingRequest = RequestOpenSidebar
	case action.CloseSidebar:
		e.pendingRequest = RequestCloseSidebar
	case action.CreateNote:
		e.pendingRequest = RequestCreateNote
	}

	return e.Refresh()
}

// Click moves the cursor to a position reported by the view layer in
// display offsets, converting through the position map when the clean
// view is active. Out-of-range offsets are clamped.
func (e *Editor) Click(displayOffset int) Frame {
	if e.renderEnabled && e.modes.Current() == mode.Normal {
		res := markdown.Decorate(e.buf.Text())
		e.setCursor(res.CleanToSource(displayOffset))
	} else {
		e.setCursor(displayOffset)
	}
	e.dropSelection()
	return e.Refresh()
}

// Select sets the selection to the half-open range [start, end) in
// source offsets, clamped, and places the cursor at end.
func (e *Editor) Select(start, end int) Frame {
	start = e.clamp(start)
	end = e.clamp(end)
	e.anchor = start
	e.cursor = end
	e.hasSelection = start != end
	return e.Refresh()
}

// Refresh recomputes the display state without applying any action.
func (e *Editor) Refresh() Frame {
	src := e.buf.Text()
	f := Frame{
		Mode:    e.modes.Current(),
		Dirty:   e.Dirty(),
		Request: e.pendingRequest,
		Notice:  e.pendingNotice,
	}
	e.pendingRequest = RequestNone
	e.pendingNotice = ""

	if e.renderEnabled && e.modes.Current() == mode.Normal {
		res := markdown.Decorate(src)
		f.Text = res.Clean
		f.Spans = res.Spans
		f.Links = res.Links
		f.Cursor = res.SourceToClean(e.cursor)
		if e.hasSelection {
			lo, hi := e.selectionRange()
			f.SelectionStart = res.SourceToClean(lo)
			f.SelectionEnd = res.SourceToClean(hi)
		}
	} else {
		f.Text = src
		f.Cursor = e.cursor
		if e.hasSelection {
			f.SelectionStart, f.SelectionEnd = e.selectionRange()
		}
	}
	if !e.hasSelection {
		f.SelectionStart, f.SelectionEnd = f.Cursor, f.Cursor
	}

	if e.modes.Current() == mode.Command {
		f.CommandLine = string(e.cmdline)
	}

	f.TextChanged = !e.haveLast || f.Text != e.lastText
	e.lastText = f.Text
	e.haveLast = true
	return f
}

// Mutation helpers

func (e *Editor) insertText(text string) {
	if e.hasSelection {
		lo, hi := e.selectionRange()
		if err := e.buf.Replace(buffer.CharOffset(lo), buffer.CharOffset(hi), text); err != nil {
			e.log.Error("replace failed", "error", err)
			return
		}
		e.cursor = lo + len([]rune(text))
		e.dropSelection()
		return
	}
	if err := e.buf.Insert(buffer.CharOffset(e.cursor), text); err != nil {
		e.log.Error("insert failed", "error", err)
		return
	}
	e.cursor += len([]rune(text))
}

func (e *Editor) deleteBackward() {
	if e.hasSelection {
		e.deleteSelection()
		return
	}
	if e.cursor == 0 {
		return
	}
	if err := e.buf.Delete(buffer.CharOffset(e.cursor-1), buffer.CharOffset(e.cursor)); err != nil {
		e.log.Error("delete failed", "error", err)
		return
	}
	e.cursor--
}

func (e *Editor) deleteForward() {
	if e.hasSelection {
		e.deleteSelection()
		return
	}
	if e.cursor >= int(e.buf.Len()) {
		return
	}
	if err := e.buf.Delete(buffer.CharOffset(e.cursor), buffer.CharOffset(e.cursor+1)); err != nil {
		e.log.Error("delete failed", "error", err)
	}
}

func (e *Editor) deleteSelection() {
	if !e.hasSelection {
		return
	}
	lo, hi := e.selectionRange()
	if err := e.buf.Delete(buffer.CharOffset(lo), buffer.CharOffset(hi)); err != nil {
		e.log.Error("delete failed", "error", err)
		return
	}
	e.cursor = lo
	e.dropSelection()
	if e.modes.Current() == mode.Visual {
		_ = e.modes.Switch(mode.Normal)
	}
}

// deleteLine removes the current line including its terminator. On the
// last line the preceding newline goes instead, so the line above
// becomes current.
func (e *Editor) deleteLine() {
	line := e.buf.CharToLine(buffer.CharOffset(e.cursor))
	start := int(e.buf.LineToChar(line))
	var end int
	if line < e.buf.LineCount()-1 {
		end = int(e.buf.LineToChar(line + 1))
	} else {
		end = int(e.buf.Len())
		if start > 0 {
			start--
		}
	}
	if start == end {
		return
	}
	if err := e.buf.Delete(buffer.CharOffset(start), buffer.CharOffset(end)); err != nil {
		e.log.Error("delete line failed", "error", err)
		return
	}
	e.setCursor(start)
	e.dropSelection()
}

func (e *Editor) changeMode(to mode.Mode) {
	from := e.modes.Current()
	if err := e.modes.Switch(to); err != nil {
		e.log.Warn("mode switch rejected", "from", from, "to", to)
		return
	}
	e.keys.ClearPending()
	switch {
	case to == mode.Visual:
		e.anchor = e.cursor
		e.hasSelection = false
	case from == mode.Visual:
		e.dropSelection()
	case to == mode.Command:
		e.cmdline = e.cmdline[:0]
	}
}

// Cursor and selection helpers

func (e *Editor) clamp(off int) int {
	if off < 0 {
		return 0
	}
	if n := int(e.buf.Len()); off > n {
		return n
	}
	return off
}

func (e *Editor) setCursor(off int) {
	e.cursor = e.clamp(off)
	if e.modes.Current() == mode.Visual {
		e.hasSelection = e.anchor != e.cursor
	}
}

func (e *Editor) dropSelection() {
	e.hasSelection = false
}

func (e *Editor) selectionRange() (int, int) {
	lo, hi := e.anchor, e.cursor
	if lo > hi {
		lo, hi = hi, lo
	}
	return e.clamp(lo), e.clamp(hi)
}

func (e *Editor) moveVertical(delta int) {
	p := e.buf.OffsetToPoint(buffer.CharOffset(e.cursor))
	target := p.Line + delta
	if target < 0 || target >= e.buf.LineCount() {
		return
	}
	e.setCursor(int(e.buf.PointToOffset(buffer.Point{Line: target, Column: p.Column})))
}
