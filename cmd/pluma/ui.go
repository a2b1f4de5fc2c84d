package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plumanotes/pluma/internal/editor"
	"github.com/plumanotes/pluma/internal/input/key"
	"github.com/plumanotes/pluma/internal/store"
)

const (
	sidebarWidth = 28
	tabWidth     = 4
)

// UI is the terminal frontend. It owns the screen and drives the editor
// from a single event loop, which keeps the editor's single-threaded
// contract intact.
type UI struct {
	screen tcell.Screen
	ed     *editor.Editor
	st     *store.Store
	saver  *store.Autosaver
	log    *slog.Logger

	frame   editor.Frame
	topLine int

	sidebar  bool
	notes    []store.NoteInfo
	selected int
}

func newUI(ed *editor.Editor, st *store.Store, saver *store.Autosaver, log *slog.Logger) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &UI{screen: screen, ed: ed, st: st, saver: saver, log: log}, nil
}

// Run initialises the screen and processes events until quit.
func (u *UI) Run(ctx context.Context) error {
	if err := u.screen.Init(); err != nil {
		return err
	}
	defer u.screen.Fini()
	u.screen.EnableMouse()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go u.screen.ChannelEvents(events, quit)
	defer close(quit)

	watchCtx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()
	fsEvents := make(chan store.Event, 16)
	go func() {
		if err := u.st.Watch(watchCtx, fsEvents); err != nil {
			u.log.Warn("watcher exited", "error", err)
		}
	}()

	ticker := time.NewTicker(u.saver.Interval())
	defer ticker.Stop()

	u.frame = u.ed.Refresh()
	u.draw()

	for {
		select {
		case <-ctx.Done():
			u.flush()
			return nil

		case <-ticker.C:
			if u.saver.Tick() {
				u.frame = u.ed.Refresh()
				u.draw()
			}

		case fe := <-fsEvents:
			u.handleFSEvent(fe)

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if done := u.handleEvent(ev); done {
				return nil
			}
		}
	}
}

// flush is the forced save on window close.
func (u *UI) flush() {
	if !u.ed.Dirty() {
		return
	}
	if err := u.ed.Save(); err != nil {
		u.log.Error("final save failed", "error", err)
	}
}

func (u *UI) handleEvent(ev tcell.Event) bool {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
		u.draw()

	case *tcell.EventKey:
		if u.sidebar {
			return u.handleSidebarKey(tev)
		}
		kev, ok := translateKey(tev)
		if !ok {
			return false
		}
		u.frame = u.ed.HandleKey(kev)
		if done := u.handleRequest(u.frame.Request); done {
			return true
		}
		u.draw()

	case *tcell.EventMouse:
		if tev.Buttons()&tcell.Button1 == 0 {
			return false
		}
		x, y := tev.Position()
		if u.sidebar {
			if x < sidebarWidth {
				u.sidebarClick(y)
				return false
			}
			x -= sidebarWidth
		}
		u.frame = u.ed.Click(u.displayOffsetAt(x, y))
		u.draw()
	}
	return false
}

// handleRequest services frame requests and reports whether to quit.
func (u *UI) handleRequest(r editor.RequestKind) bool {
	switch r {
	case editor.RequestQuit:
		u.flush()
		return true
	case editor.RequestForceQuit:
		return true
	case editor.RequestOpenSidebar:
		u.openSidebar()
	case editor.RequestCloseSidebar:
		u.sidebar = false
	case editor.RequestCreateNote:
		u.createNote()
	}
	return false
}

func (u *UI) openSidebar() {
	u.refreshNotes()
	u.sidebar = true
	u.selected = 0
	for i, n := range u.notes {
		if n.Name == u.ed.Note() {
			u.selected = i
			break
		}
	}
}

func (u *UI) refreshNotes() {
	notes, err := u.st.List()
	if err != nil {
		u.log.Warn("list notes failed", "error", err)
		return
	}
	u.notes = notes
	if u.selected >= len(u.notes) {
		u.selected = len(u.notes) - 1
	}
	if u.selected < 0 {
		u.selected = 0
	}
}

func (u *UI) handleSidebarKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyRune && ev.Rune() == 't':
		u.sidebar = false
	case ev.Key() == tcell.KeyDown, ev.Key() == tcell.KeyRune && ev.Rune() == 'j':
		if u.selected < len(u.notes)-1 {
			u.selected++
		}
	case ev.Key() == tcell.KeyUp, ev.Key() == tcell.KeyRune && ev.Rune() == 'k':
		if u.selected > 0 {
			u.selected--
		}
	case ev.Key() == tcell.KeyEnter:
		u.openSelected()
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'n':
		u.createNote()
	}
	u.draw()
	return false
}

func (u *UI) sidebarClick(y int) {
	if y >= 1 && y-1 < len(u.notes) {
		u.selected = y - 1
		u.openSelected()
	}
	u.draw()
}

func (u *UI) openSelected() {
	if u.selected >= len(u.notes) {
		return
	}
	name := u.notes[u.selected].Name
	if name == u.ed.Note() {
		u.sidebar = false
		return
	}
	u.flush()
	if err := u.ed.Open(name); err != nil {
		u.log.Error("open note failed", "note", name, "error", err)
		return
	}
	u.sidebar = false
	u.topLine = 0
	u.frame = u.ed.Refresh()
}

func (u *UI) createNote() {
	name := "untitled"
	for i := 2; u.st.Exists(name); i++ {
		name = fmt.Sprintf("untitled-%d", i)
	}
	if err := u.st.Create(name); err != nil {
		u.log.Error("create note failed", "note", name, "error", err)
		return
	}
	u.flush()
	if err := u.ed.Open(name); err != nil {
		u.log.Error("open new note failed", "note", name, "error", err)
		return
	}
	u.sidebar = false
	u.topLine = 0
	u.frame = u.ed.Refresh()
	u.draw()
}

// handleFSEvent reloads the open note after an external change, but
// never while unsaved edits exist.
func (u *UI) handleFSEvent(ev store.Event) {
	if u.sidebar {
		u.refreshNotes()
	}
	if ev.Name == u.ed.Note() && ev.Kind != store.NoteRemoved && !u.ed.Dirty() {
		if err := u.ed.Open(ev.Name); err != nil {
			u.log.Warn("reload after external change failed", "note", ev.Name, "error", err)
		} else {
			u.log.Info("note reloaded after external change", "note", ev.Name)
			u.frame = u.ed.Refresh()
		}
	}
	u.draw()
}

// translateKey converts a tcell key event into the editor's key model.
func translateKey(ev *tcell.EventKey) (key.Event, bool) {
	var mods key.Modifier
	m := ev.Modifiers()
	if m&tcell.ModCtrl != 0 {
		mods |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= key.ModAlt
	}
	if m&tcell.ModShift != 0 {
		mods |= key.ModShift
	}

	switch ev.Key() {
	case tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods), true
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods), true
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods), true
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods), true
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods), true
	case tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods), true
	case tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods), true
	case tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods), true
	case tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods), true
	case tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods), true
	case tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods), true
	}

	// Control-letter chords arrive as dedicated key codes.
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewRuneEvent(rune('a'+k-tcell.KeyCtrlA), mods|key.ModCtrl), true
	}
	return key.Event{}, false
}
