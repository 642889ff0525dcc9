// Package console is the drawing surface and keyboard source the game core
// runs against.
package console

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Console is what the core needs to draw a frame.
type Console interface {
	Cls()
	Set(x, y int, fg, bg tcell.Color, glyph rune)
}

// Terminal is a Console backed by a tcell screen. Input is read on a
// separate goroutine and handed out one frame at a time by PollKey.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	closed bool

	done      chan struct{} // closed by Close; releases the reader
	stopped   chan struct{} // closed when the reader returns
	closeOnce sync.Once
}

// NewTerminal initialises screen and starts reading its events.
func NewTerminal(screen tcell.Screen, title string) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.SetTitle(title)
	screen.Clear()

	t := &Terminal{
		screen:  screen,
		events:  make(chan tcell.Event, 32),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go t.readEvents()
	return t, nil
}

// readEvents forwards screen events until the screen is finalised or the
// terminal is closed while nobody drains the queue.
func (t *Terminal) readEvents() {
	defer close(t.stopped)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			close(t.events)
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Cls clears the back buffer.
func (t *Terminal) Cls() {
	t.screen.Clear()
}

// Set paints one cell. A double-width glyph also blanks the column to its
// right so the next frame does not leave half a glyph behind.
func (t *Terminal) Set(x, y int, fg, bg tcell.Color, glyph rune) {
	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	t.screen.SetContent(x, y, glyph, nil, style)
	if runewidth.RuneWidth(glyph) == 2 {
		t.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// Show flushes the back buffer to the terminal.
func (t *Terminal) Show() {
	t.screen.Show()
}

// Close restores the terminal and stops the event reader. It is safe to
// call more than once.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
}

// PollKey drains every event queued since the last frame and returns the
// most recent key press, or nil. quit is true when the player asked to leave
// or the screen went away.
func (t *Terminal) PollKey() (key *tcell.EventKey, quit bool) {
	if t.closed {
		return nil, true
	}
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.closed = true
				return key, true
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil, true
				}
				key = ev
			}
		default:
			return key, false
		}
	}
}
