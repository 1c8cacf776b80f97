// ABOUTME: Session owns one editing session: raw mode, geometry, cursor, and the render/read/dispatch loop.
// ABOUTME: Raw mode is restored exactly once on every exit path; fatal paths clear the screen first.

package editor

import (
	"context"
	"fmt"

	"github.com/mauromedda/pi-edit/internal/config"
	"github.com/mauromedda/pi-edit/internal/keybindings"
	"github.com/mauromedda/pi-edit/internal/log"
	"github.com/mauromedda/pi-edit/pkg/tui"
	"github.com/mauromedda/pi-edit/pkg/tui/key"
	"github.com/mauromedda/pi-edit/pkg/tui/terminal"
)

// Options configures a Session.
type Options struct {
	// Welcome is the banner text drawn a third of the way down the screen.
	Welcome string
	// Keys maps keys to actions; nil means the defaults.
	Keys *keybindings.Manager
}

// Session is a single editor run against one terminal. It is not safe
// for concurrent use.
type Session struct {
	term     terminal.Terminal
	decoder  *key.Decoder
	renderer *tui.Renderer
	keys     *keybindings.Manager

	geom   tui.Geometry
	cursor tui.Cursor
}

// New returns a Session drawing to and reading from t.
func New(t terminal.Terminal, opts Options) *Session {
	keys := opts.Keys
	if keys == nil {
		keys = keybindings.Default()
	}
	return &Session{
		term:     t,
		decoder:  key.NewDecoder(t),
		renderer: tui.NewRenderer(t, opts.Welcome),
		keys:     keys,
	}
}

// Run enters raw mode, probes the screen size, and loops rendering and
// dispatching keys until the quit action (nil error), a fatal error, or
// ctx is done. On error the screen is cleared before the terminal mode
// is restored.
func (s *Session) Run(ctx context.Context) (err error) {
	if err := s.term.EnterRawMode(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() {
		if rerr := s.term.ExitRawMode(); rerr != nil && err == nil {
			err = fmt.Errorf("restoring terminal mode: %w", rerr)
		}
	}()
	defer func() {
		if err != nil {
			_ = s.renderer.Clear()
		}
	}()

	cols, rows, err := terminal.ProbeSize(ctx, s.term)
	if err != nil {
		return fmt.Errorf("probing screen size: %w", err)
	}
	s.geom = tui.Geometry{Rows: rows, Cols: cols}
	s.cursor = tui.Cursor{}
	log.Info("session started: %dx%d", cols, rows)

	for {
		if err := s.renderer.Render(s.geom, s.cursor); err != nil {
			return fmt.Errorf("refreshing screen: %w", err)
		}

		k, err := s.decoder.ReadKey(ctx)
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}
		log.Debug("key %s", k)

		if s.dispatch(k) {
			if err := s.renderer.Clear(); err != nil {
				return fmt.Errorf("clearing screen: %w", err)
			}
			log.Info("session ended by quit")
			return nil
		}
	}
}

// Geometry returns the screen size found at startup.
func (s *Session) Geometry() tui.Geometry { return s.geom }

// Cursor returns the current cursor position.
func (s *Session) Cursor() tui.Cursor { return s.cursor }

// dispatch applies k and reports whether the session should quit.
// Keys without an action are ignored.
func (s *Session) dispatch(k key.Key) (quit bool) {
	switch action := s.keys.ActionForKey(k); action {
	case "":
		return false
	case config.ActionQuit:
		return true
	case config.ActionHome:
		s.cursor.Col = 0
	case config.ActionEnd:
		s.cursor.Col = s.geom.Cols - 1
	case config.ActionPageUp:
		for range s.geom.Rows {
			s.move(config.ActionCursorUp)
		}
	case config.ActionPageDown:
		for range s.geom.Rows {
			s.move(config.ActionCursorDown)
		}
	default:
		s.move(action)
	}
	return false
}

// move shifts the cursor one cell, staying inside the screen.
func (s *Session) move(action config.KeyAction) {
	switch action {
	case config.ActionCursorLeft:
		if s.cursor.Col > 0 {
			s.cursor.Col--
		}
	case config.ActionCursorRight:
		if s.cursor.Col < s.geom.Cols-1 {
			s.cursor.Col++
		}
	case config.ActionCursorUp:
		if s.cursor.Row > 0 {
			s.cursor.Row--
		}
	case config.ActionCursorDown:
		if s.cursor.Row < s.geom.Rows-1 {
			s.cursor.Row++
		}
	}
}
