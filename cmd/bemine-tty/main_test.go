package main

import (
	"image"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/bemine/bemine/internal/app"
	"github.com/bemine/bemine/internal/config"
	"github.com/bemine/bemine/internal/game"
	"github.com/bemine/bemine/internal/render"
)

func newTestUI(t *testing.T, cols, rows int) *UI {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)

	cfg, err := config.LoadFrom(map[string]string{
		"BEMINE_PHOTO_DIR":     t.TempDir(),
		"BEMINE_AUDIO_ENABLED": "false",
		"BEMINE_SEED":          "42",
	})
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	a, err := app.New(cfg, image.Point{}, nil)
	if err != nil {
		t.Fatalf("app: %v", err)
	}
	t.Cleanup(a.Close)
	return NewUI(screen, a)
}

func rowText(screen tcell.Screen, y, cols int) string {
	var b strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(u *UI) string {
	var b strings.Builder
	for y := 0; y < u.rows; y++ {
		b.WriteString(rowText(u.screen, y, u.cols))
		b.WriteByte('\n')
	}
	return b.String()
}

func click(u *UI, r render.Rect) {
	x, y := r.Center()
	u.handleEvent(tcell.NewEventMouse(int(x), int(y), tcell.Button1, tcell.ModNone))
	u.handleEvent(tcell.NewEventMouse(int(x), int(y), tcell.ButtonNone, tcell.ModNone))
}

func TestResizeReportsPixels(t *testing.T) {
	u := newTestUI(t, 120, 40)
	s := u.app.Controller.Snapshot()
	if s.ViewportWidth != 120*cellPixelsX || s.ViewportHeight != 40*cellPixelsY {
		t.Errorf("viewport = %vx%v", s.ViewportWidth, s.ViewportHeight)
	}
}

func TestDrawsQuestion(t *testing.T) {
	u := newTestUI(t, 120, 40)
	u.tick()
	text := screenText(u)
	for _, want := range []string{u.app.Script.Question, "[ No ]"} {
		if !strings.Contains(text, want) {
			t.Errorf("screen missing %q", want)
		}
	}
}

func TestHoverOnNoEvades(t *testing.T) {
	u := newTestUI(t, 120, 40)
	u.tick()
	x, y := u.no.Center()
	u.handleEvent(tcell.NewEventMouse(int(x), int(y), tcell.ButtonNone, tcell.ModNone))
	if got := u.app.Controller.Snapshot().EvasionCount; got != 1 {
		t.Fatalf("EvasionCount = %d, want 1", got)
	}
	// Staying inside does not count again.
	u.handleEvent(tcell.NewEventMouse(int(x), int(y), tcell.ButtonNone, tcell.ModNone))
	if got := u.app.Controller.Snapshot().EvasionCount; got != 1 {
		t.Errorf("EvasionCount after staying = %d, want 1", got)
	}
}

func TestClickThroughToLetter(t *testing.T) {
	u := newTestUI(t, 120, 40)
	u.tick()

	click(u, u.yes)
	if got := u.app.Controller.Phase(); got != game.PhaseAccepted {
		t.Fatalf("phase = %v, want ACCEPTED", got)
	}
	u.tick()
	if text := screenText(u); !strings.Contains(text, "photo 1/") {
		t.Errorf("celebration screen missing photo line:\n%s", text)
	}

	click(u, u.more)
	if got := u.app.Controller.Phase(); got != game.PhaseExpandedMessage {
		t.Fatalf("phase = %v, want EXPANDED_MESSAGE", got)
	}
	u.tick()
	if text := screenText(u); !strings.Contains(text, u.app.Script.Letter.Greeting) {
		t.Errorf("letter screen missing greeting:\n%s", text)
	}
}

func TestPersuadingClickGrowsYes(t *testing.T) {
	u := newTestUI(t, 120, 40)
	for i := 0; i < game.EvasionLimit; i++ {
		u.app.Controller.OnEvasiveEncounter()
	}
	u.tick()
	before := u.yes.W

	click(u, u.no)
	s := u.app.Controller.Snapshot()
	if s.PersuasionCount != 1 {
		t.Fatalf("PersuasionCount = %d, want 1", s.PersuasionCount)
	}
	u.tick()
	if u.yes.W <= before {
		t.Errorf("yes width %v did not grow from %v", u.yes.W, before)
	}
	if !strings.Contains(screenText(u), "[ "+s.Caption()+" ]") {
		t.Errorf("caption %q not drawn", s.Caption())
	}
}

func TestEscapeQuits(t *testing.T) {
	u := newTestUI(t, 80, 24)
	if u.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("escape should quit")
	}
	if !u.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)) {
		t.Error("other keys should not quit")
	}
}

func TestNoLabelStaysOnScreen(t *testing.T) {
	u := newTestUI(t, 80, 24)
	for i := 0; i < game.EvasionLimit-1; i++ {
		u.app.Controller.OnEvasiveEncounter()
		u.layout(u.app.Controller.Snapshot())
		if u.no.X < 0 || int(u.no.X+u.no.W) >= u.cols || u.no.Y < 0 || int(u.no.Y) >= u.rows {
			t.Fatalf("encounter %d: No label off screen at %+v", i+1, u.no)
		}
	}
}

func TestDragOntoYesIsNotAClick(t *testing.T) {
	u := newTestUI(t, 120, 40)
	u.tick()

	x, y := u.yes.Center()
	u.handleEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	u.handleEvent(tcell.NewEventMouse(int(x), int(y), tcell.Button1, tcell.ModNone))
	u.handleEvent(tcell.NewEventMouse(int(x), int(y), tcell.ButtonNone, tcell.ModNone))
	if got := u.app.Controller.Phase(); got != game.PhaseChasing {
		t.Errorf("phase = %v after a drag onto Yes, want CHASING", got)
	}

	click(u, u.yes)
	if got := u.app.Controller.Phase(); got != game.PhaseAccepted {
		t.Errorf("phase = %v after a real click, want ACCEPTED", got)
	}
}

func TestPhotosAreNotDecoded(t *testing.T) {
	u := newTestUI(t, 80, 24)
	for _, p := range u.app.Photos {
		if p.Image != nil {
			t.Errorf("%s decoded for the terminal", p.Name)
		}
	}
}
