// Command bemine-tty runs the proposal in a terminal, with mouse support.
package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/bemine/bemine/internal/app"
	"github.com/bemine/bemine/internal/celebrate"
	"github.com/bemine/bemine/internal/config"
	"github.com/bemine/bemine/internal/game"
	"github.com/bemine/bemine/internal/pointer"
	"github.com/bemine/bemine/internal/render"
)

// One terminal cell counts as this many pixels, so the evasion ranges and
// the compact breakpoint keep their meaning.
const (
	cellPixelsX = 8
	cellPixelsY = 16
)

// UI drives an App from tcell events.
type UI struct {
	screen     tcell.Screen
	app        *app.App
	cols, rows int

	pointer pointer.Tracker
	down    bool // button 1 held at the last mouse event

	yes, no, more render.Rect // in cells
}

func NewUI(screen tcell.Screen, a *app.App) *UI {
	u := &UI{screen: screen, app: a}
	u.resize()
	return u
}

func (u *UI) resize() {
	u.cols, u.rows = u.screen.Size()
	u.app.Resize(float64(u.cols*cellPixelsX), float64(u.rows*cellPixelsY))
}

// labelRect is the hit box of a one-row label starting at (x, y).
func labelRect(x, y int, label string) render.Rect {
	return render.Rect{X: float64(x), Y: float64(y), W: float64(utf8.RuneCountInString(label) - 1)}
}

func (u *UI) yesLabel(s game.Session) string {
	pad := strings.Repeat(" ", int(math.Round((s.Scale()-1)*4)))
	return "[ " + pad + u.app.Script.Affirmative + pad + " ]"
}

func noLabel(s game.Session) string {
	return "[ " + s.Caption() + " ]"
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// layout places the buttons for the current session.
func (u *UI) layout(s game.Session) {
	switch s.Phase {
	case game.PhaseChasing, game.PhasePersuading:
		yes, no := u.yesLabel(s), noLabel(s)
		yw, nw := utf8.RuneCountInString(yes), utf8.RuneCountInString(no)
		row := u.rows/2 + 2
		yesX, noX, noRow := u.cols/2-12-yw/2, u.cols/2+12-nw/2, row
		if s.Compact() {
			yesX, noX, noRow = u.cols/2-yw/2, u.cols/2-nw/2, row+3
		}
		noX += int(math.Round(s.EvadingOffset.X / cellPixelsX))
		noRow += int(math.Round(s.EvadingOffset.Y / cellPixelsY))
		noX = clampInt(noX, 0, max(0, u.cols-nw))
		noRow = clampInt(noRow, 0, max(0, u.rows-1))

		u.yes = labelRect(yesX, row, yes)
		u.no = labelRect(noX, noRow, no)
	case game.PhaseAccepted:
		more := "[ " + u.app.Script.Celebration.Continue + " ]"
		u.more = labelRect(u.cols/2-utf8.RuneCountInString(more)/2, u.rows-2, more)
	}
}

// handleEvent processes one event. It returns false when the user quits.
func (u *UI) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyEnter {
			u.app.Controller.OnContinue()
		}

	case *tcell.EventResize:
		u.screen.Sync()
		u.resize()

	case *tcell.EventMouse:
		u.handleMouse(ev)
	}
	return true
}

func (u *UI) handleMouse(ev *tcell.EventMouse) {
	s := u.app.Controller.Snapshot()
	u.layout(s)
	u.pointer.Update(pointer.Layout{
		Phase: s.Phase,
		Yes:   u.yes,
		No:    u.no,
		More:  u.more,
	}, u.mouseFrame(ev)).Apply(u.app.Controller)
}

// mouseFrame converts a tcell mouse event. tcell reports button state, not
// transitions, so presses and releases come from comparing with the last
// event.
func (u *UI) mouseFrame(ev *tcell.EventMouse) pointer.Frame {
	mx, my := ev.Position()
	at := pointer.Point{X: float64(mx), Y: float64(my)}
	down := ev.Buttons()&tcell.Button1 != 0

	f := pointer.Frame{Cursor: at}
	switch {
	case down && !u.down:
		f.Down, f.Press = true, at
	case !down && u.down:
		f.Up, f.Release = true, at
	}
	u.down = down
	return f
}

func tc(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func style(fg, bg int) tcell.Style {
	return tcell.StyleDefault.Foreground(tc(render.Palette[fg])).Background(tc(render.Palette[bg]))
}

func (u *UI) drawString(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		if x >= 0 && x < u.cols && y >= 0 && y < u.rows {
			u.screen.SetContent(x, y, r, nil, st)
		}
		x++
	}
}

// drawCentered wraps s to the screen and returns the row below it.
func (u *UI) drawCentered(y int, s string, st tcell.Style) int {
	for _, line := range render.WrapText(s, u.cols-4) {
		u.drawString(u.cols/2-utf8.RuneCountInString(line)/2, y, line, st)
		y++
	}
	return y
}

func (u *UI) drawLabel(r render.Rect, label string, st tcell.Style) {
	u.drawString(int(r.X), int(r.Y), label, st)
}

// tick advances timers and redraws.
func (u *UI) tick() {
	u.app.Tick()
	s := u.app.Controller.Snapshot()
	u.layout(s)
	u.draw(s)
	u.screen.Show()
}

func (u *UI) draw(s game.Session) {
	bg := style(render.ColorInk, render.ColorBlush)
	u.screen.SetStyle(bg)
	u.screen.Clear()

	switch s.Phase {
	case game.PhaseChasing, game.PhasePersuading:
		u.drawCentered(u.rows/2-4, "♥ ♥ ♥", style(render.ColorRose, render.ColorBlush))
		u.drawCentered(u.rows/2-2, u.app.Script.Question, style(render.ColorCrimson, render.ColorBlush).Bold(true))
		u.drawLabel(u.yes, u.yesLabel(s), style(render.ColorWhite, render.ColorRose).Bold(true))
		u.drawLabel(u.no, noLabel(s), style(render.ColorWhite, render.ColorNo))

	case game.PhaseAccepted:
		cel := u.app.Script.Celebration
		y := u.drawCentered(1, cel.Title, style(render.ColorCrimson, render.ColorBlush).Bold(true))
		show := u.app.Slideshow
		photo := fmt.Sprintf("♥ photo %d/%d: %s ♥", show.Index()+1, show.Count(), u.app.Photo().Name)
		y = u.drawCentered(y+1, photo, style(render.ColorWhite, render.ColorPink))
		y++
		for _, line := range cel.Lines {
			y = u.drawCentered(y, line, bg)
		}
		u.drawLabel(u.more, "[ "+cel.Continue+" ]", style(render.ColorWhite, render.ColorRose).Bold(true))

	case game.PhaseExpandedMessage:
		letter := u.app.Script.Letter
		y := u.drawCentered(1, letter.Greeting, style(render.ColorCrimson, render.ColorBlush).Bold(true))
		for _, p := range letter.Paragraphs {
			y = u.drawCentered(y+1, p, bg)
		}
		u.drawCentered(y+1, letter.Closing, style(render.ColorCrimson, render.ColorBlush))
	}

	u.app.Confetti.Each(func(p celebrate.Particle) {
		x, y := int(p.X/cellPixelsX), int(p.Y/cellPixelsY)
		if x >= 0 && x < u.cols && y >= 0 && y < u.rows {
			u.screen.SetContent(x, y, '*', nil, tcell.StyleDefault.Foreground(tc(p.Color)).Background(tc(render.Palette[render.ColorBlush])))
		}
	})
}

func (u *UI) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- u.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !u.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			u.tick()
		}
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	// The terminal only shows photo names, so skip decoding them.
	a, err := app.New(cfg, image.Point{}, nil)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer a.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)

	NewUI(screen, a).run()
	return nil
}

func main() {
	// The terminal is ours; keep the log out of it.
	logPath := filepath.Join(os.TempDir(), "bemine-tty.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err == nil {
		log.SetOutput(f)
	}

	err = run()
	if f != nil {
		f.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
