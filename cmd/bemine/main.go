package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/bemine/bemine/internal/app"
	"github.com/bemine/bemine/internal/config"
	"github.com/bemine/bemine/internal/game"
	"github.com/bemine/bemine/internal/pointer"
	"github.com/bemine/bemine/internal/render"
)

const (
	title = "Be Mine ♥"

	photoWidth  = 400
	photoHeight = 250

	easeRate = 0.2 // fraction of the remaining distance the No button covers per frame
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All proposal state lives in app.
type Game struct {
	app    *app.App
	text   *render.TextRenderer
	pixel  *ebiten.Image
	photos []*ebiten.Image

	width, height int
	ticks         int

	// No button position, easing toward the session's evading offset.
	noOffset game.Offset

	pointer                   pointer.Tracker
	yesRect, noRect, moreRect render.Rect
	touches                   []ebiten.TouchID
	touchStarts               []pointer.Point
}

func NewGame(a *app.App) *Game {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(render.Palette[render.ColorWhite])

	photos := make([]*ebiten.Image, len(a.Photos))
	for i, p := range a.Photos {
		photos[i] = ebiten.NewImageFromImage(p.Image)
	}

	return &Game{
		app:    a,
		text:   render.NewTextRenderer(render.NewFontAtlas()),
		pixel:  pixel,
		photos: photos,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.ticks++
	g.app.Tick()

	s := g.app.Controller.Snapshot()
	g.noOffset = g.noOffset.Toward(s.EvadingOffset, easeRate)
	g.layoutButtons(s)

	g.pointer.Update(pointer.Layout{
		Phase: s.Phase,
		Yes:   g.yesRect,
		No:    g.noRect,
		More:  g.moreRect,
	}, g.readPointer()).Apply(g.app.Controller)
	return nil
}

// layoutButtons recomputes the hit rects for the current frame.
func (g *Game) layoutButtons(s game.Session) {
	w, h := float64(g.width), float64(g.height)
	scale := buttonScale(s.Compact())

	switch s.Phase {
	case game.PhaseChasing, game.PhasePersuading:
		yesX, noX, y := w/2-110, w/2+110, h/2+60
		noY := y
		if s.Compact() {
			yesX, noX = w/2, w/2
			noY = y + 80
		}
		g.yesRect = render.ButtonRect(g.app.Script.Affirmative, yesX, y, scale*s.Scale())
		g.noRect = render.ButtonRect(s.Caption(), noX, noY, scale).Translate(g.noOffset.X, g.noOffset.Y)
	case game.PhaseAccepted:
		g.moreRect = render.ButtonRect(g.app.Script.Celebration.Continue, w/2, h-70, scale)
	}
}

// readPointer gathers this frame's mouse and touch input.
func (g *Game) readPointer() pointer.Frame {
	mx, my := ebiten.CursorPosition()
	f := pointer.Frame{Cursor: pointer.Point{X: float64(mx), Y: float64(my)}}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		f.Down, f.Press = true, f.Cursor
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		f.Up, f.Release = true, f.Cursor
	}

	g.touchStarts = g.touchStarts[:0]
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		tx, ty := ebiten.TouchPosition(id)
		g.touchStarts = append(g.touchStarts, pointer.Point{X: float64(tx), Y: float64(ty)})
	}
	f.Touches = g.touchStarts
	if len(g.touchStarts) > 0 && !f.Down {
		f.Down, f.Press = true, g.touchStarts[0]
	}

	g.touches = inpututil.AppendJustReleasedTouchIDs(g.touches[:0])
	if len(g.touches) > 0 && !f.Up {
		x, y := inpututil.TouchPositionInPreviousTick(g.touches[0])
		f.Up, f.Release = true, pointer.Point{X: float64(x), Y: float64(y)}
	}
	return f
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Palette[render.ColorBlush])
	g.drawHearts(screen)

	s := g.app.Controller.Snapshot()
	switch s.Phase {
	case game.PhaseChasing, game.PhasePersuading:
		g.drawProposal(screen, s)
	case game.PhaseAccepted:
		g.drawCelebration(screen, s)
	case game.PhaseExpandedMessage:
		g.drawLetter(screen, s)
	}
	g.drawConfetti(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.app.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	a, err := app.New(cfg, image.Pt(photoWidth, photoHeight), nil)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGame(NewGame(a))
	a.Close()
	if err != nil {
		log.Fatal(err)
	}
}
