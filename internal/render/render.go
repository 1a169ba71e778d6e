package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"paperwork/internal/entity"
	"paperwork/internal/gamemode"
)

const (
	screenW = gamemode.ScreenWidth
	screenH = gamemode.ScreenHeight

	boxPadding = 10
)

var (
	slashRow  = strings.Repeat("/", 51)
	barRow    = "|" + strings.Repeat(" ", 56) + "|"
	dollarRow = strings.Repeat("$", 64)
	ringGlyph = strings.Repeat("=", 14)
)

// Renderer draws a session. It keeps no layout state between frames.
type Renderer struct {
	faces      Faces
	background *ebiten.Image

	// Debug adds a TPS/FPS readout in the corner.
	Debug bool

	// jitter wobbles explosion rings; purely visual.
	jitter *rand.Rand
}

// New prepares a renderer. bg may be nil, in which case a flat dark fill
// stands in for the background.
func New(faces Faces, bg image.Image, rng *rand.Rand) *Renderer {
	r := &Renderer{faces: faces, jitter: rng}
	if bg != nil {
		r.background = ebiten.NewImageFromImage(bg)
	}
	return r
}

func (r *Renderer) Draw(screen *ebiten.Image, s *gamemode.Session) {
	switch s.State {
	case gamemode.StateStart:
		r.drawStart(screen)
	case gamemode.StatePlaying:
		r.drawBackground(screen, DimGame)
		r.drawPlayer(screen, s.Player)
		for _, b := range s.Bullets {
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y),
				entity.BulletWidth, entity.BulletHeight, ColMatrixGreen, false)
		}
		for i := range s.Stacks {
			r.drawStack(screen, &s.Stacks[i])
		}
		for i := range s.Explosions {
			r.drawExplosion(screen, &s.Explosions[i])
		}
		r.drawHUD(screen, s)
	case gamemode.StatePaused:
		r.drawBackground(screen, DimGame)
		w, _ := text.Measure("Paused", r.faces.Big, 0)
		drawText(screen, "Paused", r.faces.Big, screenW/2-w/2, screenH/2, ColMatrixGreen)
	case gamemode.StateGameOver:
		r.drawBackground(screen, DimGame)
		r.drawGameOver(screen, s.Score)
	}

	if r.Debug {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("TPS %.0f FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()), 4, screenH-16)
	}
}

func (r *Renderer) drawBackground(screen *ebiten.Image, dim float32) {
	if r.background == nil {
		screen.Fill(ColNoBg)
		return
	}
	b := r.background.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(screenW)/float64(b.Dx()), float64(screenH)/float64(b.Dy()))
	op.ColorScale.Scale(dim, dim, dim, 1)
	screen.DrawImage(r.background, op)
}

func (r *Renderer) drawStart(screen *ebiten.Image) {
	r.drawBackground(screen, DimSplash)
	cx, cy := float64(screenW/2), float64(screenH/2)

	w, h := text.Measure("DOGE", r.faces.Big, 0)
	drawText(screen, "DOGE", r.faces.Big, cx-w/2, cy-h/2, ColGold)

	drawCentered(screen, slashRow, r.faces.Main, cy-60, ColWhite)
	drawCentered(screen, slashRow, r.faces.Main, cy+60, ColWhite)
	for _, dy := range []float64{-45, -15, 15, 45} {
		drawCentered(screen, barRow, r.faces.Main, cy+dy, ColWhite)
	}

	drawCentered(screen, "Press SPACE to Shoot Waste", r.faces.Main, cy+105, ColMatrixGreen)
	drawText(screen, dollarRow, r.faces.Main, 0, screenH-30, ColMatrixGreen)
}

// drawPlayer is a thin green bar with "SPACE DOGE" written beside it.
func (r *Renderer) drawPlayer(screen *ebiten.Image, p *entity.Player) {
	b := p.Bounds()
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), ColMatrixGreen, false)

	x := b.X + b.W + 10
	drawText(screen, "SPACE", r.faces.Main, x, b.Y, ColMatrixGreen)
	w, _ := text.Measure("SPACE", r.faces.Main, 0)
	drawText(screen, "DOGE", r.faces.Main, x+w+10, b.Y, ColMatrixGreen)
}

func (r *Renderer) drawStack(screen *ebiten.Image, st *entity.Stack) {
	for i, row := range st.Rows {
		y := st.Y + float64(i*entity.LineSpacing)
		if y > screenH || y+entity.LineSpacing < 0 {
			continue
		}
		drawText(screen, row, r.faces.Small, st.X, y, ColMatrixGreen)
	}
}

// drawExplosion scatters "=" strings on a ring every 15 degrees.
func (r *Renderer) drawExplosion(screen *ebiten.Image, e *entity.Explosion) {
	clr := ColMatrixGreen
	if e.Kind == entity.ExplosionPlayerHit {
		clr = ColBrown
	}
	w, h := text.Measure(ringGlyph, r.faces.Small, 0)
	radius := e.Radius()
	cx := e.X + entity.StackWidth/2
	for deg := 0; deg < 360; deg += 15 {
		rad := float64(deg) * math.Pi / 180
		dist := radius * (0.8 + 0.4*r.jitter.Float64())
		px := cx + dist*math.Cos(rad)
		py := e.Y + dist*math.Sin(rad)
		drawText(screen, ringGlyph, r.faces.Small, px-w/2, py-h/2, clr)
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, s *gamemode.Session) {
	face := r.faces.HUD

	drawBox(screen, fmt.Sprintf("Score: %d", s.Score), face, 10, 10)

	lives := fmt.Sprintf("Lives: %d", s.Lives)
	w, _ := boxSize(lives, face)
	drawBox(screen, lives, face, screenW-w-10, 10)

	w, _ = boxSize("Pause", face)
	drawBox(screen, "Pause", face, screenW/2-w/2, 10)
}

func (r *Renderer) drawGameOver(screen *ebiten.Image, score int) {
	face := r.faces.Main

	over := fmt.Sprintf("Game Over! Score: %d", score)
	w, _ := boxSize(over, face)
	drawBox(screen, over, face, screenW/2-w/2, screenH/2-30)

	const restart = "Press R to Restart"
	w, _ = boxSize(restart, face)
	drawBox(screen, restart, face, screenW/2-w/2, screenH/2+30)
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

func drawCentered(dst *ebiten.Image, s string, face text.Face, y float64, clr color.Color) {
	w, _ := text.Measure(s, face, 0)
	drawText(dst, s, face, screenW/2-w/2, y, clr)
}

func boxSize(s string, face text.Face) (float64, float64) {
	w, h := text.Measure(s, face, 0)
	return w + 2*boxPadding, h + 2*boxPadding
}

// drawBox writes s in matrix green on a black, padded panel at (x, y).
func drawBox(dst *ebiten.Image, s string, face text.Face, x, y float64) {
	w, h := boxSize(s, face)
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), ColBlack, false)
	drawText(dst, s, face, x+boxPadding, y+boxPadding, ColMatrixGreen)
}
