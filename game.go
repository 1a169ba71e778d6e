package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"paperwork/internal/assets"
	"paperwork/internal/config"
	"paperwork/internal/gamemode"
	"paperwork/internal/logger"
	"paperwork/internal/render"
	"paperwork/internal/sound"
)

// Game adapts a gamemode.Session to ebiten's loop: input in, events out to
// the mixer, frames out through the renderer.
type Game struct {
	ctx     context.Context
	session *gamemode.Session
	render  *render.Renderer
	mixer   *sound.Mixer

	quit string
}

func NewGame(ctx context.Context, cfg config.Config) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Log.Debug(fmt.Sprintf(logger.SeedMsg, seed))

	faces, err := render.LoadFaces(cfg.Assets.Font)
	if err != nil {
		return nil, fmt.Errorf("fonts: %w", err)
	}

	bg, err := assets.LoadImage(cfg.Assets.Background)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf(logger.AssetFallbackMsg, "background", "plain fill", err))
	}

	mixer, err := sound.New(cfg.Audio, cfg.Assets.Soundtrack, rng)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}

	r := render.New(faces, bg, rand.New(rand.NewSource(seed+1)))
	r.Debug = logger.ParseLevel(cfg.Log.Level) >= logrus.DebugLevel

	g := &Game{
		ctx:     ctx,
		session: gamemode.NewSession(assets.Departments(), rng),
		render:  r,
		mixer:   mixer,
	}
	g.mixer.PlayAmbient()
	return g, nil
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	if err := g.ctx.Err(); err != nil {
		g.quit = context.Cause(g.ctx).Error()
		return ebiten.Termination
	}
	if quitPressed() {
		g.quit = "escape pressed"
		return ebiten.Termination
	}

	for _, ev := range g.session.Step(readInput()) {
		g.handle(ev)
	}
	return nil
}

func (g *Game) handle(ev gamemode.Event) {
	s := g.session
	switch ev {
	case gamemode.EventRoundStarted:
		g.mixer.PlaySoundtrack()
		logger.Log.Round(s.RoundID, logger.RoundStartedMsg)
	case gamemode.EventShoot:
		g.mixer.Play(sound.CueShoot)
	case gamemode.EventHit:
		g.mixer.Play(sound.CueHit)
	case gamemode.EventDie:
		g.mixer.Play(sound.CueDie)
		logger.Log.Round(s.RoundID, fmt.Sprintf(logger.LifeLostMsg, s.Lives))
	case gamemode.EventBonusLife:
		g.mixer.Play(sound.CueBonusLife)
		logger.Log.Round(s.RoundID, fmt.Sprintf(logger.BonusLifeMsg, s.Lives))
	case gamemode.EventPaused:
		g.mixer.PauseAll()
		logger.Log.Round(s.RoundID, logger.PausedMsg)
	case gamemode.EventResumed:
		g.mixer.ResumeAll()
		logger.Log.Round(s.RoundID, logger.ResumedMsg)
	case gamemode.EventGameOver:
		logger.Log.Round(s.RoundID, fmt.Sprintf(logger.RoundEndedMsg, s.Score))
	case gamemode.EventReset:
		g.mixer.StopAll()
	}
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(screen, g.session)
}

// Layout: fixed logical resolution, ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return gamemode.ScreenWidth, gamemode.ScreenHeight
}

func (g *Game) exitReason() string {
	if g.quit == "" {
		return "window closed"
	}
	return g.quit
}

func (g *Game) Close() error {
	return g.mixer.Close()
}
