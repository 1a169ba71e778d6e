package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"paperwork/internal/config"
	"paperwork/internal/gamemode"
	"paperwork/internal/logger"
)

func main() {
	// 1. Settings and logging
	cfg, err := config.Load(".")
	if err != nil {
		logger.Log.Fatal(err.Error())
	}
	logFile, err := logger.Log.Init(cfg.Log)
	if err != nil {
		logger.Log.Fatal(err.Error())
	}
	defer logFile.Close()
	logger.Log.Info(fmt.Sprintf(logger.StartupMsg, cfg.Log.Level))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Window Setup
	ebiten.SetWindowSize(gamemode.ScreenWidth*cfg.Window.Scale, gamemode.ScreenHeight*cfg.Window.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)

	// 3. Initialize Game
	game, err := NewGame(ctx, cfg)
	if err != nil {
		logger.Log.Fatal(err.Error())
	}
	defer game.Close()

	// 4. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		logger.Log.Error(err.Error())
		return
	}
	logger.Log.Info(fmt.Sprintf(logger.ShutdownMsg, game.exitReason()))
}
