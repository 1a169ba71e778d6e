package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"paperwork/internal/gamemode"
)

// readInput samples the keyboard for one tick.
func readInput() gamemode.Input {
	return gamemode.Input{
		Fire:    inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyP),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}
}

func quitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
