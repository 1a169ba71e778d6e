package render

import (
	"fmt"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"

	"paperwork/internal/assets"
	"paperwork/internal/logger"
)

const (
	sizeMain  = 27
	sizeSmall = 16
	sizeBig   = 54
	sizeHUD   = 20
)

// Faces are the four text sizes the game draws with.
type Faces struct {
	Main  text.Face // title labels, game over
	Small text.Face // stack rows and explosions
	Big   text.Face // DOGE, Paused
	HUD   text.Face // score, lives, pause boxes
}

// LoadFaces builds every face from the bundled Go Mono font. The rain face
// prefers the TTF at matrixPath and always falls back to the bitmap font
// for glyphs the primary face lacks, such as katakana.
func LoadFaces(matrixPath string) (Faces, error) {
	mono, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return Faces{}, fmt.Errorf("parse bundled font: %w", err)
	}

	var f Faces
	if f.Main, err = newFace(mono, sizeMain); err != nil {
		return Faces{}, err
	}
	if f.Big, err = newFace(mono, sizeBig); err != nil {
		return Faces{}, err
	}
	if f.HUD, err = newFace(mono, sizeHUD); err != nil {
		return Faces{}, err
	}

	small, err := loadMatrixFace(matrixPath)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf(logger.AssetFallbackMsg, "matrix font", "Go Mono", err))
		if small, err = newFace(mono, sizeSmall); err != nil {
			return Faces{}, err
		}
	} else {
		logger.Log.Info(fmt.Sprintf(logger.AssetLoadedMsg, "matrix font", matrixPath))
	}
	if f.Small, err = text.NewMultiFace(small, text.NewGoXFace(bitmapfont.Face)); err != nil {
		return Faces{}, fmt.Errorf("rain face: %w", err)
	}
	return f, nil
}

func loadMatrixFace(path string) (text.Face, error) {
	data, err := assets.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return newFace(tt, sizeSmall)
}

func newFace(tt *opentype.Font, size float64) (text.Face, error) {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %v: %w", size, err)
	}
	return text.NewGoXFace(face), nil
}
