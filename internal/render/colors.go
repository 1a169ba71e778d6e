package render

import "image/color"

var (
	ColBlack       = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColWhite       = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColGold        = color.RGBA{0xff, 0xd7, 0x00, 0xff} // DOGE splash
	ColBrown       = color.RGBA{0xa5, 0x2a, 0x2a, 0xff} // player hit
	ColMatrixGreen = color.RGBA{0x00, 0xc8, 0x00, 0xff}
	ColNoBg        = color.RGBA{0x10, 0x18, 0x10, 0xff} // stand-in when there is no background image
)

// Background brightness per screen.
const (
	DimSplash = 0.35
	DimGame   = 0.5
)
