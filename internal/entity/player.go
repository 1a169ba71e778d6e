package entity

const (
	PlayerWidth  = 8
	PlayerHeight = 20
	PlayerSpeed  = 5
)

// Player is the shooter at the bottom of the screen. Only X changes.
type Player struct {
	X, Y float64

	// Horizontal limit for X, i.e. screen width minus PlayerWidth.
	maxX float64
}

// NewPlayer centers a player horizontally on a screen of the given size.
func NewPlayer(screenW, screenH int) *Player {
	return &Player{
		X:    float64(screenW/2 - PlayerWidth/2),
		Y:    float64(screenH - 40),
		maxX: float64(screenW - PlayerWidth),
	}
}

// Update moves the player one tick from the held direction keys.
// Movement is clamped to the screen; both keys held cancel out.
func (p *Player) Update(left, right bool) {
	if left && p.X > 0 {
		p.X = max(p.X-PlayerSpeed, 0)
	}
	if right && p.X < p.maxX {
		p.X = min(p.X+PlayerSpeed, p.maxX)
	}
}

// Muzzle is where a new bullet appears: centered on the player's top edge.
func (p *Player) Muzzle() (float64, float64) {
	return p.X + PlayerWidth/2 - BulletWidth/2, p.Y
}

func (p *Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: PlayerWidth, H: PlayerHeight}
}
