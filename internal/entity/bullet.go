package entity

const (
	BulletWidth  = 5
	BulletHeight = 10
	BulletSpeed  = 7
)

type Bullet struct {
	X, Y float64
}

func (b *Bullet) Update() {
	b.Y -= BulletSpeed
}

// Gone reports whether the bullet has left the top of the screen.
func (b *Bullet) Gone() bool {
	return b.Y <= -BulletHeight
}

func (b *Bullet) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: BulletWidth, H: BulletHeight}
}
