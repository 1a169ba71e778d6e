package entity

// ExplosionLifetime is how many ticks an explosion stays on screen.
const ExplosionLifetime = 15

type ExplosionKind int

const (
	ExplosionKill      ExplosionKind = iota // a stack shot down
	ExplosionPlayerHit                      // a stack reached the floor
)

// Explosion is cosmetic only. X is the left edge of the stack that caused it;
// the renderer centers the ring on X + StackWidth/2.
type Explosion struct {
	X, Y      float64
	Age       int
	MaxRadius float64
	Kind      ExplosionKind
}

func NewExplosion(x, y float64, kind ExplosionKind) Explosion {
	return Explosion{X: x, Y: y, MaxRadius: StackWidth, Kind: kind}
}

func (e *Explosion) Update() {
	e.Age++
}

func (e *Explosion) Expired() bool {
	return e.Age >= ExplosionLifetime
}

// Radius grows linearly from 5 and saturates at MaxRadius.
func (e *Explosion) Radius() float64 {
	r := 5 + float64(e.Age)*(e.MaxRadius/ExplosionLifetime)
	if r > e.MaxRadius {
		return e.MaxRadius
	}
	return r
}
