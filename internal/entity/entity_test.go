package entity

import (
	"math/rand"
	"testing"
	"unicode/utf8"
)

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 10, H: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"inside", Rect{X: 12, Y: 12, W: 2, H: 2}, true},
		{"partial", Rect{X: 15, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 20, Y: 10, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 10, Y: 20, W: 5, H: 5}, false},
		{"far away", Rect{X: 100, Y: 100, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("Overlaps() not symmetric: got %v", got)
			}
		})
	}
}

func TestPlayerStopsAtEdges(t *testing.T) {
	p := NewPlayer(800, 600)
	if p.X != 396 || p.Y != 560 {
		t.Fatalf("start position = (%v, %v), want (396, 560)", p.X, p.Y)
	}

	for i := 0; i < 500; i++ {
		p.Update(true, false)
	}
	if p.X != 0 {
		t.Fatalf("left edge: X = %v, want 0", p.X)
	}

	for i := 0; i < 500; i++ {
		p.Update(false, true)
	}
	if p.X != 800-PlayerWidth {
		t.Fatalf("right edge: X = %v, want %v", p.X, 800-PlayerWidth)
	}

	p.X = 100
	p.Update(true, true)
	if p.X != 100 {
		t.Fatalf("both keys held: X = %v, want 100", p.X)
	}
}

func TestPlayerMuzzle(t *testing.T) {
	p := NewPlayer(800, 600)
	x, y := p.Muzzle()
	if x != 396+4-2 || y != 560 {
		t.Fatalf("Muzzle() = (%v, %v)", x, y)
	}
}

func TestPlayerBounds(t *testing.T) {
	p := NewPlayer(800, 600)
	p.Update(true, false)
	want := Rect{X: 396 - PlayerSpeed, Y: 560, W: PlayerWidth, H: PlayerHeight}
	if got := p.Bounds(); got != want {
		t.Fatalf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestBulletLeavesScreen(t *testing.T) {
	b := Bullet{X: 0, Y: 4}
	b.Update()
	if b.Y != -3 || b.Gone() {
		t.Fatalf("after one tick Y = %v gone = %v", b.Y, b.Gone())
	}
	b.Update()
	if !b.Gone() {
		t.Fatalf("bullet at Y = %v should be gone", b.Y)
	}
}

func TestNewStackSpawnsAboveScreen(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for lane := 0; lane < 5; lane++ {
		s := NewStack(lane, 7, "FBI", true, 160, rng)
		if s.Bounds().Bottom() > 0 {
			t.Errorf("lane %d: bottom = %v, want <= 0", lane, s.Bounds().Bottom())
		}
		if want := float64(lane*160 + 50); s.X != want {
			t.Errorf("lane %d: X = %v, want %v", lane, s.X, want)
		}
		if len(s.Rows) != 7 {
			t.Fatalf("rows = %d, want 7", len(s.Rows))
		}
	}
}

func TestStackRefreshKeepsLabelRow(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewStack(2, 10, "NASA", false, 160, rng)
	before := append([]string(nil), s.Rows...)
	s.Refresh(rng)

	if s.Rows[0] != "_NASA___" {
		t.Fatalf("label row = %q", s.Rows[0])
	}
	changed := false
	for i := 1; i < len(s.Rows); i++ {
		if utf8.RuneCountInString(s.Rows[i]) != RowWidth {
			t.Fatalf("row %d has %d runes", i, utf8.RuneCountInString(s.Rows[i]))
		}
		if s.Rows[i] != before[i] {
			changed = true
		}
	}
	if !changed {
		t.Fatalf("refresh left every rain row untouched")
	}
}

func TestLabelRow(t *testing.T) {
	tests := map[string]string{
		"VA":    "_VA_____",
		"FBI":   "_FBI____",
		"FEMA":  "_FEMA___",
		"DARPA": "_DARPA__",
	}
	for label, want := range tests {
		if got := LabelRow(label); got != want {
			t.Errorf("LabelRow(%q) = %q, want %q", label, got, want)
		}
	}
}

func TestExplosionRadius(t *testing.T) {
	e := NewExplosion(0, 0, ExplosionKill)
	if e.Radius() != 5 {
		t.Fatalf("initial radius = %v", e.Radius())
	}
	for !e.Expired() {
		if e.Radius() > e.MaxRadius {
			t.Fatalf("radius %v exceeds max at age %d", e.Radius(), e.Age)
		}
		e.Update()
	}
	if e.Age != ExplosionLifetime {
		t.Fatalf("expired at age %d", e.Age)
	}
	if e.Radius() != e.MaxRadius {
		t.Fatalf("final radius = %v, want %v", e.Radius(), e.MaxRadius)
	}
}
