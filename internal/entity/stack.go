package entity

import (
	"math/rand"
	"strings"
)

const (
	StackWidth  = 60
	LineSpacing = 15
	StackSpeed  = 1.5

	MinStackLines = 3
	MaxStackLines = 25

	// RowWidth is the number of runes shown on every line of a stack.
	RowWidth = 8
)

// RainAlphabet is the character set for the digital rain rows.
var RainAlphabet = []rune("abcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*()-+=[]{}|;:,.<>?" +
	"アィウェオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワヲン")

// Stack is a falling pile of paperwork. Row 0 always shows the label,
// the remaining rows are random rain text that Refresh re-rolls.
type Stack struct {
	X, Y  float64
	Lane  int
	Lines int
	Label string
	Bonus bool
	Rows  []string
}

// NewStack builds a stack for lane, placed so that it sits entirely above
// the top of the screen.
func NewStack(lane, lines int, label string, bonus bool, laneWidth float64, rng *rand.Rand) *Stack {
	s := &Stack{
		X:     float64(lane)*laneWidth + (laneWidth-StackWidth)/2,
		Lane:  lane,
		Lines: lines,
		Label: label,
		Bonus: bonus,
		Rows:  make([]string, lines),
	}
	s.Y = -s.Height()
	s.Refresh(rng)
	return s
}

func (s *Stack) Height() float64 {
	return float64(s.Lines * LineSpacing)
}

func (s *Stack) Update() {
	s.Y += StackSpeed
}

func (s *Stack) Bounds() Rect {
	return Rect{X: s.X, Y: s.Y, W: StackWidth, H: s.Height()}
}

// Refresh regenerates every row.
func (s *Stack) Refresh(rng *rand.Rand) {
	for i := range s.Rows {
		if i == 0 {
			s.Rows[i] = LabelRow(s.Label)
			continue
		}
		s.Rows[i] = RainRow(rng)
	}
}

// LabelRow frames label as "_LABEL_" and pads it with underscores to RowWidth.
func LabelRow(label string) string {
	row := "_" + label + "_"
	if n := RowWidth - len([]rune(row)); n > 0 {
		row += strings.Repeat("_", n)
	}
	return row
}

// RainRow returns RowWidth random runes from RainAlphabet.
func RainRow(rng *rand.Rand) string {
	row := make([]rune, RowWidth)
	for i := range row {
		row[i] = RainAlphabet[rng.Intn(len(RainAlphabet))]
	}
	return string(row)
}
