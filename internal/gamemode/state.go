package gamemode

type State int

const (
	StateStart    State = iota // splash screen, waiting for fire
	StatePlaying               // simulation running
	StatePaused                // simulation frozen
	StateGameOver              // out of lives, waiting for restart
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game-over"
	}
	return "unknown"
}

// Input is one tick of keyboard state. Fire, Pause and Restart are edge
// triggered (pressed this tick); Left and Right are held.
type Input struct {
	Fire    bool
	Pause   bool
	Restart bool
	Left    bool
	Right   bool
}
