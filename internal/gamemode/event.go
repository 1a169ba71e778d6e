package gamemode

// Event is something that happened during a Step which the frontend may
// want to react to, mostly with sound.
type Event int

const (
	EventRoundStarted Event = iota
	EventShoot
	EventHit
	EventDie
	EventBonusLife
	EventPaused
	EventResumed
	EventGameOver
	EventReset
)

var eventNames = [...]string{
	EventRoundStarted: "round-started",
	EventShoot:        "shoot",
	EventHit:          "hit",
	EventDie:          "die",
	EventBonusLife:    "bonus-life",
	EventPaused:       "paused",
	EventResumed:      "resumed",
	EventGameOver:     "game-over",
	EventReset:        "reset",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[e]
}
