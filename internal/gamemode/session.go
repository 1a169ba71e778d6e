package gamemode

import (
	"math/rand"
	"slices"

	"github.com/google/uuid"

	"paperwork/internal/entity"
)

// Session holds everything that changes while the game runs. It is driven
// one tick at a time through Step and is not safe for concurrent use.
type Session struct {
	State   State
	RoundID string
	Score   int
	Lives   int

	Player     *entity.Player
	Bullets    []entity.Bullet
	Stacks     []entity.Stack
	Explosions []entity.Explosion

	labels []string
	rng    *rand.Rand

	tick       int
	spawnTimer int
	spawnEvery int

	// bonusRoll decides the 50/50 extra life draw; replaced in tests.
	bonusRoll func() bool

	events []Event
}

// NewSession returns a session on the start screen. labels are the texts
// stacks are stamped with; rng drives spawning and rain text.
func NewSession(labels []string, rng *rand.Rand) *Session {
	if len(labels) == 0 {
		labels = []string{"DOGE"}
	}
	s := &Session{
		labels:     labels,
		rng:        rng,
		spawnEvery: SpawnInterval,
	}
	s.bonusRoll = func() bool {
		return s.rng.Float64() < BonusLifeChance
	}
	s.Reset()
	return s
}

// Reset clears the round: score, lives, entities and timers. The state is
// left to the caller.
func (s *Session) Reset() {
	s.RoundID = uuid.NewString()
	s.Score = 0
	s.Lives = StartLives
	s.Player = entity.NewPlayer(ScreenWidth, ScreenHeight)
	s.Bullets = nil
	s.Stacks = nil
	s.Explosions = nil
	s.tick = 0
	s.spawnTimer = 0
}

// Step advances the game by one tick and returns what happened. The returned
// slice is reused and only valid until the next call.
func (s *Session) Step(in Input) []Event {
	s.events = s.events[:0]

	switch s.State {
	case StateStart:
		if in.Fire {
			s.State = StatePlaying
			s.emit(EventRoundStarted)
		}

	case StatePlaying:
		// Keys are handled before the pause toggle, so a shot fired on the
		// pausing tick sits at the muzzle until play resumes.
		if in.Fire {
			s.fire()
		}
		if in.Pause {
			s.State = StatePaused
			s.emit(EventPaused)
			return s.events
		}
		s.update(in)

	case StatePaused:
		if in.Pause {
			s.State = StatePlaying
			s.emit(EventResumed)
		}

	case StateGameOver:
		if in.Restart {
			s.Reset()
			s.State = StatePlaying
			s.emit(EventReset)
			s.emit(EventRoundStarted)
		}
	}

	return s.events
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

func (s *Session) fire() {
	x, y := s.Player.Muzzle()
	s.Bullets = append(s.Bullets, entity.Bullet{X: x, Y: y})
	s.emit(EventShoot)
}

func (s *Session) update(in Input) {
	s.Player.Update(in.Left, in.Right)

	s.spawnTimer++
	if s.spawnTimer >= s.spawnEvery {
		s.spawn()
		s.spawnTimer = 0
	}

	for i := range s.Bullets {
		s.Bullets[i].Update()
	}
	s.Bullets = slices.DeleteFunc(s.Bullets, func(b entity.Bullet) bool {
		return b.Gone()
	})

	for i := range s.Stacks {
		s.Stacks[i].Update()
	}

	for i := range s.Explosions {
		s.Explosions[i].Update()
	}
	s.Explosions = slices.DeleteFunc(s.Explosions, func(e entity.Explosion) bool {
		return e.Expired()
	})

	s.tick++
	if s.tick%RainRefreshInterval == 0 {
		for i := range s.Stacks {
			s.Stacks[i].Refresh(s.rng)
		}
	}

	s.collide()
	s.checkFloor()
}

func (s *Session) spawn() {
	lane := s.rng.Intn(Lanes)
	lines := entity.MinStackLines + s.rng.Intn(entity.MaxStackLines-entity.MinStackLines+1)
	label := s.labels[s.rng.Intn(len(s.labels))]
	s.SpawnStack(lane, lines, label, s.rng.Intn(2) == 0)
}

// SpawnStack adds a stack above the given lane.
func (s *Session) SpawnStack(lane, lines int, label string, bonus bool) {
	st := entity.NewStack(lane, lines, label, bonus, LaneWidth, s.rng)
	s.Stacks = append(s.Stacks, *st)
}
