package gamemode

import (
	"slices"

	"paperwork/internal/entity"
)

// collide matches every bullet against the live stack list. A bullet takes
// the first stack it overlaps in list order; both are removed, so a stack
// shot earlier in the loop can no longer be hit by a later bullet.
func (s *Session) collide() {
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		if i := s.firstHit(b.Bounds()); i >= 0 {
			s.kill(i)
			continue
		}
		kept = append(kept, b)
	}
	clear(s.Bullets[len(kept):])
	s.Bullets = kept
}

func (s *Session) firstHit(r entity.Rect) int {
	for i := range s.Stacks {
		if r.Overlaps(s.Stacks[i].Bounds()) {
			return i
		}
	}
	return -1
}

func (s *Session) kill(i int) {
	st := s.Stacks[i]
	s.Stacks = slices.Delete(s.Stacks, i, i+1)

	s.Explosions = append(s.Explosions,
		entity.NewExplosion(st.X, st.Y+st.Height()/2, entity.ExplosionKill))
	s.Score++
	s.emit(EventHit)
	s.checkExtraLife(st.Bonus)
}

func (s *Session) checkExtraLife(bonus bool) {
	if s.Score == 0 || s.Score%BonusLifeEvery != 0 || !bonus {
		return
	}
	if s.Lives >= MaxLives || !s.bonusRoll() {
		return
	}
	s.Lives++
	s.emit(EventBonusLife)
}

// checkFloor removes at most one stack per tick that has slid past the
// bottom of the screen, costing a life.
func (s *Session) checkFloor() {
	for i := range s.Stacks {
		st := s.Stacks[i]
		if st.Bounds().Bottom() <= ScreenHeight {
			continue
		}
		s.Stacks = slices.Delete(s.Stacks, i, i+1)
		s.Lives--
		s.emit(EventDie)
		s.Explosions = append(s.Explosions,
			entity.NewExplosion(st.X, s.Player.Y+entity.PlayerHeight/2, entity.ExplosionPlayerHit))
		if s.Lives <= 0 {
			s.Lives = 0
			s.State = StateGameOver
			s.emit(EventGameOver)
		}
		return
	}
}
