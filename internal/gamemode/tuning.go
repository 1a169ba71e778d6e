package gamemode

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	Lanes     = 5
	LaneWidth = ScreenWidth / Lanes

	SpawnInterval       = 45 // ticks between new stacks
	RainRefreshInterval = 5  // ticks between rain text re-rolls

	StartLives      = 3
	MaxLives        = 5
	BonusLifeEvery  = 100 // score multiple that arms the bonus roll
	BonusLifeChance = 0.5
)
