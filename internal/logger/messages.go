package logger

const StartupMsg = "paperwork invaders starting, log level %s"
const ShutdownMsg = "shutting down: %s"

const AssetFallbackMsg = "%s unavailable, using %s: %v"
const AssetLoadedMsg = "loaded %s from %s"
const RewindFailedMsg = "rewind audio player: %v"

const SeedMsg = "random seed %d"

const RoundStartedMsg = "round started"
const RoundEndedMsg = "round over, score %d"
const PausedMsg = "paused"
const ResumedMsg = "resumed"
const BonusLifeMsg = "bonus life, lives now %d"
const LifeLostMsg = "stack reached the floor, lives left %d"
