// Package sound plays the synthesized cues and the two music loops through
// ebiten's audio context.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"paperwork/internal/assets"
	"paperwork/internal/config"
	"paperwork/internal/logger"
	"paperwork/internal/synth"
)

type Cue int

const (
	CueShoot Cue = iota
	CueHit
	CueDie
	CueBonusLife
)

// Mixer owns every audio player in the game. Pausing remembers which
// players were running so resuming restarts exactly those.
type Mixer struct {
	ctx *audio.Context

	cues       map[Cue]*audio.Player
	ambient    *audio.Player
	soundtrack *audio.Player

	paused []*audio.Player
	closer io.Closer
}

// New generates all cues, builds the ambient modem loop and opens the
// soundtrack, falling back to the synthesized drum beat when the file is
// missing or unreadable.
func New(c config.Audio, soundtrackPath string, rng *rand.Rand) (*Mixer, error) {
	m := &Mixer{
		ctx:  audio.NewContext(synth.SampleRate),
		cues: make(map[Cue]*audio.Player),
	}

	for cue, samples := range map[Cue][]int16{
		CueShoot:     synth.Shoot(),
		CueHit:       synth.Hit(rng),
		CueDie:       synth.Die(),
		CueBonusLife: synth.BonusLife(),
	} {
		m.cues[cue] = m.ctx.NewPlayerFromBytes(synth.Stereo16LE(samples))
	}

	var err error
	if m.ambient, err = m.loop(synth.Stereo16LE(synth.Modem(rng))); err != nil {
		return nil, fmt.Errorf("ambient loop: %w", err)
	}

	if m.soundtrack, err = m.openSoundtrack(soundtrackPath); err != nil {
		logger.Log.Warn(fmt.Sprintf(logger.AssetFallbackMsg, "soundtrack", "drum beat", err))
		if m.soundtrack, err = m.loop(synth.Stereo16LE(synth.DrumBeat())); err != nil {
			return nil, fmt.Errorf("drum loop: %w", err)
		}
	}

	volume := c.Volume
	if c.Mute {
		volume = 0
	}
	for _, p := range m.players() {
		p.SetVolume(volume)
	}
	return m, nil
}

func (m *Mixer) loop(pcm []byte) (*audio.Player, error) {
	src := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return m.ctx.NewPlayer(src)
}

func (m *Mixer) openSoundtrack(path string) (*audio.Player, error) {
	f, err := assets.Open(path)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(synth.SampleRate, f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	p, err := m.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		f.Close()
		return nil, err
	}
	m.closer = f
	logger.Log.Info(fmt.Sprintf(logger.AssetLoadedMsg, "soundtrack", path))
	return p, nil
}

func (m *Mixer) players() []*audio.Player {
	ps := []*audio.Player{m.ambient, m.soundtrack}
	for _, p := range m.cues {
		ps = append(ps, p)
	}
	return ps
}

// Play starts a one-shot cue from the beginning.
func (m *Mixer) Play(c Cue) {
	p, ok := m.cues[c]
	if !ok {
		return
	}
	rewind(p)
	p.Play()
}

// PlayAmbient stops everything and loops the start screen modem noise.
func (m *Mixer) PlayAmbient() {
	m.StopAll()
	m.ambient.Play()
}

// PlaySoundtrack stops everything and loops the in-game music.
func (m *Mixer) PlaySoundtrack() {
	m.StopAll()
	m.soundtrack.Play()
}

// PauseAll pauses whatever is playing right now.
func (m *Mixer) PauseAll() {
	m.paused = m.paused[:0]
	for _, p := range m.players() {
		if p.IsPlaying() {
			p.Pause()
			m.paused = append(m.paused, p)
		}
	}
}

// ResumeAll continues the players stopped by the last PauseAll.
func (m *Mixer) ResumeAll() {
	for _, p := range m.paused {
		p.Play()
	}
	m.paused = m.paused[:0]
}

// StopAll halts and rewinds every player.
func (m *Mixer) StopAll() {
	for _, p := range m.players() {
		p.Pause()
		rewind(p)
	}
	m.paused = m.paused[:0]
}

func (m *Mixer) Close() error {
	for _, p := range m.players() {
		p.Close()
	}
	if m.closer != nil {
		return m.closer.Close()
	}
	return nil
}

func rewind(p *audio.Player) {
	if err := p.SetPosition(0); err != nil {
		logger.Log.Warn(fmt.Sprintf(logger.RewindFailedMsg, err))
	}
}
