// Package synth builds the game's sound effects from closed-form waveforms.
// Every generator returns 16-bit mono samples at SampleRate.
package synth

import (
	"encoding/binary"
	"math"
	"math/rand"
)

const SampleRate = 44100

// Samples returns the number of samples in d seconds.
func Samples(d float64) int {
	return int(SampleRate * d)
}

// Sweep is a sine whose frequency moves linearly from f0 to f1 over d seconds,
// shaped by amp*exp(-decay*t).
func Sweep(d, f0, f1, amp, decay float64) []int16 {
	n := Samples(d)
	out := make([]int16, n)
	for i := range out {
		t := float64(i) / SampleRate
		f := lerp(f0, f1, i, n)
		out[i] = clip(amp * math.Sin(2*math.Pi*f*t) * math.Exp(-t*decay))
	}
	return out
}

// Shoot is a short falling chirp.
func Shoot() []int16 {
	return Sweep(0.15, 600, 300, 32767, 8)
}

// Die is a long low falling tone.
func Die() []int16 {
	return Sweep(0.3, 200, 50, 32767, 4)
}

// BonusLife is a bright rising tone.
func BonusLife() []int16 {
	return Sweep(0.2, 800, 1000, 32767, 3)
}

// Hit is a burst of white noise fading out over 0.15s.
func Hit(rng *rand.Rand) []int16 {
	n := Samples(0.15)
	out := make([]int16, n)
	for i := range out {
		env := math.Exp(-lerp(0, 5, i, n))
		out[i] = clip(noise(rng, -32768, 32767) * env)
	}
	return out
}

// Modem is two seconds of dial-up screech: three overlapping sweeps plus hiss.
func Modem(rng *rand.Rand) []int16 {
	n := Samples(2.0)
	sweeps := [][2]float64{{300, 700}, {900, 500}, {600, 800}}
	out := make([]int16, n)
	for i := range out {
		t := float64(i) / SampleRate
		v := 0.0
		for _, s := range sweeps {
			v += 5000 * math.Sin(2*math.Pi*lerp(s[0], s[1], i, n)*t)
		}
		v += noise(rng, -2000, 2000)
		out[i] = clip(v)
	}
	return out
}

// DrumBeat is a four second loop of a 100Hz kick on every half second
// (120 BPM). Each kick lasts 0.2s and decays from its own onset.
func DrumBeat() []int16 {
	const (
		length   = 4.0
		interval = 0.5
		hit      = 0.2
	)
	n := Samples(length)
	out := make([]int16, n)
	for k := 0; k < int(length/interval); k++ {
		onset := float64(k) * interval
		start, end := Samples(onset), Samples(onset+hit)
		if end > n {
			break
		}
		for i := start; i < end; i++ {
			t := float64(i) / SampleRate
			v := 15000 * math.Sin(2*math.Pi*100*t) * math.Exp(-(t-onset)*5)
			out[i] = clip(float64(out[i]) + v)
		}
	}
	return out
}

// Stereo16LE interleaves mono samples into the little-endian 16-bit stereo
// layout audio players consume.
func Stereo16LE(mono []int16) []byte {
	buf := make([]byte, len(mono)*4)
	for i, v := range mono {
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

// lerp is numpy's linspace(a, b, n)[i], endpoints included.
func lerp(a, b float64, i, n int) float64 {
	if n < 2 {
		return a
	}
	return a + (b-a)*float64(i)/float64(n-1)
}

// noise is a uniform integer in [lo, hi).
func noise(rng *rand.Rand, lo, hi int) float64 {
	return float64(lo + rng.Intn(hi-lo))
}

func clip(v float64) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}
