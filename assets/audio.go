package assets

import (
	"encoding/binary"
	"math"

	cfg "github.com/automoto/badmonkey/config"
)

// SynthTone renders a square wave sliding from tone.StartHz to tone.EndHz
// as 16-bit little-endian stereo PCM, the format ebiten's audio context
// plays directly. The tail is faded out to avoid a click.
func SynthTone(tone cfg.ToneConfig, sampleRate int) []byte {
	if tone.Duration <= 0 || sampleRate <= 0 {
		return nil
	}
	n := int(tone.Duration * float64(sampleRate))
	out := make([]byte, n*4)
	fade := n / 8
	if fade < 1 {
		fade = 1
	}

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		hz := tone.StartHz + (tone.EndHz-tone.StartHz)*t
		phase += hz / float64(sampleRate)
		phase -= math.Floor(phase)

		amp := tone.Volume
		if rest := n - i; rest < fade {
			amp *= float64(rest-1) / float64(fade)
		}
		v := amp
		if phase >= 0.5 {
			v = -amp
		}
		sample := int16(v * math.MaxInt16 * 0.5)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(sample))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(sample))
	}
	return out
}

// Cues renders every configured tone once.
func Cues(sampleRate int) map[cfg.SoundID][]byte {
	out := make(map[cfg.SoundID][]byte, len(cfg.Sound.Tones))
	for id, tone := range cfg.Sound.Tones {
		out[id] = SynthTone(tone, sampleRate)
	}
	return out
}
