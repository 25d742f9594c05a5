package assets

import (
	"encoding/binary"
	"io/fs"
	"testing"

	cfg "github.com/automoto/badmonkey/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelIsEmbedded(t *testing.T) {
	data, err := fs.ReadFile(FS(), cfg.Encounter.LevelFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<map")
}

func TestSynthToneLengthAndFade(t *testing.T) {
	tone := cfg.ToneConfig{StartHz: 440, EndHz: 220, Duration: 0.1, Volume: 1}
	pcm := SynthTone(tone, 44100)

	require.Len(t, pcm, 4410*4)
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	assert.Zero(t, last)

	left := binary.LittleEndian.Uint16(pcm[400:])
	right := binary.LittleEndian.Uint16(pcm[402:])
	assert.Equal(t, left, right)
}

func TestSynthToneRejectsEmptyTone(t *testing.T) {
	assert.Nil(t, SynthTone(cfg.ToneConfig{}, 44100))
}

func TestCuesCoverEveryTone(t *testing.T) {
	cues := Cues(22050)
	assert.Len(t, cues, len(cfg.Sound.Tones))
	for id, pcm := range cues {
		assert.NotEmpty(t, pcm, id)
	}
}
