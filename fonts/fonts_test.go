package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(10, 24, 8))

	for _, name := range []FontName{HUD, Bold, Title, Small} {
		assert.NotNil(t, name.Get(), name)
	}
	assert.Greater(t, int(Title.Get().Metrics().Height), int(HUD.Get().Metrics().Height))
}

func TestLoadRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFont("broken", []byte("not a font")))
}

func TestUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
