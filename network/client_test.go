package network

import (
	"testing"

	"github.com/automoto/badmonkey/shared/messages"
	"github.com/leap-fish/necs/esync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotsKeepOnlyTheNewest(t *testing.T) {
	c := NewClient()
	c.onSnapshot(esync.WorldSnapshot{})
	c.onSnapshot(esync.WorldSnapshot{})

	assert.NotNil(t, c.LatestSnapshot())
	assert.Nil(t, c.LatestSnapshot())
}

func TestCuesDrainInOrder(t *testing.T) {
	c := NewClient()
	c.onCue(messages.CueEvent{Tick: 1})
	c.onCue(messages.CueEvent{Tick: 2})

	cues := c.DrainCues()
	require.Len(t, cues, 2)
	assert.Equal(t, uint64(1), cues[0].Tick)
	assert.Empty(t, c.DrainCues())
}

func TestCuesOverflowIsDropped(t *testing.T) {
	c := NewClient()
	for i := 0; i < cap(c.cues)+10; i++ {
		c.onCue(messages.CueEvent{Tick: uint64(i)})
	}
	assert.Len(t, c.DrainCues(), cap(c.cues))
}

func TestSpectatorSendsNothing(t *testing.T) {
	c := NewClient()
	c.onAccepted(messages.JoinAccepted{ServerName: "arena", TickRate: 30})

	assert.Equal(t, StateJoinedGame, c.State())
	assert.Equal(t, 30, c.TickRate())
	assert.False(t, c.Pilot())
	assert.NoError(t, c.SendInput(messages.HeroInput{Light: true}))
	assert.Zero(t, c.sequence)
}

func TestPilotWithoutSocketReportsIt(t *testing.T) {
	c := NewClient()
	c.onAccepted(messages.JoinAccepted{Pilot: true})

	assert.ErrorIs(t, c.SendInput(messages.HeroInput{}), ErrNotConnected)
	assert.Equal(t, uint32(1), c.sequence)
}

func TestDisconnectKeepsError(t *testing.T) {
	c := NewClient()
	c.fail(assert.AnError)
	c.onDisconnect(nil)

	assert.Equal(t, StateError, c.State())
	assert.ErrorIs(t, c.LastError(), assert.AnError)
}
