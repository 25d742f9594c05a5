package archetypes

import (
	"testing"

	"github.com/automoto/badmonkey/components"
	"github.com/automoto/badmonkey/tags"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestSpawnAddsArchetypeComponents(t *testing.T) {
	w := ecs.NewECS(donburi.NewWorld())

	boss := Boss.Spawn(w)
	assert.True(t, boss.Valid())
	assert.True(t, boss.HasComponent(tags.Enemy))
	assert.True(t, boss.HasComponent(tags.Boss))
	assert.True(t, boss.HasComponent(components.Combatant))
	assert.True(t, boss.HasComponent(components.Boss))

	frame := Frame.Spawn(w, components.Dialogue)
	assert.True(t, frame.HasComponent(components.Events))
	assert.True(t, frame.HasComponent(components.Dialogue))

	_, ok := tags.Boss.First(w.World)
	assert.True(t, ok)
	assert.Equal(t, 2, w.World.Len())
}
