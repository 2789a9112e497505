package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/parser"
	"github.com/KirkDiggler/rpg-wilds/internal/session"
	"github.com/KirkDiggler/rpg-wilds/internal/testutils"
)

func TestAutopilot(t *testing.T) {
	sim := testutils.NewTestSimulation([]string{"S..", "..."}, wilds.Position{})
	roller := testutils.NewScriptedRoller(3, 2)
	pilot := session.NewAutopilot(roller)

	cmd, err := pilot.Next(sim)
	require.NoError(t, err)
	assert.Equal(t, parser.VerbMove, cmd.Verb)
	assert.Equal(t, 0, cmd.DX)
	assert.Equal(t, 1, cmd.DY)

	sim.Mode = wilds.ModeEvent
	sim.ActiveEvent = &wilds.EventDefinition{Choices: []wilds.Choice{{Text: "a"}, {Text: "b"}, {Text: "c"}}}
	cmd, err = pilot.Next(sim)
	require.NoError(t, err)
	assert.Equal(t, parser.VerbChoose, cmd.Verb)
	assert.Equal(t, 1, cmd.Index)

	sim.ActiveEvent = &wilds.EventDefinition{}
	cmd, err = pilot.Next(sim)
	require.NoError(t, err)
	assert.Equal(t, parser.VerbDismiss, cmd.Verb)

	tmpl := testutils.NewTestEnemyTemplate("rat", 3)
	dead := wilds.NewEnemyCombatState("rat-1", &tmpl)
	dead.TakeDamage(5)
	sim.Mode = wilds.ModeCombat
	sim.Combat = &wilds.CombatState{Enemies: []*wilds.EnemyCombatState{dead, wilds.NewEnemyCombatState("rat-2", &tmpl)}}
	cmd, err = pilot.Next(sim)
	require.NoError(t, err)
	assert.Equal(t, parser.VerbAttack, cmd.Verb)
	assert.Equal(t, 1, cmd.Index)

	sim.Mode = wilds.ModeGameOver
	cmd, err = pilot.Next(sim)
	require.NoError(t, err)
	assert.Nil(t, cmd)

	assert.Equal(t, []int{4, 3}, roller.Sizes())
}
