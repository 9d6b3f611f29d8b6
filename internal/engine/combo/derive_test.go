package combo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/fabula-api/internal/engine/combo"
	"github.com/KirkDiggler/fabula-api/internal/errors"
)

func entry(label string, target combo.Target, effect string) combo.Entry {
	return combo.Entry{Combo: label, Effect: string(target) + " " + effect}
}

func TestDeriveTwoFaces(t *testing.T) {
	entries, err := combo.Derive([]int{6, 14}, 10, false)
	require.NoError(t, err)

	expected := []combo.Entry{
		entry("6+Any", combo.TargetSelfOrAlly, "suffers 20 poison damage"),
		entry("6+Any", combo.TargetSelfOrAlly, "recovers 30 Hit Points"),
		entry("6+14", combo.TargetSelfOrAlly, "suffers dazed, shaken, slow, and weak"),
		entry("14+Any", combo.TargetAllAllies, "suffers 20 poison damage"),
		entry("14+Any", combo.TargetAllAllies, "recovers 30 Hit Points"),
		entry("14+6", combo.TargetAllAllies, "suffers 20 air damage"),
	}
	assert.Equal(t, expected, entries)
}

func TestDeriveTrimFriendlyTargets(t *testing.T) {
	entries, err := combo.Derive([]int{6, 14}, 10, true)
	require.NoError(t, err)

	expected := []combo.Entry{
		entry("6+Any", combo.TargetSelfOrAlly, "recovers 30 Hit Points"),
		entry("14+Any", combo.TargetAllAllies, "recovers 30 Hit Points"),
	}
	assert.Equal(t, expected, entries)
}

func TestDeriveTrimMixedTargets(t *testing.T) {
	entries, err := combo.Derive([]int{7, 9, 3}, 1, true)
	require.NoError(t, err)

	expected := []combo.Entry{
		entry("7+Any", combo.TargetOneEnemy, "suffers 20 poison damage"),
		entry("7+Any", combo.TargetOneEnemy, "recovers 30 Hit Points"),
		entry("7+3", combo.TargetOneEnemy, "suffers 20 bolt damage"),
		entry("9+7", combo.TargetOneEnemy, "suffers 20 fire damage"),
		entry("3+Any", combo.TargetSelfOrAlly, "recovers 30 Hit Points"),
		entry("3+9", combo.TargetSelfOrAlly, "gains Resistance to air and bolt damage until the end of the scene"),
	}
	assert.Equal(t, expected, entries)
}

func TestDeriveKeepsFirstComboForRepeatedEffects(t *testing.T) {
	entries, err := combo.Derive([]int{16, 17, 16}, 1, false)
	require.NoError(t, err)

	expected := []combo.Entry{
		entry("16+Any", combo.TargetAllAllies, "suffers 20 poison damage"),
		entry("16+Any", combo.TargetAllAllies, "recovers 30 Hit Points"),
		entry("16+17", combo.TargetAllAllies, "recovers 50 Hit Points"),
		entry("17+Any", combo.TargetAllEnemies, "suffers 20 poison damage"),
		entry("17+Any", combo.TargetAllEnemies, "recovers 30 Hit Points"),
		entry("17+16", combo.TargetAllEnemies, "recovers 50 Hit Points"),
	}
	assert.Equal(t, expected, entries)
}

func TestDeriveEffectsAreUnique(t *testing.T) {
	entries, err := combo.Derive([]int{1, 20, 11, 5}, 22, false)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, e := range entries {
		assert.False(t, seen[e.Effect], "duplicate effect %q", e.Effect)
		seen[e.Effect] = true
	}
}

func TestDeriveRejectsBadFaces(t *testing.T) {
	_, err := combo.Derive([]int{4, 0}, 1, false)
	assert.True(t, errors.IsOutOfRange(err))
}

func TestDedupIsIdempotent(t *testing.T) {
	raw := []combo.Entry{
		{Combo: "5+Any", Effect: "a"},
		{Combo: "5+9", Effect: "b"},
		{Combo: "9+5", Effect: "a"},
		{Combo: "9+Any", Effect: "c"},
		{Combo: "9+Any", Effect: "b"},
	}

	once := combo.Dedup(raw)
	twice := combo.Dedup(once)

	assert.Equal(t, []combo.Entry{
		{Combo: "5+Any", Effect: "a"},
		{Combo: "5+9", Effect: "b"},
		{Combo: "9+Any", Effect: "c"},
	}, once)
	assert.Equal(t, once, twice)
	assert.Len(t, raw, 5)
}
