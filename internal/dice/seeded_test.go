package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/fabula-api/internal/dice"
)

func TestSeededRollerIsDeterministic(t *testing.T) {
	first, err := dice.NewSeeded(42).RollN(10, 20)
	require.NoError(t, err)
	second, err := dice.NewSeeded(42).RollN(10, 20)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	for _, face := range first {
		assert.GreaterOrEqual(t, face, 1)
		assert.LessOrEqual(t, face, 20)
	}
}

func TestSeededRollerRejectsBadInput(t *testing.T) {
	roller := dice.NewSeeded(1)

	_, err := roller.Roll(0)
	assert.Error(t, err)

	_, err = roller.RollN(-1, 6)
	assert.Error(t, err)
}
