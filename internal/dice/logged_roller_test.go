package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/diceroller/internal/dice"
)

func TestRoller_LogsEachGroup(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := dice.NewLoggedRoller(&fixedSource{vals: []int{3, 0, 4}}, zap.New(core))

	out := r.Roll(dice.Parse("1d20 + 2d6 + 5"))

	require.Len(t, out.Groups, 2)
	assert.Equal(t, []int{4}, out.Groups[0].Values)
	assert.Equal(t, []int{1, 5}, out.Groups[1].Values)

	rolls := logs.FilterMessage("dice roll").All()
	require.Len(t, rolls, 2)
	fields := rolls[1].ContextMap()
	assert.Equal(t, int64(6), fields["sides"])
	assert.Equal(t, int64(2), fields["count"])
	assert.Equal(t, "6", fields["subtotal"])

	constant := logs.FilterMessage("dice constant").All()
	require.Len(t, constant, 1)
	assert.Equal(t, int64(5), constant[0].ContextMap()["constant"])
}

func TestRoller_NothingToLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := dice.NewLoggedRoller(dice.NewCryptoSource(), zap.New(core))

	out := r.Roll(dice.Parse("abc"))

	assert.Empty(t, out.Groups)
	assert.Zero(t, logs.Len())
}
