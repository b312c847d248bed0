package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeats(t *testing.T) {
	assert.True(t, Beats(Rock, Scissor))
	assert.True(t, Beats(Scissor, Paper))
	assert.True(t, Beats(Paper, Rock))

	assert.False(t, Beats(Scissor, Rock))
	assert.False(t, Beats(Paper, Scissor))
	assert.False(t, Beats(Rock, Paper))

	for _, c := range []int32{ChoiceNone, Scissor, Rock, Paper} {
		assert.False(t, Beats(c, c))
		assert.False(t, Beats(ChoiceNone, c))
		assert.False(t, Beats(c, ChoiceNone))
	}
}

func TestCheckChoice(t *testing.T) {
	assert.True(t, CheckChoice(Scissor))
	assert.True(t, CheckChoice(Rock))
	assert.True(t, CheckChoice(Paper))
	assert.False(t, CheckChoice(ChoiceNone))
	assert.False(t, CheckChoice(4))
	assert.False(t, CheckChoice(-1))
}

func TestEncodeDecode(t *testing.T) {
	match := &Match{SlotId: 7, PlayerA: "a", PlayerB: "b", Deadline: 42}
	var got Match
	require.NoError(t, Decode(Encode(match), &got))
	assert.Equal(t, match.SlotId, got.SlotId)
	assert.Equal(t, match.PlayerA, got.PlayerA)
	assert.Equal(t, match.Deadline, got.Deadline)
}

func TestInitCfgString(t *testing.T) {
	cfg, err := InitCfgString(`
title = "rrps"

[store]
driver = "leveldb"
dbPath = "datadir"

[rules]
revealWindow = 20
payoutRate = "2.5"
`)
	require.NoError(t, err)
	assert.Equal(t, "rrps", cfg.Title)
	assert.Equal(t, "leveldb", cfg.Store.Driver)
	assert.Equal(t, int64(20), cfg.Rules.RevealWindow)
	assert.Equal(t, "2.5", cfg.Rules.PayoutRate)
	// untouched sections pick up defaults
	assert.Equal(t, DefaultBuyInFee, cfg.Rules.BuyInFee)
	assert.Equal(t, DefaultInitialStake, cfg.Rules.InitialStake)
	assert.NotNil(t, cfg.Log)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, RRPSX, cfg.Title)
	assert.Equal(t, DefaultRevealWindow, cfg.Rules.RevealWindow)
	assert.Equal(t, DefaultInitialTokens, cfg.Rules.InitialTokens)
	assert.Equal(t, DefaultPayoutRate, cfg.Rules.PayoutRate)
	assert.Equal(t, "memdb", cfg.Store.Driver)
}
