package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "github.com/leon-do/restricted-rock-paper-scissors/common/db"
	"github.com/leon-do/restricted-rock-paper-scissors/types"
)

func newTestDB(t *testing.T) dbm.DB {
	t.Helper()
	db, err := dbm.NewGoMemDB("state", "", 0)
	require.NoError(t, err)
	return db
}

func TestLoadAccountUnknown(t *testing.T) {
	acc := NewStakeDB(newTestDB(t))
	got := acc.LoadAccount("alice")
	assert.Equal(t, "alice", got.Addr)
	assert.Equal(t, int64(0), got.Stake)
	assert.False(t, got.Busy)
}

func TestTransfer(t *testing.T) {
	acc := NewStakeDB(newTestDB(t))
	_, err := acc.Deposit("alice", 3)
	require.NoError(t, err)
	_, err = acc.Deposit("bob", 3)
	require.NoError(t, err)

	logs, err := acc.Transfer("bob", "alice", 1)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, int64(4), acc.LoadAccount("alice").Stake)
	assert.Equal(t, int64(2), acc.LoadAccount("bob").Stake)

	var stake types.ReceiptStake
	require.NoError(t, types.Decode(logs[0].Log, &stake))
	assert.Equal(t, "bob", stake.Addr)
	assert.Equal(t, int64(3), stake.Prev)
	assert.Equal(t, int64(2), stake.Current)
}

func TestTransferInsufficient(t *testing.T) {
	acc := NewStakeDB(newTestDB(t))
	_, err := acc.Deposit("bob", 1)
	require.NoError(t, err)

	_, err = acc.Transfer("bob", "alice", 2)
	assert.Equal(t, types.ErrInsufficientStake, err)
	_, err = acc.Transfer("bob", "alice", 0)
	assert.Equal(t, types.ErrInsufficientStake, err)
	// nothing moved
	assert.Equal(t, int64(1), acc.LoadAccount("bob").Stake)
	assert.Equal(t, int64(0), acc.LoadAccount("alice").Stake)
}

func TestZeroAndRestore(t *testing.T) {
	acc := NewStakeDB(newTestDB(t))
	_, err := acc.Deposit("alice", 5)
	require.NoError(t, err)

	prev, logs, err := acc.Zero("alice")
	require.NoError(t, err)
	assert.Equal(t, int64(5), prev)
	require.Len(t, logs, 1)
	assert.Equal(t, int64(0), acc.LoadAccount("alice").Stake)

	_, _, err = acc.Zero("alice")
	assert.Equal(t, types.ErrNoStake, err)

	_, err = acc.Deposit("alice", prev)
	require.NoError(t, err)
	assert.Equal(t, int64(5), acc.LoadAccount("alice").Stake)
}

func TestSetBusy(t *testing.T) {
	acc := NewStakeDB(newTestDB(t))
	acc.SetBusy("alice", true)
	assert.True(t, acc.LoadAccount("alice").Busy)
	acc.SetBusy("alice", false)
	assert.False(t, acc.LoadAccount("alice").Busy)
}

func TestTokenMintBurn(t *testing.T) {
	tokens := NewTokenDB(newTestDB(t))
	assert.False(t, tokens.HoldsAny("alice"))

	tokens.Mint("alice", 4)
	assert.True(t, tokens.HoldsAny("alice"))
	assert.Equal(t, int64(4), tokens.Balance("alice", types.Rock))
	assert.Equal(t, int64(4), tokens.Balance("alice", types.Paper))
	assert.Equal(t, int64(4), tokens.Balance("alice", types.Scissor))

	logrec, err := tokens.Burn("alice", types.Rock)
	require.NoError(t, err)
	assert.Equal(t, types.TyLogTokenBurn, logrec.Ty)
	assert.Equal(t, int64(3), tokens.Balance("alice", types.Rock))

	var burn types.ReceiptBurn
	require.NoError(t, types.Decode(logrec.Log, &burn))
	assert.Equal(t, int64(4), burn.Prev)
	assert.Equal(t, int64(3), burn.Current)
}

func TestTokenBurnExhausted(t *testing.T) {
	tokens := NewTokenDB(newTestDB(t))
	tokens.Mint("alice", 1)

	_, err := tokens.Burn("alice", types.Scissor)
	require.NoError(t, err)
	_, err = tokens.Burn("alice", types.Scissor)
	assert.Equal(t, types.ErrMissingCollectible, err)
	_, err = tokens.Burn("alice", int32(9))
	assert.Equal(t, types.ErrInvalidChoice, err)
}

func TestRebindOnOverlay(t *testing.T) {
	db := newTestDB(t)
	acc := NewStakeDB(db)
	_, err := acc.Deposit("alice", 2)
	require.NoError(t, err)

	tx := dbm.NewTxKV(db)
	over := NewStakeDB(tx)
	_, err = over.Deposit("alice", 1)
	require.NoError(t, err)
	// overlay sees the staged write, the base does not
	assert.Equal(t, int64(3), over.LoadAccount("alice").Stake)
	assert.Equal(t, int64(2), acc.LoadAccount("alice").Stake)

	require.NoError(t, tx.Commit(false))
	assert.Equal(t, int64(3), acc.LoadAccount("alice").Stake)
}
