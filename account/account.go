/*
Package account keeps the per-player wager ledger: the scalar stake
balance and the busy flag that pins a player to one live match.
*/
package account

import (
	log "github.com/inconshreveable/log15"

	dbm "github.com/leon-do/restricted-rock-paper-scissors/common/db"
	"github.com/leon-do/restricted-rock-paper-scissors/types"
)

var alog = log.New("module", "account")

// DB reads and writes Player records under one key prefix.
type DB struct {
	db               dbm.KV
	accountKeyPrefix []byte
}

// NewStakeDB opens the stake ledger over the given state view.
func NewStakeDB(db dbm.KV) *DB {
	return &DB{
		db:               db,
		accountKeyPrefix: []byte("mavl-" + types.RRPSX + "-stake-"),
	}
}

// SetDB swaps the state view, used to rebind onto a tx overlay.
func (acc *DB) SetDB(db dbm.KV) *DB {
	acc.db = db
	return acc
}

// LoadAccount returns the player's record, or a zero record if the
// player has never been seen.
func (acc *DB) LoadAccount(addr string) *types.Account {
	value, err := acc.db.Get(acc.AccountKey(addr))
	if err != nil {
		return &types.Account{Addr: addr}
	}
	var acc1 types.Account
	if err := types.Decode(value, &acc1); err != nil {
		panic(err) // corrupt state db
	}
	return &acc1
}

// SaveAccount persists the record into the current state view.
func (acc *DB) SaveAccount(acc1 *types.Account) {
	if err := acc.db.Set(acc.AccountKey(acc1.Addr), types.Encode(acc1)); err != nil {
		alog.Error("SaveAccount", "addr", acc1.Addr, "err", err)
	}
}

// Transfer moves amount of stake from one player to the other and
// returns the two balance transition logs. The move is zero sum.
func (acc *DB) Transfer(from, to string, amount int64) ([]*types.ReceiptLog, error) {
	if amount <= 0 {
		return nil, types.ErrInsufficientStake
	}
	accFrom := acc.LoadAccount(from)
	accTo := acc.LoadAccount(to)
	if accFrom.Stake-amount < 0 {
		return nil, types.ErrInsufficientStake
	}
	prevFrom, prevTo := accFrom.Stake, accTo.Stake
	accFrom.Stake -= amount
	accTo.Stake += amount
	acc.SaveAccount(accFrom)
	acc.SaveAccount(accTo)
	return []*types.ReceiptLog{
		stakeLog(from, prevFrom, accFrom.Stake),
		stakeLog(to, prevTo, accTo.Stake),
	}, nil
}

// Deposit credits freshly issued stake, the buy-in path.
func (acc *DB) Deposit(addr string, amount int64) ([]*types.ReceiptLog, error) {
	if amount <= 0 {
		return nil, types.ErrInsufficientStake
	}
	acc1 := acc.LoadAccount(addr)
	prev := acc1.Stake
	acc1.Stake += amount
	acc.SaveAccount(acc1)
	return []*types.ReceiptLog{stakeLog(addr, prev, acc1.Stake)}, nil
}

// Zero empties the stake balance and returns the drained amount, the
// conversion path. The caller restores via Deposit if the external
// transfer fails.
func (acc *DB) Zero(addr string) (int64, []*types.ReceiptLog, error) {
	acc1 := acc.LoadAccount(addr)
	if acc1.Stake <= 0 {
		return 0, nil, types.ErrNoStake
	}
	prev := acc1.Stake
	acc1.Stake = 0
	acc.SaveAccount(acc1)
	return prev, []*types.ReceiptLog{stakeLog(addr, prev, 0)}, nil
}

// SetBusy flips the occupancy flag for a player.
func (acc *DB) SetBusy(addr string, busy bool) {
	acc1 := acc.LoadAccount(addr)
	acc1.Busy = busy
	acc.SaveAccount(acc1)
}

// AccountKey returns the state key of one player record.
func (acc *DB) AccountKey(addr string) (key []byte) {
	key = append(key, acc.accountKeyPrefix...)
	key = append(key, []byte(addr)...)
	return key
}

func stakeLog(addr string, prev, current int64) *types.ReceiptLog {
	return &types.ReceiptLog{
		Ty: types.TyLogStakeTransfer,
		Log: types.Encode(&types.ReceiptStake{
			Addr:    addr,
			Prev:    prev,
			Current: current,
		}),
	}
}
