package executor

import (
	"sync"

	dbm "github.com/leon-do/restricted-rock-paper-scissors/common/db"
	"github.com/leon-do/restricted-rock-paper-scissors/types"
)

// LocalBank is a minimal Coins collaborator over the same KV store,
// used by the CLI and tests. A production deployment would put a real
// payment rail behind the Coins interface instead.
type LocalBank struct {
	mu sync.Mutex
	db dbm.DB
}

func NewLocalBank(db dbm.DB) *LocalBank {
	return &LocalBank{db: db}
}

func coinKey(addr string) (key []byte) {
	key = append(key, []byte("mavl-"+types.RRPSX+"-coin-")...)
	key = append(key, []byte(addr)...)
	return key
}

func (b *LocalBank) balance(addr string) int64 {
	value, err := b.db.Get(coinKey(addr))
	if err != nil {
		return 0
	}
	var acc types.Account
	if err := types.Decode(value, &acc); err != nil {
		panic(err) // corrupt state db
	}
	return acc.Stake
}

func (b *LocalBank) save(addr string, amount int64) error {
	return b.db.Set(coinKey(addr), types.Encode(&types.Account{Addr: addr, Stake: amount}))
}

// Balance reads a coin balance.
func (b *LocalBank) Balance(addr string) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balance(addr)
}

// Fund credits coin out of thin air, the local faucet.
func (b *LocalBank) Fund(addr string, amount int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.save(addr, b.balance(addr)+amount)
}

// Collect takes the buy-in fee from the player's coin balance.
func (b *LocalBank) Collect(requestID string, addr string, amount int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	cur := b.balance(addr)
	if cur < amount {
		return types.ErrFeeCollect
	}
	return b.save(addr, cur-amount)
}

// Pay credits a stake conversion payout to the player's coin balance.
func (b *LocalBank) Pay(requestID string, addr string, amount int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.save(addr, b.balance(addr)+amount)
}
