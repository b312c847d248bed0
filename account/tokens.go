package account

import (
	dbm "github.com/leon-do/restricted-rock-paper-scissors/common/db"
	"github.com/leon-do/restricted-rock-paper-scissors/types"
)

// TokenDB is the collectible ledger: per player, one balance per
// choice. Resolution burns from it, buy-in mints into it, and stake
// conversion requires it to be empty.
type TokenDB struct {
	db             dbm.KV
	tokenKeyPrefix []byte
}

func NewTokenDB(db dbm.KV) *TokenDB {
	return &TokenDB{
		db:             db,
		tokenKeyPrefix: []byte("mavl-" + types.RRPSX + "-token-"),
	}
}

func (t *TokenDB) SetDB(db dbm.KV) *TokenDB {
	t.db = db
	return t
}

func (t *TokenDB) LoadTokens(addr string) *types.TokenAccount {
	value, err := t.db.Get(t.TokenKey(addr))
	if err != nil {
		return &types.TokenAccount{Addr: addr}
	}
	var tok types.TokenAccount
	if err := types.Decode(value, &tok); err != nil {
		panic(err) // corrupt state db
	}
	return &tok
}

func (t *TokenDB) SaveTokens(tok *types.TokenAccount) {
	if err := t.db.Set(t.TokenKey(tok.Addr), types.Encode(tok)); err != nil {
		alog.Error("SaveTokens", "addr", tok.Addr, "err", err)
	}
}

// Balance returns how many units of one choice the player holds.
func (t *TokenDB) Balance(addr string, choice int32) int64 {
	tok := t.LoadTokens(addr)
	switch choice {
	case types.Scissor:
		return tok.Scissor
	case types.Rock:
		return tok.Rock
	case types.Paper:
		return tok.Paper
	}
	return 0
}

// HoldsAny reports whether any collectible of any choice remains.
func (t *TokenDB) HoldsAny(addr string) bool {
	tok := t.LoadTokens(addr)
	return tok.Scissor > 0 || tok.Rock > 0 || tok.Paper > 0
}

// Burn consumes one unit of the given choice.
func (t *TokenDB) Burn(addr string, choice int32) (*types.ReceiptLog, error) {
	tok := t.LoadTokens(addr)
	var prev int64
	switch choice {
	case types.Scissor:
		prev = tok.Scissor
		tok.Scissor--
	case types.Rock:
		prev = tok.Rock
		tok.Rock--
	case types.Paper:
		prev = tok.Paper
		tok.Paper--
	default:
		return nil, types.ErrInvalidChoice
	}
	if prev <= 0 {
		return nil, types.ErrMissingCollectible
	}
	t.SaveTokens(tok)
	return &types.ReceiptLog{
		Ty: types.TyLogTokenBurn,
		Log: types.Encode(&types.ReceiptBurn{
			Addr:    addr,
			Choice:  choice,
			Prev:    prev,
			Current: prev - 1,
		}),
	}, nil
}

// Mint issues n units of every choice, the buy-in grant.
func (t *TokenDB) Mint(addr string, n int64) {
	tok := t.LoadTokens(addr)
	tok.Scissor += n
	tok.Rock += n
	tok.Paper += n
	t.SaveTokens(tok)
}

func (t *TokenDB) TokenKey(addr string) (key []byte) {
	key = append(key, t.tokenKeyPrefix...)
	key = append(key, []byte(addr)...)
	return key
}
