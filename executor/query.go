package executor

import (
	"github.com/leon-do/restricted-rock-paper-scissors/account"
	"github.com/leon-do/restricted-rock-paper-scissors/types"
)

// QueryMatch returns the match record at a slot, resolved or not.
func (e *Engine) QueryMatch(slotID int64) (*types.Match, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	match, err := readMatch(e.stateDB, slotID)
	if err != nil {
		return nil, types.ErrMatchNotFound
	}
	return match, nil
}

// QueryAccount returns a player's stake record.
func (e *Engine) QueryAccount(addr string) *types.Account {
	e.mu.Lock()
	defer e.mu.Unlock()
	return account.NewStakeDB(e.stateDB).LoadAccount(addr)
}

// QueryTokens returns a player's collectible balances.
func (e *Engine) QueryTokens(addr string) *types.TokenAccount {
	e.mu.Lock()
	defer e.mu.Unlock()
	return account.NewTokenDB(e.stateDB).LoadTokens(addr)
}

// ListMatches walks every match record in slot order. Decoding skips
// rather than fails on a bad row so one damaged record does not take
// the listing down.
func (e *Engine) ListMatches() []*types.Match {
	e.mu.Lock()
	defer e.mu.Unlock()
	prefix := []byte("mavl-" + types.RRPSX + "-match-")
	var matches []*types.Match
	for _, value := range e.stateDB.PrefixScan(prefix) {
		var match types.Match
		if err := types.Decode(value, &match); err != nil {
			glog.Error("ListMatches decode", "err", err)
			continue
		}
		matches = append(matches, &match)
	}
	return matches
}
