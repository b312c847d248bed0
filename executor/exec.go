package executor

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/leon-do/restricted-rock-paper-scissors/types"
)

// OpenMatch opens a slot from two signed authorizations. Both
// commitments go in together; neither choice is visible to anyone
// until both reveals are in.
func (e *Engine) OpenMatch(open *types.MatchOpen) (*types.Receipt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a := e.newAction()
	receipt, err := a.openMatch(open)
	if err != nil {
		glog.Error("OpenMatch", "slot", open.GetSlotId(), "err", err)
		return nil, err
	}
	if err := a.tx.Commit(true); err != nil {
		return nil, err
	}
	e.opened.Inc(1)
	glog.Info("match opened", "slot", open.GetSlotId(), "index", a.index)
	return receipt, nil
}

// Reveal submits a disclosed (nonce, choice) pair against a slot. The
// second accepted reveal triggers resolution inside the same atomic
// operation; if that resolution fails, the reveal rolls back with it.
func (e *Engine) Reveal(rev *types.MatchReveal) (*types.Receipt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a := e.newAction()
	receipt, err := a.reveal(rev)
	if err != nil {
		glog.Error("Reveal", "slot", rev.GetSlotId(), "err", err)
		return nil, err
	}
	if err := a.tx.Commit(true); err != nil {
		return nil, err
	}
	if m, _ := readMatch(e.stateDB, rev.GetSlotId()); m.GetResolved() {
		e.resolved.Inc(1)
	}
	return receipt, nil
}

// Resolve settles a slot explicitly. Anyone may call it once the
// deadline has elapsed, or after both reveals arrived.
func (e *Engine) Resolve(res *types.MatchResolve) (*types.Receipt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a := e.newAction()
	receipt, err := a.resolveSlot(res)
	if err != nil {
		glog.Error("Resolve", "slot", res.GetSlotId(), "err", err)
		return nil, err
	}
	if err := a.tx.Commit(true); err != nil {
		return nil, err
	}
	e.resolved.Inc(1)
	return receipt, nil
}

// BuyIn collects the buy-in fee through the coin collaborator and
// issues the fresh set: the initial stake plus the initial count of
// every collectible. A player buys in only with an empty set.
func (e *Engine) BuyIn(addr string) (*types.Receipt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a := e.newAction()
	acc := a.stake.LoadAccount(addr)
	if acc.Busy {
		return nil, types.ErrPlayerBusy
	}
	if a.tokens.HoldsAny(addr) {
		return nil, types.ErrHoldsCollectible
	}
	requestID := uuid.New().String()
	if err := e.coins.Collect(requestID, addr, e.rules.BuyInFee); err != nil {
		glog.Error("BuyIn", "addr", addr, "requestID", requestID, "err", err)
		return nil, types.ErrFeeCollect
	}
	logs, err := a.stake.Deposit(addr, e.rules.InitialStake)
	if err != nil {
		return nil, err
	}
	a.tokens.Mint(addr, e.rules.InitialTokens)
	logs = append(logs, &types.ReceiptLog{
		Ty: types.TyLogBuyIn,
		Log: types.Encode(&types.ReceiptPayout{
			Addr:      addr,
			Amount:    e.rules.BuyInFee,
			RequestId: requestID,
		}),
	})
	if err := a.tx.Commit(true); err != nil {
		// the fee was already collected; send it back before failing
		glog.Error("BuyIn commit failed, refunding fee",
			"addr", addr, "requestID", requestID, "err", err)
		if rerr := e.coins.Pay(requestID, addr, e.rules.BuyInFee); rerr != nil {
			glog.Crit("BuyIn fee refund", "addr", addr, "requestID", requestID, "err", rerr)
		}
		return nil, err
	}
	glog.Info("buy-in", "addr", addr, "fee", e.rules.BuyInFee, "requestID", requestID)
	return &types.Receipt{Ty: types.ExecOk, Logs: logs}, nil
}

// ConvertStake drains the whole stake balance into an external payout
// of stake times the configured rate. The balance is zeroed and
// committed before the external transfer runs, so a transfer that
// calls back in observes no stake; a failed transfer restores the
// balance and surfaces ErrPayoutFailed.
func (e *Engine) ConvertStake(addr string) (int64, *types.Receipt, error) {
	e.mu.Lock()
	a := e.newAction()
	acc := a.stake.LoadAccount(addr)
	if acc.Busy {
		e.mu.Unlock()
		return 0, nil, types.ErrPlayerBusy
	}
	if a.tokens.HoldsAny(addr) {
		e.mu.Unlock()
		return 0, nil, types.ErrHoldsCollectible
	}
	staked, logs, err := a.stake.Zero(addr)
	if err != nil {
		e.mu.Unlock()
		return 0, nil, err
	}
	if err := a.tx.Commit(true); err != nil {
		e.mu.Unlock()
		return 0, nil, err
	}
	e.mu.Unlock()

	payout := e.rate.Mul(decimal.NewFromInt(staked)).IntPart()
	requestID := uuid.New().String()
	if err := e.coins.Pay(requestID, addr, payout); err != nil {
		glog.Error("ConvertStake payout failed, restoring stake",
			"addr", addr, "stake", staked, "requestID", requestID, "err", err)
		e.restoreStake(addr, staked)
		return 0, nil, types.ErrPayoutFailed
	}
	logs = append(logs, &types.ReceiptLog{
		Ty: types.TyLogPayout,
		Log: types.Encode(&types.ReceiptPayout{
			Addr:      addr,
			Amount:    payout,
			RequestId: requestID,
		}),
	})
	e.payouts.Inc(1)
	glog.Info("stake converted", "addr", addr, "stake", staked, "payout", payout)
	return payout, &types.Receipt{Ty: types.ExecOk, Logs: logs}, nil
}

// restoreStake undoes the zeroing after a failed payout transfer.
func (e *Engine) restoreStake(addr string, amount int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	a := e.newAction()
	if _, err := a.stake.Deposit(addr, amount); err != nil {
		glog.Crit("restoreStake", "addr", addr, "amount", amount, "err", err)
		return
	}
	if err := a.tx.Commit(true); err != nil {
		glog.Crit("restoreStake commit", "addr", addr, "err", err)
	}
}
