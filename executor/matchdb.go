package executor

// state operations for the match slots

import (
	"bytes"
	"fmt"

	ethcmn "github.com/ethereum/go-ethereum/common"

	"github.com/leon-do/restricted-rock-paper-scissors/account"
	"github.com/leon-do/restricted-rock-paper-scissors/authorize"
	dbm "github.com/leon-do/restricted-rock-paper-scissors/common/db"
	"github.com/leon-do/restricted-rock-paper-scissors/types"
)

// action is one operation staged on a tx overlay. Nothing it does is
// visible until the engine commits the overlay.
type action struct {
	tx        *dbm.TxKV
	stake     *account.DB
	tokens    *account.TokenDB
	recoverer authorize.Recoverer
	rules     *types.Rules
	index     int64
}

func newAction(tx *dbm.TxKV, recoverer authorize.Recoverer, rules *types.Rules, index int64) *action {
	return &action{
		tx:        tx,
		stake:     account.NewStakeDB(tx),
		tokens:    account.NewTokenDB(tx),
		recoverer: recoverer,
		rules:     rules,
		index:     index,
	}
}

// MatchKey is the state key of a slot's match record.
func MatchKey(slotID int64) (key []byte) {
	key = append(key, []byte("mavl-"+types.RRPSX+"-match-")...)
	key = append(key, []byte(fmt.Sprintf("%018d", slotID))...)
	return key
}

func readMatch(db dbm.KV, slotID int64) (*types.Match, error) {
	data, err := db.Get(MatchKey(slotID))
	if err != nil {
		return nil, err
	}
	var match types.Match
	if err := types.Decode(data, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func (a *action) saveMatch(match *types.Match) {
	a.tx.Set(MatchKey(match.SlotId), types.Encode(match))
}

// slotFree is the explicit freshness predicate: a slot is free when
// no match record exists there, or the record left behind has been
// resolved and recycled.
func (a *action) slotFree(slotID int64) bool {
	match, err := readMatch(a.tx, slotID)
	if err != nil {
		return true
	}
	return match.GetResolved()
}

func matchLog(match *types.Match, ty int32) *types.ReceiptLog {
	return &types.ReceiptLog{
		Ty: ty,
		Log: types.Encode(&types.ReceiptMatch{
			SlotId:   match.SlotId,
			PlayerA:  match.PlayerA,
			PlayerB:  match.PlayerB,
			Result:   match.Result,
			Resolved: match.Resolved,
		}),
	}
}

// openMatch creates the match record once both sides' consent checks
// out. Preconditions run in a fixed order, each with its own failure
// kind. No stake or token moves here: commitment alone carries no
// economic effect.
func (a *action) openMatch(open *types.MatchOpen) (*types.Receipt, error) {
	authA, authB := open.GetAuthA(), open.GetAuthB()
	if authA == nil || authB == nil ||
		len(authA.Commit) != authorize.CommitmentLen ||
		len(authB.Commit) != authorize.CommitmentLen {
		return nil, types.ErrUnauthorized
	}
	if !a.slotFree(open.SlotId) {
		return nil, types.ErrSlotOccupied
	}
	playerA, err := a.recoverer.Recover(authA.Signature, open.SlotId, authA.Opponent, authA.Commit)
	if err != nil {
		return nil, types.ErrUnauthorized
	}
	playerB, err := a.recoverer.Recover(authB.Signature, open.SlotId, authB.Opponent, authB.Commit)
	if err != nil {
		return nil, types.ErrUnauthorized
	}
	if playerA == playerB {
		return nil, types.ErrSamePlayer
	}
	accA := a.stake.LoadAccount(playerA)
	accB := a.stake.LoadAccount(playerB)
	if accA.Busy || accB.Busy {
		return nil, types.ErrPlayerBusy
	}
	if accA.Stake <= 0 || accB.Stake <= 0 {
		return nil, types.ErrInsufficientStake
	}
	// mutual consent: each side must have named the other recovered
	// signer as its opponent. Addresses are compared normalized, the
	// same way Digest hashes them, so casing never breaks consent.
	if ethcmn.HexToAddress(authA.Opponent) != ethcmn.HexToAddress(playerB) ||
		ethcmn.HexToAddress(authB.Opponent) != ethcmn.HexToAddress(playerA) {
		return nil, types.ErrOpponentMismatch
	}
	match := &types.Match{
		SlotId:    open.SlotId,
		PlayerA:   playerA,
		PlayerB:   playerB,
		CommitA:   authA.Commit,
		CommitB:   authB.Commit,
		RevealA:   types.ChoiceNone,
		RevealB:   types.ChoiceNone,
		Deadline:  a.index + a.rules.RevealWindow,
		OpenIndex: a.index,
	}
	a.saveMatch(match)
	a.stake.SetBusy(playerA, true)
	a.stake.SetBusy(playerB, true)
	return &types.Receipt{
		Ty:   types.ExecOk,
		Logs: []*types.ReceiptLog{matchLog(match, types.TyLogMatchOpen)},
	}, nil
}

// reveal matches the commitment recomputed from (nonce, choice)
// against either stored side. A commitment matching neither side is
// dropped without effect: stray or duplicate submissions are
// tolerated. When the second reveal lands, resolution runs inside
// this same operation.
func (a *action) reveal(rev *types.MatchReveal) (*types.Receipt, error) {
	if !types.CheckChoice(rev.Choice) {
		return nil, types.ErrInvalidChoice
	}
	match, err := readMatch(a.tx, rev.SlotId)
	if err != nil {
		return nil, types.ErrMatchNotFound
	}
	if match.Resolved {
		return nil, types.ErrAlreadyResolved
	}
	commit := authorize.ComputeCommitment(rev.Nonce, rev.Choice)
	switch {
	case match.RevealA == types.ChoiceNone && bytes.Equal(commit, match.CommitA):
		match.RevealA = rev.Choice
	case match.RevealB == types.ChoiceNone && bytes.Equal(commit, match.CommitB):
		match.RevealB = rev.Choice
	default:
		glog.Warn("reveal matches no stored commitment", "slot", rev.SlotId,
			"choice", types.ChoiceName(rev.Choice))
		return &types.Receipt{Ty: types.ExecOk}, nil
	}
	a.saveMatch(match)
	logs := []*types.ReceiptLog{matchLog(match, types.TyLogMatchReveal)}
	if match.RevealA != types.ChoiceNone && match.RevealB != types.ChoiceNone {
		resolveLogs, err := a.resolve(match)
		if err != nil {
			return nil, err
		}
		logs = append(logs, resolveLogs...)
	}
	return &types.Receipt{Ty: types.ExecOk, Logs: logs}, nil
}

// resolveSlot is the explicit resolution entry, valid once the
// deadline has elapsed or after both reveals arrived.
func (a *action) resolveSlot(res *types.MatchResolve) (*types.Receipt, error) {
	match, err := readMatch(a.tx, res.SlotId)
	if err != nil {
		return nil, types.ErrMatchNotFound
	}
	if match.Resolved {
		return nil, types.ErrAlreadyResolved
	}
	logs, err := a.resolve(match)
	if err != nil {
		return nil, err
	}
	return &types.Receipt{Ty: types.ExecOk, Logs: logs}, nil
}

// resolve computes the outcome exactly once and applies the stake and
// burn side effects, then recycles the slot. The decision table, in
// priority order:
//
//	deadline passed, no reveals    -> draw by default, nothing moves
//	deadline passed, one reveal    -> silent side forfeits one stake
//	both revealed, equal           -> draw, no burn
//	both revealed, unequal         -> cyclic dominance, one stake to
//	                                  the winner, both tokens burned
func (a *action) resolve(match *types.Match) ([]*types.ReceiptLog, error) {
	revealedA := match.RevealA != types.ChoiceNone
	revealedB := match.RevealB != types.ChoiceNone
	expired := a.index > match.Deadline
	if !(revealedA && revealedB) && !expired {
		return nil, types.ErrRevealOngoing
	}
	if revealedA && a.tokens.Balance(match.PlayerA, match.RevealA) < 1 {
		return nil, types.ErrMissingCollectible
	}
	if revealedB && a.tokens.Balance(match.PlayerB, match.RevealB) < 1 {
		return nil, types.ErrMissingCollectible
	}
	accA := a.stake.LoadAccount(match.PlayerA)
	accB := a.stake.LoadAccount(match.PlayerB)
	if accA.Stake <= 0 || accB.Stake <= 0 {
		return nil, types.ErrInsufficientStake
	}

	var logs []*types.ReceiptLog
	switch {
	case expired && !revealedA && !revealedB:
		match.Result = types.ResultDefault
	case expired && (revealedA != revealedB):
		winner, loser := match.PlayerA, match.PlayerB
		match.Result = types.ResultAWin
		if revealedB {
			winner, loser = match.PlayerB, match.PlayerA
			match.Result = types.ResultBWin
		}
		transferLogs, err := a.stake.Transfer(loser, winner, 1)
		if err != nil {
			return nil, err
		}
		logs = append(logs, transferLogs...)
	case revealedA && revealedB && match.RevealA == match.RevealB:
		match.Result = types.ResultDraw
	case revealedA && revealedB:
		winner, loser := match.PlayerA, match.PlayerB
		match.Result = types.ResultAWin
		if types.Beats(match.RevealB, match.RevealA) {
			winner, loser = match.PlayerB, match.PlayerA
			match.Result = types.ResultBWin
		}
		transferLogs, err := a.stake.Transfer(loser, winner, 1)
		if err != nil {
			return nil, err
		}
		logs = append(logs, transferLogs...)
		// both revealed tokens are consumed, the cost of playing
		burnA, err := a.tokens.Burn(match.PlayerA, match.RevealA)
		if err != nil {
			return nil, err
		}
		burnB, err := a.tokens.Burn(match.PlayerB, match.RevealB)
		if err != nil {
			return nil, err
		}
		logs = append(logs, burnA, burnB)
	default:
		// the invariants above make this unreachable
		panic(fmt.Sprintf("resolve: inconsistent match state, slot %d", match.SlotId))
	}
	logs = append(logs, a.recycle(match)...)
	return logs, nil
}

// recycle marks the match resolved and clears both busy flags. The
// historical commitments and reveals stay on the record for audit
// until a later open overwrites the slot.
func (a *action) recycle(match *types.Match) []*types.ReceiptLog {
	match.Resolved = true
	match.CloseIndex = a.index
	a.saveMatch(match)
	a.stake.SetBusy(match.PlayerA, false)
	a.stake.SetBusy(match.PlayerB, false)
	return []*types.ReceiptLog{matchLog(match, types.TyLogMatchResolve)}
}
