package types

import "errors"

var (
	// ErrUnauthorized : the authorization signature is malformed or does
	// not recover to the expected signer.
	ErrUnauthorized = errors.New("authorization signature invalid")
	// ErrSlotOccupied : an unresolved match already occupies the slot.
	ErrSlotOccupied = errors.New("slot occupied by an unresolved match")
	// ErrPlayerBusy : a recovered player already sits in another match.
	ErrPlayerBusy = errors.New("player already in an unresolved match")
	// ErrOpponentMismatch : the mutual consent cross check failed, each
	// authorization must name the other recovered signer as opponent.
	ErrOpponentMismatch = errors.New("authorizations do not consent to each other")
	// ErrSamePlayer : both authorizations recover to one identity.
	ErrSamePlayer = errors.New("players of a match must be distinct")
	// ErrInsufficientStake : a wager precondition is unmet.
	ErrInsufficientStake = errors.New("insufficient stake balance")
	// ErrInvalidChoice : choice outside the enumerated set.
	ErrInvalidChoice = errors.New("choice must be scissor, rock or paper")
	// ErrMissingCollectible : a participant no longer holds a unit of
	// the collectible matching their revealed choice.
	ErrMissingCollectible = errors.New("revealed collectible not held")
	// ErrAlreadyResolved : double resolution attempt.
	ErrAlreadyResolved = errors.New("match already resolved")
	// ErrRevealOngoing : explicit resolve before the deadline while a
	// reveal is still outstanding.
	ErrRevealOngoing = errors.New("reveal window still open")
	// ErrMatchNotFound : no match record exists at the slot.
	ErrMatchNotFound = errors.New("no match at slot")
	// ErrNoStake : stake conversion with a zero balance.
	ErrNoStake = errors.New("no stake to convert")
	// ErrHoldsCollectible : stake conversion while collectibles remain.
	ErrHoldsCollectible = errors.New("collectibles must be spent before conversion")
	// ErrPayoutFailed : the external payout transfer failed, stake was
	// restored.
	ErrPayoutFailed = errors.New("external payout transfer failed")
	// ErrFeeCollect : the buy-in fee transfer failed.
	ErrFeeCollect = errors.New("buy-in fee collection failed")
)
