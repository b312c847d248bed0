package types

import (
	"github.com/golang/protobuf/proto"
)

// RRPSX is the executor name, used as the state key prefix.
const RRPSX = "rrps"

// choices
const (
	ChoiceNone = int32(0) // unrevealed sentinel
	Scissor    = int32(1)
	Rock       = int32(2)
	Paper      = int32(3)
)

// match results
const (
	ResultDraw = int32(1)
	ResultAWin = int32(2)
	ResultBWin = int32(3)
	// ResultDefault is the draw-by-default outcome when the deadline
	// passed and neither side revealed.
	ResultDefault = int32(4)
)

// receipt log types
const (
	TyLogMatchOpen     = int32(701)
	TyLogMatchReveal   = int32(702)
	TyLogMatchResolve  = int32(703)
	TyLogStakeTransfer = int32(704)
	TyLogTokenBurn     = int32(705)
	TyLogBuyIn         = int32(706)
	TyLogPayout        = int32(707)
)

// ExecOk is the receipt type of a successfully applied operation.
const ExecOk = int32(2)

// CheckChoice reports whether c is one of the three playable choices.
func CheckChoice(c int32) bool {
	return c == Scissor || c == Rock || c == Paper
}

// Beats reports whether choice a defeats choice b under the cyclic
// dominance rule: rock beats scissor, scissor beats paper, paper
// beats rock. Equal or invalid choices never beat anything.
func Beats(a, b int32) bool {
	switch {
	case a == Rock && b == Scissor:
		return true
	case a == Scissor && b == Paper:
		return true
	case a == Paper && b == Rock:
		return true
	}
	return false
}

// ChoiceName returns a printable name for a choice value.
func ChoiceName(c int32) string {
	switch c {
	case Scissor:
		return "scissor"
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case ChoiceNone:
		return "none"
	}
	return "invalid"
}

// Encode marshals a state or receipt message. State that fails to
// marshal means the process is broken, so it panics like the decode
// path panics on corrupt db data.
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

// Decode unmarshals data into msg.
func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}
