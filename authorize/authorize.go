/*
Package authorize authenticates match consent. A player signs the
domain separated digest of (slot, opponent, commitment) with their
secp256k1 credential; recovery of that signature yields the player's
identity, an ethereum style hex address.
*/
package authorize

import (
	"encoding/binary"

	ethcmn "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	lru "github.com/hashicorp/golang-lru"
	log "github.com/inconshreveable/log15"

	"github.com/leon-do/restricted-rock-paper-scissors/types"
)

var glog = log.New("module", "authorize")

// Protocol name and version are bound into every signed digest, so a
// signature produced here cannot be replayed against another protocol
// instance.
const (
	ProtocolName    = "RestrictedRockPaperScissors"
	ProtocolVersion = "1"
)

// SignatureLen is the length of a recoverable signature, R || S || V.
const SignatureLen = 65

// CommitmentLen is the fixed size of a commitment hash.
const CommitmentLen = 32

const recoverCacheSize = 1024

var (
	domainTypeHash = crypto.Keccak256([]byte("Domain(string name,string version)"))
	authTypeHash   = crypto.Keccak256([]byte("Authorization(uint256 slot,address opponent,bytes32 commit)"))

	domainSeparator = crypto.Keccak256(
		domainTypeHash,
		crypto.Keccak256([]byte(ProtocolName)),
		crypto.Keccak256([]byte(ProtocolVersion)),
	)
)

// Recoverer extracts the signing identity from an authorization, so
// the state machine stays independent of the signing scheme.
type Recoverer interface {
	Recover(sig []byte, slotID int64, opponent string, commit []byte) (string, error)
}

// ComputeCommitment binds a hidden choice to a secret nonce. Both are
// hashed as fixed width big endian integers, nonce first.
func ComputeCommitment(nonce uint64, choice int32) []byte {
	var buf [12]byte
	binary.BigEndian.PutUint64(buf[:8], nonce)
	binary.BigEndian.PutUint32(buf[8:], uint32(choice))
	return crypto.Keccak256(buf[:])
}

// Digest is the domain separated message a player signs to consent to
// a match.
func Digest(slotID int64, opponent string, commit []byte) []byte {
	var slot [32]byte
	binary.BigEndian.PutUint64(slot[24:], uint64(slotID))
	var opp [32]byte
	copy(opp[12:], ethcmn.HexToAddress(opponent).Bytes())
	var c [32]byte
	copy(c[:], commit)
	structHash := crypto.Keccak256(authTypeHash, slot[:], opp[:], c[:])
	return crypto.Keccak256([]byte{0x19, 0x01}, domainSeparator, structHash)
}

// RecoverSigner recovers the identity that signed the authorization
// tuple. A malformed or unrecoverable signature is ErrUnauthorized.
func RecoverSigner(sig []byte, slotID int64, opponent string, commit []byte) (string, error) {
	if len(sig) != SignatureLen {
		return "", types.ErrUnauthorized
	}
	s := make([]byte, SignatureLen)
	copy(s, sig)
	if s[64] >= 27 {
		// accept ethereum style recovery ids
		s[64] -= 27
	}
	if s[64] > 1 {
		return "", types.ErrUnauthorized
	}
	pub, err := crypto.SigToPub(Digest(slotID, opponent, commit), s)
	if err != nil {
		glog.Debug("RecoverSigner", "err", err)
		return "", types.ErrUnauthorized
	}
	return crypto.PubkeyToAddress(*pub).Hex(), nil
}

// Verifier is the default Recoverer. Recovery is a pure function of
// (signature, digest), so results are memoized in an LRU cache; the
// engine re-verifies the same authorizations whenever a caller
// retries an open.
type Verifier struct {
	cache *lru.Cache
}

func NewVerifier() *Verifier {
	cache, err := lru.New(recoverCacheSize)
	if err != nil {
		panic(err)
	}
	return &Verifier{cache: cache}
}

func (v *Verifier) Recover(sig []byte, slotID int64, opponent string, commit []byte) (string, error) {
	key := string(sig) + string(Digest(slotID, opponent, commit))
	if addr, ok := v.cache.Get(key); ok {
		return addr.(string), nil
	}
	addr, err := RecoverSigner(sig, slotID, opponent, commit)
	if err != nil {
		return "", err
	}
	v.cache.Add(key, addr)
	return addr, nil
}
