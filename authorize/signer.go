package authorize

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/leon-do/restricted-rock-paper-scissors/types"
)

// Key is a player credential. It lives on the client side of the
// protocol; the engine only ever sees signatures.
type Key struct {
	priv *btcec.PrivateKey
}

// GenKey creates a fresh secp256k1 credential.
func GenKey() (*Key, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, err
	}
	return &Key{priv: priv}, nil
}

// KeyFromBytes loads a 32 byte private key.
func KeyFromBytes(b []byte) (*Key, error) {
	if len(b) != 32 {
		return nil, types.ErrUnauthorized
	}
	priv, _ := btcec.PrivKeyFromBytes(b)
	return &Key{priv: priv}, nil
}

// Bytes serializes the private key.
func (k *Key) Bytes() []byte {
	return k.priv.Serialize()
}

// Addr is the identity this key signs as.
func (k *Key) Addr() string {
	return crypto.PubkeyToAddress(k.priv.ToECDSA().PublicKey).Hex()
}

// Sign produces a recoverable signature over the authorization tuple.
func (k *Key) Sign(slotID int64, opponent string, commit []byte) ([]byte, error) {
	return crypto.Sign(Digest(slotID, opponent, commit), k.priv.ToECDSA())
}

// NewAuthorization signs consent to play opponent at the slot under
// the given commitment.
func (k *Key) NewAuthorization(slotID int64, opponent string, commit []byte) (*types.Authorization, error) {
	sig, err := k.Sign(slotID, opponent, commit)
	if err != nil {
		return nil, err
	}
	return &types.Authorization{
		Opponent:  opponent,
		Commit:    commit,
		Signature: sig,
	}, nil
}
