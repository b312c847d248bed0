package authorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leon-do/restricted-rock-paper-scissors/types"
)

func TestComputeCommitment(t *testing.T) {
	c1 := ComputeCommitment(42, types.Rock)
	c2 := ComputeCommitment(42, types.Rock)
	require.Len(t, c1, CommitmentLen)
	assert.Equal(t, c1, c2)

	// any change of input changes the hash
	assert.NotEqual(t, c1, ComputeCommitment(43, types.Rock))
	assert.NotEqual(t, c1, ComputeCommitment(42, types.Paper))
}

func TestSignRecoverRoundTrip(t *testing.T) {
	key, err := GenKey()
	require.NoError(t, err)
	opp, err := GenKey()
	require.NoError(t, err)

	commit := ComputeCommitment(7, types.Scissor)
	sig, err := key.Sign(5, opp.Addr(), commit)
	require.NoError(t, err)
	require.Len(t, sig, SignatureLen)

	addr, err := RecoverSigner(sig, 5, opp.Addr(), commit)
	require.NoError(t, err)
	assert.Equal(t, key.Addr(), addr)

	// ethereum style recovery ids are normalized
	sig27 := make([]byte, SignatureLen)
	copy(sig27, sig)
	sig27[64] += 27
	addr, err = RecoverSigner(sig27, 5, opp.Addr(), commit)
	require.NoError(t, err)
	assert.Equal(t, key.Addr(), addr)
}

// a signature over one tuple never authorizes another: recovery
// against a different slot, opponent or commitment yields a
// different identity.
func TestDigestBindsTuple(t *testing.T) {
	key, err := GenKey()
	require.NoError(t, err)
	opp, err := GenKey()
	require.NoError(t, err)
	third, err := GenKey()
	require.NoError(t, err)

	commit := ComputeCommitment(7, types.Scissor)
	sig, err := key.Sign(5, opp.Addr(), commit)
	require.NoError(t, err)

	addr, err := RecoverSigner(sig, 6, opp.Addr(), commit)
	if err == nil {
		assert.NotEqual(t, key.Addr(), addr)
	}
	addr, err = RecoverSigner(sig, 5, third.Addr(), commit)
	if err == nil {
		assert.NotEqual(t, key.Addr(), addr)
	}
	addr, err = RecoverSigner(sig, 5, opp.Addr(), ComputeCommitment(8, types.Scissor))
	if err == nil {
		assert.NotEqual(t, key.Addr(), addr)
	}
}

func TestRecoverMalformed(t *testing.T) {
	commit := ComputeCommitment(1, types.Rock)

	_, err := RecoverSigner(nil, 1, "", commit)
	assert.Equal(t, types.ErrUnauthorized, err)

	_, err = RecoverSigner([]byte("short"), 1, "", commit)
	assert.Equal(t, types.ErrUnauthorized, err)

	bad := make([]byte, SignatureLen)
	bad[64] = 9 // recovery id out of range
	_, err = RecoverSigner(bad, 1, "", commit)
	assert.Equal(t, types.ErrUnauthorized, err)
}

func TestVerifierCaches(t *testing.T) {
	key, err := GenKey()
	require.NoError(t, err)
	opp, err := GenKey()
	require.NoError(t, err)
	commit := ComputeCommitment(7, types.Paper)
	sig, err := key.Sign(3, opp.Addr(), commit)
	require.NoError(t, err)

	v := NewVerifier()
	addr, err := v.Recover(sig, 3, opp.Addr(), commit)
	require.NoError(t, err)
	assert.Equal(t, key.Addr(), addr)

	// second call is served from the cache
	require.Equal(t, 1, v.cache.Len())
	addr, err = v.Recover(sig, 3, opp.Addr(), commit)
	require.NoError(t, err)
	assert.Equal(t, key.Addr(), addr)
	assert.Equal(t, 1, v.cache.Len())
}

func TestKeyFromBytesRoundTrip(t *testing.T) {
	key, err := GenKey()
	require.NoError(t, err)
	clone, err := KeyFromBytes(key.Bytes())
	require.NoError(t, err)
	assert.Equal(t, key.Addr(), clone.Addr())

	_, err = KeyFromBytes([]byte{1, 2, 3})
	assert.Equal(t, types.ErrUnauthorized, err)
}
