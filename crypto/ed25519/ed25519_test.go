package ed25519_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendermint/light-client/crypto"
	"github.com/tendermint/light-client/crypto/ed25519"
)

func TestSignAndValidateEd25519(t *testing.T) {

	privKey := ed25519.GenPrivKey()
	pubKey := privKey.PubKey()

	msg := crypto.CRandBytes(128)
	sig, err := privKey.Sign(msg)
	require.Nil(t, err)

	// Test the signature
	assert.True(t, pubKey.VerifyBytes(msg, sig))

	// Mutate the signature, just one bit.
	sig[7] ^= byte(0x01)

	assert.False(t, pubKey.VerifyBytes(msg, sig))
}

func TestGenPrivKeyFromSecretDeterminism(t *testing.T) {
	a := ed25519.GenPrivKeyFromSecret([]byte("some secret"))
	b := ed25519.GenPrivKeyFromSecret([]byte("some secret"))
	c := ed25519.GenPrivKeyFromSecret([]byte("another secret"))

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.Equal(t, a.PubKey().Address(), b.PubKey().Address())
}

func TestPubKeyAddressSize(t *testing.T) {
	pubKey := ed25519.GenPrivKey().PubKey()
	assert.Len(t, []byte(pubKey.Address()), crypto.AddressSize)
}
