package cryptoamino

import (
	amino "github.com/tendermint/go-amino"

	"github.com/tendermint/light-client/crypto"
	"github.com/tendermint/light-client/crypto/ed25519"
	lerr "github.com/tendermint/light-client/libs/errors"
)

var cdc = amino.NewCodec()

func init() {
	// NOTE: It's important that there be no conflicts here,
	// as that would change the canonical representations,
	// and therefore change the address.
	RegisterAmino(cdc)
}

// RegisterAmino registers all crypto related types in the given (amino) codec.
func RegisterAmino(cdc *amino.Codec) {
	cdc.RegisterInterface((*crypto.PubKey)(nil), nil)
	cdc.RegisterConcrete(ed25519.PubKeyEd25519{},
		ed25519.PubKeyAminoName, nil)

	cdc.RegisterInterface((*crypto.PrivKey)(nil), nil)
	cdc.RegisterConcrete(ed25519.PrivKeyEd25519{},
		ed25519.PrivKeyAminoName, nil)
}

// PubKeyFromBytes unmarshals public key bytes and returns a PubKey.
func PubKeyFromBytes(pubKeyBytes []byte) (crypto.PubKey, error) {
	var pubKey crypto.PubKey
	err := cdc.UnmarshalBinaryBare(pubKeyBytes, &pubKey)
	if err != nil {
		return nil, lerr.Wrap(lerr.InvalidKey, "reading amino-encoded pubkey", err)
	}
	return pubKey, nil
}

// PrivKeyFromBytes unmarshals private key bytes and returns a PrivKey.
func PrivKeyFromBytes(privKeyBytes []byte) (crypto.PrivKey, error) {
	var privKey crypto.PrivKey
	err := cdc.UnmarshalBinaryBare(privKeyBytes, &privKey)
	if err != nil {
		return nil, lerr.Wrap(lerr.InvalidKey, "reading amino-encoded privkey", err)
	}
	return privKey, nil
}
