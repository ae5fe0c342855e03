package types

import (
	amino "github.com/tendermint/go-amino"

	cryptoamino "github.com/tendermint/light-client/crypto/encoding/amino"
)

var cdc = amino.NewCodec()

func init() {
	RegisterBlockAmino(cdc)
}

func RegisterBlockAmino(cdc *amino.Codec) {
	cryptoamino.RegisterAmino(cdc)
}

// GetCodec returns the global codec.
func GetCodec() *amino.Codec {
	return cdc
}
