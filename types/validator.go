package types

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tendermint/light-client/crypto"
	lerr "github.com/tendermint/light-client/libs/errors"
)

// Validator holds the identity, public key and voting power of a single
// member of a validator set. It is immutable once constructed; sets are
// rebuilt, not mutated, when membership changes across heights.
type Validator struct {
	Address     Address       `json:"address"`
	PubKey      crypto.PubKey `json:"pub_key"`
	VotingPower int64         `json:"voting_power"`
}

// NewValidator returns a new validator with the given pubkey and voting power.
// The address is derived from the pubkey.
func NewValidator(pubKey crypto.PubKey, votingPower int64) *Validator {
	return &Validator{
		Address:     pubKey.Address(),
		PubKey:      pubKey,
		VotingPower: votingPower,
	}
}

// VerifySignature checks that sig is a valid signature of msg under this
// validator's public key.
func (v *Validator) VerifySignature(msg []byte, sig []byte) bool {
	return v.PubKey.VerifyBytes(msg, sig)
}

// ValidateBasic performs basic validation.
func (v *Validator) ValidateBasic() error {
	if v == nil {
		return lerr.New(lerr.Parse, "nil validator")
	}
	if v.PubKey == nil {
		return lerr.New(lerr.InvalidKey, "validator does not have a public key")
	}
	if v.VotingPower < 0 {
		return lerr.New(lerr.OutOfRange, "validator has negative voting power")
	}
	if len(v.Address) != crypto.AddressSize {
		return lerr.Newf(lerr.Length, "validator address is the wrong size: %v", v.Address)
	}
	if !bytes.Equal(v.PubKey.Address(), v.Address) {
		return lerr.Newf(lerr.InvalidKey, "validator address %v does not match its pubkey %v", v.Address, v.PubKey)
	}
	return nil
}

// Copy creates a new copy of the validator.
// Panics if the validator is nil.
func (v *Validator) Copy() *Validator {
	vCopy := *v
	return &vCopy
}

// String returns a string representation of String.
//
// 1. address
// 2. public key
// 3. voting power
func (v *Validator) String() string {
	if v == nil {
		return "nil-Validator"
	}
	return fmt.Sprintf("Validator{%v %v VP:%v}",
		v.Address,
		v.PubKey,
		v.VotingPower)
}

// Bytes computes the unique encoding of a validator with a given voting
// power. These are the bytes that gets hashed in consensus. It excludes
// address as its redundant with the pubkey.
func (v *Validator) Bytes() []byte {
	return cdcEncode(struct {
		PubKey      crypto.PubKey
		VotingPower int64
	}{
		v.PubKey,
		v.VotingPower,
	})
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler
func (v *Validator) MarshalZerologObject(e *zerolog.Event) {
	if v == nil {
		return
	}
	e.Str("address", v.Address.String())
	e.Int64("voting_power", v.VotingPower)
	if v.PubKey != nil {
		e.Str("pub_key", fmt.Sprintf("%v", v.PubKey))
	}
}

// ValidatorListString returns a prettified validator list for logging purposes.
func ValidatorListString(vals []*Validator) string {
	chunks := make([]string, len(vals))
	for i, val := range vals {
		chunks[i] = fmt.Sprintf("%s:%d", val.Address, val.VotingPower)
	}

	return strings.Join(chunks, ",")
}
