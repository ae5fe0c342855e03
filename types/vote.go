package types

import (
	"bytes"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tendermint/light-client/crypto"
	"github.com/tendermint/light-client/crypto/ed25519"
	tmbytes "github.com/tendermint/light-client/libs/bytes"
	lerr "github.com/tendermint/light-client/libs/errors"
)

const (
	nilVoteStr string = "nil-Vote"

	// MaxSignatureSize is a maximum allowed signature size for the Vote.
	MaxSignatureSize = ed25519.SignatureSize
)

var (
	ErrVoteUnexpectedStep          = lerr.New(lerr.Protocol, "unexpected step")
	ErrVoteInvalidValidatorIndex   = lerr.New(lerr.OutOfRange, "invalid validator index")
	ErrVoteInvalidValidatorAddress = lerr.New(lerr.InvalidKey, "invalid validator address")
	ErrVoteInvalidSignature        = lerr.New(lerr.SignatureInvalid, "invalid signature")
	ErrVoteInvalidBlockHash        = lerr.New(lerr.Parse, "invalid block hash")
	ErrVoteNil                     = lerr.New(lerr.Protocol, "nil vote")
)

// Address is hex bytes.
type Address = crypto.Address

// Vote represents a prevote, precommit, or commit vote from validators for
// consensus.
type Vote struct {
	Type             SignedMsgType    `json:"type"`
	Height           int64            `json:"height"`
	Round            int              `json:"round"`
	BlockID          BlockID          `json:"block_id"` // zero if vote is nil.
	Timestamp        time.Time        `json:"timestamp"`
	ValidatorAddress Address          `json:"validator_address"`
	ValidatorIndex   int              `json:"validator_index"`
	Signature        tmbytes.HexBytes `json:"signature"`
}

// SignBytes returns the amino encoding of the canonicalized Vote, bound to
// the given chain ID. These are the bytes a validator actually signs.
// Panics if the marshaling fails.
func (vote *Vote) SignBytes(chainID string) []byte {
	bz, err := cdc.MarshalBinaryLengthPrefixed(CanonicalizeVote(chainID, vote))
	if err != nil {
		panic(err)
	}
	return bz
}

// HeaderHash returns the hash of the header this vote attests to,
// or nil for a nil vote.
func (vote *Vote) HeaderHash() tmbytes.HexBytes {
	return vote.BlockID.Hash
}

func (vote *Vote) Copy() *Vote {
	voteCopy := *vote
	return &voteCopy
}

func (vote *Vote) String() string {
	if vote == nil {
		return nilVoteStr
	}
	var typeString string
	switch vote.Type {
	case PrevoteType:
		typeString = "Prevote"
	case PrecommitType:
		typeString = "Precommit"
	default:
		panic("Unknown vote type")
	}

	return fmt.Sprintf("Vote{%v:%X %v/%02d/%v(%v) %X %X @ %s}",
		vote.ValidatorIndex,
		tmbytes.Fingerprint(vote.ValidatorAddress),
		vote.Height,
		vote.Round,
		vote.Type,
		typeString,
		tmbytes.Fingerprint(vote.BlockID.Hash),
		tmbytes.Fingerprint(vote.Signature),
		CanonicalTime(vote.Timestamp),
	)
}

// Verify checks that the vote was signed by the given public key over this
// vote's sign bytes for the given chain, and that the vote carries that key's
// address.
func (vote *Vote) Verify(chainID string, pubKey crypto.PubKey) error {
	if !bytes.Equal(pubKey.Address(), vote.ValidatorAddress) {
		return ErrVoteInvalidValidatorAddress
	}

	if !pubKey.VerifyBytes(vote.SignBytes(chainID), vote.Signature) {
		return ErrVoteInvalidSignature
	}
	return nil
}

// ValidateBasic performs basic validation.
func (vote *Vote) ValidateBasic() error {
	if !IsVoteTypeValid(vote.Type) {
		return lerr.New(lerr.Protocol, "invalid Type")
	}
	if vote.Height < 0 {
		return lerr.New(lerr.OutOfRange, "negative Height")
	}
	if vote.Round < 0 {
		return lerr.New(lerr.OutOfRange, "negative Round")
	}

	// NOTE: Timestamp validation is subtle and handled elsewhere.

	if err := vote.BlockID.ValidateBasic(); err != nil {
		return fmt.Errorf("wrong BlockID: %v", err)
	}
	// BlockID.ValidateBasic would not err if we for instance have an empty hash
	// but a non-empty PartsSetHeader:
	if !vote.BlockID.IsZero() && !vote.BlockID.IsComplete() {
		return fmt.Errorf("blockID must be either empty or complete, got: %v", vote.BlockID)
	}
	if len(vote.ValidatorAddress) != crypto.AddressSize {
		return lerr.Newf(lerr.Length, "expected ValidatorAddress size to be %d bytes, got %d bytes",
			crypto.AddressSize,
			len(vote.ValidatorAddress),
		)
	}
	if vote.ValidatorIndex < 0 {
		return lerr.New(lerr.OutOfRange, "negative ValidatorIndex")
	}
	if len(vote.Signature) == 0 {
		return lerr.New(lerr.SignatureInvalid, "signature is missing")
	}
	if len(vote.Signature) > MaxSignatureSize {
		return lerr.Newf(lerr.Length, "signature is too big (max: %d)", MaxSignatureSize)
	}
	return nil
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler
func (vote *Vote) MarshalZerologObject(e *zerolog.Event) {
	if vote == nil {
		return
	}
	e.Int64("height", vote.Height)
	e.Int("round", vote.Round)
	e.Uint8("type", uint8(vote.Type))
	e.Str("block_id", vote.BlockID.String())
	e.Str("validator", vote.ValidatorAddress.String())
	e.Int("val_index", vote.ValidatorIndex)
	e.Str("signature", vote.Signature.ShortString())
	e.Bool("nil", vote.BlockID.IsZero())
}
