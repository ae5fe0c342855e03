package types

import (
	"bytes"
	"fmt"

	"github.com/rs/zerolog"

	tmbytes "github.com/tendermint/light-client/libs/bytes"
	lerr "github.com/tendermint/light-client/libs/errors"
	verr "github.com/tendermint/light-client/lite/errors"
)

// SignedHeader is a header along with the commit that signed it: the unit of
// verification for the light client.
type SignedHeader struct {
	*Header `json:"header"`
	Commit  *Commit `json:"commit"`
}

// HeaderHash returns the hash of the header this commit is for.
func (sh SignedHeader) HeaderHash() tmbytes.HexBytes {
	return sh.Commit.BlockID.Hash
}

// VotingPowerIn computes the total voting power of the validators in vals
// whose precommit for this header is present and cryptographically valid.
//
// Absent and nil votes contribute nothing. Signers not found in vals are
// skipped with zero power: the set passed in may legitimately not contain
// every historical signer (e.g. when measuring power under a different
// epoch's set than the one that produced the commit). An invalid signature
// from a validator that IS in vals aborts the whole computation: it is
// direct evidence of forgery, never a value to discard and continue past.
func (sh SignedHeader) VotingPowerIn(vals *ValidatorSet) (int64, error) {
	// NOTE: we don't know the validators that committed this block,
	// so we have to check for each vote if its validator is already known.
	signedPower := int64(0)
	for _, signedVote := range sh.signedVotes() {
		// skip absent and nil votes
		// NOTE: do we want to check the validity of votes
		// for nil?
		if signedVote == nil {
			continue
		}

		// check if this vote is from a known validator
		_, val := vals.GetByAddress(signedVote.ValidatorID())
		if val == nil {
			continue
		}

		// check vote is valid from validator
		signBytes := signedVote.SignBytes()
		if !val.VerifySignature(signBytes, signedVote.Signature()) {
			return 0, verr.ErrImplementationSpecific(
				"couldn't verify signature %X with validator %v on sign bytes %X",
				signedVote.Signature(),
				val,
				signBytes,
			)
		}
		signedPower += val.VotingPower
	}

	return signedPower, nil
}

// Validate checks that the commit is shape-correct against the given
// validator set, independent of cryptography: one precommit slot per
// validator, every non-nil precommit voting for this header, and every
// signer a member of the set. A signer outside the set fails with the
// distinguished faulty-validator error so callers can collect it as
// misbehavior evidence.
//
// Validate never verifies signatures; that is VotingPowerIn's job. The two
// are deliberately separate so a caller can check shape against one set
// while measuring power under another.
func (sh SignedHeader) Validate(vals *ValidatorSet) error {
	if len(sh.Commit.Precommits) != vals.Size() {
		return verr.ErrImplementationSpecific(
			"pre-commit length: %d doesn't match validator length: %d",
			len(sh.Commit.Precommits),
			vals.Size(),
		)
	}

	for _, precommit := range sh.Commit.Precommits {
		if precommit == nil {
			continue
		}

		// make sure each vote is for the correct header
		if hash := precommit.HeaderHash(); len(hash) > 0 && !bytes.Equal(hash, sh.HeaderHash()) {
			return verr.ErrImplementationSpecific(
				"validator(%v) voted for header %X, but current header is %X",
				precommit.ValidatorAddress,
				hash,
				sh.HeaderHash(),
			)
		}

		// fail with a FaultyValidator error if the signer isn't present in
		// the validator set
		if !vals.HasAddress(precommit.ValidatorAddress) {
			return verr.ErrFaultyValidator(precommit.ValidatorAddress)
		}
	}

	return nil
}

// signedVotes pairs each precommit slot with the header's chain ID, keeping
// nil slots in place. Raw votes do not self-describe the chain they belong
// to, so the reconstruction is required to build the bytes that were signed.
func (sh SignedHeader) signedVotes() []*SignedVote {
	chainID := sh.ChainID
	signedVotes := make([]*SignedVote, len(sh.Commit.Precommits))
	for i, precommit := range sh.Commit.Precommits {
		if precommit == nil {
			continue
		}
		signedVotes[i] = NewSignedVote(precommit, chainID)
	}
	return signedVotes
}

// ValidateBasic does basic consistency checks and makes sure the header
// and commit are consistent.
//
// NOTE: This does not actually check the cryptographic signatures. Make
// sure to use a Verifier to validate the signatures actually provide a
// significantly strong proof for this header's validity.
func (sh SignedHeader) ValidateBasic(chainID string) error {
	// Make sure the header is consistent with the commit.
	if sh.Header == nil {
		return lerr.New(lerr.Parse, "signedHeader missing header")
	}
	if sh.Commit == nil {
		return lerr.New(lerr.Parse, "signedHeader missing commit (precommit votes)")
	}

	// Check ChainID.
	if sh.ChainID != chainID {
		return lerr.Newf(lerr.Parse, "signedHeader belongs to another chain '%s' not '%s'",
			sh.ChainID, chainID)
	}
	// Check Height.
	if sh.Commit.Height() != sh.Height {
		return lerr.Newf(lerr.Parse, "signedHeader header and commit height mismatch: %v vs %v",
			sh.Height, sh.Commit.Height())
	}
	// Check Hash.
	hhash := sh.Hash()
	chash := sh.Commit.BlockID.Hash
	if !bytes.Equal(hhash, chash) {
		return lerr.Newf(lerr.Parse, "signedHeader commit signs block %X, header is block %X",
			chash, hhash)
	}
	// ValidateBasic on the Commit.
	err := sh.Commit.ValidateBasic()
	if err != nil {
		return err
	}
	return nil
}

func (sh SignedHeader) String() string {
	return sh.StringIndented("")
}

// StringIndented returns a string representation of the SignedHeader.
func (sh SignedHeader) StringIndented(indent string) string {
	return fmt.Sprintf(`SignedHeader{
%s  %v
%s  %v
%s}`,
		indent, sh.Header.StringIndented(indent+"  "),
		indent, sh.Commit.StringIndented(indent+"  "),
		indent)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler
func (sh SignedHeader) MarshalZerologObject(e *zerolog.Event) {
	if sh.Header == nil {
		return
	}
	e.Str("chain_id", sh.ChainID)
	e.Int64("height", sh.Height)
	e.Str("hash", sh.Hash().String())
	e.Str("commit_hash", sh.HeaderHash().String())
	e.Int("precommits", sh.Commit.Size())
}
