package types

import (
	tmbytes "github.com/tendermint/light-client/libs/bytes"
)

// SignedVote is a vote bound to the chain it belongs to. Raw votes do not
// self-describe their chain, so the chain ID has to be carried alongside to
// reconstruct the bytes that were signed (and to prevent replay of a vote
// across chains).
type SignedVote struct {
	vote    *Vote
	chainID string
}

// NewSignedVote pairs a vote with the ID of the chain it was cast on.
func NewSignedVote(vote *Vote, chainID string) *SignedVote {
	return &SignedVote{
		vote:    vote,
		chainID: chainID,
	}
}

// ValidatorID returns the address of the validator that cast this vote.
func (sv *SignedVote) ValidatorID() Address {
	return sv.vote.ValidatorAddress
}

// SignBytes returns the canonical, chain-id-bound bytes that were signed.
func (sv *SignedVote) SignBytes() []byte {
	return sv.vote.SignBytes(sv.chainID)
}

// Signature returns the signature over SignBytes.
func (sv *SignedVote) Signature() tmbytes.HexBytes {
	return sv.vote.Signature
}

// HeaderHash returns the hash of the header the vote attests to, or nil if
// the vote is for nil.
func (sv *SignedVote) HeaderHash() tmbytes.HexBytes {
	return sv.vote.HeaderHash()
}
