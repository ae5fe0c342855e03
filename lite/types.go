/*
Package lite defines the verification contract a light client consumes.

A light client does not care what concrete shape a commit takes on the
wire, only that it can report the header it signs, measure how much of a
given validator set vouches for it, and check its own structural
consistency against that set. Commit and Header capture exactly that, and
SignedHeader pairs the two without imposing any validation of its own.

types.SignedHeader satisfies Commit directly, so the concrete chain types
plug in with no adapter code.
*/
package lite

import (
	tmbytes "github.com/tendermint/light-client/libs/bytes"
	"github.com/tendermint/light-client/types"
)

// Commit is the proof side of a signed header: votes from some validator
// set attesting to a single header hash.
type Commit interface {
	// HeaderHash returns the hash of the header this commit attests to.
	HeaderHash() tmbytes.HexBytes

	// VotingPowerIn returns the total power of the validators in vals whose
	// vote in this commit is present and carries a valid signature. It
	// errors only on evidence of forgery, never on mere absence.
	VotingPowerIn(vals *types.ValidatorSet) (int64, error)

	// Validate checks the commit's structure against vals without touching
	// cryptography.
	Validate(vals *types.ValidatorSet) error
}

// Header is the claim side of a signed header. Its hash is what the
// commit's votes are compared against.
type Header interface {
	Hash() tmbytes.HexBytes
}

var _ Commit = types.SignedHeader{}
var _ Header = &types.Header{}

// SignedHeader is a commit paired with the header it attests to. The
// pairing itself asserts nothing; callers establish trust by running the
// commit's Validate and VotingPowerIn against a validator set they
// already believe in.
type SignedHeader struct {
	commit Commit
	header Header
}

// NewSignedHeader pairs a commit with a header. No validation is
// performed; the pair may well be inconsistent.
func NewSignedHeader(commit Commit, header Header) SignedHeader {
	return SignedHeader{
		commit: commit,
		header: header,
	}
}

// Commit returns the proof side of the pair.
func (sh SignedHeader) Commit() Commit {
	return sh.commit
}

// Header returns the claim side of the pair.
func (sh SignedHeader) Header() Header {
	return sh.header
}

// TrustedSignedHeader wraps a concrete signed header into the generic
// pairing, using the embedded header as the claim side.
func TrustedSignedHeader(sh types.SignedHeader) SignedHeader {
	return NewSignedHeader(sh, sh.Header)
}

// TrustedSignedHeaderPtr is TrustedSignedHeader for callers holding a
// pointer; the pairing shares the pointed-to value rather than copying it.
func TrustedSignedHeaderPtr(sh *types.SignedHeader) SignedHeader {
	return NewSignedHeader(sh, sh.Header)
}
