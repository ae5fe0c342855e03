package types

import (
	"strings"

	tmbytes "github.com/tendermint/light-client/libs/bytes"
	lerr "github.com/tendermint/light-client/libs/errors"

	"github.com/tendermint/light-client/crypto/merkle"
)

// Commit contains the evidence that a block was committed by a set of
// validators: one precommit slot per validator position. A nil slot means
// the validator at that position did not vote, or voted nil; both are
// legitimate outcomes and never an error.
// NOTE: Commit is empty for height 1, but never nil.
type Commit struct {
	BlockID    BlockID `json:"block_id"`
	Precommits []*Vote `json:"precommits"`

	// memoized in first call to corresponding method
	// NOTE: can't memoize in constructor because constructor
	// isn't used for unmarshaling.
	firstPrecommit *Vote
	hash           tmbytes.HexBytes
}

// NewCommit returns a new Commit for the given block ID with the given
// precommit slots.
func NewCommit(blockID BlockID, precommits []*Vote) *Commit {
	return &Commit{
		BlockID:    blockID,
		Precommits: precommits,
	}
}

// FirstPrecommit returns the first non-nil precommit in the commit.
// If all precommits are nil, it returns an empty precommit with height 0.
func (commit *Commit) FirstPrecommit() *Vote {
	if len(commit.Precommits) == 0 {
		return nil
	}
	if commit.firstPrecommit != nil {
		return commit.firstPrecommit
	}
	for _, precommit := range commit.Precommits {
		if precommit != nil {
			commit.firstPrecommit = precommit
			return precommit
		}
	}
	return &Vote{
		Type: PrecommitType,
	}
}

// Height returns the height of the commit
func (commit *Commit) Height() int64 {
	if len(commit.Precommits) == 0 {
		return 0
	}
	return commit.FirstPrecommit().Height
}

// Round returns the round of the commit
func (commit *Commit) Round() int {
	if len(commit.Precommits) == 0 {
		return 0
	}
	return commit.FirstPrecommit().Round
}

// Type returns the vote type of the commit, which is always VoteTypePrecommit
func (commit *Commit) Type() byte {
	return byte(PrecommitType)
}

// Size returns the number of precommit slots in the commit.
func (commit *Commit) Size() int {
	if commit == nil {
		return 0
	}
	return len(commit.Precommits)
}

// IsCommit returns true if there is at least one vote.
func (commit *Commit) IsCommit() bool {
	return len(commit.Precommits) != 0
}

// ValidateBasic performs basic validation that doesn't involve state data.
// Does not actually check the cryptographic signatures.
func (commit *Commit) ValidateBasic() error {
	if commit.BlockID.IsZero() {
		return lerr.New(lerr.Parse, "commit cannot be for nil block")
	}
	if len(commit.Precommits) == 0 {
		return lerr.New(lerr.Parse, "no precommits in commit")
	}
	height, round := commit.Height(), commit.Round()

	// Validate the precommits.
	for _, precommit := range commit.Precommits {
		// It's OK for precommits to be missing.
		if precommit == nil {
			continue
		}
		// Ensure that all votes are precommits.
		if precommit.Type != PrecommitType {
			return lerr.Newf(lerr.Parse, "invalid commit vote. Expected precommit, got %v",
				precommit.Type)
		}
		// Ensure that all heights are the same.
		if precommit.Height != height {
			return lerr.Newf(lerr.Parse, "invalid commit precommit height. Expected %v, got %v",
				height, precommit.Height)
		}
		// Ensure that all rounds are the same.
		if precommit.Round != round {
			return lerr.Newf(lerr.Parse, "invalid commit precommit round. Expected %v, got %v",
				round, precommit.Round)
		}
	}
	return nil
}

// Hash returns the hash of the commit.
func (commit *Commit) Hash() tmbytes.HexBytes {
	if commit == nil {
		return nil
	}
	if commit.hash == nil {
		bs := make([][]byte, len(commit.Precommits))
		for i, precommit := range commit.Precommits {
			bs[i] = cdcEncode(precommit)
		}
		commit.hash = merkle.SimpleHashFromByteSlices(bs)
	}
	return commit.hash
}

// StringIndented returns a string representation of the commit
func (commit *Commit) StringIndented(indent string) string {
	if commit == nil {
		return "nil-Commit"
	}
	precommitStrings := make([]string, len(commit.Precommits))
	for i, precommit := range commit.Precommits {
		precommitStrings[i] = precommit.String()
	}
	return strings.Join([]string{
		"Commit{",
		indent + "  BlockID:    " + commit.BlockID.String(),
		indent + "  Precommits:",
		indent + "    " + strings.Join(precommitStrings, "\n"+indent+"    "),
		indent + "}",
	}, "\n")
}
