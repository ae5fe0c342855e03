package types

import (
	"fmt"
	"time"

	tmtime "github.com/tendermint/light-client/types/time"
)

// MakeVote builds and signs a precommit for blockID by privVal, looking up
// the validator's index in valSet.
func MakeVote(
	height int64,
	blockID BlockID,
	valSet *ValidatorSet,
	privVal PrivValidator,
	chainID string,
	now time.Time,
) (*Vote, error) {
	if privVal == nil {
		return nil, fmt.Errorf("privVal must be set")
	}
	addr := privVal.GetPubKey().Address()
	idx, _ := valSet.GetByAddress(addr)
	vote := &Vote{
		ValidatorAddress: addr,
		ValidatorIndex:   idx,
		Height:           height,
		Round:            0,
		Timestamp:        now,
		Type:             PrecommitType,
		BlockID:          blockID,
	}

	if err := privVal.SignVote(chainID, vote); err != nil {
		return nil, err
	}

	return vote, nil
}

// MakeCommit builds a commit for blockID with one precommit slot per
// validator in vals, signed by the corresponding entry in privVals. A nil
// entry in privVals leaves that validator's slot empty (an absent vote).
func MakeCommit(
	blockID BlockID,
	height int64,
	vals *ValidatorSet,
	privVals []PrivValidator,
	chainID string,
) (*Commit, error) {
	if len(privVals) != vals.Size() {
		return nil, fmt.Errorf("privVals length %d doesn't match validator set size %d",
			len(privVals), vals.Size())
	}

	precommits := make([]*Vote, vals.Size())
	for _, privVal := range privVals {
		if privVal == nil {
			continue
		}
		vote, err := MakeVote(height, blockID, vals, privVal, chainID, tmtime.Now())
		if err != nil {
			return nil, err
		}
		if vote.ValidatorIndex < 0 {
			return nil, fmt.Errorf("validator %v not in validator set", vote.ValidatorAddress)
		}
		precommits[vote.ValidatorIndex] = vote
	}

	return NewCommit(blockID, precommits), nil
}
