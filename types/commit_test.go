package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitBasicAccessors(t *testing.T) {
	vals, privVals := makeValSet(t, 10, 20)
	sh := makeSignedHeader(t, vals, privVals, 7)
	commit := sh.Commit

	assert.EqualValues(t, 7, commit.Height())
	assert.EqualValues(t, 0, commit.Round())
	assert.Equal(t, byte(PrecommitType), commit.Type())
	assert.Equal(t, 2, commit.Size())
	assert.True(t, commit.IsCommit())

	require.NotNil(t, commit.FirstPrecommit())
	assert.Equal(t, commit.FirstPrecommit(), commit.FirstPrecommit(), "memoized precommit must be stable")

	assert.NotEmpty(t, commit.Hash())
	assert.Equal(t, commit.Hash(), commit.Hash(), "memoized hash must be stable")
}

func TestCommitSkipsNilSlots(t *testing.T) {
	vals, privVals := makeValSet(t, 10, 20, 30)
	sh := makeSignedHeader(t, vals, privVals, 7)
	commit := sh.Commit

	// blank the first slot; accessors fall through to the next vote
	commit.Precommits[0] = nil
	commit.firstPrecommit = nil

	require.NotNil(t, commit.FirstPrecommit())
	assert.EqualValues(t, 7, commit.Height())
	assert.NoError(t, commit.ValidateBasic())
}

func TestCommitValidateBasic(t *testing.T) {
	testCases := []struct {
		testName       string
		malleateCommit func(*Commit)
		expectErr      bool
	}{
		{"Random Commit", func(com *Commit) {}, false},
		{"Nil block ID", func(com *Commit) { com.BlockID = BlockID{} }, true},
		{"No precommits", func(com *Commit) { com.Precommits = nil }, true},
		{"Incorrect type", func(com *Commit) { com.Precommits[0].Type = PrevoteType }, true},
		{"Incorrect height", func(com *Commit) { com.Precommits[0].Height = 100 }, true},
		{"Incorrect round", func(com *Commit) { com.Precommits[0].Round = 100 }, true},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.testName, func(t *testing.T) {
			vals, privVals := makeValSet(t, 10, 20)
			sh := makeSignedHeader(t, vals, privVals, 7)
			com := sh.Commit
			tc.malleateCommit(com)
			assert.Equal(t, tc.expectErr, com.ValidateBasic() != nil, "Validate Basic had an unexpected result")
		})
	}
}
