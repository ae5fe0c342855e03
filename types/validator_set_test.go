package types

import (
	"bytes"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendermint/light-client/crypto"
	"github.com/tendermint/light-client/crypto/ed25519"
)

func randValidator(totalVotingPower int64) *Validator {
	// this modulo guarantees that this struct is always valid:
	// the maximum TotalVotingPower is MaxTotalVotingPower
	votingPower := int64(crypto.CRandBytes(1)[0])%(MaxTotalVotingPower-totalVotingPower) + 1
	return NewValidator(ed25519.GenPrivKey().PubKey(), votingPower)
}

func randValidatorSet(numValidators int) *ValidatorSet {
	validators := make([]*Validator, numValidators)
	totalVotingPower := int64(0)
	for i := 0; i < numValidators; i++ {
		validators[i] = randValidator(totalVotingPower)
		totalVotingPower += validators[i].VotingPower
	}
	return NewValidatorSet(validators)
}

func TestValidatorSetBasic(t *testing.T) {
	// empty or nil validator lists are allowed,
	// but attempting to IncrementProposerPriority on them will panic.
	vset := NewValidatorSet([]*Validator{})
	assert.True(t, vset.IsNilOrEmpty())

	vset = NewValidatorSet(nil)
	assert.True(t, vset.IsNilOrEmpty())

	assert.EqualValues(t, vset.Size(), 0)
	assert.Nil(t, vset.Hash())

	val := randValidator(vset.TotalVotingPower())
	vset = NewValidatorSet([]*Validator{val})

	assert.False(t, vset.IsNilOrEmpty())
	assert.True(t, vset.HasAddress(val.Address))
	idx, val2 := vset.GetByAddress(val.Address)
	assert.EqualValues(t, 0, idx)
	assert.Equal(t, val, val2)
	addr, val2 := vset.GetByIndex(0)
	assert.Equal(t, []byte(val.Address), addr)
	assert.Equal(t, val, val2)
	assert.Equal(t, val.VotingPower, vset.TotalVotingPower())
	assert.NotNil(t, vset.Hash())
}

func TestValidatorSetValidateBasic(t *testing.T) {
	val := NewValidator(ed25519.GenPrivKey().PubKey(), 10)
	badVal := &Validator{}

	testCases := []struct {
		vals ValidatorSet
		err  bool
		msg  string
	}{
		{
			vals: ValidatorSet{},
			err:  true,
			msg:  "validator set is nil or empty",
		},
		{
			vals: ValidatorSet{
				Validators: []*Validator{badVal},
			},
			err: true,
			msg: "invalid validator #0",
		},
		{
			vals: ValidatorSet{
				Validators: []*Validator{val, val.Copy()},
			},
			err: true,
			msg: "duplicate validator address",
		},
		{
			vals: ValidatorSet{
				Validators: []*Validator{val},
			},
			err: false,
			msg: "",
		},
	}

	for _, tc := range testCases {
		err := tc.vals.ValidateBasic()
		if tc.err {
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.msg)
			}
		} else {
			assert.NoError(t, err)
		}
	}
}

func TestValidatorSetSortedByAddress(t *testing.T) {
	vset := randValidatorSet(10)

	addrs := make([][]byte, vset.Size())
	vset.Iterate(func(i int, val *Validator) bool {
		addrs[i] = val.Address
		return false
	})

	assert.True(t, sort.SliceIsSorted(addrs, func(i, j int) bool {
		return bytes.Compare(addrs[i], addrs[j]) < 0
	}))
}

func TestValidatorSetGetByAddressNotFound(t *testing.T) {
	vset := randValidatorSet(3)
	unknown := ed25519.GenPrivKey().PubKey().Address()

	idx, val := vset.GetByAddress(unknown)
	assert.Equal(t, -1, idx)
	assert.Nil(t, val)
	assert.False(t, vset.HasAddress(unknown))
}

func TestCopy(t *testing.T) {
	vset := randValidatorSet(10)
	vsetHash := vset.Hash()
	if len(vsetHash) == 0 {
		t.Fatalf("ValidatorSet had unexpected zero hash")
	}

	vsetCopy := vset.Copy()
	vsetCopyHash := vsetCopy.Hash()

	if !bytes.Equal(vsetHash, vsetCopyHash) {
		t.Fatalf("ValidatorSet copy had wrong hash. Orig: %X, Copy: %X", vsetHash, vsetCopyHash)
	}
}

func TestTotalVotingPowerPanicsOnOverflow(t *testing.T) {
	// NewValidatorSet recomputes the total voting power,
	// which should panic on overflow:
	shouldPanic := func() {
		NewValidatorSet([]*Validator{
			NewValidator(ed25519.GenPrivKey().PubKey(), math.MaxInt64),
			NewValidator(ed25519.GenPrivKey().PubKey(), math.MaxInt64),
			NewValidator(ed25519.GenPrivKey().PubKey(), math.MaxInt64),
		})
	}

	assert.Panics(t, shouldPanic)
}

func TestSafeAddClip(t *testing.T) {
	assert.EqualValues(t, math.MaxInt64, safeAddClip(math.MaxInt64, 10))
	assert.EqualValues(t, math.MaxInt64, safeAddClip(math.MaxInt64, math.MaxInt64))
	assert.EqualValues(t, math.MinInt64, safeAddClip(math.MinInt64, -10))
}

func TestValidatorSetHashDependsOnMembers(t *testing.T) {
	v1 := NewValidator(ed25519.GenPrivKey().PubKey(), 10)
	v2 := NewValidator(ed25519.GenPrivKey().PubKey(), 20)

	setA := NewValidatorSet([]*Validator{v1.Copy(), v2.Copy()})
	setB := NewValidatorSet([]*Validator{v1.Copy(), v2.Copy()})
	setC := NewValidatorSet([]*Validator{v1.Copy()})

	require.Equal(t, setA.Hash(), setB.Hash())
	require.NotEqual(t, setA.Hash(), setC.Hash())
}
