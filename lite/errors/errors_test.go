package errors

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendermint/light-client/crypto"
)

func TestErrFaultyValidator(t *testing.T) {
	addr := crypto.AddressHash([]byte("some validator"))
	err := ErrFaultyValidator(addr)

	require.Error(t, err)
	assert.True(t, IsErrFaultyValidator(err))
	assert.False(t, IsErrImplementationSpecific(err))
	assert.Contains(t, err.Error(), "faulty validator")

	got, ok := FaultyValidatorAddress(err)
	require.True(t, ok)
	assert.Equal(t, addr, got)
}

func TestErrImplementationSpecific(t *testing.T) {
	err := ErrImplementationSpecific("pre-commit length: %d doesn't match validator length: %d", 2, 1)

	require.Error(t, err)
	assert.True(t, IsErrImplementationSpecific(err))
	assert.False(t, IsErrFaultyValidator(err))
	assert.Contains(t, err.Error(), "pre-commit length: 2 doesn't match validator length: 1")
}

func TestPredicatesSurviveWrapping(t *testing.T) {
	addr := crypto.AddressHash([]byte("wrapped validator"))
	err := pkgerrors.Wrap(ErrFaultyValidator(addr), "while validating commit")

	assert.True(t, IsErrFaultyValidator(err))
	got, ok := FaultyValidatorAddress(err)
	require.True(t, ok)
	assert.Equal(t, addr, got)
}

func TestPredicatesRejectOtherErrors(t *testing.T) {
	err := pkgerrors.New("some unrelated failure")

	assert.False(t, IsErrFaultyValidator(err))
	assert.False(t, IsErrImplementationSpecific(err))

	_, ok := FaultyValidatorAddress(err)
	assert.False(t, ok)
}
