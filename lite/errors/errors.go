// Package errors holds the errors specific to commit verification.
//
// Structural failures surface as ErrImplementationSpecific with a free-form
// message. A signer who is not a member of the validator set being checked
// against surfaces as ErrFaultyValidator, a structured error carrying the
// offending address so callers can collect misbehavior evidence without
// string parsing.
package errors

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/tendermint/light-client/crypto"
)

type errFaultyValidator struct {
	address crypto.Address
}

func (e errFaultyValidator) Error() string {
	return fmt.Sprintf("Found a faulty validator (%v) not present in the validator set", e.address)
}

type errImplementationSpecific struct {
	msg string
}

func (e errImplementationSpecific) Error() string {
	return e.msg
}

// ErrFaultyValidator indicates a precommit signed by a validator which is not
// part of the validator set. This is evidence of misbehavior: handle it
// distinctly from ordinary malformed input.
func ErrFaultyValidator(address crypto.Address) error {
	return errors.Wrap(errFaultyValidator{address: address}, "")
}

func IsErrFaultyValidator(err error) bool {
	_, ok := errors.Cause(err).(errFaultyValidator)
	return ok
}

// FaultyValidatorAddress returns the address carried by an ErrFaultyValidator
// error, and whether err is one.
func FaultyValidatorAddress(err error) (crypto.Address, bool) {
	e, ok := errors.Cause(err).(errFaultyValidator)
	if !ok {
		return nil, false
	}
	return e.address, true
}

// ErrImplementationSpecific indicates an ad-hoc structural verification
// failure (wrong lengths, wrong header hash, unverifiable signature from a
// known signer).
func ErrImplementationSpecific(format string, args ...interface{}) error {
	return errors.Wrap(errImplementationSpecific{msg: fmt.Sprintf(format, args...)}, "")
}

func IsErrImplementationSpecific(err error) bool {
	_, ok := errors.Cause(err).(errImplementationSpecific)
	return ok
}
