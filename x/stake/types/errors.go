package types

import (
	"cosmossdk.io/errors"
)

// Stake module sentinel errors
var (
	ErrInvalidInput       = errors.Register(ModuleName, 1, "invalid input")
	ErrZeroAmount         = errors.Register(ModuleName, 2, "amount cannot be zero")
	ErrUnknownPeriod      = errors.Register(ModuleName, 3, "unknown unbonding period")
	ErrBelowMinBond       = errors.Register(ModuleName, 4, "bond amount below minimum")
	ErrInsufficientBond   = errors.Register(ModuleName, 5, "insufficient bonded amount")
	ErrNothingToWithdraw  = errors.Register(ModuleName, 6, "nothing to withdraw")
	ErrUnauthorized       = errors.Register(ModuleName, 7, "unauthorized")
	ErrFlowNotFound       = errors.Register(ModuleName, 8, "distribution flow not found")
	ErrFlowExists         = errors.Register(ModuleName, 9, "distribution flow already exists for denom")
	ErrTooManyFlows       = errors.Register(ModuleName, 10, "distribution flow limit reached")
	ErrInvalidSchedule    = errors.Register(ModuleName, 11, "invalid emission schedule")
	ErrWrongDenom         = errors.Register(ModuleName, 12, "denom does not match")
	ErrInvariantViolation = errors.Register(ModuleName, 13, "invariant violation")
)
