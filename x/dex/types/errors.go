package types

import (
	"cosmossdk.io/errors"
)

// DEX module sentinel errors
var (
	ErrInvalidInput       = errors.Register(ModuleName, 1, "invalid input")
	ErrZeroAmount         = errors.Register(ModuleName, 2, "amount cannot be zero")
	ErrInvalidAsset       = errors.Register(ModuleName, 3, "asset not in pool pair")
	ErrPoolNotFound       = errors.Register(ModuleName, 4, "pool not found")
	ErrPoolAlreadyExists  = errors.Register(ModuleName, 5, "pool already exists")
	ErrUnauthorized       = errors.Register(ModuleName, 6, "unauthorized")
	ErrProposalExpired    = errors.Register(ModuleName, 7, "ownership proposal expired")
	ErrNoProposal         = errors.Register(ModuleName, 8, "no ownership proposal")
	ErrSlippage           = errors.Register(ModuleName, 9, "slippage tolerance exceeded")
	ErrMaxSpread          = errors.Register(ModuleName, 10, "max spread exceeded")
	ErrMinimumReceive     = errors.Register(ModuleName, 11, "received less than minimum")
	ErrInsufficientShares = errors.Register(ModuleName, 12, "insufficient liquidity shares")
	ErrInsufficientFunds  = errors.Register(ModuleName, 13, "insufficient funds")
	ErrFrozen             = errors.Register(ModuleName, 14, "pool is frozen")
	ErrTradingNotStarted  = errors.Register(ModuleName, 15, "trading has not started yet")
	ErrDidNotConverge     = errors.Register(ModuleName, 16, "stable curve solver did not converge")
	ErrInvalidFee         = errors.Register(ModuleName, 17, "invalid fee configuration")
	ErrMinimumLiquidity   = errors.Register(ModuleName, 18, "initial liquidity below minimum")
	ErrInvalidCurve       = errors.Register(ModuleName, 19, "invalid curve kind")
	ErrInvalidSwapRoute   = errors.Register(ModuleName, 20, "invalid multi-hop swap route")
	ErrInvariantViolation = errors.Register(ModuleName, 21, "invariant violation")
	ErrInvalidPoolState   = errors.Register(ModuleName, 22, "invalid pool state")
	ErrPoolDrained        = errors.Register(ModuleName, 23, "swap would drain pool reserves")
)
