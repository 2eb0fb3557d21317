package cli

import (
	flag "github.com/spf13/pflag"
)

// Flag constants for dex CLI commands
const (
	// Pool creation flags
	FlagCurve          = "curve"
	FlagAmp            = "amp"
	FlagProtocolFeeBps = "protocol-fee-bps"
	FlagLpFeeBps       = "lp-fee-bps"
	FlagFeeReceiver    = "fee-receiver"
	FlagTradingStarts  = "trading-starts"
	FlagCircuitBreaker = "circuit-breaker"

	// Liquidity flags
	FlagSlippageTolerance = "slippage-tolerance"
	FlagReceiver          = "receiver"

	// Swap flags
	FlagBeliefPrice    = "belief-price"
	FlagMaxSpread      = "max-spread"
	FlagTo             = "to"
	FlagMinimumReceive = "minimum-receive"
)

// FlagSetCreatePool returns the flag set of the create-pool command.
func FlagSetCreatePool(defaultCurve string) *flag.FlagSet {
	fs := flag.NewFlagSet("", flag.ContinueOnError)

	fs.String(FlagCurve, defaultCurve, "Pricing curve: xyk or stable")
	fs.Uint64(FlagAmp, 0, "Amplification parameter, stable pools only")
	fs.Uint32(FlagProtocolFeeBps, 0, "Protocol fee in basis points")
	fs.Uint32(FlagLpFeeBps, 0, "LP fee in basis points")
	fs.String(FlagFeeReceiver, "", "Direct receiver of the protocol fee; empty accrues to the fee pot")
	fs.Int64(FlagTradingStarts, 0, "Unix time when swapping opens; zero opens at once")
	fs.String(FlagCircuitBreaker, "", "Address allowed to freeze the pool")

	return fs
}

// FlagSetSwap returns the flag set of the swap command.
func FlagSetSwap() *flag.FlagSet {
	fs := flag.NewFlagSet("", flag.ContinueOnError)

	fs.String(FlagBeliefPrice, "", "Expected price in offer units per ask unit")
	fs.String(FlagMaxSpread, "", "Accepted spread ratio; empty selects the module default")
	fs.String(FlagTo, "", "Receiver of the swap proceeds; defaults to the sender")

	return fs
}
