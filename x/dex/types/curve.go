package types

import (
	"cosmossdk.io/math"
)

// Curve math constants.
const (
	// MaxAmp bounds the StableSwap amplification parameter.
	MaxAmp = 1_000_000
	// stableIterations bounds the Newton iterations of the stable solvers.
	stableIterations = 64
	// nCoins is the number of assets in a pool; all pools are two-sided.
	nCoins = 2
)

var (
	// MinimumLiquidityAmount is the share amount locked forever on the first
	// deposit, preventing share-price manipulation of a near-empty pool.
	MinimumLiquidityAmount = math.NewInt(1_000)

	// stableEpsilon is the convergence bound of the stable solvers.
	stableEpsilon = math.LegacyNewDecWithPrec(1, 6)
)

// SwapOutput computes the gross return and spread for swapping offerAmount
// against the given reserves. All rounding favors the pool: the user never
// receives more than the exact curve output.
func SwapOutput(curve CurveKind, amp uint64, reserveIn, reserveOut, offerAmount math.Int) (returnAmount, spreadAmount math.Int, err error) {
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, math.Int{}, ErrInvalidPoolState.Wrap("reserves must be positive to swap")
	}
	if !offerAmount.IsPositive() {
		return math.Int{}, math.Int{}, ErrZeroAmount.Wrap("offer amount must be positive")
	}

	switch curve {
	case CurveXYK:
		returnAmount, spreadAmount = xykSwapOutput(reserveIn, reserveOut, offerAmount)
		return returnAmount, spreadAmount, nil
	case CurveStable:
		return stableSwapOutput(amp, reserveIn, reserveOut, offerAmount)
	default:
		return math.Int{}, math.Int{}, ErrInvalidCurve.Wrapf("unknown curve kind %q", curve)
	}
}

// xykSwapOutput applies the constant-product formula
//
//	return = reserveOut - k/(reserveIn + offer)
//
// with the retained term rounded up, so the invariant product never shrinks.
// The spread is the shortfall against the ideal proportional return.
func xykSwapOutput(reserveIn, reserveOut, offerAmount math.Int) (math.Int, math.Int) {
	newReserveIn := reserveIn.Add(offerAmount)
	k := reserveIn.Mul(reserveOut)

	// ceil(k / newReserveIn)
	retained := k.Add(newReserveIn).Sub(math.OneInt()).Quo(newReserveIn)
	returnAmount := reserveOut.Sub(retained)
	if returnAmount.IsNegative() {
		returnAmount = math.ZeroInt()
	}

	ideal := offerAmount.Mul(reserveOut).Quo(reserveIn)
	spread := ideal.Sub(returnAmount)
	if spread.IsNegative() {
		spread = math.ZeroInt()
	}
	return returnAmount, spread
}

// stableSwapOutput solves the StableSwap invariant for the post-swap ask
// reserve. The spread is measured against the 1:1 ideal of pegged assets.
func stableSwapOutput(amp uint64, reserveIn, reserveOut, offerAmount math.Int) (math.Int, math.Int, error) {
	x := math.LegacyNewDecFromInt(reserveIn)
	y := math.LegacyNewDecFromInt(reserveOut)
	ann := math.LegacyNewDec(int64(amp * nCoins * nCoins))

	d, err := computeD(ann, x, y)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	newX := x.Add(math.LegacyNewDecFromInt(offerAmount))
	newY, err := computeY(ann, newX, d)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	returnAmount := y.Sub(newY).TruncateInt()
	if returnAmount.IsNegative() {
		returnAmount = math.ZeroInt()
	}
	if returnAmount.GTE(reserveOut) {
		return math.Int{}, math.Int{}, ErrPoolDrained.Wrap("return amount exceeds ask reserves")
	}

	spread := offerAmount.Sub(returnAmount)
	if spread.IsNegative() {
		spread = math.ZeroInt()
	}
	return returnAmount, spread, nil
}

// computeD solves the StableSwap invariant D for two balances by Newton
// iteration. Fails if the fixed iteration bound is exhausted.
func computeD(ann, x, y math.LegacyDec) (math.LegacyDec, error) {
	s := x.Add(y)
	if s.IsZero() {
		return math.LegacyZeroDec(), nil
	}

	d := s
	for i := 0; i < stableIterations; i++ {
		// dP = D^3 / (4xy)
		dP := d.Mul(d).Mul(d).Quo(x.Mul(y).MulInt64(nCoins * nCoins))
		prev := d

		// D = (ann*S + n*dP) * D / ((ann-1)*D + (n+1)*dP)
		numerator := ann.Mul(s).Add(dP.MulInt64(nCoins)).Mul(d)
		denominator := ann.Sub(math.LegacyOneDec()).Mul(d).Add(dP.MulInt64(nCoins + 1))
		d = numerator.Quo(denominator)

		if d.Sub(prev).Abs().LTE(stableEpsilon) {
			return d, nil
		}
	}
	return math.LegacyDec{}, ErrDidNotConverge.Wrap("computing invariant D")
}

// computeY solves for the ask-side balance that keeps the invariant D given
// the new offer-side balance.
func computeY(ann, newX, d math.LegacyDec) (math.LegacyDec, error) {
	if !newX.IsPositive() || !d.IsPositive() {
		return math.LegacyDec{}, ErrInvalidPoolState.Wrap("stable solver requires positive balances")
	}

	// c = D^3 / (4 * newX * ann), b = newX + D/ann
	c := d.Mul(d).Mul(d).Quo(newX.MulInt64(nCoins * nCoins).Mul(ann))
	b := newX.Add(d.Quo(ann))

	y := d
	for i := 0; i < stableIterations; i++ {
		prev := y
		// y = (y^2 + c) / (2y + b - D)
		y = y.Mul(y).Add(c).Quo(y.MulInt64(2).Add(b).Sub(d))
		if y.Sub(prev).Abs().LTE(stableEpsilon) {
			return y, nil
		}
	}
	return math.LegacyDec{}, ErrDidNotConverge.Wrap("computing balance y")
}

// SharesForDeposit computes the LP shares minted for a deposit.
//
// The first deposit into an empty pool mints the geometric mean of the
// deposits (xyk) or the invariant D (stable); the caller locks
// MinimumLiquidityAmount of it. Later deposits mint proportionally to the
// lesser of the two asset-implied share counts, after the ratio imbalance is
// checked against the slippage tolerance.
func SharesForDeposit(curve CurveKind, amp uint64, reserveA, reserveB, totalShares, depositA, depositB math.Int, slippageTolerance math.LegacyDec) (math.Int, error) {
	if !depositA.IsPositive() || !depositB.IsPositive() {
		return math.Int{}, ErrZeroAmount.Wrap("both deposit amounts must be positive")
	}

	if totalShares.IsZero() {
		return initialShares(curve, amp, depositA, depositB)
	}

	switch curve {
	case CurveXYK:
		if err := assertSlippageTolerance(slippageTolerance, depositA, depositB, reserveA, reserveB); err != nil {
			return math.Int{}, err
		}
		sharesA := depositA.Mul(totalShares).Quo(reserveA)
		sharesB := depositB.Mul(totalShares).Quo(reserveB)
		return math.MinInt(sharesA, sharesB), nil

	case CurveStable:
		ann := math.LegacyNewDec(int64(amp * nCoins * nCoins))
		d0, err := computeD(ann, math.LegacyNewDecFromInt(reserveA), math.LegacyNewDecFromInt(reserveB))
		if err != nil {
			return math.Int{}, err
		}
		d1, err := computeD(ann,
			math.LegacyNewDecFromInt(reserveA.Add(depositA)),
			math.LegacyNewDecFromInt(reserveB.Add(depositB)))
		if err != nil {
			return math.Int{}, err
		}
		if d1.LTE(d0) {
			return math.Int{}, ErrInvalidInput.Wrap("deposit does not grow the invariant")
		}
		shares := math.LegacyNewDecFromInt(totalShares).Mul(d1.Sub(d0)).Quo(d0).TruncateInt()
		return shares, nil

	default:
		return math.Int{}, ErrInvalidCurve.Wrapf("unknown curve kind %q", curve)
	}
}

// initialShares prices the seeding deposit of an empty pool.
func initialShares(curve CurveKind, amp uint64, depositA, depositB math.Int) (math.Int, error) {
	switch curve {
	case CurveXYK:
		product := depositA.Mul(depositB)
		sqrt, err := math.LegacyNewDecFromInt(product).ApproxSqrt()
		if err != nil {
			return math.Int{}, ErrInvalidInput.Wrapf("computing geometric mean: %v", err)
		}
		return sqrt.TruncateInt(), nil
	case CurveStable:
		ann := math.LegacyNewDec(int64(amp * nCoins * nCoins))
		d, err := computeD(ann, math.LegacyNewDecFromInt(depositA), math.LegacyNewDecFromInt(depositB))
		if err != nil {
			return math.Int{}, err
		}
		return d.TruncateInt(), nil
	default:
		return math.Int{}, ErrInvalidCurve.Wrapf("unknown curve kind %q", curve)
	}
}

// assertSlippageTolerance rejects deposits whose ratio deviates from the pool
// ratio by more than the tolerance; imbalanced provides dilute one side.
func assertSlippageTolerance(tolerance math.LegacyDec, depositA, depositB, reserveA, reserveB math.Int) error {
	if tolerance.IsNil() {
		return nil
	}
	if tolerance.IsNegative() || tolerance.GTE(math.LegacyOneDec()) {
		return ErrInvalidInput.Wrap("slippage tolerance must be in [0, 1)")
	}

	oneMinus := math.LegacyOneDec().Sub(tolerance)
	depositRatio := math.LegacyNewDecFromInt(depositA).Quo(math.LegacyNewDecFromInt(depositB))
	poolRatio := math.LegacyNewDecFromInt(reserveA).Quo(math.LegacyNewDecFromInt(reserveB))

	// The effective deposit price may not fall below the pool price by more
	// than the tolerance, in either direction.
	if depositRatio.Mul(oneMinus).GT(poolRatio) || poolRatio.Mul(oneMinus).GT(depositRatio) {
		return ErrSlippage.Wrapf("deposit ratio %s deviates from pool ratio %s beyond tolerance %s",
			depositRatio, poolRatio, tolerance)
	}
	return nil
}

// AmountsForShares computes the proportional withdrawal for burning shares,
// floor-rounded so the pool never pays out beyond its reserves.
func AmountsForShares(reserveA, reserveB, totalShares, shares math.Int) (amountA, amountB math.Int, err error) {
	if !shares.IsPositive() {
		return math.Int{}, math.Int{}, ErrZeroAmount.Wrap("share amount must be positive")
	}
	if shares.GT(totalShares) {
		return math.Int{}, math.Int{}, ErrInsufficientShares.Wrapf("burning %s of %s total shares", shares, totalShares)
	}
	amountA = reserveA.Mul(shares).Quo(totalShares)
	amountB = reserveB.Mul(shares).Quo(totalShares)
	return amountA, amountB, nil
}

// AssertMaxSpread enforces the caller's spread bound and, when a belief price
// is supplied, the shortfall against the expected return at that price.
// beliefPrice is offer units per ask unit.
func AssertMaxSpread(beliefPrice *math.LegacyDec, maxSpread math.LegacyDec, offerAmount, returnAmount, spreadAmount math.Int) error {
	if maxSpread.IsNil() || maxSpread.IsNegative() || maxSpread.GT(math.LegacyOneDec()) {
		return ErrInvalidInput.Wrap("max spread must be in [0, 1]")
	}

	spread := spreadAmount
	if beliefPrice != nil {
		if !beliefPrice.IsPositive() {
			return ErrInvalidInput.Wrap("belief price must be positive")
		}
		expected := math.LegacyNewDecFromInt(offerAmount).Quo(*beliefPrice).TruncateInt()
		if shortfall := expected.Sub(returnAmount); shortfall.GT(spread) {
			spread = shortfall
		}
	}

	if spread.IsZero() {
		return nil
	}
	total := offerAmount.Add(returnAmount)
	if math.LegacyNewDecFromInt(spread).Quo(math.LegacyNewDecFromInt(total)).GT(maxSpread) {
		return ErrMaxSpread.Wrapf("spread %s over %s exceeds %s", spread, total, maxSpread)
	}
	return nil
}
