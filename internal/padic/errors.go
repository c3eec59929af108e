package padic

import "errors"

// Kernel error taxonomy. Domain-test failures (exp/log convergence,
// sqrt) are reported per-operation; the remaining errors indicate a
// contract violation by the caller and abort the operation without
// touching the receiver beyond scrubbing.
var (
	// ErrInvalidArg reports malformed context parameters or an
	// unrecognized print mode.
	ErrInvalidArg = errors.New("padic: invalid argument")

	// ErrNotUnit reports that an operation requiring a p-adic unit
	// received a non-unit: an element with negative valuation
	// (Teichmuller) or an integer divisible by p (InvState.Inv).
	ErrNotUnit = errors.New("padic: element is not a unit")

	// ErrNotConvergent reports that the argument lies outside the
	// domain of convergence of exp or log.
	ErrNotConvergent = errors.New("padic: series does not converge")

	// ErrPrecisionLost reports an inversion whose result would carry
	// no significant digits at the requested precision.
	ErrPrecisionLost = errors.New("padic: all precision lost")

	// ErrNotInteger reports GetBigInt on an element with negative
	// valuation.
	ErrNotInteger = errors.New("padic: element is not a p-adic integer")

	// ErrNotASquare reports Sqrt of a quadratic non-residue.
	ErrNotASquare = errors.New("padic: element is not a square")

	// ErrDivByZero reports division or inversion of an element that is
	// zero to its tracked precision.
	ErrDivByZero = errors.New("padic: division by zero")
)
