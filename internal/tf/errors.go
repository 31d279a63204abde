package tf

import "errors"

// Domain errors for transfer function construction and algebra.
var (
	// ErrZeroDenominator indicates a denominator that is empty or the zero
	// polynomial.
	ErrZeroDenominator = errors.New("tf: denominator is the zero polynomial")

	// ErrNegativeDelay indicates a negative time delay.
	ErrNegativeDelay = errors.New("tf: time delay must be non-negative")

	// ErrDelayMismatch indicates addition of transfer functions carrying
	// different time delays, which has no rational representation.
	ErrDelayMismatch = errors.New("tf: cannot add transfer functions with different time delays")

	// ErrNegativePower indicates a negative integer exponent.
	ErrNegativePower = errors.New("tf: negative exponents are not supported")

	// ErrExpArgument indicates an Exp argument that is not a pure delay
	// monomial of the form -theta*s.
	ErrExpArgument = errors.New("tf: exp requires a pure delay argument of the form -theta*s")

	// ErrNotProper indicates a numerator degree exceeding the denominator
	// degree where properness is required.
	ErrNotProper = errors.New("tf: transfer function is not proper")

	// ErrNotStrictlyProper indicates a closed-loop standard form whose
	// delay-free denominator degree does not strictly dominate.
	ErrNotStrictlyProper = errors.New("tf: closed-loop transfer function is not strictly proper")

	// ErrConjugateRoots indicates a zero/pole set whose complex members are
	// not in conjugate pairs and so cannot form real coefficients.
	ErrConjugateRoots = errors.New("tf: complex zeros and poles must come in conjugate pairs")
)
