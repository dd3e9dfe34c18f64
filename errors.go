package vectorize

import "errors"

// Sentinel errors for precondition violations. These are the only
// error-returning failure mode in this package: empty input geometry and
// curve-fit failure are reported in-band (empty slices, ok-bool returns)
// rather than as errors, per the package's error handling design. Check
// against these with errors.Is.
var (
	// ErrInvalidStep is returned when a FillSettings.Step or FitError is
	// zero, negative, or otherwise outside its valid range.
	ErrInvalidStep = errors.New("invalid step or fit error")

	// ErrNonFiniteInput is returned when a Point, curve, or setting
	// contains NaN or infinite coordinates.
	ErrNonFiniteInput = errors.New("non-finite input")

	// ErrUnsortedRanges is returned when a SampledContour implementation
	// violates its contract by returning intercept ranges that are not
	// in ascending, non-overlapping order.
	ErrUnsortedRanges = errors.New("unsorted or overlapping intercept ranges")
)
