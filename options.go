package vectorize

import "fmt"

// FillSettingsOption configures FillSettings during creation.
// Use functional options to customize tracer behavior.
//
// Example:
//
//	// Default step and fit tolerance
//	settings := vectorize.NewFillSettings()
//
//	// Finer angular resolution, tighter fit
//	settings := vectorize.NewFillSettings(
//	    vectorize.WithStep(0.2),
//	    vectorize.WithFitError(0.01),
//	)
type FillSettingsOption func(*FillSettings)

// FillSettings controls the resolution and tolerance used by the convex
// and concave ray-cast tracers and the contour point-tracing pipeline.
type FillSettings struct {
	// Step is the angular/arc resolution in world units. Must be > 0.
	Step float64

	// FitError is the maximum LMS deviation tolerance passed to the
	// curve fitter when converting traced points into cubic segments.
	FitError float64
}

// defaultFillSettings returns the default settings.
func defaultFillSettings() FillSettings {
	return FillSettings{
		Step:     1.0,
		FitError: 0.1,
	}
}

// NewFillSettings builds a FillSettings from the given options, applying
// defaults (Step: 1.0, FitError: 0.1) for anything not overridden.
func NewFillSettings(opts ...FillSettingsOption) FillSettings {
	s := defaultFillSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithStep sets the angular/arc resolution used by the tracers.
//
// Example:
//
//	settings := vectorize.NewFillSettings(vectorize.WithStep(0.5))
func WithStep(step float64) FillSettingsOption {
	return func(s *FillSettings) {
		s.Step = step
	}
}

// WithFitError sets the LMS curve-fit tolerance used when tracing
// outlines into cubic Bézier paths.
//
// Example:
//
//	settings := vectorize.NewFillSettings(vectorize.WithFitError(0.01))
func WithFitError(fitError float64) FillSettingsOption {
	return func(s *FillSettings) {
		s.FitError = fitError
	}
}

// Validate checks FillSettings against the core's precondition
// contract: Step must be positive and finite, FitError must be
// non-negative and finite. It returns ErrInvalidStep or
// ErrNonFiniteInput wrapped with context when violated.
func (s FillSettings) Validate() error {
	if !isFinite(s.Step) || !isFinite(s.FitError) {
		return fmt.Errorf("vectorize: FillSettings: %w", ErrNonFiniteInput)
	}
	if s.Step <= 0 {
		return fmt.Errorf("vectorize: FillSettings: %w", ErrInvalidStep)
	}
	if s.FitError < 0 {
		return fmt.Errorf("vectorize: FillSettings: %w", ErrInvalidStep)
	}
	return nil
}
