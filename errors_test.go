package vectorize

import (
	"errors"
	"testing"
)

func TestSentinelErrorsDistinct(t *testing.T) {
	sentinels := []error{ErrInvalidStep, ErrNonFiniteInput, ErrUnsortedRanges}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v should not match %v", a, b)
			}
		}
	}
}
