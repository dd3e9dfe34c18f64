package vectorize

import "testing"

func TestRayCastContourClipsAndDropsEmpty(t *testing.T) {
	fn := func(y float64) []InterceptRange {
		return []InterceptRange{
			{Start: -5, End: -1}, // fully out of range, dropped
			{Start: -5, End: 5},  // clipped to [0,5)
			{Start: 8, End: 12},  // clipped to [8,10)
			{Start: 20, End: 25}, // fully out of range, dropped
			{Start: 3, End: 3},   // empty after clip, dropped
		}
	}

	rc := NewRayCastContour(fn, ContourSize{Width: 10, Height: 10})
	got := rc.InterceptsOnLine(0)

	want := []InterceptRange{{Start: 0, End: 5}, {Start: 8, End: 10}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("range[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRayCastContourScaleFactor(t *testing.T) {
	var seen float64
	fn := func(y float64) []InterceptRange {
		seen = y
		return nil
	}

	rc := NewRayCastContour(fn, ContourSize{Width: 10, Height: 10}).WithScale(2.0)
	rc.InterceptsOnLine(3)

	if seen != 6 {
		t.Errorf("intercept function saw y=%v, want 6 (3*2)", seen)
	}
}

func TestBoolSampledContourPointIsInside(t *testing.T) {
	bitmap := []bool{
		true, false, true,
		false, true, false,
	}
	c := NewBoolSampledContour(ContourSize{Width: 3, Height: 2}, bitmap)

	if !c.PointIsInside(ContourPosition{X: 0, Y: 0}) {
		t.Error("(0,0) should be inside")
	}
	if c.PointIsInside(ContourPosition{X: 1, Y: 0}) {
		t.Error("(1,0) should be outside")
	}
	if c.PointIsInside(ContourPosition{X: -1, Y: 0}) {
		t.Error("out of bounds should be outside")
	}
}

func TestBoolSampledContourInterceptsOnLine(t *testing.T) {
	bitmap := []bool{
		true, true, false, true,
	}
	c := NewBoolSampledContour(ContourSize{Width: 4, Height: 1}, bitmap)

	got := c.InterceptsOnLine(0)
	want := []InterceptRange{{Start: 0, End: 2}, {Start: 3, End: 4}}

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("range[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestValidateRangesRejectsOverlap(t *testing.T) {
	ranges := []InterceptRange{{Start: 0, End: 5}, {Start: 3, End: 8}}
	if err := validateRanges(ranges); err == nil {
		t.Error("expected overlapping ranges to be rejected")
	}
}

func TestValidateRangesAcceptsSorted(t *testing.T) {
	ranges := []InterceptRange{{Start: 0, End: 5}, {Start: 5, End: 8}}
	if err := validateRanges(ranges); err != nil {
		t.Errorf("expected valid ranges to be accepted, got %v", err)
	}
}
