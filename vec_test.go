package vectorize

import (
	"math"
	"testing"
)

func vecApprox(v, w Vec2, eps float64) bool {
	return math.Abs(v.X-w.X) < eps && math.Abs(v.Y-w.Y) < eps
}

func TestVec2ArithmeticRoundTrip(t *testing.T) {
	a := V2(3, -4)
	b := V2(-1, 2)

	if got := a.Add(b).Sub(b); !vecApprox(got, a, 1e-12) {
		t.Errorf("Add then Sub = %v, want %v", got, a)
	}
	if got := a.Mul(2).Div(2); !vecApprox(got, a, 1e-12) {
		t.Errorf("Mul then Div = %v, want %v", got, a)
	}
	if got := a.Neg().Neg(); !vecApprox(got, a, 1e-12) {
		t.Errorf("double Neg = %v, want %v", got, a)
	}
}

func TestVec2LengthMatchesPythagorean(t *testing.T) {
	v := V2(3, 4)
	if got := v.Length(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := v.LengthSq(); got != 25 {
		t.Errorf("LengthSq() = %v, want 25", got)
	}
}

func TestVec2NormalizeProducesUnitVector(t *testing.T) {
	v := V2(6, 8)
	n := v.Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Normalize().Length() = %v, want 1", n.Length())
	}
	if !vecApprox(n, V2(0.6, 0.8), 1e-12) {
		t.Errorf("Normalize() = %v, want (0.6, 0.8)", n)
	}
}

func TestVec2NormalizeZeroVectorIsZero(t *testing.T) {
	if got := (Vec2{}).Normalize(); !got.IsZero() {
		t.Errorf("Normalize() of zero vector = %v, want zero", got)
	}
}

func TestVec2PerpIsOrthogonalAndSameLength(t *testing.T) {
	tests := []Vec2{V2(1, 0), V2(0, 1), V2(3, 4), V2(-2, 5)}
	for _, v := range tests {
		p := v.Perp()
		if math.Abs(v.Dot(p)) > 1e-12 {
			t.Errorf("%v . Perp() = %v, want 0", v, v.Dot(p))
		}
		if math.Abs(p.Length()-v.Length()) > 1e-12 {
			t.Errorf("Perp() changed length: %v vs %v", p.Length(), v.Length())
		}
	}
}

func TestVec2RotateByPiOverTwoMatchesPerp(t *testing.T) {
	v := V2(5, 0)
	rotated := v.Rotate(math.Pi / 2)
	if !vecApprox(rotated, v.Perp(), 1e-9) {
		t.Errorf("Rotate(pi/2) = %v, want Perp() = %v", rotated, v.Perp())
	}
}

func TestVec2RotateFullCircleReturnsOriginal(t *testing.T) {
	v := V2(2, -3)
	if got := v.Rotate(2 * math.Pi); !vecApprox(got, v, 1e-9) {
		t.Errorf("Rotate(2*pi) = %v, want %v", got, v)
	}
}

func TestVec2CrossSignIndicatesTurnDirection(t *testing.T) {
	// Turning from +X toward +Y (counter-clockwise) is a positive cross.
	if cross := V2(1, 0).Cross(V2(0, 1)); cross <= 0 {
		t.Errorf("Cross(+X, +Y) = %v, want positive", cross)
	}
	if cross := V2(0, 1).Cross(V2(1, 0)); cross >= 0 {
		t.Errorf("Cross(+Y, +X) = %v, want negative", cross)
	}
}

func TestVec2AngleBetweenPerpendicularVectors(t *testing.T) {
	a := V2(1, 0)
	b := V2(0, 1)
	if got := a.Angle(b); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Errorf("Angle(+X, +Y) = %v, want pi/2", got)
	}
}

func TestVec2Atan2MatchesStandardAngles(t *testing.T) {
	tests := []struct {
		v    Vec2
		want float64
	}{
		{V2(1, 0), 0},
		{V2(0, 1), math.Pi / 2},
		{V2(-1, 0), math.Pi},
		{V2(0, -1), -math.Pi / 2},
	}
	for _, tt := range tests {
		if got := tt.v.Atan2(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Atan2(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestVec2PointConversionRoundTrip(t *testing.T) {
	p := Pt(7, -2)
	v := PointToVec2(p)
	if got := v.ToPoint(); got != p {
		t.Errorf("PointToVec2 then ToPoint = %v, want %v", got, p)
	}
}

func TestVec2ApproxRespectsEpsilon(t *testing.T) {
	a := V2(1.0, 1.0)
	b := V2(1.0+1e-7, 1.0)
	if !a.Approx(b, 1e-6) {
		t.Error("expected vectors within 1e-6 to be approximately equal")
	}
	if a.Approx(b, 1e-9) {
		t.Error("expected vectors differing by 1e-7 to not be approximately equal at 1e-9")
	}
}

// TestCubicBezTangentAgreesWithVec2Rotate exercises Vec2 the way the
// curve-fitting and interior-point stages actually use it: as the
// tangent direction returned by CubicBez.Tangent, rotated to get the
// outward normal consumed elsewhere in the package.
func TestCubicBezTangentAgreesWithVec2Rotate(t *testing.T) {
	c := NewCubicBez(Pt(0, 0), Pt(0, 5), Pt(5, 5), Pt(5, 0))
	tan := c.Tangent(0.5).Normalize()
	rotatedNormal := tan.Rotate(math.Pi / 2)
	normal := c.Normal(0.5)
	if !vecApprox(rotatedNormal, normal, 1e-6) {
		t.Errorf("rotated tangent %v != Normal() %v", rotatedNormal, normal)
	}
}
