package vecmath

import (
	"math"
	"math/rand"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, -1}

	if got, want := a.Add(b), (Vec2{4, 1}); got != want {
		t.Errorf("Add: got %v, want %v", got, want)
	}
	if got, want := a.Sub(b), (Vec2{-2, 3}); got != want {
		t.Errorf("Sub: got %v, want %v", got, want)
	}
	if got, want := a.Scale(2), (Vec2{2, 4}); got != want {
		t.Errorf("Scale: got %v, want %v", got, want)
	}
	if got, want := a.Dot(b), 1.0; got != want {
		t.Errorf("Dot: got %v, want %v", got, want)
	}
}

func TestVec2Norm(t *testing.T) {
	v := Vec2{3, 4}
	if got, want := v.SquaredNorm(), 25.0; got != want {
		t.Errorf("SquaredNorm: got %v, want %v", got, want)
	}
	if got, want := v.Norm(), 5.0; got != want {
		t.Errorf("Norm: got %v, want %v", got, want)
	}
}

func TestVec2Normalized(t *testing.T) {
	v := Vec2{0, 0}
	if got := v.Normalized(); got != (Vec2{0, 0}) {
		t.Errorf("Normalized of zero vector: got %v, want zero", got)
	}

	w := Vec2{3, 4}
	n := w.Normalized()
	if !ApproxEq(n.Norm(), 1.0) {
		t.Errorf("Normalized: norm = %v, want 1", n.Norm())
	}
}

func TestVec2WithNorm(t *testing.T) {
	w := Vec2{3, 4}
	got := w.WithNorm(10)
	if !ApproxEq(got.Norm(), 10) {
		t.Errorf("WithNorm: norm = %v, want 10", got.Norm())
	}
}

func TestRandomIsUnitLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		v := Random(rng)
		if !ApproxEq(v.Norm(), 1.0) {
			t.Errorf("Random: norm = %v, want 1", v.Norm())
		}
	}
}

func TestRandomIsDeterministic(t *testing.T) {
	a := Random(rand.New(rand.NewSource(42)))
	b := Random(rand.New(rand.NewSource(42)))
	if a != b {
		t.Errorf("Random with same seed: got %v and %v, want equal", a, b)
	}
}

func TestApproxPredicates(t *testing.T) {
	if !ApproxEq(1.0, 1.0+1e-10) {
		t.Errorf("ApproxEq should treat 1.0 and 1.0+1e-10 as equal")
	}
	if ApproxEq(1.0, 1.1) {
		t.Errorf("ApproxEq should not treat 1.0 and 1.1 as equal")
	}
	if ApproxLt(1.0, 1.0+1e-10) {
		t.Errorf("ApproxLt should treat near-equal values as not strictly less")
	}
	if !ApproxLt(1.0, 2.0) {
		t.Errorf("ApproxLt(1.0, 2.0) should be true")
	}
	if !ApproxGt(2.0, 1.0) {
		t.Errorf("ApproxGt(2.0, 1.0) should be true")
	}
}

func TestApproxRound(t *testing.T) {
	if got := ApproxRound(1.0+1e-10, 1.0); got != 1.0 {
		t.Errorf("ApproxRound: got %v, want 1.0", got)
	}
	if got := ApproxRound(1.5, 1.0); got != 1.5 {
		t.Errorf("ApproxRound: got %v, want 1.5 unchanged", got)
	}
}

func TestSolveQuadraticNoRoots(t *testing.T) {
	roots := SolveQuadratic(1, 0, 1) // t^2 + 1 = 0
	if roots.Count != 0 {
		t.Errorf("expected 0 roots, got %d", roots.Count)
	}
}

func TestSolveQuadraticOneRoot(t *testing.T) {
	roots := SolveQuadratic(1, -2, 1) // (t-1)^2
	if roots.Count != 1 {
		t.Fatalf("expected 1 root, got %d", roots.Count)
	}
	if !ApproxEq(roots.R0, 1.0) {
		t.Errorf("expected root 1.0, got %v", roots.R0)
	}
}

func TestSolveQuadraticTwoRoots(t *testing.T) {
	roots := SolveQuadratic(1, -3, 2) // (t-1)(t-2)
	if roots.Count != 2 {
		t.Fatalf("expected 2 roots, got %d", roots.Count)
	}
	lo, hi := roots.R0, roots.R1
	if lo > hi {
		lo, hi = hi, lo
	}
	if !ApproxEq(lo, 1.0) || !ApproxEq(hi, 2.0) {
		t.Errorf("expected roots {1, 2}, got {%v, %v}", lo, hi)
	}
}

func TestSolveQuadraticSymmetry(t *testing.T) {
	// a(t-h)^2 shifted: roots symmetric about h.
	roots := SolveQuadratic(2, -8, 6) // 2t^2 -8t +6 = 2(t-1)(t-3)
	if roots.Count != 2 {
		t.Fatalf("expected 2 roots, got %d", roots.Count)
	}
	if !ApproxEq(math.Abs(roots.R0-roots.R1), 2.0) {
		t.Errorf("expected root spread of 2, got %v", math.Abs(roots.R0-roots.R1))
	}
}
