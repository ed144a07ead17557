package units_test

import (
	"testing"

	"sorteat-backend/internal/units"
)

func TestCompatibleSymmetry(t *testing.T) {
	t.Parallel()
	pairs := []struct{ u1, u2 string }{
		{"g", "kg"},
		{"ml", "L"},
		{"pz", "g"},
		{"pz", "pz"},
		{"confezione", "ml"},
		{"kg", "L"},
	}
	for _, p := range pairs {
		if units.Compatible(p.u1, p.u2) != units.Compatible(p.u2, p.u1) {
			t.Fatalf("compatibility not symmetric for %q/%q", p.u1, p.u2)
		}
	}
}

func TestCompatibleGroups(t *testing.T) {
	t.Parallel()
	if !units.Compatible("g", "kg") {
		t.Fatalf("g and kg must be compatible")
	}
	if !units.Compatible("ml", "L") {
		t.Fatalf("ml and L must be compatible")
	}
	if !units.Compatible("PZ", "pz") {
		t.Fatalf("identical units must be compatible case-insensitively")
	}
	if units.Compatible("pz", "g") {
		t.Fatalf("pz and g must be incompatible")
	}
	if units.Compatible("kg", "ml") {
		t.Fatalf("mass and volume must be incompatible")
	}
	if units.Compatible("confezione", "pz") {
		t.Fatalf("distinct piece units must be incompatible")
	}
}

func TestToBaseKiloEquivalence(t *testing.T) {
	t.Parallel()
	for _, x := range []float64{0, 0.3, 1, 2.5, 1000} {
		if units.ToBase(x, "kg") != units.ToBase(1000*x, "g") {
			t.Fatalf("kg/g base mismatch for %v", x)
		}
		if units.ToBase(x, "L") != units.ToBase(1000*x, "ml") {
			t.Fatalf("L/ml base mismatch for %v", x)
		}
	}
}

func TestToBasePassThrough(t *testing.T) {
	t.Parallel()
	if got := units.ToBase(3, "pz"); got != 3 {
		t.Fatalf("expected pz to pass through, got %v", got)
	}
	if got := units.ToBase(2, "confezione"); got != 2 {
		t.Fatalf("expected confezione to pass through, got %v", got)
	}
}

func TestCovers(t *testing.T) {
	t.Parallel()
	// 300 g covers 0.3 kg exactly.
	if !units.Covers(300, "g", 0.3, "kg") {
		t.Fatalf("300 g must cover 0.3 kg")
	}
	// 1 L does not cover 1500 ml.
	if units.Covers(1, "L", 1500, "ml") {
		t.Fatalf("1 L must not cover 1500 ml")
	}
	if !units.Covers(2, "pz", 2, "pz") {
		t.Fatalf("2 pz must cover 2 pz")
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()
	if got := units.Round2(0.456); got != 0.46 {
		t.Fatalf("expected 0.46, got %v", got)
	}
	if got := units.Round2(99.999); got != 100 {
		t.Fatalf("expected 100, got %v", got)
	}
}
