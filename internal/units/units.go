// Package units implements the quantity comparison rules used across the
// inventory, shopping and recipe services. Mass compares in grams, volume
// in milliliters; every other unit (pz, confezione, ...) only compares to
// itself.
package units

import (
	"math"
	"strings"
)

type unitKind string

const (
	kindMass   unitKind = "mass"
	kindVolume unitKind = "volume"
)

type unitDef struct {
	kind   unitKind
	toBase float64
}

var unitTable = map[string]unitDef{
	// mass (base = g)
	"g":  {kind: kindMass, toBase: 1},
	"kg": {kind: kindMass, toBase: 1000},

	// volume (base = ml)
	"ml": {kind: kindVolume, toBase: 1},
	"l":  {kind: kindVolume, toBase: 1000},
}

func resolve(unit string) (unitDef, bool) {
	def, ok := unitTable[strings.ToLower(strings.TrimSpace(unit))]
	return def, ok
}

// Compatible reports whether quantities in the two units can be compared:
// the units are the same (case-insensitive), or both are mass, or both are
// volume. pz against any mass or volume unit is incompatible.
func Compatible(u1, u2 string) bool {
	a, okA := resolve(u1)
	b, okB := resolve(u2)
	if okA && okB {
		return a.kind == b.kind
	}
	return strings.EqualFold(strings.TrimSpace(u1), strings.TrimSpace(u2))
}

// ToBase converts a quantity to its group's base unit: grams for mass,
// milliliters for volume. Unknown units pass through unchanged.
func ToBase(qty float64, unit string) float64 {
	if def, ok := resolve(unit); ok {
		return qty * def.toBase
	}
	return qty
}

// FromBase converts a base-unit quantity back into the given unit.
// Unknown units pass through unchanged.
func FromBase(qty float64, unit string) float64 {
	if def, ok := resolve(unit); ok {
		return qty / def.toBase
	}
	return qty
}

// Covers reports whether the available quantity covers the required one
// once both are expressed in the base unit. Call only with compatible
// units; for incompatible pairs the comparison is undefined.
func Covers(haveQty float64, haveUnit string, needQty float64, needUnit string) bool {
	return ToBase(haveQty, haveUnit) >= ToBase(needQty, needUnit)
}

// Round2 rounds to 2 decimal places, the precision stored after a partial
// consumption.
func Round2(qty float64) float64 {
	return math.Round(qty*100) / 100
}
