package ibu

import (
	"math"

	"beer-recipe/core/units"
	"beer-recipe/internal/errors"
)

// Calculate returns the bitterness a hop addition contributes.
//
//   - amount: hop mass
//   - alpha: alpha-acid content of the hop
//   - volume: average wort volume over the addition's exposure
//   - time: minutes the hop spends in the boil
//   - gravity: average wort gravity over the same exposure
func Calculate(
	method Method,
	amount units.Kilograms,
	alpha units.Percent,
	volume units.Liters,
	time units.Minutes,
	gravity units.SpecificGravity,
) (units.IBU, error) {
	if !method.Valid() {
		return 0, errors.MissingBitternessMethod()
	}
	if volume <= 0 {
		return 0, errors.Newf(errors.TypeInput, "wort volume must be positive, got %g L", float64(volume))
	}

	// mg of alpha acid per liter of wort.
	alphaMgPerLiter := alpha.Fraction() * float64(amount) * 1e6 / float64(volume)

	switch method {
	case MethodTinseth:
		return units.IBU(TinsethUtilization(time, gravity) * alphaMgPerLiter), nil
	case MethodRager:
		return units.IBU(RagerUtilization(time) * alphaMgPerLiter / ragerGravityCorrection(gravity)), nil
	case MethodGaretz:
		return garetz(alphaMgPerLiter, time, gravity), nil
	}
	return 0, errors.MissingBitternessMethod()
}

// TinsethUtilization is the fraction of alpha acid isomerized after time
// minutes in wort of the given gravity.
func TinsethUtilization(time units.Minutes, gravity units.SpecificGravity) float64 {
	bigness := 1.65 * math.Pow(0.000125, float64(gravity)-1)
	boilTimeFactor := (1 - math.Exp(-0.04*float64(time))) / 4.15
	return bigness * boilTimeFactor
}

// RagerUtilization is Rager's utilization fraction for time minutes.
func RagerUtilization(time units.Minutes) float64 {
	return (18.11 + 13.86*math.Tanh((float64(time)-31.32)/18.27)) / 100
}

// ragerGravityCorrection penalizes worts above 1.050.
func ragerGravityCorrection(gravity units.SpecificGravity) float64 {
	if gravity <= 1.050 {
		return 1
	}
	return 1 + (float64(gravity)-1.050)/0.2
}

// GaretzUtilization is Garetz's utilization fraction for time minutes; short
// additions isomerize nothing.
func GaretzUtilization(time units.Minutes) float64 {
	u := 7.2994 + 15.0746*math.Tanh((float64(time)-21.86)/24.71)
	if u < 0 {
		return 0
	}
	return u / 100
}

// garetz solves IBU = base / (1 + IBU/260) for the hopping-rate factor,
// where base already carries the gravity factor. The positive root is
// 130 * (sqrt(1 + base/65) - 1). Sea-level boiling is assumed.
func garetz(alphaMgPerLiter float64, time units.Minutes, gravity units.SpecificGravity) units.IBU {
	base := GaretzUtilization(time) * alphaMgPerLiter / ragerGravityCorrection(gravity)
	if base <= 0 {
		return 0
	}
	return units.IBU(130 * (math.Sqrt(1+base/65) - 1))
}
