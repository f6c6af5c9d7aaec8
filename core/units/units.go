// Package units defines the semantic numeric types used across recipes.
// They tag meaning only; no conversion or range is enforced.
package units

// Liters is a volume.
type Liters float64

// Kilograms is a mass.
type Kilograms float64

// Celsius is a temperature.
type Celsius float64

// Minutes is a duration.
type Minutes float64

// Days is a duration used by fermentation and aging stages.
type Days float64

// SpecificGravity is the density of wort or beer relative to water.
type SpecificGravity float64

// Points returns gravity points, e.g. 1.050 -> 50.
func (g SpecificGravity) Points() float64 {
	return (float64(g) - 1) * 1000
}

// FromPoints converts gravity points back to a specific gravity.
func FromPoints(points float64) SpecificGravity {
	return SpecificGravity(1 + points/1000)
}

// Percent is a value on a 0-100 scale.
type Percent float64

// Fraction returns p on a 0-1 scale.
func (p Percent) Fraction() float64 {
	return float64(p) / 100
}

// IBU is International Bitterness Units.
type IBU float64

// SRMColor is a beer color in SRM (Lovibond for grains).
type SRMColor float64

// VolumesCO2 is carbonation in volumes of dissolved CO2.
type VolumesCO2 float64

// PartsPerMillion is a mineral concentration.
type PartsPerMillion float64

// PH is acidity.
type PH float64
