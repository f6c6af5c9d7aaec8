package recipe

import (
	"beer-recipe/core/units"
	"beer-recipe/internal/errors"
)

// sucroseExtract is the gravity points one kilogram of sucrose gives in one
// liter of wort (46.21 points per pound per gallon).
const sucroseExtract = 385.67

// ResolvedOriginalGravity is the measured original gravity, or the estimate
// when none was measured.
func (r *Recipe) ResolvedOriginalGravity() (units.SpecificGravity, error) {
	if r.OriginalGravity != nil {
		return *r.OriginalGravity, nil
	}
	return r.EstimatedOG()
}

// ResolvedPreBoilGravity is the measured pre-boil gravity, or the estimate
// when none was measured.
func (r *Recipe) ResolvedPreBoilGravity() (units.SpecificGravity, error) {
	if r.PreBoilGravity != nil {
		return *r.PreBoilGravity, nil
	}
	return r.EstimatedPreBoilGravity()
}

// EstimatedOG estimates original gravity from every fermentable dissolved in
// the batch volume.
func (r *Recipe) EstimatedOG() (units.SpecificGravity, error) {
	return r.estimateGravity("original gravity", r.BatchSize, func(Fermentable) bool { return true })
}

// EstimatedPreBoilGravity estimates pre-boil gravity from the fermentables
// that go into the boil, dissolved in the boil's pre-volume.
func (r *Recipe) EstimatedPreBoilGravity() (units.SpecificGravity, error) {
	return r.estimateGravity("pre-boil gravity", r.Boil.PreVolume, func(f Fermentable) bool { return !f.AfterBoil() })
}

// estimateGravity applies the extract yield of each included fermentable.
// Grain and adjuncts are scaled by brewhouse efficiency; sugars and extracts
// dissolve completely.
func (r *Recipe) estimateGravity(quantity string, volume units.Liters, include func(Fermentable) bool) (units.SpecificGravity, error) {
	if len(r.Fermentables) == 0 {
		return 0, errors.EstimationUnavailable(quantity, "recipe has no fermentables")
	}
	if volume <= 0 {
		return 0, errors.Newf(errors.TypeInput, "%s volume must be positive, got %g L", quantity, float64(volume))
	}

	var points float64
	for _, f := range r.Fermentables {
		if !include(f) {
			continue
		}
		efficiency := 1.0
		if f.Mashed() {
			if r.Efficiency <= 0 {
				return 0, errors.EstimationUnavailable(quantity, "no brewhouse efficiency for "+f.Name)
			}
			efficiency = r.Efficiency.Fraction()
		}
		points += float64(f.Amount) * f.Yield.Fraction() * efficiency * sucroseExtract / float64(volume)
	}

	if points <= 0 {
		return 0, errors.EstimationUnavailable(quantity, "fermentables carry no extract")
	}
	return units.FromPoints(points), nil
}
