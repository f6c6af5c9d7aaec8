package recipe

import (
	"beer-recipe/core/beerxml"
	"beer-recipe/core/ibu"
	"beer-recipe/core/units"
	"beer-recipe/internal/errors"
)

// HopContribution is one hop's share of the recipe's bitterness.
type HopContribution struct {
	// Index is the hop's position in Recipe.Hops.
	Index     int
	Hop       Hop
	Bittering bool

	// Volume and Gravity are the averages over the hop's exposure window.
	// Both are zero for non-bittering hops.
	Volume  units.Liters
	Gravity units.SpecificGravity
	IBU     units.IBU
}

// TotalIBU sums the bitterness of every bittering hop. It fails outright if
// any single contribution cannot be computed.
func (r *Recipe) TotalIBU() (units.IBU, error) {
	var total units.IBU
	for i, hop := range r.Hops {
		if !hop.Bittering() {
			continue
		}
		v, err := r.HopIBU(hop)
		if err != nil {
			return 0, withHop(err, i, hop)
		}
		total += v
	}
	return total, nil
}

// HopIBU is the bitterness one hop addition contributes. Aroma and dry hop
// additions contribute nothing.
func (r *Recipe) HopIBU(hop Hop) (units.IBU, error) {
	c, err := r.contribution(hop)
	if err != nil {
		return 0, err
	}
	return c.IBU, nil
}

// Contributions breaks the recipe's bitterness down per hop, for every hop
// in collection order.
func (r *Recipe) Contributions() ([]HopContribution, error) {
	out := make([]HopContribution, 0, len(r.Hops))
	for i, hop := range r.Hops {
		c, err := r.contribution(hop)
		if err != nil {
			return nil, withHop(err, i, hop)
		}
		c.Index = i
		out = append(out, c)
	}
	return out, nil
}

func (r *Recipe) contribution(hop Hop) (HopContribution, error) {
	c := HopContribution{Hop: hop, Bittering: hop.Bittering()}
	if !c.Bittering {
		return c, nil
	}
	if !r.IBUMethod.Valid() {
		return c, errors.MissingBitternessMethod()
	}

	volume, err := r.AverageBoilVolume(hop.Time)
	if err != nil {
		return c, err
	}
	gravity, err := r.AverageSpecificGravity(hop.Time)
	if err != nil {
		return c, err
	}
	v, err := ibu.Calculate(r.IBUMethod, hop.Amount, hop.Alpha, volume, hop.Time, gravity)
	if err != nil {
		return c, err
	}

	c.Volume, c.Gravity, c.IBU = volume, gravity, v
	return c, nil
}

// AverageBoilVolume is the mean kettle volume while a hop with time minutes
// left in the boil is exposed. The kettle shrinks linearly from the boil's
// pre-volume to the batch size.
func (r *Recipe) AverageBoilVolume(time units.Minutes) (units.Liters, error) {
	elapsed, err := r.Boil.elapsedAt(time)
	if err != nil {
		return 0, err
	}
	line := r.Boil.line(float64(r.Boil.PreVolume), float64(r.BatchSize))
	return units.Liters(line.windowMean(elapsed)), nil
}

// AverageSpecificGravity is the mean wort gravity over the same window as
// AverageBoilVolume, rising from pre-boil to original gravity. Gravities
// that were not measured are estimated from the fermentables.
func (r *Recipe) AverageSpecificGravity(time units.Minutes) (units.SpecificGravity, error) {
	elapsed, err := r.Boil.elapsedAt(time)
	if err != nil {
		return 0, err
	}
	pre, err := r.ResolvedPreBoilGravity()
	if err != nil {
		return 0, err
	}
	og, err := r.ResolvedOriginalGravity()
	if err != nil {
		return 0, err
	}
	line := r.Boil.line(float64(pre), float64(og))
	return units.SpecificGravity(line.windowMean(elapsed)), nil
}

// MaxHopRate is the largest single hop addition per liter of batch, dry hops
// excluded. ok is false when no hop qualifies.
func (r *Recipe) MaxHopRate() (rate float64, hop Hop, ok bool, err error) {
	if r.BatchSize <= 0 {
		return 0, Hop{}, false, errors.Newf(errors.TypeInput, "batch size must be positive, got %g L", float64(r.BatchSize))
	}
	for _, h := range r.Hops {
		if h.Use == beerxml.HopUseDryHop {
			continue
		}
		v := float64(h.Amount) / float64(r.BatchSize)
		if !ok || v > rate {
			rate, hop, ok = v, h, true
		}
	}
	return rate, hop, ok, nil
}

// elapsedAt converts minutes left in the boil into minutes since the boil
// started. Additions longer than the boil go in at the start.
func (b Boil) elapsedAt(time units.Minutes) (float64, error) {
	if b.BoilTime <= 0 {
		return 0, errors.InvalidBoilDuration(float64(b.BoilTime))
	}
	elapsed := float64(b.BoilTime - time)
	return min(max(elapsed, 0), float64(b.BoilTime)), nil
}

func (b Boil) line(start, end float64) segment {
	return segment{x0: 0, x1: float64(b.BoilTime), y0: start, y1: end}
}

func withHop(err error, index int, hop Hop) error {
	if e, ok := err.(*errors.Error); ok {
		return e.WithContext("hop", hop.Name).WithContext("hop_index", index)
	}
	return err
}
