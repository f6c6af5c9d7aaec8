package recipe

import (
	"slices"

	"beer-recipe/core/beerxml"
	"beer-recipe/core/ibu"
	"beer-recipe/core/units"
)

// Measurement carries gravities read off a hydrometer rather than from the
// recipe document. Nil fields were not measured.
type Measurement struct {
	PreBoilGravity  *units.SpecificGravity
	OriginalGravity *units.SpecificGravity
	FinalGravity    *units.SpecificGravity
}

// Option adjusts a recipe while it is normalized.
type Option func(*Recipe)

// WithMeasurement applies measured gravities. Measured values take
// precedence over the document's.
func WithMeasurement(m Measurement) Option {
	return func(r *Recipe) {
		if m.PreBoilGravity != nil {
			r.PreBoilGravity = m.PreBoilGravity
		}
		if m.OriginalGravity != nil {
			r.OriginalGravity = m.OriginalGravity
		}
		if m.FinalGravity != nil {
			r.FinalGravity = m.FinalGravity
		}
	}
}

// Normalize builds a Recipe from a decoded BeerXML record. Ingredient lists
// are copied out of their wrappers, so later changes to src do not reach the
// recipe. No physical plausibility checks are made.
func Normalize(src *beerxml.Recipe, opts ...Option) *Recipe {
	method := ibu.DefaultMethod
	if src.IBUMethod != nil {
		method = *src.IBUMethod
	}

	r := &Recipe{
		Name:       src.Name,
		Type:       src.Type,
		Style:      src.Style,
		Equipment:  cloneEquipment(src.Equipment),
		Brewer:     src.Brewer,
		AsstBrewer: src.AsstBrewer,
		BatchSize:  src.BatchSize,
		Efficiency: src.Efficiency,
		Boil: Boil{
			PreVolume: src.BoilSize,
			BoilTime:  src.BoilTime,
		},
		Mash:            cloneMash(src.Mash),
		Fermentation:    fermentationOf(src),
		Carbonation:     carbonationOf(src),
		OriginalGravity: src.OG,
		FinalGravity:    src.FG,
		Hops:            slices.Clone(src.Hops.Hop),
		Fermentables:    slices.Clone(src.Fermentables.Fermentable),
		Yeasts:          slices.Clone(src.Yeasts.Yeast),
		Waters:          slices.Clone(src.Waters.Water),
		Miscs:           slices.Clone(src.Miscs.Misc),
		Notes:           src.Notes,
		TasteNotes:      src.TasteNotes,
		TasteRating:     src.TasteRating,
		Date:            src.Date,
		IBUMethod:       method,
		Source: BeerXMLSource{
			Version:   src.Version,
			IBUMethod: src.IBUMethod,
			OG:        src.OG,
			FG:        src.FG,
		},
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

func cloneEquipment(e *beerxml.Equipment) *beerxml.Equipment {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}

func cloneMash(m beerxml.Mash) Mash {
	m.MashSteps.MashStep = slices.Clone(m.MashSteps.MashStep)
	return m
}
