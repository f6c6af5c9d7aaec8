// Package recipe holds the normalized recipe aggregate and the bitterness
// engine that runs over it.
//
// A Recipe is built once by Normalize from a decoded BeerXML record and is
// read-only afterwards. Boil, mash, fermentation and carbonation data are
// grouped into explicit process stages, and the bitterness method is always
// resolved to a concrete value. What the document itself declared is kept
// in Source.
package recipe

import (
	"beer-recipe/core/beerxml"
	"beer-recipe/core/ibu"
	"beer-recipe/core/units"
)

// Ingredient and reference records are shared with the decoder.
type (
	Hop         = beerxml.Hop
	Fermentable = beerxml.Fermentable
	Yeast       = beerxml.Yeast
	Water       = beerxml.Water
	Misc        = beerxml.Misc
	Style       = beerxml.Style
	Equipment   = beerxml.Equipment
)

// Recipe is the normalized recipe.
type Recipe struct {
	Name       string
	Type       beerxml.RecipeType
	Style      Style
	Equipment  *Equipment
	Brewer     string
	AsstBrewer *string

	// BatchSize is the volume going into the fermenter, which is also the
	// volume at the end of the boil.
	BatchSize  units.Liters
	Efficiency units.Percent

	Boil         Boil
	Mash         Mash
	Fermentation Fermentation
	Carbonation  Carbonation

	// Measured gravities. Nil means unmeasured; the bitterness engine then
	// estimates the value from the fermentable bill.
	PreBoilGravity  *units.SpecificGravity
	OriginalGravity *units.SpecificGravity
	FinalGravity    *units.SpecificGravity

	Hops         []Hop
	Fermentables []Fermentable
	Yeasts       []Yeast
	Waters       []Water
	Miscs        []Misc

	Notes       *string
	TasteNotes  *string
	TasteRating *float64
	Date        *string

	// IBUMethod is the resolved bitterness method. Normalize never leaves it
	// as ibu.MethodUnknown.
	IBUMethod ibu.Method

	Source BeerXMLSource
}

// BitteringHops returns the hops that count towards bitterness, in collection
// order.
func (r *Recipe) BitteringHops() []Hop {
	var hops []Hop
	for _, h := range r.Hops {
		if h.Bittering() {
			hops = append(hops, h)
		}
	}
	return hops
}
