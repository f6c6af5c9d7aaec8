package beerxml

import (
	"beer-recipe/core/units"
)

// Fermentable is a <FERMENTABLE> record: grains, sugars and extracts.
type Fermentable struct {
	Name    string          `xml:"NAME" json:"name" validate:"required"`
	Version int             `xml:"VERSION" json:"version" validate:"required"`
	Type    FermentableType `xml:"TYPE" json:"type" validate:"required"`
	Amount  units.Kilograms `xml:"AMOUNT" json:"amount" validate:"gte=0"`

	// Yield is the dry-basis extract as a percent of sucrose.
	Yield units.Percent  `xml:"YIELD" json:"yield" validate:"gte=0,lte=100"`
	Color units.SRMColor `xml:"COLOR" json:"color" validate:"gte=0"`

	// AddAfterBoil marks additions that skip the boil and only count
	// towards original gravity.
	AddAfterBoil   *bool          `xml:"ADD_AFTER_BOIL" json:"add_after_boil,omitempty"`
	Origin         *string        `xml:"ORIGIN" json:"origin,omitempty"`
	Supplier       *string        `xml:"SUPPLIER" json:"supplier,omitempty"`
	Notes          *string        `xml:"NOTES" json:"notes,omitempty"`
	CoarseFineDiff *units.Percent `xml:"COARSE_FINE_DIFF" json:"coarse_fine_diff,omitempty"`
	Moisture       *units.Percent `xml:"MOISTURE" json:"moisture,omitempty"`
	DiastaticPower *float64       `xml:"DIASTATIC_POWER" json:"diastatic_power,omitempty"`
	Protein        *units.Percent `xml:"PROTEIN" json:"protein,omitempty"`
	MaxInBatch     *units.Percent `xml:"MAX_IN_BATCH" json:"max_in_batch,omitempty"`
	RecommendMash  *bool          `xml:"RECOMMEND_MASH" json:"recommend_mash,omitempty"`
	IBUGalPerLb    *float64       `xml:"IBU_GAL_PER_LB" json:"ibu_gal_per_lb,omitempty"`
}

// AfterBoil reports whether the fermentable is added after the boil.
func (f Fermentable) AfterBoil() bool {
	return f.AddAfterBoil != nil && *f.AddAfterBoil
}

// Mashed reports whether the fermentable's extract depends on mash efficiency.
func (f Fermentable) Mashed() bool {
	return f.Type == FermentableTypeGrain || f.Type == FermentableTypeAdjunct
}

// Fermentables wraps the <FERMENTABLES> list.
type Fermentables struct {
	Fermentable []Fermentable `xml:"FERMENTABLE" json:"fermentable" validate:"dive"`
}

// FermentableType classifies a fermentable.
type FermentableType int

const (
	FermentableTypeUnknown FermentableType = iota
	FermentableTypeGrain
	FermentableTypeSugar
	FermentableTypeExtract
	FermentableTypeDryExtract
	FermentableTypeAdjunct
)

var fermentableTypeLabels = labels[FermentableType]{kind: "fermentable type", names: map[FermentableType]string{
	FermentableTypeGrain:      "Grain",
	FermentableTypeSugar:      "Sugar",
	FermentableTypeExtract:    "Extract",
	FermentableTypeDryExtract: "Dry Extract",
	FermentableTypeAdjunct:    "Adjunct",
}}

func (t FermentableType) String() string               { return fermentableTypeLabels.name(t) }
func (t FermentableType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (t *FermentableType) UnmarshalText(b []byte) error {
	return parseInto(t, fermentableTypeLabels, b)
}
