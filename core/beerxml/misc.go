package beerxml

import (
	"beer-recipe/core/units"
)

// Misc is a <MISC> record: spices, finings, water agents and the like that do
// not change gravity.
type Misc struct {
	Name    string        `xml:"NAME" json:"name" validate:"required"`
	Version int           `xml:"VERSION" json:"version" validate:"required"`
	Type    MiscType      `xml:"TYPE" json:"type" validate:"required"`
	Use     MiscUse       `xml:"USE" json:"use" validate:"required"`
	Time    units.Minutes `xml:"TIME" json:"time" validate:"gte=0"`

	// Amount is kilograms when AmountIsWeight, liters otherwise.
	Amount         float64 `xml:"AMOUNT" json:"amount" validate:"gte=0"`
	AmountIsWeight *bool   `xml:"AMOUNT_IS_WEIGHT" json:"amount_is_weight,omitempty"`
	UseFor         *string `xml:"USE_FOR" json:"use_for,omitempty"`
	Notes          *string `xml:"NOTES" json:"notes,omitempty"`
}

// Miscs wraps the <MISCS> list.
type Miscs struct {
	Misc []Misc `xml:"MISC" json:"misc" validate:"dive"`
}

type MiscType int

const (
	MiscTypeUnknown MiscType = iota
	MiscTypeSpice
	MiscTypeFining
	MiscTypeWaterAgent
	MiscTypeHerb
	MiscTypeFlavor
	MiscTypeOther
)

var miscTypeLabels = labels[MiscType]{kind: "misc type", names: map[MiscType]string{
	MiscTypeSpice:      "Spice",
	MiscTypeFining:     "Fining",
	MiscTypeWaterAgent: "Water Agent",
	MiscTypeHerb:       "Herb",
	MiscTypeFlavor:     "Flavor",
	MiscTypeOther:      "Other",
}}

func (t MiscType) String() string                { return miscTypeLabels.name(t) }
func (t MiscType) MarshalText() ([]byte, error)  { return []byte(t.String()), nil }
func (t *MiscType) UnmarshalText(b []byte) error { return parseInto(t, miscTypeLabels, b) }

type MiscUse int

const (
	MiscUseUnknown MiscUse = iota
	MiscUseBoil
	MiscUseMash
	MiscUsePrimary
	MiscUseSecondary
	MiscUseBottling
)

var miscUseLabels = labels[MiscUse]{kind: "misc use", names: map[MiscUse]string{
	MiscUseBoil:      "Boil",
	MiscUseMash:      "Mash",
	MiscUsePrimary:   "Primary",
	MiscUseSecondary: "Secondary",
	MiscUseBottling:  "Bottling",
}}

func (u MiscUse) String() string                { return miscUseLabels.name(u) }
func (u MiscUse) MarshalText() ([]byte, error)  { return []byte(u.String()), nil }
func (u *MiscUse) UnmarshalText(b []byte) error { return parseInto(u, miscUseLabels, b) }
