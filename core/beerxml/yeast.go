package beerxml

import (
	"beer-recipe/core/units"
)

// Yeast is a <YEAST> record.
type Yeast struct {
	Name    string    `xml:"NAME" json:"name" validate:"required"`
	Version int       `xml:"VERSION" json:"version" validate:"required"`
	Type    YeastType `xml:"TYPE" json:"type" validate:"required"`
	Form    YeastForm `xml:"FORM" json:"form" validate:"required"`

	// Amount is liters unless AmountIsWeight, then kilograms.
	Amount         float64 `xml:"AMOUNT" json:"amount" validate:"gte=0"`
	AmountIsWeight *bool   `xml:"AMOUNT_IS_WEIGHT" json:"amount_is_weight,omitempty"`

	Laboratory     *string            `xml:"LABORATORY" json:"laboratory,omitempty"`
	ProductID      *string            `xml:"PRODUCT_ID" json:"product_id,omitempty"`
	MinTemperature *units.Celsius     `xml:"MIN_TEMPERATURE" json:"min_temperature,omitempty"`
	MaxTemperature *units.Celsius     `xml:"MAX_TEMPERATURE" json:"max_temperature,omitempty"`
	Flocculation   *YeastFlocculation `xml:"FLOCCULATION" json:"flocculation,omitempty"`
	Attenuation    *units.Percent     `xml:"ATTENUATION" json:"attenuation,omitempty"`
	Notes          *string            `xml:"NOTES" json:"notes,omitempty"`
	BestFor        *string            `xml:"BEST_FOR" json:"best_for,omitempty"`
	TimesCultured  *int               `xml:"TIMES_CULTURED" json:"times_cultured,omitempty"`
	MaxReuse       *int               `xml:"MAX_REUSE" json:"max_reuse,omitempty"`
	AddToSecondary *bool              `xml:"ADD_TO_SECONDARY" json:"add_to_secondary,omitempty"`
}

// Yeasts wraps the <YEASTS> list.
type Yeasts struct {
	Yeast []Yeast `xml:"YEAST" json:"yeast" validate:"dive"`
}

// YeastType is the kind of beverage a strain is meant for.
type YeastType int

const (
	YeastTypeUnknown YeastType = iota
	YeastTypeAle
	YeastTypeLager
	YeastTypeWheat
	YeastTypeWine
	YeastTypeChampagne
)

var yeastTypeLabels = labels[YeastType]{kind: "yeast type", names: map[YeastType]string{
	YeastTypeAle:       "Ale",
	YeastTypeLager:     "Lager",
	YeastTypeWheat:     "Wheat",
	YeastTypeWine:      "Wine",
	YeastTypeChampagne: "Champagne",
}}

func (t YeastType) String() string                { return yeastTypeLabels.name(t) }
func (t YeastType) MarshalText() ([]byte, error)  { return []byte(t.String()), nil }
func (t *YeastType) UnmarshalText(b []byte) error { return parseInto(t, yeastTypeLabels, b) }

// YeastForm is how a culture is packaged.
type YeastForm int

const (
	YeastFormUnknown YeastForm = iota
	YeastFormLiquid
	YeastFormDry
	YeastFormSlant
	YeastFormCulture
)

var yeastFormLabels = labels[YeastForm]{kind: "yeast form", names: map[YeastForm]string{
	YeastFormLiquid:  "Liquid",
	YeastFormDry:     "Dry",
	YeastFormSlant:   "Slant",
	YeastFormCulture: "Culture",
}}

func (f YeastForm) String() string                { return yeastFormLabels.name(f) }
func (f YeastForm) MarshalText() ([]byte, error)  { return []byte(f.String()), nil }
func (f *YeastForm) UnmarshalText(b []byte) error { return parseInto(f, yeastFormLabels, b) }

// YeastFlocculation is how readily a strain drops out of suspension.
type YeastFlocculation int

const (
	FlocculationUnknown YeastFlocculation = iota
	FlocculationLow
	FlocculationMedium
	FlocculationHigh
	FlocculationVeryHigh
)

var flocculationLabels = labels[YeastFlocculation]{kind: "yeast flocculation", names: map[YeastFlocculation]string{
	FlocculationLow:      "Low",
	FlocculationMedium:   "Medium",
	FlocculationHigh:     "High",
	FlocculationVeryHigh: "Very High",
}}

func (f YeastFlocculation) String() string               { return flocculationLabels.name(f) }
func (f YeastFlocculation) MarshalText() ([]byte, error) { return []byte(f.String()), nil }
func (f *YeastFlocculation) UnmarshalText(b []byte) error {
	return parseInto(f, flocculationLabels, b)
}
