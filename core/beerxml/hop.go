package beerxml

import (
	"beer-recipe/core/units"
)

// Hop is a <HOP> record.
type Hop struct {
	Name    string          `xml:"NAME" json:"name" validate:"required"`
	Version int             `xml:"VERSION" json:"version" validate:"required"`
	Alpha   units.Percent   `xml:"ALPHA" json:"alpha" validate:"gte=0,lte=100"`
	Amount  units.Kilograms `xml:"AMOUNT" json:"amount" validate:"gte=0"`
	Use     HopUse          `xml:"USE" json:"use" validate:"required"`

	// Time is minutes in the boil or mash for most uses. Dry hop additions
	// carry their contact time here too; it never enters bitterness math.
	Time units.Minutes `xml:"TIME" json:"time" validate:"gte=0"`

	Notes *string        `xml:"NOTES" json:"notes,omitempty"`
	Type  *HopType       `xml:"TYPE" json:"type,omitempty"`
	Form  *HopForm       `xml:"FORM" json:"form,omitempty"`
	Beta  *units.Percent `xml:"BETA" json:"beta,omitempty"`

	// HSI is the percentage of alpha lost after six months of storage.
	HSI           *units.Percent `xml:"HSI" json:"hsi,omitempty"`
	Origin        *string        `xml:"ORIGIN" json:"origin,omitempty"`
	Substitutes   *string        `xml:"SUBSTITUTES" json:"substitutes,omitempty"`
	Humulene      *units.Percent `xml:"HUMULENE" json:"humulene,omitempty"`
	Caryophyllene *units.Percent `xml:"CARYOPHYLLENE" json:"caryophyllene,omitempty"`
	Cohumulone    *units.Percent `xml:"COHUMULONE" json:"cohumulone,omitempty"`
	Myrcene       *units.Percent `xml:"MYRCENE" json:"myrcene,omitempty"`
}

// Bittering reports whether the addition isomerizes in hot wort. Aroma and
// dry hop additions do not count towards bitterness.
func (h Hop) Bittering() bool {
	return h.Use != HopUseAroma && h.Use != HopUseDryHop
}

// Hops wraps the <HOPS> list.
type Hops struct {
	Hop []Hop `xml:"HOP" json:"hop" validate:"dive"`
}

// HopUse is how a hop is added.
type HopUse int

const (
	HopUseUnknown HopUse = iota
	HopUseBoil
	HopUseDryHop
	HopUseMash
	HopUseFirstWort
	HopUseAroma
)

var hopUseLabels = labels[HopUse]{kind: "hop use", names: map[HopUse]string{
	HopUseBoil:      "Boil",
	HopUseDryHop:    "Dry Hop",
	HopUseMash:      "Mash",
	HopUseFirstWort: "First Wort",
	HopUseAroma:     "Aroma",
}}

func (u HopUse) String() string                { return hopUseLabels.name(u) }
func (u HopUse) MarshalText() ([]byte, error)  { return []byte(u.String()), nil }
func (u *HopUse) UnmarshalText(b []byte) error { return parseInto(u, hopUseLabels, b) }

// HopType is the intended purpose of a hop variety.
type HopType int

const (
	HopTypeUnknown HopType = iota
	HopTypeBittering
	HopTypeAroma
	HopTypeBoth
)

var hopTypeLabels = labels[HopType]{kind: "hop type", names: map[HopType]string{
	HopTypeBittering: "Bittering",
	HopTypeAroma:     "Aroma",
	HopTypeBoth:      "Both",
}}

func (t HopType) String() string                { return hopTypeLabels.name(t) }
func (t HopType) MarshalText() ([]byte, error)  { return []byte(t.String()), nil }
func (t *HopType) UnmarshalText(b []byte) error { return parseInto(t, hopTypeLabels, b) }

// HopForm is the physical form of a hop.
type HopForm int

const (
	HopFormUnknown HopForm = iota
	HopFormPellet
	HopFormPlug
	HopFormLeaf
)

var hopFormLabels = labels[HopForm]{kind: "hop form", names: map[HopForm]string{
	HopFormPellet: "Pellet",
	HopFormPlug:   "Plug",
	HopFormLeaf:   "Leaf",
}}

func (f HopForm) String() string                { return hopFormLabels.name(f) }
func (f HopForm) MarshalText() ([]byte, error)  { return []byte(f.String()), nil }
func (f *HopForm) UnmarshalText(b []byte) error { return parseInto(f, hopFormLabels, b) }
