package beerxml

import (
	"beer-recipe/core/units"
)

// Style is a <STYLE> record from a style guide such as BJCP.
type Style struct {
	Name           string    `xml:"NAME" json:"name" validate:"required"`
	Category       string    `xml:"CATEGORY" json:"category" validate:"required"`
	Version        int       `xml:"VERSION" json:"version" validate:"required"`
	CategoryNumber string    `xml:"CATEGORY_NUMBER" json:"category_number"`
	StyleLetter    string    `xml:"STYLE_LETTER" json:"style_letter"`
	StyleGuide     string    `xml:"STYLE_GUIDE" json:"style_guide"`
	Type           StyleType `xml:"TYPE" json:"type" validate:"required"`

	OGMin    units.SpecificGravity `xml:"OG_MIN" json:"og_min"`
	OGMax    units.SpecificGravity `xml:"OG_MAX" json:"og_max"`
	FGMin    units.SpecificGravity `xml:"FG_MIN" json:"fg_min"`
	FGMax    units.SpecificGravity `xml:"FG_MAX" json:"fg_max"`
	IBUMin   units.IBU             `xml:"IBU_MIN" json:"ibu_min"`
	IBUMax   units.IBU             `xml:"IBU_MAX" json:"ibu_max"`
	ColorMin units.SRMColor        `xml:"COLOR_MIN" json:"color_min"`
	ColorMax units.SRMColor        `xml:"COLOR_MAX" json:"color_max"`

	CarbMin     *units.VolumesCO2 `xml:"CARB_MIN" json:"carb_min,omitempty"`
	CarbMax     *units.VolumesCO2 `xml:"CARB_MAX" json:"carb_max,omitempty"`
	ABVMin      *units.Percent    `xml:"ABV_MIN" json:"abv_min,omitempty"`
	ABVMax      *units.Percent    `xml:"ABV_MAX" json:"abv_max,omitempty"`
	Notes       *string           `xml:"NOTES" json:"notes,omitempty"`
	Profile     *string           `xml:"PROFILE" json:"profile,omitempty"`
	Ingredients *string           `xml:"INGREDIENTS" json:"ingredients,omitempty"`
	Examples    *string           `xml:"EXAMPLES" json:"examples,omitempty"`
}

// IBUInRange reports whether ibu falls inside the style's bitterness range.
func (s Style) IBUInRange(ibu units.IBU) bool {
	return ibu >= s.IBUMin && ibu <= s.IBUMax
}

type StyleType int

const (
	StyleTypeUnknown StyleType = iota
	StyleTypeLager
	StyleTypeAle
	StyleTypeMead
	StyleTypeWheat
	StyleTypeMixed
	StyleTypeCider
)

var styleTypeLabels = labels[StyleType]{kind: "style type", names: map[StyleType]string{
	StyleTypeLager: "Lager",
	StyleTypeAle:   "Ale",
	StyleTypeMead:  "Mead",
	StyleTypeWheat: "Wheat",
	StyleTypeMixed: "Mixed",
	StyleTypeCider: "Cider",
}}

func (t StyleType) String() string                { return styleTypeLabels.name(t) }
func (t StyleType) MarshalText() ([]byte, error)  { return []byte(t.String()), nil }
func (t *StyleType) UnmarshalText(b []byte) error { return parseInto(t, styleTypeLabels, b) }
