package beerxml

import (
	"beer-recipe/core/ibu"
	"beer-recipe/core/units"
)

// Recipe is a <RECIPE> record exactly as the document states it. Boil,
// fermentation and carbonation data sit flat on the record; the recipe
// package regroups them into process stages.
type Recipe struct {
	Name       string     `xml:"NAME" json:"name" validate:"required"`
	Version    int        `xml:"VERSION" json:"version" validate:"required"`
	Type       RecipeType `xml:"TYPE" json:"type" validate:"required"`
	Style      Style      `xml:"STYLE" json:"style"`
	Equipment  *Equipment `xml:"EQUIPMENT" json:"equipment,omitempty"`
	Brewer     string     `xml:"BREWER" json:"brewer" validate:"required"`
	AsstBrewer *string    `xml:"ASST_BREWER" json:"asst_brewer,omitempty"`

	BatchSize units.Liters  `xml:"BATCH_SIZE" json:"batch_size" validate:"gte=0"`
	BoilSize  units.Liters  `xml:"BOIL_SIZE" json:"boil_size" validate:"gte=0"`
	BoilTime  units.Minutes `xml:"BOIL_TIME" json:"boil_time" validate:"gte=0"`

	// Efficiency is the brewhouse efficiency; ignored for extract recipes.
	Efficiency units.Percent `xml:"EFFICIENCY" json:"efficiency" validate:"gte=0,lte=100"`

	Hops         Hops         `xml:"HOPS" json:"hops"`
	Fermentables Fermentables `xml:"FERMENTABLES" json:"fermentables"`
	Miscs        Miscs        `xml:"MISCS" json:"miscs"`
	Yeasts       Yeasts       `xml:"YEASTS" json:"yeasts"`
	Waters       Waters       `xml:"WATERS" json:"waters"`
	Mash         Mash         `xml:"MASH" json:"mash"`

	Notes       *string                `xml:"NOTES" json:"notes,omitempty"`
	TasteNotes  *string                `xml:"TASTE_NOTES" json:"taste_notes,omitempty"`
	TasteRating *float64               `xml:"TASTE_RATING" json:"taste_rating,omitempty"`
	OG          *units.SpecificGravity `xml:"OG" json:"og,omitempty"`
	FG          *units.SpecificGravity `xml:"FG" json:"fg,omitempty"`

	FermentationStages *int           `xml:"FERMENTATION_STAGES" json:"fermentation_stages,omitempty"`
	PrimaryAge         *units.Days    `xml:"PRIMARY_AGE" json:"primary_age,omitempty"`
	PrimaryTemp        *units.Celsius `xml:"PRIMARY_TEMP" json:"primary_temp,omitempty"`
	SecondaryAge       *units.Days    `xml:"SECONDARY_AGE" json:"secondary_age,omitempty"`
	SecondaryTemp      *units.Celsius `xml:"SECONDARY_TEMP" json:"secondary_temp,omitempty"`
	TertiaryAge        *units.Days    `xml:"TERTIARY_AGE" json:"tertiary_age,omitempty"`
	TertiaryTemp       *units.Celsius `xml:"TERTIARY_TEMP" json:"tertiary_temp,omitempty"`
	Age                *units.Days    `xml:"AGE" json:"age,omitempty"`
	AgeTemp            *units.Celsius `xml:"AGE_TEMP" json:"age_temp,omitempty"`
	Date               *string        `xml:"DATE" json:"date,omitempty"`

	Carbonation       *units.VolumesCO2 `xml:"CARBONATION" json:"carbonation,omitempty"`
	ForcedCarbonation *bool             `xml:"FORCED_CARBONATION" json:"forced_carbonation,omitempty"`
	PrimingSugarName  *string           `xml:"PRIMING_SUGAR_NAME" json:"priming_sugar_name,omitempty"`
	CarbonationTemp   *units.Celsius    `xml:"CARBONATION_TEMP" json:"carbonation_temp,omitempty"`
	PrimingSugarEquiv *float64          `xml:"PRIMING_SUGAR_EQUIV" json:"priming_sugar_equiv,omitempty"`
	KegPrimingFactor  *float64          `xml:"KEG_PRIMING_FACTOR" json:"keg_priming_factor,omitempty"`

	// IBUMethod is nil when the document does not name one.
	IBUMethod *ibu.Method `xml:"IBU_METHOD" json:"ibu_method,omitempty"`
}

// RecipeType is the brewing approach of a recipe.
type RecipeType int

const (
	RecipeTypeUnknown RecipeType = iota
	RecipeTypeExtract
	RecipeTypePartialMash
	RecipeTypeAllGrain
)

var recipeTypeLabels = labels[RecipeType]{kind: "recipe type", names: map[RecipeType]string{
	RecipeTypeExtract:     "Extract",
	RecipeTypePartialMash: "Partial Mash",
	RecipeTypeAllGrain:    "All Grain",
}}

func (t RecipeType) String() string                { return recipeTypeLabels.name(t) }
func (t RecipeType) MarshalText() ([]byte, error)  { return []byte(t.String()), nil }
func (t *RecipeType) UnmarshalText(b []byte) error { return parseInto(t, recipeTypeLabels, b) }
