package beerxml

import (
	"beer-recipe/core/units"
)

// Water is a <WATER> profile. It does not feed any calculation yet but is
// carried so brewing software can record the water used for a batch.
type Water struct {
	Name        string                `xml:"NAME" json:"name" validate:"required"`
	Version     int                   `xml:"VERSION" json:"version" validate:"required"`
	Amount      units.Liters          `xml:"AMOUNT" json:"amount" validate:"gte=0"`
	Calcium     units.PartsPerMillion `xml:"CALCIUM" json:"calcium"`
	Bicarbonate units.PartsPerMillion `xml:"BICARBONATE" json:"bicarbonate"`
	Sulfate     units.PartsPerMillion `xml:"SULFATE" json:"sulfate"`
	Chloride    units.PartsPerMillion `xml:"CHLORIDE" json:"chloride"`
	Sodium      units.PartsPerMillion `xml:"SODIUM" json:"sodium"`
	Magnesium   units.PartsPerMillion `xml:"MAGNESIUM" json:"magnesium"`
	PH          *units.PH             `xml:"PH" json:"ph,omitempty"`
	Notes       *string               `xml:"NOTES" json:"notes,omitempty"`
}

// Waters wraps the <WATERS> list.
type Waters struct {
	Water []Water `xml:"WATER" json:"water" validate:"dive"`
}
