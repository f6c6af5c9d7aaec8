package beerxml

import (
	"beer-recipe/core/units"
)

// Equipment is an <EQUIPMENT> record describing the brewhouse used for a
// recipe: vessel volumes, losses and thermal properties of the mash tun.
type Equipment struct {
	Name    string `xml:"NAME" json:"name" validate:"required"`
	Version int    `xml:"VERSION" json:"version" validate:"required"`

	// BoilSize is the pre-boil volume for this setup. It may be derived,
	// see CalcBoilVolume.
	BoilSize units.Liters `xml:"BOIL_SIZE" json:"boil_size" validate:"gte=0"`

	// BatchSize is the target volume at the start of fermentation.
	BatchSize units.Liters `xml:"BATCH_SIZE" json:"batch_size" validate:"gte=0"`

	TunVolume *units.Liters    `xml:"TUN_VOLUME" json:"tun_volume,omitempty"`
	TunWeight *units.Kilograms `xml:"TUN_WEIGHT" json:"tun_weight,omitempty"`

	// TunSpecificHeat is in cal/(g·°C).
	TunSpecificHeat *float64      `xml:"TUN_SPECIFIC_HEAT" json:"tun_specific_heat,omitempty"`
	TopUpWater      *units.Liters `xml:"TOP_UP_WATER" json:"top_up_water,omitempty"`
	TrubChillerLoss *units.Liters `xml:"TRUB_CHILLER_LOSS" json:"trub_chiller_loss,omitempty"`

	// EvapRate is the percentage of wort lost to evaporation per hour.
	EvapRate *units.Percent `xml:"EVAP_RATE" json:"evap_rate,omitempty"`
	BoilTime *units.Minutes `xml:"BOIL_TIME" json:"boil_time,omitempty"`

	// CalcBoilVolume means BoilSize = (BatchSize - TopUpWater - TrubChillerLoss)
	// * (1 + BoilTime * EvapRate).
	CalcBoilVolume  *bool          `xml:"CALC_BOIL_VOLUME" json:"calc_boil_volume,omitempty"`
	LauterDeadspace *units.Liters  `xml:"LAUTER_DEADSPACE" json:"lauter_deadspace,omitempty"`
	TopUpKettle     *units.Liters  `xml:"TOP_UP_KETTLE" json:"top_up_kettle,omitempty"`
	HopUtilization  *units.Percent `xml:"HOP_UTILIZATION" json:"hop_utilization,omitempty"`
	Notes           *string        `xml:"NOTES" json:"notes,omitempty"`
}
