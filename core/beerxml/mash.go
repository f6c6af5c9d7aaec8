package beerxml

import (
	"beer-recipe/core/units"
)

// Mash is a <MASH> profile: informational fields followed by the steps.
type Mash struct {
	Name    string `xml:"NAME" json:"name" validate:"required"`
	Version int    `xml:"VERSION" json:"version" validate:"required"`

	// GrainTemp is the grain temperature before it is added to the mash.
	GrainTemp units.Celsius `xml:"GRAIN_TEMP" json:"grain_temp"`
	MashSteps MashSteps     `xml:"MASH_STEPS" json:"mash_steps"`

	Notes      *string          `xml:"NOTES" json:"notes,omitempty"`
	TunTemp    *units.Celsius   `xml:"TUN_TEMP" json:"tun_temp,omitempty"`
	SpargeTemp *units.Celsius   `xml:"SPARGE_TEMP" json:"sparge_temp,omitempty"`
	PH         *units.PH        `xml:"PH" json:"ph,omitempty"`
	TunWeight  *units.Kilograms `xml:"TUN_WEIGHT" json:"tun_weight,omitempty"`

	// TunSpecificHeat is in cal/(g·°C).
	TunSpecificHeat *float64 `xml:"TUN_SPECIFIC_HEAT" json:"tun_specific_heat,omitempty"`

	// EquipAdjust asks infusion calculations to account for the tun's heat
	// capacity; when false the tun is assumed preheated.
	EquipAdjust *bool `xml:"EQUIP_ADJUST" json:"equip_adjust,omitempty"`
}

// MashSteps wraps the <MASH_STEPS> list.
type MashSteps struct {
	MashStep []MashStep `xml:"MASH_STEP" json:"mash_step" validate:"dive"`
}

// MashStep is one step of a multi-step mash.
type MashStep struct {
	Name         string         `xml:"NAME" json:"name" validate:"required"`
	Version      int            `xml:"VERSION" json:"version" validate:"required"`
	Type         MashStepType   `xml:"TYPE" json:"type" validate:"required"`
	InfuseAmount *units.Liters  `xml:"INFUSE_AMOUNT" json:"infuse_amount,omitempty"`
	StepTemp     units.Celsius  `xml:"STEP_TEMP" json:"step_temp"`
	StepTime     units.Minutes  `xml:"STEP_TIME" json:"step_time" validate:"gte=0"`
	RampTime     *units.Minutes `xml:"RAMP_TIME" json:"ramp_time,omitempty"`
	EndTemp      *units.Celsius `xml:"END_TEMP" json:"end_temp,omitempty"`
}

type MashStepType int

const (
	MashStepTypeUnknown MashStepType = iota
	MashStepTypeInfusion
	MashStepTypeTemperature
	MashStepTypeDecoction
)

var mashStepTypeLabels = labels[MashStepType]{kind: "mash step type", names: map[MashStepType]string{
	MashStepTypeInfusion:    "Infusion",
	MashStepTypeTemperature: "Temperature",
	MashStepTypeDecoction:   "Decoction",
}}

func (t MashStepType) String() string               { return mashStepTypeLabels.name(t) }
func (t MashStepType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }
func (t *MashStepType) UnmarshalText(b []byte) error {
	return parseInto(t, mashStepTypeLabels, b)
}
