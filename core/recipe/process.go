package recipe

import (
	"beer-recipe/core/beerxml"
	"beer-recipe/core/units"
)

// Boil is the boil stage. The kettle starts at PreVolume and boils off
// linearly to the recipe's batch size over BoilTime.
type Boil struct {
	PreVolume units.Liters
	BoilTime  units.Minutes
}

// Mash is the mash profile as the document states it.
type Mash = beerxml.Mash

// Stage is one fermentation or conditioning period. Either field may be
// unknown.
type Stage struct {
	Age  *units.Days
	Temp *units.Celsius
}

// Fermentation groups the fermentation and aging stages. A nil stage was
// not described by the document.
type Fermentation struct {
	Stages    *int
	Primary   *Stage
	Secondary *Stage
	Tertiary  *Stage
	Aging     *Stage
}

// Carbonation is the packaging stage.
type Carbonation struct {
	Volumes           *units.VolumesCO2
	Forced            *bool
	Temperature       *units.Celsius
	PrimingSugarName  *string
	PrimingSugarEquiv *float64
	KegPrimingFactor  *float64
}

func newStage(age *units.Days, temp *units.Celsius) *Stage {
	if age == nil && temp == nil {
		return nil
	}
	return &Stage{Age: age, Temp: temp}
}

func fermentationOf(src *beerxml.Recipe) Fermentation {
	return Fermentation{
		Stages:    src.FermentationStages,
		Primary:   newStage(src.PrimaryAge, src.PrimaryTemp),
		Secondary: newStage(src.SecondaryAge, src.SecondaryTemp),
		Tertiary:  newStage(src.TertiaryAge, src.TertiaryTemp),
		Aging:     newStage(src.Age, src.AgeTemp),
	}
}

func carbonationOf(src *beerxml.Recipe) Carbonation {
	return Carbonation{
		Volumes:           src.Carbonation,
		Forced:            src.ForcedCarbonation,
		Temperature:       src.CarbonationTemp,
		PrimingSugarName:  src.PrimingSugarName,
		PrimingSugarEquiv: src.PrimingSugarEquiv,
		KegPrimingFactor:  src.KegPrimingFactor,
	}
}
