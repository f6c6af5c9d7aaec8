package recipe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beer-recipe/core/beerxml"
	"beer-recipe/core/ibu"
	"beer-recipe/core/units"
)

func ptr[T any](v T) *T { return &v }

func sourceRecipe() *beerxml.Recipe {
	return &beerxml.Recipe{
		Name:       "Dry Stout",
		Version:    1,
		Type:       beerxml.RecipeTypeAllGrain,
		Brewer:     "Brad Smith",
		BatchSize:  18.93,
		BoilSize:   20.82,
		BoilTime:   60,
		Efficiency: 72,
		Style:      beerxml.Style{Name: "Dry Stout", Category: "Stout", Version: 1, Type: beerxml.StyleTypeAle},
		Hops: beerxml.Hops{Hop: []beerxml.Hop{
			{Name: "Goldings, East Kent", Version: 1, Alpha: 5, Amount: 0.0638, Use: beerxml.HopUseBoil, Time: 60},
		}},
		Fermentables: beerxml.Fermentables{Fermentable: []beerxml.Fermentable{
			{Name: "Pale Malt (2 row) UK", Version: 1, Type: beerxml.FermentableTypeGrain, Amount: 2.27, Yield: 78, Color: 3},
			{Name: "Barley, Flaked", Version: 1, Type: beerxml.FermentableTypeGrain, Amount: 0.91, Yield: 70, Color: 2},
		}},
		Mash: beerxml.Mash{
			Name:      "Single Step Infusion, 68 C",
			Version:   1,
			GrainTemp: 22,
			MashSteps: beerxml.MashSteps{MashStep: []beerxml.MashStep{
				{Name: "Conversion Step, 68C", Version: 1, Type: beerxml.MashStepTypeInfusion, StepTemp: 68, StepTime: 60},
			}},
		},
		FermentationStages: ptr(2),
		PrimaryAge:         ptr(units.Days(4)),
		PrimaryTemp:        ptr(units.Celsius(20)),
		SecondaryAge:       ptr(units.Days(10)),
		Carbonation:        ptr(units.VolumesCO2(2.1)),
		ForcedCarbonation:  ptr(false),
		PrimingSugarName:   ptr("Corn Sugar"),
	}
}

func TestNormalize(t *testing.T) {
	src := sourceRecipe()
	r := Normalize(src)

	assert.Equal(t, "Dry Stout", r.Name)
	assert.Equal(t, units.Liters(18.93), r.BatchSize)
	assert.Equal(t, Boil{PreVolume: 20.82, BoilTime: 60}, r.Boil)
	assert.Nil(t, r.PreBoilGravity, "BeerXML never states pre-boil gravity")
	assert.Nil(t, r.OriginalGravity)
	assert.Len(t, r.Hops, 1)
	assert.Len(t, r.Fermentables, 2)
	assert.Empty(t, r.Yeasts)
	assert.Len(t, r.Mash.MashSteps.MashStep, 1)

	t.Run("fermentation stages", func(t *testing.T) {
		require.NotNil(t, r.Fermentation.Primary)
		assert.Equal(t, units.Days(4), *r.Fermentation.Primary.Age)
		assert.Equal(t, units.Celsius(20), *r.Fermentation.Primary.Temp)
		require.NotNil(t, r.Fermentation.Secondary)
		assert.Nil(t, r.Fermentation.Secondary.Temp)
		assert.Nil(t, r.Fermentation.Tertiary)
		assert.Nil(t, r.Fermentation.Aging)
		assert.Equal(t, 2, *r.Fermentation.Stages)
	})

	t.Run("carbonation", func(t *testing.T) {
		assert.Equal(t, units.VolumesCO2(2.1), *r.Carbonation.Volumes)
		assert.False(t, *r.Carbonation.Forced)
		assert.Equal(t, "Corn Sugar", *r.Carbonation.PrimingSugarName)
		assert.Nil(t, r.Carbonation.Temperature)
	})

	t.Run("collections are copied", func(t *testing.T) {
		src.Hops.Hop[0].Name = "changed"
		src.Fermentables.Fermentable[0].Amount = 99
		src.Mash.MashSteps.MashStep[0].StepTemp = 99
		assert.Equal(t, "Goldings, East Kent", r.Hops[0].Name)
		assert.Equal(t, units.Kilograms(2.27), r.Fermentables[0].Amount)
		assert.Equal(t, units.Celsius(68), r.Mash.MashSteps.MashStep[0].StepTemp)
	})
}

func TestNormalizeIBUMethodProvenance(t *testing.T) {
	t.Run("unspecified resolves to default", func(t *testing.T) {
		r := Normalize(sourceRecipe())
		assert.Equal(t, ibu.DefaultMethod, r.IBUMethod)
		assert.Equal(t, ibu.MethodTinseth, r.IBUMethod)
		assert.True(t, r.IBUMethodDefaulted())
		_, declared := r.Source.DeclaredIBUMethod()
		assert.False(t, declared)
	})

	t.Run("explicit default is still declared", func(t *testing.T) {
		src := sourceRecipe()
		src.IBUMethod = ptr(ibu.MethodTinseth)
		r := Normalize(src)
		assert.Equal(t, ibu.MethodTinseth, r.IBUMethod)
		assert.False(t, r.IBUMethodDefaulted())
		m, declared := r.Source.DeclaredIBUMethod()
		assert.True(t, declared)
		assert.Equal(t, ibu.MethodTinseth, m)
	})

	t.Run("explicit other method", func(t *testing.T) {
		src := sourceRecipe()
		src.IBUMethod = ptr(ibu.MethodGaretz)
		r := Normalize(src)
		assert.Equal(t, ibu.MethodGaretz, r.IBUMethod)
		m, _ := r.Source.DeclaredIBUMethod()
		assert.Equal(t, ibu.MethodGaretz, m)
	})
}

func TestNormalizeWithMeasurement(t *testing.T) {
	src := sourceRecipe()
	src.OG = ptr(units.SpecificGravity(1.042))
	src.FG = ptr(units.SpecificGravity(1.010))

	r := Normalize(src, WithMeasurement(Measurement{
		PreBoilGravity:  ptr(units.SpecificGravity(1.040)),
		OriginalGravity: ptr(units.SpecificGravity(1.050)),
	}))

	assert.Equal(t, units.SpecificGravity(1.040), *r.PreBoilGravity)
	assert.Equal(t, units.SpecificGravity(1.050), *r.OriginalGravity)
	assert.Equal(t, units.SpecificGravity(1.010), *r.FinalGravity, "unmeasured values keep the document's")
	assert.Equal(t, units.SpecificGravity(1.042), *r.Source.OG, "provenance keeps the document value")
}

func TestNormalizeAcceptsImplausibleValues(t *testing.T) {
	src := sourceRecipe()
	src.BatchSize = 0
	src.BoilTime = 0

	r := Normalize(src)
	assert.Zero(t, r.BatchSize)
	assert.Zero(t, r.Boil.BoilTime)
}

func TestBitteringPredicate(t *testing.T) {
	tests := []struct {
		use  beerxml.HopUse
		want bool
	}{
		{beerxml.HopUseBoil, true},
		{beerxml.HopUseDryHop, false},
		{beerxml.HopUseAroma, false},
		{beerxml.HopUseMash, true},
		{beerxml.HopUseFirstWort, true},
	}

	for _, tt := range tests {
		t.Run(tt.use.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Hop{Use: tt.use}.Bittering())
		})
	}

	r := &Recipe{Hops: []Hop{
		{Name: "a", Use: beerxml.HopUseAroma},
		{Name: "b", Use: beerxml.HopUseFirstWort},
		{Name: "c", Use: beerxml.HopUseDryHop},
		{Name: "d", Use: beerxml.HopUseBoil},
	}}
	names := []string{}
	for _, h := range r.BitteringHops() {
		names = append(names, h.Name)
	}
	assert.Equal(t, "b,d", strings.Join(names, ","))
}
