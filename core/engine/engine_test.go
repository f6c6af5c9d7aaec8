package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beer-recipe/core/beerxml"
	"beer-recipe/core/ibu"
	"beer-recipe/core/output"
	"beer-recipe/core/recipe"
	"beer-recipe/core/scanner"
	"beer-recipe/core/units"
)

type stubMeasurements map[string]recipe.Measurement

func (s stubMeasurements) Lookup(name string) (recipe.Measurement, bool) {
	m, ok := s[name]
	return m, ok
}

func gravity(v float64) *units.SpecificGravity {
	g := units.SpecificGravity(v)
	return &g
}

func stout(name string) beerxml.Recipe {
	return beerxml.Recipe{
		Name:       name,
		Version:    1,
		Type:       beerxml.RecipeTypeAllGrain,
		Brewer:     "Brad Smith",
		BatchSize:  18.93,
		BoilSize:   20.82,
		BoilTime:   60,
		Efficiency: 72,
		Style: beerxml.Style{
			Name: "Dry Stout", Category: "Stout", Version: 1, Type: beerxml.StyleTypeAle,
			IBUMin: 30, IBUMax: 50,
		},
		Hops: beerxml.Hops{Hop: []beerxml.Hop{
			{Name: "Goldings", Version: 1, Alpha: 5, Amount: 0.0638, Use: beerxml.HopUseBoil, Time: 60},
			{Name: "Fuggles", Version: 1, Alpha: 4.5, Amount: 0.25, Use: beerxml.HopUseDryHop, Time: 10080},
		}},
		Fermentables: beerxml.Fermentables{Fermentable: []beerxml.Fermentable{
			{Name: "Pale Malt", Version: 1, Type: beerxml.FermentableTypeGrain, Amount: 2.27, Yield: 78},
			{Name: "Barley, Flaked", Version: 1, Type: beerxml.FermentableTypeGrain, Amount: 0.91, Yield: 70},
		}},
	}
}

func scanOf(recipes ...beerxml.Recipe) *scanner.ScanResult {
	docs := make([]scanner.Document, 0, len(recipes))
	for i, r := range recipes {
		docs = append(docs, scanner.Document{File: fmt.Sprintf("%02d.xml", i), Recipes: []beerxml.Recipe{r}})
	}
	return &scanner.ScanResult{Documents: docs}
}

func TestEvaluate(t *testing.T) {
	noGrain := stout("Hop Tea")
	noGrain.Fermentables.Fermentable = nil

	noBoil := stout("Raw Ale")
	noBoil.BoilTime = 0

	rager := ibu.MethodRager
	declared := stout("Declared")
	declared.IBUMethod = &rager

	scan := scanOf(stout("Dry Stout"), noGrain, noBoil, declared)
	scan.Errors = []scanner.ScanError{{File: "broken.xml", Code: "DECODE_ERROR", Message: "unexpected EOF"}}
	scan.Warnings = []scanner.ScanWarning{{File: "empty.xml", Code: "EMPTY_DOCUMENT", Message: "document contains no recipes"}}

	e := New(Config{Workers: 2, Version: "test"})
	report, err := e.Evaluate(context.Background(), "recipes", scan)
	require.NoError(t, err)

	_, err = uuid.Parse(report.ID)
	assert.NoError(t, err)
	assert.Equal(t, "test", report.Metadata.Version)
	assert.Equal(t, "recipes", report.Metadata.Source)

	require.Len(t, report.Recipes, 4)
	names := []string{}
	for _, r := range report.Recipes {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"Dry Stout", "Hop Tea", "Raw Ale", "Declared"}, names, "scan order")

	ok := report.Recipes[0]
	assert.Equal(t, output.StatusOK, ok.Status)
	require.NotNil(t, ok.TotalIBU)
	assert.Equal(t, "42.9", ok.TotalIBU.StringFixed(1))
	assert.Equal(t, "Tinseth", ok.Method)
	assert.True(t, ok.MethodDefaulted)
	assert.Equal(t, "1.035", ok.OriginalGravity.StringFixed(3))
	assert.Equal(t, "30-50", ok.StyleIBU)
	require.NotNil(t, ok.InStyle)
	assert.True(t, *ok.InStyle)
	require.Len(t, ok.Hops, 2)
	assert.False(t, ok.Hops[1].Bittering)
	assert.Equal(t, "Goldings", ok.MaxHopName, "dry hops are not counted")
	assert.Equal(t, "3.37", ok.MaxHopRate.StringFixed(2))

	under := report.Recipes[1]
	assert.Equal(t, output.StatusUnderspecified, under.Status)
	assert.Nil(t, under.TotalIBU)
	assert.Nil(t, under.OriginalGravity)
	assert.Contains(t, under.Error, "ESTIMATION_UNAVAILABLE")

	malformed := report.Recipes[2]
	assert.Equal(t, output.StatusMalformed, malformed.Status)
	assert.Contains(t, malformed.Error, "INVALID_BOIL_DURATION")

	assert.Equal(t, "Rager", report.Recipes[3].Method)
	assert.False(t, report.Recipes[3].MethodDefaulted)

	assert.Equal(t, output.Summary{
		Recipes:        4,
		OK:             2,
		Underspecified: 1,
		Malformed:      1,
		FilesFailed:    1,
		MaxHopRate:     report.Summary.MaxHopRate,
		MaxHopRecipe:   "Dry Stout",
	}, report.Summary)
	assert.True(t, report.Failed())
	require.Len(t, report.FileErrors, 1)
	require.Len(t, report.FileWarnings, 1)
}

func TestEvaluateAppliesMeasurements(t *testing.T) {
	noGrain := stout("Hop Tea")
	noGrain.Fermentables.Fermentable = nil

	e := New(Config{Measurements: stubMeasurements{
		"Hop Tea": {PreBoilGravity: gravity(1.040), OriginalGravity: gravity(1.050)},
	}})
	report, err := e.Evaluate(context.Background(), "recipes", scanOf(noGrain))
	require.NoError(t, err)

	r := report.Recipes[0]
	assert.True(t, r.Measured)
	assert.Equal(t, output.StatusOK, r.Status)
	assert.Equal(t, "1.040", r.PreBoilGravity.StringFixed(3))
	assert.Equal(t, "1.050", r.OriginalGravity.StringFixed(3))
	require.NotNil(t, r.TotalIBU)
	assert.False(t, report.Failed())
}

func TestEvaluateManyRecipesKeepsOrder(t *testing.T) {
	var recipes []beerxml.Recipe
	for i := 0; i < 50; i++ {
		recipes = append(recipes, stout(fmt.Sprintf("Stout %02d", i)))
	}

	report, err := New(Config{Workers: 4}).Evaluate(context.Background(), "recipes", scanOf(recipes...))
	require.NoError(t, err)
	require.Len(t, report.Recipes, 50)
	for i, r := range report.Recipes {
		assert.Equal(t, fmt.Sprintf("Stout %02d", i), r.Name)
		assert.Equal(t, fmt.Sprintf("%02d.xml", i), r.File)
	}
}

func TestEvaluateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(Config{}).Evaluate(ctx, "recipes", scanOf(stout("Dry Stout")))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEvaluateMetadata(t *testing.T) {
	e := New(Config{Version: "1.2.3", MeasurementsFile: "gravity.hcl"})
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return fixed }

	report, err := e.Evaluate(context.Background(), "stout.xml", scanOf())
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T12:00:00Z", report.Metadata.Timestamp)
	assert.Equal(t, "0s", report.Metadata.Duration)
	assert.Equal(t, "gravity.hcl", report.Metadata.Measurements)
	assert.Empty(t, report.Recipes)
	assert.False(t, report.Failed())
}
