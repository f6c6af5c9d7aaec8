package output

import (
	"github.com/shopspring/decimal"

	"beer-recipe/core/units"
)

// Report is the result of evaluating every recipe found by a scan
type Report struct {
	// ID uniquely identifies this report
	ID string `json:"id"`

	Metadata ReportMetadata `json:"metadata"`

	// Recipes are in scan order
	Recipes []RecipeResult `json:"recipes"`

	// FileErrors are files that could not be decoded
	FileErrors []FileIssue `json:"file_errors,omitempty"`

	// FileWarnings are non-fatal scan issues
	FileWarnings []FileIssue `json:"file_warnings,omitempty"`

	Summary Summary `json:"summary"`
}

// ReportMetadata contains execution context
type ReportMetadata struct {
	// Timestamp is when the report was produced
	Timestamp string `json:"timestamp"`

	// Duration is how long evaluation took
	Duration string `json:"duration"`

	// Version is the tool version
	Version string `json:"version"`

	// Source is the scanned path
	Source string `json:"source"`

	// Measurements is the measurements file applied, if any
	Measurements string `json:"measurements,omitempty"`
}

// Status classifies a recipe's outcome
type Status string

const (
	// StatusOK means bitterness was computed
	StatusOK Status = "ok"

	// StatusUnderspecified means a gravity is missing; a measurement would fix it
	StatusUnderspecified Status = "underspecified"

	// StatusMalformed means the recipe itself cannot be evaluated
	StatusMalformed Status = "malformed"
)

// RecipeResult is one recipe's evaluation
type RecipeResult struct {
	File  string `json:"file"`
	Name  string `json:"name"`
	Style string `json:"style,omitempty"`

	// Method is the bitterness method used; MethodDefaulted is set when the
	// document did not name one
	Method          string `json:"method"`
	MethodDefaulted bool   `json:"method_defaulted"`

	// Measured is set when readings from the measurements file were applied
	Measured bool `json:"measured"`

	BatchSize decimal.Decimal `json:"batch_size_l"`
	PreVolume decimal.Decimal `json:"pre_boil_volume_l"`
	BoilTime  decimal.Decimal `json:"boil_time_min"`

	// Gravities are nil when neither measured nor estimable
	PreBoilGravity  *decimal.Decimal `json:"pre_boil_gravity,omitempty"`
	OriginalGravity *decimal.Decimal `json:"original_gravity,omitempty"`

	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`

	// TotalIBU is nil unless Status is ok
	TotalIBU *decimal.Decimal `json:"total_ibu,omitempty"`

	// StyleIBU is the style's "min-max" range; InStyle compares TotalIBU to it
	StyleIBU string `json:"style_ibu,omitempty"`
	InStyle  *bool  `json:"in_style,omitempty"`

	Hops []HopResult `json:"hops,omitempty"`

	// MaxHopRate is the largest non-dry-hop addition in g/L
	MaxHopRate *decimal.Decimal `json:"max_hop_rate_g_per_l,omitempty"`
	MaxHopName string           `json:"max_hop_name,omitempty"`
}

// HopResult is one hop's bitterness contribution
type HopResult struct {
	Name      string          `json:"name"`
	Use       string          `json:"use"`
	Time      decimal.Decimal `json:"time_min"`
	Amount    decimal.Decimal `json:"amount_g"`
	Alpha     decimal.Decimal `json:"alpha_pct"`
	Bittering bool            `json:"bittering"`

	// Volume, Gravity and IBU are zero for non-bittering hops
	Volume  decimal.Decimal `json:"avg_volume_l"`
	Gravity decimal.Decimal `json:"avg_gravity"`
	IBU     decimal.Decimal `json:"ibu"`
}

// FileIssue is a file-level scan error or warning
type FileIssue struct {
	File    string `json:"file"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Summary aggregates the report
type Summary struct {
	Recipes        int `json:"recipes"`
	OK             int `json:"ok"`
	Underspecified int `json:"underspecified"`
	Malformed      int `json:"malformed"`
	FilesFailed    int `json:"files_failed"`

	// MaxHopRate is the largest hop rate across all recipes, in g/L
	MaxHopRate   *decimal.Decimal `json:"max_hop_rate_g_per_l,omitempty"`
	MaxHopRecipe string           `json:"max_hop_recipe,omitempty"`
}

// Failed reports whether any recipe or file is unusable
func (r *Report) Failed() bool {
	return r.Summary.Malformed > 0 || r.Summary.FilesFailed > 0
}

// Rounding used across reports.
const (
	ibuPlaces     = 1
	gravityPlaces = 3
	volumePlaces  = 2
	massPlaces    = 1
	ratePlaces    = 2
)

// IBU rounds a bitterness value for display
func IBU(v units.IBU) decimal.Decimal {
	return decimal.NewFromFloat(float64(v)).Round(ibuPlaces)
}

// Gravity rounds a specific gravity for display
func Gravity(v units.SpecificGravity) decimal.Decimal {
	return decimal.NewFromFloat(float64(v)).Round(gravityPlaces)
}

// Volume rounds a volume for display
func Volume(v units.Liters) decimal.Decimal {
	return decimal.NewFromFloat(float64(v)).Round(volumePlaces)
}

// Minutes rounds a duration for display
func Minutes(v units.Minutes) decimal.Decimal {
	return decimal.NewFromFloat(float64(v)).Round(0)
}

// Grams converts kilograms to grams, rounded for display
func Grams(v units.Kilograms) decimal.Decimal {
	return decimal.NewFromFloat(float64(v)).Shift(3).Round(massPlaces)
}

// Percent rounds a percentage for display
func Percent(v units.Percent) decimal.Decimal {
	return decimal.NewFromFloat(float64(v)).Round(massPlaces)
}

// GramsPerLiter converts a kg/L hop rate to g/L, rounded for display
func GramsPerLiter(kgPerLiter float64) decimal.Decimal {
	return decimal.NewFromFloat(kgPerLiter).Shift(3).Round(ratePlaces)
}
