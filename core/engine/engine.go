// Package engine turns scanned recipe documents into a bitterness report.
// The CLI is a thin wrapper around this engine.
package engine

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"beer-recipe/core/beerxml"
	"beer-recipe/core/output"
	"beer-recipe/core/recipe"
	"beer-recipe/core/scanner"
	"beer-recipe/internal/errors"
	"beer-recipe/internal/logging"
)

// MeasurementSource supplies brew-day gravity readings by recipe name
type MeasurementSource interface {
	Lookup(name string) (recipe.Measurement, bool)
}

// Config configures the engine
type Config struct {
	// Workers bounds concurrent recipe evaluation; 0 means GOMAXPROCS
	Workers int

	// Version is stamped on reports
	Version string

	// Measurements, if set, override gravities by recipe name
	Measurements MeasurementSource

	// MeasurementsFile is recorded in report metadata
	MeasurementsFile string
}

// Engine evaluates recipes. It holds no per-run state and is safe for
// concurrent use.
type Engine struct {
	config Config
	now    func() time.Time
}

// New creates an engine
func New(config Config) *Engine {
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	return &Engine{config: config, now: time.Now}
}

type job struct {
	file   string
	source beerxml.Recipe
}

// Evaluate normalizes and evaluates every recipe in the scan. Recipes are
// evaluated concurrently; results keep scan order. A recipe that cannot be
// evaluated is reported, not returned as an error. Only cancellation fails
// the whole run.
func (e *Engine) Evaluate(ctx context.Context, source string, scan *scanner.ScanResult) (*output.Report, error) {
	start := e.now()

	var jobs []job
	for _, doc := range scan.Documents {
		for _, rec := range doc.Recipes {
			jobs = append(jobs, job{file: doc.File, source: rec})
		}
	}

	results := make([]output.RecipeResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.Workers)
	for i := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.evaluate(jobs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &output.Report{
		ID: uuid.NewString(),
		Metadata: output.ReportMetadata{
			Timestamp:    start.UTC().Format(time.RFC3339),
			Duration:     e.now().Sub(start).String(),
			Version:      e.config.Version,
			Source:       source,
			Measurements: e.config.MeasurementsFile,
		},
		Recipes: results,
	}
	for _, se := range scan.Errors {
		report.FileErrors = append(report.FileErrors, output.FileIssue{File: se.File, Code: se.Code, Message: se.Message})
	}
	for _, sw := range scan.Warnings {
		report.FileWarnings = append(report.FileWarnings, output.FileIssue{File: sw.File, Code: sw.Code, Message: sw.Message})
	}
	report.Summary = summarize(report)

	logging.Info("Evaluated recipes",
		zap.String("report_id", report.ID),
		zap.Int("recipes", report.Summary.Recipes),
		zap.Int("malformed", report.Summary.Malformed),
		zap.Int("underspecified", report.Summary.Underspecified),
	)
	return report, nil
}

func (e *Engine) evaluate(j job) output.RecipeResult {
	var opts []recipe.Option
	measured := false
	if e.config.Measurements != nil {
		if m, ok := e.config.Measurements.Lookup(j.source.Name); ok {
			opts = append(opts, recipe.WithMeasurement(m))
			measured = true
		}
	}
	r := recipe.Normalize(&j.source, opts...)

	res := output.RecipeResult{
		File:            j.file,
		Name:            r.Name,
		Style:           r.Style.Name,
		Method:          r.IBUMethod.String(),
		MethodDefaulted: r.IBUMethodDefaulted(),
		Measured:        measured,
		BatchSize:       output.Volume(r.BatchSize),
		PreVolume:       output.Volume(r.Boil.PreVolume),
		BoilTime:        output.Minutes(r.Boil.BoilTime),
	}

	if g, err := r.ResolvedPreBoilGravity(); err == nil {
		d := output.Gravity(g)
		res.PreBoilGravity = &d
	}
	if g, err := r.ResolvedOriginalGravity(); err == nil {
		d := output.Gravity(g)
		res.OriginalGravity = &d
	}
	if rate, hop, ok, err := r.MaxHopRate(); err == nil && ok {
		d := output.GramsPerLiter(rate)
		res.MaxHopRate = &d
		res.MaxHopName = hop.Name
	}

	contributions, err := r.Contributions()
	if err != nil {
		return failed(res, err)
	}
	total, err := r.TotalIBU()
	if err != nil {
		return failed(res, err)
	}

	for _, c := range contributions {
		res.Hops = append(res.Hops, output.HopResult{
			Name:      c.Hop.Name,
			Use:       c.Hop.Use.String(),
			Time:      output.Minutes(c.Hop.Time),
			Amount:    output.Grams(c.Hop.Amount),
			Alpha:     output.Percent(c.Hop.Alpha),
			Bittering: c.Bittering,
			Volume:    output.Volume(c.Volume),
			Gravity:   output.Gravity(c.Gravity),
			IBU:       output.IBU(c.IBU),
		})
	}

	ibu := output.IBU(total)
	res.TotalIBU = &ibu
	res.Status = output.StatusOK
	if r.Style.IBUMax > 0 {
		res.StyleIBU = fmt.Sprintf("%s-%s", output.IBU(r.Style.IBUMin), output.IBU(r.Style.IBUMax))
		in := r.Style.IBUInRange(total)
		res.InStyle = &in
	}
	return res
}

func failed(res output.RecipeResult, err error) output.RecipeResult {
	res.Status = output.StatusMalformed
	if errors.IsUnderspecified(err) {
		res.Status = output.StatusUnderspecified
	}
	res.Error = err.Error()
	logging.Warn("Recipe could not be evaluated",
		zap.String("file", res.File),
		zap.String("recipe", res.Name),
		zap.String("status", string(res.Status)),
		zap.Error(err),
	)
	return res
}

func summarize(report *output.Report) output.Summary {
	s := output.Summary{
		Recipes:     len(report.Recipes),
		FilesFailed: len(report.FileErrors),
	}
	for _, r := range report.Recipes {
		switch r.Status {
		case output.StatusOK:
			s.OK++
		case output.StatusUnderspecified:
			s.Underspecified++
		default:
			s.Malformed++
		}
		if r.MaxHopRate != nil && (s.MaxHopRate == nil || r.MaxHopRate.GreaterThan(*s.MaxHopRate)) {
			s.MaxHopRate = r.MaxHopRate
			s.MaxHopRecipe = r.Name
		}
	}
	return s
}
