// Package measurements reads brew-day gravity readings from an HCL file.
//
//	measurement "Dry Stout" {
//	  pre_boil_gravity = 1.040
//	  original_gravity = 1.050
//	  final_gravity    = 1.011
//	}
//
// Readings are matched to recipes by name and take precedence over what the
// recipe document states.
package measurements

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"beer-recipe/core/recipe"
	"beer-recipe/core/units"
	"beer-recipe/internal/errors"
)

type fileSchema struct {
	Measurements []block `hcl:"measurement,block"`
}

type block struct {
	Name            string   `hcl:"name,label" validate:"required"`
	PreBoilGravity  *float64 `hcl:"pre_boil_gravity,optional" validate:"omitempty,gte=0.99,lte=1.2"`
	OriginalGravity *float64 `hcl:"original_gravity,optional" validate:"omitempty,gte=0.99,lte=1.2"`
	FinalGravity    *float64 `hcl:"final_gravity,optional" validate:"omitempty,gte=0.99,lte=1.2"`
}

var validate = validator.New()

// Set holds the readings of one file, keyed by recipe name.
type Set struct {
	byName map[string]recipe.Measurement
	names  []string
}

// Load parses the measurements file at path.
func Load(path string) (*Set, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "failed to read measurements file", err)
	}
	return Parse(src, path)
}

// Parse parses measurements from HCL source. filename is used in
// diagnostics only.
func Parse(src []byte, filename string) (*Set, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing(filename, diags)
	}

	var schema fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &schema); diags.HasErrors() {
		return nil, errors.Parsing(filename, diags)
	}

	set := &Set{byName: make(map[string]recipe.Measurement, len(schema.Measurements))}
	for _, b := range schema.Measurements {
		if err := validate.Struct(b); err != nil {
			return nil, errors.Parsing(fmt.Sprintf("%s: measurement %q", filename, b.Name), err)
		}
		if _, dup := set.byName[b.Name]; dup {
			return nil, errors.Newf(errors.TypeParsing, "%s: duplicate measurement %q", filename, b.Name)
		}
		set.byName[b.Name] = recipe.Measurement{
			PreBoilGravity:  gravity(b.PreBoilGravity),
			OriginalGravity: gravity(b.OriginalGravity),
			FinalGravity:    gravity(b.FinalGravity),
		}
		set.names = append(set.names, b.Name)
	}
	return set, nil
}

// Lookup returns the readings for the named recipe. A nil Set has none.
func (s *Set) Lookup(name string) (recipe.Measurement, bool) {
	if s == nil {
		return recipe.Measurement{}, false
	}
	m, ok := s.byName[name]
	return m, ok
}

// Names lists the measured recipes in file order.
func (s *Set) Names() []string {
	if s == nil {
		return nil
	}
	return s.names
}

func gravity(v *float64) *units.SpecificGravity {
	if v == nil {
		return nil
	}
	g := units.SpecificGravity(*v)
	return &g
}
