package recipe

import (
	"beer-recipe/core/ibu"
	"beer-recipe/core/units"
)

// BeerXMLSource records what the source document stated for fields that
// the normalized recipe resolves, defaults or overrides. An exporter uses it
// to omit what the document omitted.
type BeerXMLSource struct {
	Version int

	// IBUMethod is the method named by the document, nil when it named none.
	IBUMethod *ibu.Method

	// OG and FG as written in the document, before any measurement was
	// applied.
	OG *units.SpecificGravity
	FG *units.SpecificGravity
}

// DeclaredIBUMethod returns the method the document named, if any.
func (s BeerXMLSource) DeclaredIBUMethod() (ibu.Method, bool) {
	if s.IBUMethod == nil {
		return ibu.MethodUnknown, false
	}
	return *s.IBUMethod, true
}

// IBUMethodDefaulted reports whether the recipe's method came from the
// default rather than the document.
func (r *Recipe) IBUMethodDefaulted() bool {
	_, declared := r.Source.DeclaredIBUMethod()
	return !declared
}
