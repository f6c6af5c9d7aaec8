// Package ibu converts a hop addition's alpha-acid exposure into bitterness.
//
// Each Method is a closed tag with one formula. Calculate is a pure function
// of the tag and five numbers; it knows nothing about recipes, so boil volume
// and gravity averaging happen upstream.
package ibu

import (
	"strings"

	"beer-recipe/internal/errors"
)

// Method selects a bitterness formula.
type Method int

const (
	// MethodUnknown is the zero value; calculating with it is an error.
	MethodUnknown Method = iota

	// MethodTinseth accounts for late additions through an exponential
	// boil-time curve.
	MethodTinseth

	// MethodRager uses a tanh utilization curve with a high-gravity penalty.
	MethodRager

	// MethodGaretz adds a hopping-rate correction on top of a Rager-like curve.
	MethodGaretz
)

// DefaultMethod is used when a recipe does not declare one.
const DefaultMethod = MethodTinseth

var methodLabels = map[Method]string{
	MethodTinseth: "Tinseth",
	MethodRager:   "Rager",
	MethodGaretz:  "Garetz",
}

// Methods returns every calculable method in declaration order.
func Methods() []Method {
	return []Method{MethodTinseth, MethodRager, MethodGaretz}
}

// ParseMethod maps a BeerXML IBU_METHOD label to a Method.
func ParseMethod(label string) (Method, error) {
	for m, l := range methodLabels {
		if l == label {
			return m, nil
		}
	}
	return MethodUnknown, errors.UnknownVariant("IBU method", label)
}

// String returns the BeerXML label.
func (m Method) String() string {
	if l, ok := methodLabels[m]; ok {
		return l
	}
	return "Unknown"
}

// Valid reports whether m names a formula.
func (m Method) Valid() bool {
	_, ok := methodLabels[m]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
