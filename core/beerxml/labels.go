package beerxml

import (
	"strings"

	"beer-recipe/internal/errors"
)

// labels maps a closed enum to the literal strings BeerXML uses for it.
type labels[T comparable] struct {
	kind  string
	names map[T]string
}

func (l labels[T]) parse(text []byte) (T, error) {
	label := strings.TrimSpace(string(text))
	for v, name := range l.names {
		if name == label {
			return v, nil
		}
	}
	var zero T
	return zero, errors.UnknownVariant(l.kind, label)
}

func (l labels[T]) name(v T) string {
	if name, ok := l.names[v]; ok {
		return name
	}
	return "Unknown"
}

func parseInto[T comparable](dst *T, l labels[T], text []byte) error {
	v, err := l.parse(text)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
