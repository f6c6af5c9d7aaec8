// Package beerxml decodes BeerXML 1.0 documents into Go records.
//
// Field names follow the BeerXML element names; categorical fields are closed
// enums and any label outside the published set is rejected with an
// UNKNOWN_VARIANT error. Decoded text is trimmed and required fields are
// checked before a record is handed out, so callers never see a partially
// decoded recipe.
package beerxml

import (
	"bytes"
	"encoding/xml"
	stderrors "errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/net/html/charset"

	"beer-recipe/internal/errors"
)

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("xml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}()

// Decode reads a BeerXML document holding either a <RECIPES> list or a single
// <RECIPE>. Documents declaring a non-UTF-8 encoding (BeerXML files commonly
// use ISO-8859-1) are transcoded.
func Decode(r io.Reader) ([]Recipe, error) {
	dec := newDecoder(r)

	var recipes []Recipe
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, errors.Decode("document has no RECIPES or RECIPE element", nil)
		}
		if err != nil {
			return nil, errors.Decode("reading document", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "RECIPES":
			var list struct {
				Recipe []Recipe `xml:"RECIPE"`
			}
			if err := dec.DecodeElement(&list, &start); err != nil {
				return nil, errors.Decode("decoding RECIPES", err)
			}
			recipes = list.Recipe
		case "RECIPE":
			var rec Recipe
			if err := dec.DecodeElement(&rec, &start); err != nil {
				return nil, errors.Decode("decoding RECIPE", err)
			}
			recipes = []Recipe{rec}
		default:
			return nil, errors.Decode(fmt.Sprintf("unexpected root element <%s>", start.Name.Local), nil)
		}
		break
	}

	for i := range recipes {
		tidy(reflect.ValueOf(&recipes[i]))
		if err := check(&recipes[i]); err != nil {
			return nil, errors.Decode(fmt.Sprintf("recipe %d (%q)", i+1, recipes[i].Name), err)
		}
	}
	return recipes, nil
}

// Unmarshal decodes a single record of any BeerXML type (a <HOP>, a <HOPS>
// list, a <MASH>...). The root element name is not checked.
func Unmarshal[T any](data []byte) (T, error) {
	var rec T
	if err := newDecoder(bytes.NewReader(bytes.TrimSpace(data))).Decode(&rec); err != nil {
		return rec, errors.Decode(fmt.Sprintf("decoding %T", rec), err)
	}
	tidy(reflect.ValueOf(&rec))
	if err := check(&rec); err != nil {
		return rec, errors.Decode(fmt.Sprintf("decoding %T", rec), err)
	}
	return rec, nil
}

func newDecoder(r io.Reader) *xml.Decoder {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	return dec
}

// check runs the struct-tag rules and reports the first few violations by
// their BeerXML element path.
func check(rec any) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.Internal("validating record", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			msgs = append(msgs, "missing required field "+fe.Namespace())
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s=%v violates %s=%s", fe.Namespace(), fe.Value(), fe.Tag(), fe.Param()))
	}
	return errors.New(errors.TypeDecode, strings.Join(msgs, "; "))
}

// tidy trims surrounding whitespace from every string reachable from v.
// BeerXML writers routinely indent text content and pad numbers.
func tidy(v reflect.Value) {
	switch v.Kind() {
	case reflect.Pointer:
		if !v.IsNil() {
			tidy(v.Elem())
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if t.Field(i).IsExported() {
				tidy(v.Field(i))
			}
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			tidy(v.Index(i))
		}
	case reflect.String:
		if v.CanSet() {
			v.SetString(strings.TrimSpace(v.String()))
		}
	}
}
