// Package forms decodes and validates the HTML form submissions of the
// directory pages.
package forms

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gorilla/schema"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("json")
	d.IgnoreUnknownKeys(true)
	d.ZeroEmpty(true)
	// Checkboxes post "y" (or "on") when ticked and nothing when not.
	d.RegisterConverter(false, func(value string) reflect.Value {
		switch strings.ToLower(value) {
		case "y", "yes", "on", "true", "1":
			return reflect.ValueOf(true)
		case "", "n", "no", "off", "false", "0":
			return reflect.ValueOf(false)
		}
		return reflect.Value{}
	})
	return d
}

// Decode parses the request body into dst. Values that cannot be converted to
// the field's type come back as validation.Errors keyed by field name.
func Decode(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parse form: %w", err)
	}
	if err := decoder.Decode(dst, r.PostForm); err != nil {
		var multi schema.MultiError
		if errors.As(err, &multi) {
			fields := validation.Errors{}
			for key := range multi {
				fields[key] = errors.New("is not a valid value")
			}
			return fields
		}
		return fmt.Errorf("decode form: %w", err)
	}
	return nil
}

// FieldErrors flattens validation failures into field -> message pairs for
// rendering next to the inputs. It returns nil for any other kind of error.
func FieldErrors(err error) map[string]string {
	var fields validation.Errors
	if !errors.As(err, &fields) {
		return nil
	}
	out := make(map[string]string, len(fields))
	for name, fieldErr := range fields {
		out[name] = fieldErr.Error()
	}
	return out
}

// IsInvalid reports whether err describes bad user input.
func IsInvalid(err error) bool {
	var fields validation.Errors
	return errors.As(err, &fields)
}

func anyOf(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
