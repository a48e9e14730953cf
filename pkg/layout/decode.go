package layout

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/chazu/fabgen/pkg/engine"
)

var (
	// ErrUnknownKey is returned when a table sets a key no field claims.
	ErrUnknownKey = errors.New("unknown key")
	// ErrMissingKey is returned when a required field has no key.
	ErrMissingKey = errors.New("missing key")
	// ErrValueType is returned when a value does not fit its field.
	ErrValueType = errors.New("value type mismatch")
)

// field is one tagged struct field.
type field struct {
	key      string
	optional bool
	value    reflect.Value
}

// fieldsOf returns the tagged fields of the struct v points into. Untagged
// fields are ignored.
func fieldsOf(v reflect.Value) []field {
	typ := v.Type()
	var out []field
	for i := 0; i < typ.NumField(); i++ {
		tag, ok := typ.Field(i).Tag.Lookup("layout")
		if !ok || tag == "-" {
			continue
		}
		key, opts, _ := strings.Cut(tag, ",")
		out = append(out, field{key: key, optional: opts == "optional", value: v.Field(i)})
	}
	return out
}

// Decode copies the fields of t into the struct dst points to. Every key
// of t must match a tagged field, and every field not marked optional
// must be present. Pointer fields stay nil when their key is absent.
func Decode(t *engine.Table, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("layout: decode target must be a non-nil struct pointer, got %T", dst)
	}
	name := t.Name
	if name == "" {
		name = "table"
	}
	return decodeTable(name, t, rv.Elem())
}

func decodeTable(path string, t *engine.Table, v reflect.Value) error {
	fields := fieldsOf(v)
	claimed := make(map[string]bool, len(fields))
	for _, f := range fields {
		claimed[f.key] = true
	}
	for _, key := range t.Keys() {
		if !claimed[key] {
			return fmt.Errorf("layout: %s: :%s: %w", path, key, ErrUnknownKey)
		}
	}
	for _, f := range fields {
		raw, ok := t.Fields[f.key]
		if !ok {
			if f.optional {
				continue
			}
			return fmt.Errorf("layout: %s: :%s: %w", path, f.key, ErrMissingKey)
		}
		if err := decodeValue(path+"."+f.key, raw, f.value); err != nil {
			return err
		}
	}
	return nil
}

func decodeValue(path string, raw any, v reflect.Value) error {
	mismatch := func(want string) error {
		return fmt.Errorf("layout: %s: want %s, got %T: %w", path, want, raw, ErrValueType)
	}

	switch v.Kind() {
	case reflect.Float64:
		f, ok := raw.(float64)
		if !ok {
			return mismatch("number")
		}
		v.SetFloat(f)

	case reflect.Int:
		f, ok := raw.(float64)
		if !ok || f != math.Trunc(f) {
			return mismatch("integer")
		}
		v.SetInt(int64(f))

	case reflect.String:
		s, ok := raw.(string)
		if !ok {
			return mismatch("string")
		}
		v.SetString(s)

	case reflect.Bool:
		b, ok := raw.(bool)
		if !ok {
			return mismatch("bool")
		}
		v.SetBool(b)

	case reflect.Slice:
		items, ok := raw.([]any)
		if !ok {
			return mismatch("array")
		}
		s := reflect.MakeSlice(v.Type(), len(items), len(items))
		for i, item := range items {
			if err := decodeValue(fmt.Sprintf("%s[%d]", path, i), item, s.Index(i)); err != nil {
				return err
			}
		}
		v.Set(s)

	case reflect.Array:
		items, ok := raw.([]any)
		if !ok || len(items) != v.Len() {
			return mismatch(fmt.Sprintf("array of %d", v.Len()))
		}
		for i, item := range items {
			if err := decodeValue(fmt.Sprintf("%s[%d]", path, i), item, v.Index(i)); err != nil {
				return err
			}
		}

	case reflect.Pointer:
		elem := reflect.New(v.Type().Elem())
		if err := decodeValue(path, raw, elem.Elem()); err != nil {
			return err
		}
		v.Set(elem)

	case reflect.Struct:
		t, ok := raw.(*engine.Table)
		if !ok {
			return mismatch("section")
		}
		return decodeTable(path, t, v)

	default:
		return fmt.Errorf("layout: %s: unsupported field kind %s", path, v.Kind())
	}
	return nil
}
