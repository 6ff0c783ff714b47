package internal

import (
	"reflect"
	"strings"
)

// FieldFunc receives one named field; returning false stops the walk.
type FieldFunc func(name string, value any) bool

// RangeFields walks the named fields of v. Structs yield their exported fields
// (embedded structs flattened), maps with string keys yield their entries,
// pointers and interfaces are followed. Anything else has no fields.
func RangeFields(v any, f FieldFunc) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		rangeStruct(rv, f)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return
		}
		it := rv.MapRange()
		for it.Next() {
			if !it.Value().CanInterface() {
				continue
			}
			if !f(it.Key().String(), it.Value().Interface()) {
				return
			}
		}
	}
}

func rangeStruct(rv reflect.Value, f FieldFunc) bool {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		fv := rv.Field(i)
		if sf.Anonymous {
			inner := fv
			for inner.Kind() == reflect.Pointer && !inner.IsNil() {
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				if !rangeStruct(inner, f) {
					return false
				}
				continue
			}
		}
		if !sf.IsExported() || !fv.CanInterface() {
			continue
		}
		name, ok := FieldName(sf)
		if !ok {
			continue
		}
		if !f(name, fv.Interface()) {
			return false
		}
	}
	return true
}

// FieldName resolves the name a struct field is matched under: the `seq` tag,
// then the `json` tag, then the Go name. A "-" tag hides the field.
func FieldName(sf reflect.StructField) (string, bool) {
	for _, key := range []string{"seq", "json"} {
		tag, ok := sf.Tag.Lookup(key)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			return "", false
		}
		if name != "" {
			return name, true
		}
	}
	return sf.Name, true
}

// StrictEqual is == on dynamic values. Values of different types, and values
// that cannot be compared, are never equal.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return va.Equal(vb)
}
