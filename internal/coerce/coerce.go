// Package coerce holds the value-to-text conversions shared by the
// bettererror and result packages. Keeping them here lets the two public
// packages stay independent of each other.
package coerce

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"reflect"
	"strconv"
)

// Number returns the decimal text of v if v is a numeric value. Named types
// with a numeric underlying kind are accepted as well.
func Number(v any) (string, bool) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float64:
		return Float(n), true
	case float32:
		return Float(float64(n)), true
	case *big.Int:
		if n == nil {
			return "", false
		}
		return n.String(), true
	case *big.Float:
		if n == nil {
			return "", false
		}
		return n.Text('f', -1), true
	case json.Number:
		return n.String(), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), true
	}
	return "", false
}

// Float renders f without an exponent for the usual magnitudes (1e-7 up to
// 1e21) and falls back to the shortest exponent form outside that range.
func Float(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-7 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// JSON serializes v without HTML escaping and without the trailing newline
// json.Encoder appends. Cyclic and unsupported values return an error.
func JSON(v any) (string, error) {
	if HasCycle(v) {
		return "", ErrCycle
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})), nil
}

// IsNil reports whether v is nil or a typed nil of a nillable kind.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// ErrCycle is returned for values that refer back to themselves.
var ErrCycle = errors.New("coerce: value contains a cycle")

// maxWalkDepth matches the nesting at which encoding/json starts its own
// cycle checks; anything nested deeper is reported as a cycle.
const maxWalkDepth = 1000

var marshalerType = reflect.TypeFor[json.Marshaler]()

type visit struct {
	ptr uintptr
	typ reflect.Type
}

// HasCycle reports whether v reaches itself through pointers, maps, slices or
// interfaces. encoding/json restarts its own cycle check inside every
// MarshalJSON call, so cycles running through a Marshaler would recurse until
// the stack overflows; HasCycle catches them before encoding starts.
//
// Struct fields are followed when exported, and all fields are followed for
// types that implement json.Marshaler, whose output is opaque.
func HasCycle(v any) bool {
	return hasCycle(reflect.ValueOf(v), make(map[visit]struct{}), 0)
}

func hasCycle(rv reflect.Value, path map[visit]struct{}, depth int) bool {
	if !rv.IsValid() {
		return false
	}
	if depth > maxWalkDepth {
		return true
	}

	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return hasCycle(rv.Elem(), path, depth+1)

	case reflect.Pointer, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return false
		}
		if rv.Kind() == reflect.Slice && (rv.Len() == 0 || isLeaf(rv.Type().Elem())) {
			return false
		}
		key := visit{ptr: rv.Pointer(), typ: rv.Type()}
		if _, ok := path[key]; ok {
			return true
		}
		path[key] = struct{}{}
		defer delete(path, key)

		switch rv.Kind() {
		case reflect.Pointer:
			return hasCycle(rv.Elem(), path, depth+1)
		case reflect.Map:
			if isLeaf(rv.Type().Elem()) {
				return false
			}
			it := rv.MapRange()
			for it.Next() {
				if hasCycle(it.Value(), path, depth+1) {
					return true
				}
			}
			return false
		default:
			return walkElems(rv, path, depth)
		}

	case reflect.Array:
		if isLeaf(rv.Type().Elem()) {
			return false
		}
		return walkElems(rv, path, depth)

	case reflect.Struct:
		t := rv.Type()
		all := t.Implements(marshalerType) || reflect.PointerTo(t).Implements(marshalerType)
		for i := range t.NumField() {
			if !all && !t.Field(i).IsExported() {
				continue
			}
			if hasCycle(rv.Field(i), path, depth+1) {
				return true
			}
		}
	}
	return false
}

func walkElems(rv reflect.Value, path map[visit]struct{}, depth int) bool {
	for i := range rv.Len() {
		if hasCycle(rv.Index(i), path, depth+1) {
			return true
		}
	}
	return false
}

// isLeaf reports whether values of t can never lead back to a container.
func isLeaf(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	}
	return false
}
