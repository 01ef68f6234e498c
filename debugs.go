// debugs.go — insertion-ordered key/value map used for debug data.
//
// Design:
//   - Internal representation: key slice (deterministic order) + value map.
//   - Overwriting an existing key keeps the key's original position and only
//     replaces the value.
//   - Readers get copies (Keys, Map, Clone); iteration is via All.
//
// Invariant: iteration order is insertion order, never Go map order.
package bettererror

import (
	"bytes"
	"encoding/json"
	"iter"
	"maps"
	"slices"

	"github.com/xgx-io/xgx-better-error/internal/coerce"
)

// Map is an insertion-ordered map from string keys to V. The zero value is
// ready to use. A nil *Map reads as empty.
type Map[V any] struct {
	keys []string
	vals map[string]V
}

// Debugs is the raw debug map: values are stored as supplied.
type Debugs = Map[any]

// DebugStrings is the stringified debug map produced by DebugString and Stack.
type DebugStrings = Map[string]

// NewMap returns an empty Map with room for size entries.
func NewMap[V any](size int) *Map[V] {
	return &Map[V]{
		keys: make([]string, 0, size),
		vals: make(map[string]V, size),
	}
}

// Set stores v under k. A new key is appended; an existing key keeps its place.
func (m *Map[V]) Set(k string, v V) {
	if m.vals == nil {
		m.vals = make(map[string]V)
	}
	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.vals[k] = v
}

// Get returns the value stored under k.
func (m *Map[V]) Get(k string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.vals[k]
	return v, ok
}

// Has reports whether k is present.
func (m *Map[V]) Has(k string) bool {
	_, ok := m.Get(k)
	return ok
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[V]) Keys() []string {
	if m.Len() == 0 {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// All iterates entries in insertion order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy; values are shared.
func (m *Map[V]) Clone() *Map[V] {
	out := NewMap[V](m.Len())
	for k, v := range m.All() {
		out.Set(k, v)
	}
	return out
}

// Map returns the entries as a plain Go map (order is lost).
func (m *Map[V]) Map() map[string]V {
	out := make(map[string]V, m.Len())
	for k, v := range m.All() {
		out[k] = v
	}
	return out
}

// MarshalJSON encodes the map as a JSON object in insertion order. A map
// that contains itself, directly or through other values, fails with an
// error instead of recursing.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	if coerce.HasCycle(m) {
		return nil, coerce.ErrCycle
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	i := 0
	for k, v := range m.All() {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// mergeInto copies every entry of src into dst with prefix prepended to the
// key. Later writes win, following Set.
func mergeInto[V any](dst *Debugs, src *Map[V], prefix string) {
	for k, v := range src.All() {
		dst.Set(prefix+k, v)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
