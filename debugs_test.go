// debugs_test.go — ordered map semantics.
package bettererror

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/xgx-io/xgx-better-error/internal/coerce"
)

func TestMap_InsertionOrderAndOverwrite(t *testing.T) {
	t.Parallel()

	m := NewMap[any](0)
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)
	m.Set("a", 20)

	if diff := cmp.Diff([]string{"b", "a", "c"}, m.Keys()); diff != "" {
		t.Fatalf("Keys() mismatch (-want +got):\n%s", diff)
	}
	if v, _ := m.Get("a"); v != 20 {
		t.Fatalf("Get(a) = %v, want 20", v)
	}
	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
}

func TestMap_ZeroValueAndNil(t *testing.T) {
	t.Parallel()

	var zero Map[string]
	zero.Set("k", "v")
	if !zero.Has("k") {
		t.Fatalf("zero-value map should accept writes")
	}

	var nilMap *Map[any]
	if nilMap.Len() != 0 || nilMap.Has("k") || nilMap.Keys() != nil {
		t.Fatalf("nil map should read as empty")
	}
	for range nilMap.All() {
		t.Fatalf("nil map should not yield")
	}
	if nilMap.Clone().Len() != 0 {
		t.Fatalf("Clone of nil map should be empty")
	}
}

func TestMap_AllStopsEarly(t *testing.T) {
	t.Parallel()

	m := NewMap[int](3)
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	var seen []string
	for k := range m.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}
	if diff := cmp.Diff([]string{"a", "b"}, seen); diff != "" {
		t.Fatalf("early break mismatch (-want +got):\n%s", diff)
	}
}

func TestMap_CloneAndMapAreIndependent(t *testing.T) {
	t.Parallel()

	m := NewMap[int](2)
	m.Set("a", 1)

	c := m.Clone()
	c.Set("b", 2)
	plain := m.Map()
	plain["z"] = 9

	if m.Has("b") || m.Has("z") {
		t.Fatalf("copies must not write through: %v", m.Keys())
	}
	if diff := cmp.Diff(map[string]int{"a": 1, "b": 2}, c.Map()); diff != "" {
		t.Fatalf("clone mismatch (-want +got):\n%s", diff)
	}
}

func TestMap_MarshalJSONKeepsOrder(t *testing.T) {
	t.Parallel()

	m := NewMap[any](3)
	m.Set("zeta", 1)
	m.Set("alpha", "two")
	m.Set("mid", []int{3})

	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := string(b), `{"zeta":1,"alpha":"two","mid":[3]}`; got != want {
		t.Fatalf("json = %s, want %s", got, want)
	}

	empty, err := json.Marshal(NewMap[string](0))
	if err != nil {
		t.Fatalf("Marshal empty: %v", err)
	}
	if string(empty) != "{}" {
		t.Fatalf("empty json = %s", empty)
	}
}

func TestMap_MarshalJSONRejectsCycles(t *testing.T) {
	t.Parallel()

	m := NewMap[any](1)
	m.Set("self", m)

	_, err := json.Marshal(m)
	if err == nil {
		t.Fatalf("expected an error for a self-referencing map")
	}
	if !errors.Is(err, coerce.ErrCycle) {
		t.Fatalf("err = %v, want the cycle error", err)
	}
}

func TestMergeInto_PrefixAndOverwrite(t *testing.T) {
	t.Parallel()

	dst := NewMap[any](0)
	dst.Set("x - a", "old")
	src := NewMap[string](2)
	src.Set("a", "new")
	src.Set("b", "b")

	mergeInto(dst, src, "x - ")

	if diff := cmp.Diff([]string{"x - a", "x - b"}, dst.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if v, _ := dst.Get("x - a"); v != "new" {
		t.Fatalf("later write should win, got %v", v)
	}
}
