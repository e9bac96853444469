package cmp_test

import (
	"testing"

	"github.com/cartload/cartload/pkg/utils/cmp"
)

func TestMapEq(t *testing.T) {
	t.Run("it detects two equal maps", func(t *testing.T) {
		a := map[string]string{"key1": "foo", "key2": "bar"}
		b := map[string]string{"key1": "foo", "key2": "bar"}
		if !cmp.MapEq(a, b) {
			t.Error("two maps are not equal, unexpectedly.")
		}
		if !cmp.MapEq(b, a) {
			t.Error("two maps are not equal, unexpectedly.")
		}
	})

	t.Run("it detects differences", func(t *testing.T) {
		a := map[string]string{"key1": "foo", "key2": "bar"}
		for name, b := range map[string]map[string]string{
			"different value": {"key1": "foo", "key2": "baz"},
			"different key":   {"key1": "foo", "key3": "bar"},
			"missing key":     {"key1": "foo"},
			"extra key":       {"key1": "foo", "key2": "bar", "key3": "baz"},
			"empty":           {},
		} {
			t.Run(name, func(t *testing.T) {
				if cmp.MapEq(a, b) {
					t.Errorf("maps are equal, unexpectedly: %v, %v", a, b)
				}
			})
		}
	})

	t.Run("it treats empty maps as equal", func(t *testing.T) {
		if !cmp.MapEq(map[string]int{}, map[string]int{}) {
			t.Error("empty maps are not equal, unexpectedly.")
		}
	})
}

func TestMapEqWith(t *testing.T) {
	type box struct{ value int }
	eq := func(a box, b int) bool { return a.value == b }

	t.Run("it compares values with the given predicate", func(t *testing.T) {
		a := map[string]box{"key1": {1}, "key2": {2}}
		b := map[string]int{"key1": 1, "key2": 2}
		if !cmp.MapEqWith(a, b, eq) {
			t.Error("two maps are not equal, unexpectedly.")
		}

		c := map[string]int{"key1": 1, "key2": 3}
		if cmp.MapEqWith(a, c, eq) {
			t.Error("two maps are equal, unexpectedly.")
		}
	})

	t.Run("it detects different key sets", func(t *testing.T) {
		a := map[string]box{"key1": {1}}
		b := map[string]int{"key2": 1}
		if cmp.MapEqWith(a, b, eq) {
			t.Error("two maps are equal, unexpectedly.")
		}
	})
}

func TestMapLeqWith(t *testing.T) {
	eq := func(a, b int) bool { return a == b }

	t.Run("it accepts a submap", func(t *testing.T) {
		a := map[string]int{"key1": 1}
		b := map[string]int{"key1": 1, "key2": 2}
		if !cmp.MapLeqWith(a, b, eq) {
			t.Error("a is not a submap of b, unexpectedly.")
		}
	})

	t.Run("it rejects extra keys", func(t *testing.T) {
		a := map[string]int{"key1": 1, "key3": 3}
		b := map[string]int{"key1": 1, "key2": 2}
		if cmp.MapLeqWith(a, b, eq) {
			t.Error("a is a submap of b, unexpectedly.")
		}
	})

	t.Run("it rejects different values", func(t *testing.T) {
		a := map[string]int{"key1": 9}
		b := map[string]int{"key1": 1, "key2": 2}
		if cmp.MapLeqWith(a, b, eq) {
			t.Error("a is a submap of b, unexpectedly.")
		}
	})
}
