package common

import "testing"

func AssertArraysEqual[V comparable](t *testing.T, first, second []V) {
	t.Helper()
	if len(first) != len(second) {
		t.Errorf("array sizes differ, %d != %d", len(first), len(second))
		return
	}
	for i := 0; i < len(first); i++ {
		if first[i] != second[i] {
			t.Errorf("assertValues failed: %v != %v", first[i], second[i])
		}
	}
}

// AssertSetsEqual compares the two input slices regardless of the element order.
func AssertSetsEqual[V comparable](t *testing.T, first, second []V) {
	t.Helper()
	if len(first) != len(second) {
		t.Errorf("set sizes differ, %d != %d", len(first), len(second))
		return
	}
	visited := make(map[V]int, len(first))
	for _, v := range first {
		visited[v] += 1
	}
	for _, v := range second {
		visited[v] -= 1
	}
	for v, count := range visited {
		if count != 0 {
			t.Errorf("sets differ in element: %v", v)
		}
	}
}
