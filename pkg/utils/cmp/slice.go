package cmp

// SliceEq detects two slices have the same content in the same order.
func SliceEq[T comparable](a, b []T) bool {
	return SliceEqWith(a, b, func(x, y T) bool { return x == y })
}

// SliceEqWith is SliceEq with a custom equality rule.
func SliceEqWith[T any, U any](a []T, b []U, eq func(T, U) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for nth := range a {
		if !eq(a[nth], b[nth]) {
			return false
		}
	}
	return true
}

// SliceContentEq detects two slices have the same content,
// ignoring order and multiplicity-preserving.
func SliceContentEq[T comparable](a, b []T) bool {
	return SliceContentEqWith(a, b, func(x, y T) bool { return x == y })
}

// SliceContentEqWith is SliceContentEq with a custom equality rule.
func SliceContentEqWith[T any, U any](a []T, b []U, eq func(T, U) bool) bool {
	if len(a) != len(b) {
		return false
	}

	rest := append([]U(nil), b...)

A:
	for _, x := range a {
		for i, y := range rest {
			if eq(x, y) {
				rest = append(rest[:i], rest[i+1:]...)
				continue A
			}
		}
		return false
	}

	return len(rest) == 0
}

// SliceContains detects sub appears in sli as a contiguous subsequence.
func SliceContains[T comparable](sli []T, sub []T) bool {
	if len(sli) < len(sub) {
		return false
	}
	for start := 0; start+len(sub) <= len(sli); start++ {
		if SliceEq(sli[start:start+len(sub)], sub) {
			return true
		}
	}
	return false
}
