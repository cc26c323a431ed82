// Package alias reports whether two slices share backing memory.
package alias

import "unsafe"

// Overlap reports whether the memory ranges of a and b intersect.
// Empty slices never overlap anything.
func Overlap[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return false
	}

	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	aEnd := aStart + uintptr(len(a))*size
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	bEnd := bStart + uintptr(len(b))*size

	return aStart < bEnd && bStart < aEnd
}
