package common

import (
	"unsafe"
)

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the input data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// ToNDC maps a logical coordinate in [0, extent] onto the [-1, 1] normalized device range.
//
// Parameters:
//   - v: the logical coordinate
//   - extent: the logical size of the axis (arena width or height)
//
// Returns:
//   - float32: the coordinate in normalized device space
func ToNDC(v, extent float32) float32 {
	return 2*v/extent - 1
}

// Within reports whether x lies strictly inside the open interval (y-tolerance, y+tolerance).
//
// Parameters:
//   - x: the value to test
//   - y: the center of the interval
//   - tolerance: the half-width of the interval
//
// Returns:
//   - bool: true if |x - y| < tolerance
func Within(x, y, tolerance float32) bool {
	return x < y+tolerance && x > y-tolerance
}
