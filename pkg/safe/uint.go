// Package safe provides numeric conversions that fail instead of wrapping.
package safe

import "fmt"

// Uint64 converts signed integers to uint64, rejecting negatives.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}
