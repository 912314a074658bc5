// Package safe provides overflow-checked integer helpers for amounts and heights.
package safe

import (
	"fmt"
	"math/bits"
)

// Unsigned is the set of unsigned integer kinds handled by this package.
type Unsigned interface {
	~uint | ~uint16 | ~uint32 | ~uint64
}

// Uint64 converts a signed integer to uint64, rejecting negative values.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Add returns a+b or an error when the sum overflows uint64.
func Add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("sum of %d and %d overflows uint64", a, b)
	}
	return sum, nil
}

// Sum adds all values, failing on the first overflow.
func Sum(values ...uint64) (uint64, error) {
	var total uint64
	for _, v := range values {
		next, err := Add(total, v)
		if err != nil {
			return 0, err
		}
		total = next
	}
	return total, nil
}

// SaturatingSub returns a-b, or zero when b > a.
func SaturatingSub[T Unsigned](a, b T) T {
	if b > a {
		return 0
	}
	return a - b
}
