// Package safecast converts between integer types used for block numbers, timestamps and
// fixed-point ratios, reporting overflow instead of wrapping.
package safecast

import (
	"fmt"
	"math"
	"math/big"

	"github.com/spf13/cast"
)

const (
	errUint64Negative = "value %v is negative, cannot convert to uint64"
)

// Uint64ToUint8 safely converts a uint64 to uint8 using cast and checks for overflow
func Uint64ToUint8(value uint64) (uint8, error) {
	if value > math.MaxUint8 {
		return 0, fmt.Errorf("value %d exceeds uint8 range", value)
	}

	return cast.ToUint8E(value)
}

// Uint64ToInt64 safely converts a uint64 to int64 using cast and checks for overflow
func Uint64ToInt64(value uint64) (int64, error) {
	if value > math.MaxInt64 {
		return 0, fmt.Errorf("value %d exceeds int64 range", value)
	}

	return cast.ToInt64E(value)
}

// Int64ToUint64 safely converts an int64 to uint64 using cast and checks for overflow
func Int64ToUint64(value int64) (uint64, error) {
	if value < 0 {
		return 0, fmt.Errorf(errUint64Negative, value)
	}

	return cast.ToUint64E(value)
}

// IntToUint64 safely converts an int to uint64 using cast and checks for overflow
func IntToUint64(value int) (uint64, error) {
	if value < 0 {
		return 0, fmt.Errorf(errUint64Negative, value)
	}

	return cast.ToUint64E(value)
}

// Float64ToUint64 safely converts a float64 to uint64 using cast and checks for overflow
func Float64ToUint64(value float64) (uint64, error) {
	if value < 0 {
		return 0, fmt.Errorf("value %g is negative, cannot convert to uint64", value)
	}

	if value >= math.MaxUint64 {
		return 0, fmt.Errorf("value %g exceeds uint64 range", value)
	}

	if value != math.Trunc(value) {
		return 0, fmt.Errorf("value %g has fractional part, cannot convert to uint64", value)
	}

	return cast.ToUint64E(value)
}

// BigToUint64 converts a non-negative big integer that fits in 64 bits.
func BigToUint64(value *big.Int) (uint64, error) {
	if value == nil {
		return 0, nil
	}
	if value.Sign() < 0 {
		return 0, fmt.Errorf(errUint64Negative, value)
	}
	if !value.IsUint64() {
		return 0, fmt.Errorf("value %s exceeds uint64 range", value)
	}

	return value.Uint64(), nil
}
