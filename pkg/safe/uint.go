// Package safe provides numeric conversions with overflow checks between wire,
// model and SQL integer widths.
package safe

import (
	"fmt"
	"math"
)

// Integer is the set of integer kinds the conversions accept.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint64 converts signed or unsigned integers to uint64 while guarding against negatives.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Int64 converts integers to int64, the width of SQL BIGINT columns.
func Int64[T Integer](v T) (int64, error) {
	if v > 0 && uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}

// Int64Ptr converts a nullable integer, keeping nil as nil.
func Int64Ptr[T Integer](v *T) (*int64, error) {
	if v == nil {
		return nil, nil
	}
	out, err := Int64(*v)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
