package wide128

// SPDX-License-Identifier: Apache-2.0

// Limits exposes the constants a host numeric-traits/numeric-limits facility
// would need to specialize generic code over U128 and I128: integrality,
// signedness, bit width, approximate decimal digit count, and radix. The
// min/max/lowest values of each type are the package functions below, not
// fields of Limits.
type Limits struct {
	IsIntegral bool
	IsSigned   bool
	BitWidth   int
	Digits10   int
	Radix      int
}

// U128Limits describes U128's numeric-trait values.
var U128Limits = Limits{IsIntegral: true, IsSigned: false, BitWidth: 128, Digits10: 38, Radix: 2}

// I128Limits describes I128's numeric-trait values.
var I128Limits = Limits{IsIntegral: true, IsSigned: true, BitWidth: 128, Digits10: 38, Radix: 2}

// U128Min returns the smallest U128 value, 0.
func U128Min() U128 { return U128Zero }

// U128MaxValue returns the largest U128 value, ~0.
func U128MaxValue() U128 { return U128Max }

// U128Lowest is an alias of U128Min for parity with numeric_limits::lowest,
// which differs from min() only for floating-point types.
func U128Lowest() U128 { return U128Zero }

// I128MinValue returns the smallest I128 value, I128(1) << 127.
func I128MinValue() I128 { return I128Min }

// I128MaxValue returns the largest I128 value, ~(I128(1) << 127).
func I128MaxValue() I128 { return I128Max }

// I128Lowest is an alias of I128MinValue for parity with numeric_limits::lowest.
func I128Lowest() I128 { return I128Min }
