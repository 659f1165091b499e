package wide128

// SPDX-License-Identifier: Apache-2.0

import (
	"math"

	"github.com/bantling/wide128/constraint"
	"github.com/bantling/wide128/kernel"
)

// U128FromInt constructs a U128 from any native signed integer of width <= 64,
// sign-extending into the low limb and setting the high limb to all-ones
// when the value is negative (so e.g. U128FromInt(-1) == U128Max).
func U128FromInt[T constraint.SignedInteger](value T) U128 {
	v := int64(value)

	var hi uint64
	if v < 0 {
		hi = ^uint64(0)
	}

	return U128{hi: hi, lo: uint64(v)}
}

// U128FromUint constructs a U128 from any native unsigned integer of width <= 64.
func U128FromUint[T constraint.UnsignedInteger](value T) U128 {
	return U128{hi: 0, lo: uint64(value)}
}

// I128FromInt constructs an I128 from any native signed integer of width <= 64.
func I128FromInt[T constraint.SignedInteger](value T) I128 {
	v := int64(value)

	var hi int64
	if v < 0 {
		hi = -1
	}

	return I128{hi: hi, lo: uint64(v)}
}

// I128FromUint constructs an I128 from any native unsigned integer of width <= 64.
func I128FromUint[T constraint.UnsignedInteger](value T) I128 {
	return I128{hi: 0, lo: uint64(value)}
}

// ToUint truncates u to a native unsigned integer of width <= 64, discarding
// the high limb, matching ordinary integer narrowing.
func ToUint[T constraint.UnsignedInteger](u U128) T {
	return T(u.lo)
}

// ToInt truncates u to a native signed integer of width <= 64, discarding
// the high limb, matching ordinary integer narrowing.
func ToInt[T constraint.SignedInteger](u U128) T {
	return T(u.lo)
}

// IToInt truncates i to a native signed integer of width <= 64, discarding
// the high limb, matching ordinary integer narrowing.
func IToInt[T constraint.SignedInteger](i I128) T {
	return T(i.lo)
}

// IToUint truncates i to a native unsigned integer of width <= 64, discarding
// the high limb, matching ordinary integer narrowing.
func IToUint[T constraint.UnsignedInteger](i I128) T {
	return T(i.lo)
}

// U128FromFloat converts a floating-point value to U128, splitting the
// magnitude at 2^64 via ldexp/floor and then applying two's complement
// negation for negative inputs, so no negative float is ever converted
// directly to an unsigned limb. Non-finite inputs return zero; finite
// out-of-range values wrap.
func U128FromFloat[T constraint.Float](value T) U128 {
	f := float64(value)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return U128Zero
	}

	neg := f < 0
	af := math.Abs(f)

	hiF := math.Floor(af * math.Ldexp(1, -64))
	loF := af - hiF*math.Ldexp(1, 64)

	// hiF is reduced mod 2^64 so that out-of-range magnitudes wrap mod 2^128;
	// hiF and loF are then both in [0, 2^64), so the uint64 conversions are
	// exact.
	hi, lo := uint64(math.Mod(hiF, math.Ldexp(1, 64))), uint64(loF)
	if neg {
		hi, lo = kernel.TwosComplement(hi, lo)
	}

	return U128{hi: hi, lo: lo}
}

// I128FromFloat converts a float/double value to I128 using the same rule
// as U128FromFloat, bitwise reinterpreted as signed.
func I128FromFloat[T constraint.Float](value T) I128 {
	return U128FromFloat(value).AsI128()
}

// ToFloat64 converts u to the nearest representable float64:
// ldexp(float64(hi), 64) + float64(lo).
func (u U128) ToFloat64() float64 {
	return math.Ldexp(float64(u.hi), 64) + float64(u.lo)
}

// ToFloat64 converts i to the nearest representable float64. Non-negative
// values use ldexp(float64(hi), 64) + float64(lo); negative values are
// negated limb-wise first and the result negated, since summing a negative
// high term with an unsigned low term cancels catastrophically (for -1 the
// low limb rounds up to 2^64, which the high term exactly annihilates,
// giving 0 instead of -1).
func (i I128) ToFloat64() float64 {
	if i.hi < 0 {
		var borrow uint64
		if i.lo != 0 {
			borrow = 1
		}

		nh := -uint64(i.hi) - borrow
		nl := -i.lo

		return -math.Ldexp(float64(nh), 64) - float64(nl)
	}

	return math.Ldexp(float64(i.hi), 64) + float64(i.lo)
}

// ToBool reports whether u is non-zero.
func (u U128) ToBool() bool { return !u.IsZero() }

// ToBool reports whether i is non-zero.
func (i I128) ToBool() bool { return !i.IsZero() }
