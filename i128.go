package wide128

// SPDX-License-Identifier: Apache-2.0

import (
	"github.com/bantling/wide128/kernel"
)

// I128 is a signed 128-bit integer in two's-complement form, stored as a
// signed high limb and an unsigned low limb, interpreted as the value
// hi*2^64 + lo in the range [-2^127, 2^127-1].
type I128 struct {
	hi int64
	lo uint64
}

// I128Zero is the additive identity.
var I128Zero = I128{}

// I128One is the multiplicative identity.
var I128One = I128{hi: 0, lo: 1}

// I128Min is the smallest representable I128 value, -2^127.
var I128Min = I128{hi: int64(-1 << 63), lo: 0}

// I128Max is the largest representable I128 value, 2^127-1.
var I128Max = I128{hi: (1<<63 - 1), lo: ^uint64(0)}

// NewI128 constructs an I128 directly from its two limbs.
func NewI128(hi int64, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

// Hi returns the high 64 bits, as a signed value.
func (i I128) Hi() int64 { return i.hi }

// Lo returns the low 64 bits.
func (i I128) Lo() uint64 { return i.lo }

// IsZero reports whether i is zero.
func (i I128) IsZero() bool { return i.hi == 0 && i.lo == 0 }

// Sign returns -1, 0, or 1 as i is negative, zero, or positive.
func (i I128) Sign() int {
	switch {
	case i.hi < 0:
		return -1
	case i.hi == 0 && i.lo == 0:
		return 0
	default:
		return 1
	}
}

// Add returns i+j, wrapping mod 2^128.
func (i I128) Add(j I128) I128 {
	_, hi, lo := kernel.Add(uint64(i.hi), i.lo, uint64(j.hi), j.lo)
	return I128{int64(hi), lo}
}

// Sub returns i-j, wrapping mod 2^128.
func (i I128) Sub(j I128) I128 {
	_, hi, lo := kernel.Sub(uint64(i.hi), i.lo, uint64(j.hi), j.lo)
	return I128{int64(hi), lo}
}

// Neg returns the two's complement negation of i, wrapping mod 2^128; in
// particular -I128Min == I128Min.
func (i I128) Neg() I128 {
	hi, lo := kernel.TwosComplement(uint64(i.hi), i.lo)
	return I128{int64(hi), lo}
}

// Abs returns the absolute value of i as an I128; I128Min.Abs() == I128Min,
// since 2^127 has no positive I128 representation (matches native signed
// integer overflow behavior).
func (i I128) Abs() I128 {
	if i.Sign() < 0 {
		return i.Neg()
	}

	return i
}

// Not returns the bitwise complement of i.
func (i I128) Not() I128 { return I128{^i.hi, ^i.lo} }

// And returns the bitwise AND of i and j.
func (i I128) And(j I128) I128 { return I128{i.hi & j.hi, i.lo & j.lo} }

// Or returns the bitwise OR of i and j.
func (i I128) Or(j I128) I128 { return I128{i.hi | j.hi, i.lo | j.lo} }

// Xor returns the bitwise XOR of i and j.
func (i I128) Xor(j I128) I128 { return I128{i.hi ^ j.hi, i.lo ^ j.lo} }

// Mul returns i*j, wrapping mod 2^128.
func (i I128) Mul(j I128) I128 {
	hi, lo := kernel.Mul(i.lo, j.lo)
	hi += uint64(i.lo)*uint64(j.hi) + uint64(i.hi)*uint64(j.lo)

	return I128{int64(hi), lo}
}

// Lsh returns i shifted left by n bits. Only the low 7 bits of n are
// significant.
func (i I128) Lsh(n uint) I128 {
	hi, lo := kernel.LshN(uint64(i.hi), i.lo, n)
	return I128{int64(hi), lo}
}

// Rsh returns i shifted right by n bits, arithmetic (sign-extending). Only
// the low 7 bits of n are significant.
func (i I128) Rsh(n uint) I128 {
	hi, lo := kernel.RshAN(uint64(i.hi), i.lo, n)
	return I128{int64(hi), lo}
}

// Cmp returns -1, 0, or 1 as i is less than, equal to, or greater than j,
// comparing as signed 128-bit integers.
func (i I128) Cmp(j I128) int {
	switch {
	case i.hi != j.hi:
		if i.hi < j.hi {
			return -1
		}

		return 1
	case i.lo != j.lo:
		if i.lo < j.lo {
			return -1
		}

		return 1
	default:
		return 0
	}
}

// Equal reports whether i == j.
func (i I128) Equal(j I128) bool { return i.hi == j.hi && i.lo == j.lo }

// LessThan reports whether i < j.
func (i I128) LessThan(j I128) bool { return i.Cmp(j) < 0 }

// GreaterThan reports whether i > j.
func (i I128) GreaterThan(j I128) bool { return i.Cmp(j) > 0 }

// QuoRem divides i by j, truncating toward zero; the remainder takes the
// sign of the dividend. Panics if j is zero. I128Min/-1 wraps to I128Min,
// matching native two's-complement signed division overflow.
func (i I128) QuoRem(j I128) (quo, rem I128) {
	if i.Equal(I128Min) && j.Equal(NewI128(-1, ^uint64(0))) {
		return I128Min, I128Zero
	}

	signN, signD := i.Sign() < 0, j.Sign() < 0

	magN := i.Abs()
	magD := j.Abs()

	uq, ur := magN.AsU128().QuoRem(magD.AsU128())

	quo, rem = uq.AsI128(), ur.AsI128()
	if signN != signD {
		quo = quo.Neg()
	}

	if signN {
		rem = rem.Neg()
	}

	return quo, rem
}

// Quo returns i/j, truncating toward zero. Panics if j is zero.
func (i I128) Quo(j I128) I128 {
	q, _ := i.QuoRem(j)
	return q
}

// Rem returns i%j, taking the sign of i. Panics if j is zero.
func (i I128) Rem(j I128) I128 {
	_, r := i.QuoRem(j)
	return r
}

// Inc returns i+1, wrapping mod 2^128.
func (i I128) Inc() I128 { return i.Add(I128One) }

// Dec returns i-1, wrapping mod 2^128.
func (i I128) Dec() I128 { return i.Sub(I128One) }

// AsU128 bitwise-reinterprets i as a U128 with the same 128-bit pattern.
func (i I128) AsU128() U128 { return U128{hi: uint64(i.hi), lo: i.lo} }
