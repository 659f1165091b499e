package wide128

// SPDX-License-Identifier: Apache-2.0

import (
	"math/bits"

	"github.com/bantling/wide128/kernel"
)

// U128 is an unsigned 128-bit integer, stored as two 64-bit limbs
// interpreted as the non-negative value hi*2^64 + lo, reduced mod 2^128.
//
// Limbs are stored in declaration order (hi, then lo) regardless of host
// byte order; there is no native 128-bit integer type to bit-cast to, so
// byte-order interop goes through the explicit PutBigEndian/PutLittleEndian
// round-trip functions instead.
type U128 struct {
	hi, lo uint64
}

// U128Zero is the additive identity.
var U128Zero = U128{}

// U128One is the multiplicative identity.
var U128One = U128{hi: 0, lo: 1}

// U128Max is the largest representable U128 value.
var U128Max = U128{hi: ^uint64(0), lo: ^uint64(0)}

// NewU128 constructs a U128 directly from its two limbs.
func NewU128(hi, lo uint64) U128 {
	return U128{hi: hi, lo: lo}
}

// Hi returns the high 64 bits.
func (u U128) Hi() uint64 { return u.hi }

// Lo returns the low 64 bits.
func (u U128) Lo() uint64 { return u.lo }

// IsZero reports whether u is zero.
func (u U128) IsZero() bool { return u.hi == 0 && u.lo == 0 }

// Add returns u+v, wrapping mod 2^128.
func (u U128) Add(v U128) U128 {
	_, hi, lo := kernel.Add(u.hi, u.lo, v.hi, v.lo)
	return U128{hi, lo}
}

// Sub returns u-v, wrapping mod 2^128.
func (u U128) Sub(v U128) U128 {
	_, hi, lo := kernel.Sub(u.hi, u.lo, v.hi, v.lo)
	return U128{hi, lo}
}

// Neg returns the two's complement negation of u (0-u), wrapping mod 2^128.
func (u U128) Neg() U128 {
	hi, lo := kernel.TwosComplement(u.hi, u.lo)
	return U128{hi, lo}
}

// Not returns the bitwise complement of u.
func (u U128) Not() U128 { return U128{^u.hi, ^u.lo} }

// And returns the bitwise AND of u and v.
func (u U128) And(v U128) U128 { return U128{u.hi & v.hi, u.lo & v.lo} }

// Or returns the bitwise OR of u and v.
func (u U128) Or(v U128) U128 { return U128{u.hi | v.hi, u.lo | v.lo} }

// Xor returns the bitwise XOR of u and v.
func (u U128) Xor(v U128) U128 { return U128{u.hi ^ v.hi, u.lo ^ v.lo} }

// Mul returns u*v, wrapping mod 2^128.
//
// The cross products u.lo*v.hi and v.lo*u.hi only contribute bits at
// position >= 64, and anything past bit 128 is discarded by the wrap, so
// only their low 64 bits matter; u.hi*v.hi starts at bit 128 and never
// contributes surviving bits at all.
func (u U128) Mul(v U128) U128 {
	hi, lo := kernel.Mul(u.lo, v.lo)
	hi += u.lo*v.hi + u.hi*v.lo

	return U128{hi, lo}
}

// Lsh returns u shifted left by n bits. Only the low 7 bits of n are
// significant.
func (u U128) Lsh(n uint) U128 {
	hi, lo := kernel.LshN(u.hi, u.lo, n)
	return U128{hi, lo}
}

// Rsh returns u shifted right by n bits; vacated bits are zero. Only the
// low 7 bits of n are significant.
func (u U128) Rsh(n uint) U128 {
	hi, lo := kernel.RshLN(u.hi, u.lo, n)
	return U128{hi, lo}
}

// Cmp returns -1, 0, or 1 as u is less than, equal to, or greater than v,
// comparing as unsigned 128-bit integers.
func (u U128) Cmp(v U128) int {
	switch {
	case u.hi != v.hi:
		if u.hi < v.hi {
			return -1
		}

		return 1
	case u.lo != v.lo:
		if u.lo < v.lo {
			return -1
		}

		return 1
	default:
		return 0
	}
}

// Equal reports whether u == v.
func (u U128) Equal(v U128) bool { return u.hi == v.hi && u.lo == v.lo }

// LessThan reports whether u < v.
func (u U128) LessThan(v U128) bool { return u.Cmp(v) < 0 }

// GreaterThan reports whether u > v.
func (u U128) GreaterThan(v U128) bool { return u.Cmp(v) > 0 }

// QuoRem divides u by v, returning the quotient and remainder such that
// u == quo*v + rem and 0 <= rem < v. Panics if v is zero, with the same
// message the Go runtime produces for native integer division by zero.
func (u U128) QuoRem(v U128) (quo, rem U128) {
	qh, ql, rh, rl := kernel.QuoRem(u.hi, u.lo, v.hi, v.lo)
	return U128{qh, ql}, U128{rh, rl}
}

// Quo returns u/v. Panics if v is zero.
func (u U128) Quo(v U128) U128 {
	q, _ := u.QuoRem(v)
	return q
}

// Rem returns u%v. Panics if v is zero.
func (u U128) Rem(v U128) U128 {
	_, r := u.QuoRem(v)
	return r
}

// Inc returns u+1, wrapping mod 2^128.
func (u U128) Inc() U128 { return u.Add(U128One) }

// Dec returns u-1, wrapping mod 2^128.
func (u U128) Dec() U128 { return u.Sub(U128One) }

// AsI128 bitwise-reinterprets u as an I128 with the same 128-bit pattern.
func (u U128) AsI128() I128 { return I128{hi: int64(u.hi), lo: u.lo} }

// BitLen returns the number of bits required to represent u, i.e. the
// position of the highest set bit plus one; BitLen of zero is 0.
func (u U128) BitLen() int {
	if u.hi != 0 {
		return 128 - kernel.Clz64(u.hi)
	}

	if u.lo != 0 {
		return 64 - kernel.Clz64(u.lo)
	}

	return 0
}

// OnesCount returns the number of one bits ("population count") in u.
func (u U128) OnesCount() int {
	return bits.OnesCount64(u.hi) + bits.OnesCount64(u.lo)
}

// PutBigEndian writes the 16-byte big-endian encoding of u into dst, which
// must have length >= 16.
func (u U128) PutBigEndian(dst []byte) {
	_ = dst[15]

	for i := 0; i < 8; i++ {
		dst[i] = byte(u.hi >> (56 - 8*i))
		dst[8+i] = byte(u.lo >> (56 - 8*i))
	}
}

// PutLittleEndian writes the 16-byte little-endian encoding of u into dst,
// which must have length >= 16.
func (u U128) PutLittleEndian(dst []byte) {
	_ = dst[15]

	for i := 0; i < 8; i++ {
		dst[i] = byte(u.lo >> (8 * i))
		dst[8+i] = byte(u.hi >> (8 * i))
	}
}

// U128FromBigEndian decodes a 16-byte big-endian byte slice into a U128.
func U128FromBigEndian(src []byte) U128 {
	_ = src[15]

	var hi, lo uint64
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(src[i])
	}

	for i := 8; i < 16; i++ {
		lo = lo<<8 | uint64(src[i])
	}

	return U128{hi, lo}
}

// U128FromLittleEndian decodes a 16-byte little-endian byte slice into a U128.
func U128FromLittleEndian(src []byte) U128 {
	_ = src[15]

	var hi, lo uint64
	for i := 7; i >= 0; i-- {
		lo = lo<<8 | uint64(src[i])
	}

	for i := 15; i >= 8; i-- {
		hi = hi<<8 | uint64(src[i])
	}

	return U128{hi, lo}
}
