// Package wide128 provides U128 and I128, 128-bit unsigned and signed
// integer types built from pairs of 64-bit limbs. Every operation wraps
// (modulo 2^128, two's complement for I128), matching the overflow
// behavior of ordinary fixed-width machine integers. The host platform's
// native integer width tops out at 64 bits, so every operation here is
// synthesized from 64-bit primitives in the kernel package rather than
// delegated to a native 128-bit type.
//
// Values are constructed from native integers and floats (U128FromInt,
// U128FromUint, U128FromFloat and their I128 equivalents), from digit
// strings (ParseU128, ParseI128, or the panicking MustU128/MustI128 for use
// in var initializers), or directly from limbs (NewU128, NewI128).
//
//	total := wide128.U128FromUint(uint64(1)).Lsh(64)
//	fmt.Println(total) // 18446744073709551616
package wide128

// SPDX-License-Identifier: Apache-2.0
