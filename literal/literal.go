// Package literal parses digit sequences into 128-bit values: a digit
// string, with an optional base prefix and optional leading sign, is folded
// left-to-right into a raw 128-bit limb pair using wrapping multiply-add.
// A digit out of range for the selected radix is an error that names the
// offending character.
package literal

// SPDX-License-Identifier: Apache-2.0

import (
	"fmt"

	"github.com/bantling/wide128/kernel"
)

// digitValue maps a single digit character to its value in [0, 35], or
// returns false if the character is not a valid digit/letter at all.
func digitValue(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 10, true
	default:
		return 0, false
	}
}

// splitPrefix strips a leading base prefix from digits and returns the
// selected radix and the remaining digit string, per:
//
//	0b / 0B              -> radix 2
//	0x / 0X               -> radix 16
//	leading 0, more digits -> radix 8
//	otherwise              -> radix 10
func splitPrefix(digits string) (radix uint64, rest string) {
	switch {
	case len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'b' || digits[1] == 'B'):
		return 2, digits[2:]
	case len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X'):
		return 16, digits[2:]
	case len(digits) >= 2 && digits[0] == '0':
		return 8, digits[1:]
	default:
		return 10, digits
	}
}

// ParseU128 parses an unsigned digit sequence (with optional 0b/0x/leading-0
// prefix) into its 128-bit limb pair, wrapping mod 2^128.
func ParseU128(digits string) (hi, lo uint64, err error) {
	radix, rest := splitPrefix(digits)

	if rest == "" {
		return 0, 0, fmt.Errorf("literal: empty digit sequence")
	}

	for i := 0; i < len(rest); i++ {
		d, ok := digitValue(rest[i])
		if !ok || d >= radix {
			return 0, 0, fmt.Errorf("literal: digit %q is not valid for base %d", rest[i], radix)
		}

		// value = value*radix + d, wrapping mod 2^128.
		// hi*radix only contributes its low 64 bits: any higher bits would
		// land at bit >= 128 and are discarded by the mod-2^128 wrap.
		mHi, mLo := kernel.Mul(lo, radix)
		_, hiLo := kernel.Mul(hi, radix)
		mHi += hiLo

		_, hi, lo = kernel.Add(mHi, mLo, 0, d)
	}

	return hi, lo, nil
}

// ParseI128 parses a (possibly '-'-prefixed) signed digit sequence into its
// 128-bit limb pair, wrapping mod 2^128. The sign, if present, is applied
// after folding the unsigned magnitude, via two's complement negation.
func ParseI128(digits string) (hi, lo uint64, err error) {
	negative := false

	if len(digits) > 0 && digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}

	hi, lo, err = ParseU128(digits)
	if err != nil {
		return 0, 0, err
	}

	if negative {
		hi, lo = kernel.TwosComplement(hi, lo)
	}

	return hi, lo, nil
}
