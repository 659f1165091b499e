package wide128

// SPDX-License-Identifier: Apache-2.0

import (
	"github.com/bantling/wide128/funcs"
	"github.com/bantling/wide128/literal"
)

// ParseU128 parses an unsigned digit sequence (with optional 0b/0x/leading-0
// prefix) into a U128, per the literal compiler's digit-folding rules.
func ParseU128(digits string) (U128, error) {
	hi, lo, err := literal.ParseU128(digits)
	if err != nil {
		return U128Zero, err
	}

	return NewU128(hi, lo), nil
}

// ParseI128 parses a (possibly '-'-prefixed) signed digit sequence into an I128.
func ParseI128(digits string) (I128, error) {
	hi, lo, err := literal.ParseI128(digits)
	if err != nil {
		return I128Zero, err
	}

	return NewI128(int64(hi), lo), nil
}

// MustU128 parses digits the same way ParseU128 does, but panics on an
// invalid digit rather than returning an error, so it is only intended for
// initializing package-level values, where the author already knows the
// digit string is well formed.
func MustU128(digits string) U128 {
	return funcs.MustValue(ParseU128(digits))
}

// MustI128 is the signed counterpart of MustU128.
func MustI128(digits string) I128 {
	return funcs.MustValue(ParseI128(digits))
}
