package wide128

// SPDX-License-Identifier: Apache-2.0

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert_floatRoundTrip(t *testing.T) {
	for _, x := range []uint64{0, 1, 12345, 0xFFFFFFFF, 0x7FFFFFFFFFFFFFFF} {
		u := U128FromUint(x)
		f := u.ToFloat64()
		back := U128FromFloat(f)

		ratio := math.Abs(back.ToFloat64()-f) / math.Max(1, math.Abs(f))
		assert.LessOrEqual(t, ratio, 1e-9)
	}
}

func TestConvert_negativeToFloat(t *testing.T) {
	assert.Equal(t, -1.0, I128FromInt(-1).ToFloat64())
	assert.Equal(t, -123456789.0, I128FromInt(-123456789).ToFloat64())

	// -2^127
	assert.Equal(t, -math.Ldexp(1, 127), I128Min.ToFloat64())

	// negative with both limbs in play: -(2^64 + 5)
	v := NewI128(0, 5).Add(I128One.Lsh(64)).Neg()
	assert.Equal(t, -math.Ldexp(1, 64)-5, v.ToFloat64())
}

func TestConvert_boolean(t *testing.T) {
	assert.False(t, U128Zero.ToBool())
	assert.True(t, U128One.ToBool())
	assert.False(t, I128Zero.ToBool())
	assert.True(t, NewI128(-1, 0).ToBool())
}

func TestConvert_negativeFloat(t *testing.T) {
	u := U128FromFloat(-5.0)
	assert.True(t, u.AsI128().Equal(I128FromInt(-5)))
}

func TestConvert_signedNarrowing(t *testing.T) {
	var x int16 = -321
	assert.Equal(t, x, IToInt[int16](I128FromInt(x)))

	var y uint8 = 0xAB
	assert.Equal(t, y, IToUint[uint8](I128FromUint(y)))
}

func TestConvert_bigEndianRoundTrip(t *testing.T) {
	u := NewU128(0x0102030405060708, 0x90A0B0C0D0E0F0FF)

	var buf [16]byte
	u.PutBigEndian(buf[:])

	assert.True(t, U128FromBigEndian(buf[:]).Equal(u))

	u.PutLittleEndian(buf[:])
	assert.True(t, U128FromLittleEndian(buf[:]).Equal(u))
}

func TestConvert_bitLenAndOnesCount(t *testing.T) {
	assert.Equal(t, 0, U128Zero.BitLen())
	assert.Equal(t, 1, U128One.BitLen())
	assert.Equal(t, 128, U128Max.BitLen())
	assert.Equal(t, 128, U128Max.OnesCount())
}
