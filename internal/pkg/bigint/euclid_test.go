//go:build unit
// +build unit

package bigint

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intToBig(x Int) *big.Int {
	b := toBig(x.Abs())
	if x.Sign() < 0 {
		b.Neg(b)
	}
	return b
}

func TestBezout(t *testing.T) {
	t.Run("ZeroFirstArgument", func(t *testing.T) {
		s, tt := Bezout(Zero(64), FromUint64(64, 9))
		assert.Equal(t, 0, s.Sign())
		assert.Equal(t, "1", tt.String())
	})

	t.Run("NegativeCoefficient", func(t *testing.T) {
		// 240*(-9) + 46*47 = 2
		s, tt := Bezout(FromUint64(64, 240), FromUint64(64, 46))
		assert.Equal(t, "-9", s.String())
		assert.Equal(t, "47", tt.String())
	})

	t.Run("IdentityHolds", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(7, 8))
		for i := 0; i < 300; i++ {
			a := randomUint(t, rng, testWidth)
			b := randomUint(t, rng, testWidth)
			if a.IsZero() || b.IsZero() {
				continue
			}
			s, tt := Bezout(a, b)
			lhs := new(big.Int).Mul(toBig(a), intToBig(s))
			lhs.Add(lhs, new(big.Int).Mul(toBig(b), intToBig(tt)))
			assert.Equal(t, 0, lhs.Cmp(toBig(a.Gcd(b))), "a=%s b=%s", a, b)
		}
	})
}

func TestModInverse(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	one := big.NewInt(1)
	for i := 0; i < 200; i++ {
		e := randomUint(t, rng, testWidth)
		m := randomUint(t, rng, testWidth)
		if m.Cmp(FromUint64(testWidth, 1)) <= 0 {
			continue
		}
		d, err := ModInverse(e, m)
		if new(big.Int).GCD(nil, nil, toBig(e), toBig(m)).Cmp(one) != 0 {
			assert.ErrorIs(t, err, ErrNotInvertible)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, -1, d.Cmp(m))
		prod := new(big.Int).Mul(toBig(e), toBig(d))
		assert.Equal(t, 0, prod.Mod(prod, toBig(m)).Cmp(one))
	}
}

func TestIntArithmetic(t *testing.T) {
	a := NewInt(FromUint64(64, 7))
	b := NewInt(FromUint64(64, 10))

	assert.Equal(t, "-3", a.Sub(b).String())
	assert.Equal(t, "-70", a.Neg().Mul(b).String())
	assert.Equal(t, "-1", b.Neg().Quo(a).String())
	assert.Equal(t, "-3", b.Neg().Rem(a).String())
	assert.Equal(t, uint64(4), b.Neg().Mod(FromUint64(64, 7)).Uint64())
	assert.Equal(t, uint(128), a.Abs().Width())
	assert.Equal(t, 0, a.Sub(a).Sign())
}
