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

const testWidth = 256

func toBig(x Uint) *big.Int {
	return new(big.Int).SetBytes(x.Bytes())
}

func randomUint(t *testing.T, rng *rand.Rand, width uint) Uint {
	t.Helper()
	b := make([]byte, ByteLen(width))
	for i := range b {
		b[i] = byte(rng.Uint32())
	}
	// vary magnitudes so short and long operands are both exercised
	b = b[rng.IntN(len(b)):]
	x, err := FromBytes(width, b)
	require.NoError(t, err)
	return x
}

func TestFromBytes(t *testing.T) {
	t.Run("ShortInputIsLeftPadded", func(t *testing.T) {
		x, err := FromBytes(64, []byte{0x01, 0x02})
		require.NoError(t, err)
		assert.Equal(t, uint64(0x0102), x.Uint64())
		assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0x01, 0x02}, x.Bytes())
	})

	t.Run("TooLong", func(t *testing.T) {
		_, err := FromBytes(16, []byte{1, 2, 3})
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("Empty", func(t *testing.T) {
		x, err := FromBytes(32, nil)
		require.NoError(t, err)
		assert.True(t, x.IsZero())
		assert.Len(t, x.Bytes(), 4)
	})
}

func TestBytesRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, width := range []uint{8, 64, 72, 256, 512} {
		for i := 0; i < 200; i++ {
			x := randomUint(t, rng, width)
			b := x.Bytes()
			require.Len(t, b, int(width/8))

			y, err := FromBytes(width, b)
			require.NoError(t, err)
			assert.True(t, x.Equal(y), "width %d value %s", width, x)
		}
	}
}

func TestArithmeticAgainstMathBig(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	mod := new(big.Int).Lsh(big.NewInt(1), testWidth)

	for i := 0; i < 500; i++ {
		x := randomUint(t, rng, testWidth)
		y := randomUint(t, rng, testWidth)
		bx, by := toBig(x), toBig(y)

		sum := new(big.Int).Add(bx, by)
		assert.Equal(t, 0, sum.Mod(sum, mod).Cmp(toBig(x.Add(y))), "add")

		diff := new(big.Int).Sub(bx, by)
		assert.Equal(t, 0, diff.Mod(diff, mod).Cmp(toBig(x.Sub(y))), "sub")

		prod := new(big.Int).Mul(bx, by)
		assert.Equal(t, 0, prod.Mod(prod, mod).Cmp(toBig(x.Mul(y))), "mul")

		if y.IsZero() {
			continue
		}
		q, r := x.DivMod(y)
		bq, br := new(big.Int).QuoRem(bx, by, new(big.Int))
		assert.Equal(t, 0, bq.Cmp(toBig(q)), "div %s / %s", x, y)
		assert.Equal(t, 0, br.Cmp(toBig(r)), "mod %s %% %s", x, y)

		assert.Equal(t, bx.Cmp(by), x.Cmp(y))
		assert.Equal(t, 0, new(big.Int).GCD(nil, nil, bx, by).Cmp(toBig(x.Gcd(y))), "gcd")
	}
}

func TestDivModEdgeCases(t *testing.T) {
	// divisors whose top limb forces the qhat correction step
	x, err := FromString(testWidth, "0xffffffff00000000ffffffff00000000ffffffff")
	require.NoError(t, err)
	y, err := FromString(testWidth, "0x80000000ffffffff00000001")
	require.NoError(t, err)

	q, r := x.DivMod(y)
	bq, br := new(big.Int).QuoRem(toBig(x), toBig(y), new(big.Int))
	assert.Equal(t, bq.String(), q.String())
	assert.Equal(t, br.String(), r.String())

	assert.Panics(t, func() { x.Div(Zero(testWidth)) })
}

func TestPowMod(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 100; i++ {
		base := randomUint(t, rng, testWidth)
		exp := randomUint(t, rng, testWidth)
		m := randomUint(t, rng, testWidth)
		if m.IsZero() {
			continue
		}
		want := new(big.Int).Exp(toBig(base), toBig(exp), toBig(m))
		got := PowMod(base, exp, m)
		assert.Equal(t, want.String(), got.String())
		assert.Equal(t, uint(testWidth), got.Width())
	}

	t.Run("ModulusOne", func(t *testing.T) {
		got := PowMod(FromUint64(64, 5), FromUint64(64, 3), FromUint64(64, 1))
		assert.True(t, got.IsZero())
	})

	t.Run("ZeroExponent", func(t *testing.T) {
		got := PowMod(FromUint64(64, 5), Zero(64), FromUint64(64, 7))
		assert.Equal(t, uint64(1), got.Uint64())
	})
}

func TestSubWraps(t *testing.T) {
	got := FromUint64(16, 1).Sub(FromUint64(16, 2))
	assert.Equal(t, uint64(0xffff), got.Uint64())
}

func TestFromStringAndText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		width   uint
		decimal string
		wantErr error
	}{
		{"decimal", "123456789012345678901234567890", 128, "123456789012345678901234567890", nil},
		{"hex", "0xDEADbeef", 64, "3735928559", nil},
		{"zero", "0", 8, "0", nil},
		{"overflow", "256", 8, "", ErrOverflow},
		{"garbage", "12a", 64, "", ErrInvalidString},
		{"empty", "", 64, "", ErrInvalidString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := FromString(tt.width, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.decimal, x.String())

			back, err := FromString(tt.width, "0x"+x.Text(16))
			require.NoError(t, err)
			assert.True(t, x.Equal(back))
		})
	}
}

func TestShiftsAndBits(t *testing.T) {
	x := FromUint64(128, 1).Lsh(100)
	assert.Equal(t, 101, x.BitLen())
	assert.Equal(t, uint(1), x.Bit(100))
	assert.Equal(t, uint(0), x.Bit(99))
	assert.Equal(t, uint64(1), x.Rsh(100).Uint64())
	assert.True(t, x.Lsh(28).IsZero(), "shifted out of width")
	assert.Equal(t, uint32(0), FromUint64(64, 77).ModWord(7))
	assert.True(t, FromUint64(64, 77).IsOdd())
}
