//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"testing"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/bigint"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/config"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/random"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = 42

// zeroSource never yields a usable candidate
type zeroSource struct{}

func (zeroSource) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func setupPrimalityTester(t *testing.T, source random.Source, settings *config.CipherSettings) cryptoalg.PrimalityTester {
	t.Helper()
	tester, err := NewPrimalityTester(source, settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return tester
}

func mustUint(t *testing.T, width uint, s string) bigint.Uint {
	t.Helper()
	v, err := bigint.FromString(width, s)
	require.NoError(t, err)
	return v
}

func TestNewPrimalityTester(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	_, err := NewPrimalityTester(nil, config.DefaultCipherSettings(), logger)
	assert.Error(t, err)

	settings := config.DefaultCipherSettings()
	settings.MillerRabinRounds = 0
	_, err = NewPrimalityTester(random.NewSeeded(testSeed), settings, logger)
	assert.Error(t, err)
}

func TestIsProbablePrime(t *testing.T) {
	tester := setupPrimalityTester(t, random.NewSeeded(testSeed), config.DefaultCipherSettings())

	t.Run("FirstTenThousandPrimes", func(t *testing.T) {
		primes := 0
		for i := int64(0); i <= 104729; i++ {
			got, err := tester.IsProbablePrime(bigint.FromUint64(64, uint64(i)), 40)
			require.NoError(t, err)
			want := big.NewInt(i).ProbablyPrime(0)
			require.Equal(t, want, got, "n=%d", i)
			if got {
				primes++
			}
		}
		assert.Equal(t, 10000, primes)
	})

	t.Run("LargePrimes", func(t *testing.T) {
		for _, s := range []string{
			"2305843009213693951",
			"618970019642690137449562111",
			"170141183460469231731687303715884105727",
		} {
			got, err := tester.IsProbablePrime(mustUint(t, 128, s), 40)
			require.NoError(t, err)
			assert.True(t, got, s)
		}
	})

	t.Run("CarmichaelNumbers", func(t *testing.T) {
		for _, s := range []string{
			"561",
			"1105",
			"41041",
			"30833142247729",
			"33614369156161",
		} {
			got, err := tester.IsProbablePrime(mustUint(t, 64, s), 40)
			require.NoError(t, err)
			assert.False(t, got, s)
		}
	})

	t.Run("ProductOfLargePrimes", func(t *testing.T) {
		p := mustUint(t, 256, "2305843009213693951")
		q := mustUint(t, 256, "618970019642690137449562111")
		got, err := tester.IsProbablePrime(p.Mul(q), 40)
		require.NoError(t, err)
		assert.False(t, got)
	})
}

func TestGenerateRandomPrime(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		tester := setupPrimalityTester(t, random.NewSeeded(testSeed), config.DefaultCipherSettings())

		for _, bits := range []uint{16, 64, 128} {
			p, err := tester.GenerateRandomPrime(bits)
			require.NoError(t, err)
			assert.Equal(t, bits, p.Width())
			assert.True(t, p.IsOdd())
			assert.LessOrEqual(t, p.BitLen(), int(bits))

			oracle, ok := new(big.Int).SetString(p.String(), 10)
			require.True(t, ok)
			assert.True(t, oracle.ProbablyPrime(20), p.String())
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		a := setupPrimalityTester(t, random.NewSeeded(7), config.DefaultCipherSettings())
		b := setupPrimalityTester(t, random.NewSeeded(7), config.DefaultCipherSettings())

		pa, err := a.GenerateRandomPrime(128)
		require.NoError(t, err)
		pb, err := b.GenerateRandomPrime(128)
		require.NoError(t, err)
		assert.True(t, pa.Equal(pb))
	})

	t.Run("RetryLimitExceeded", func(t *testing.T) {
		settings := config.DefaultCipherSettings()
		settings.MaxAttempts = 5
		tester := setupPrimalityTester(t, zeroSource{}, settings)

		_, err := tester.GenerateRandomPrime(64)
		assert.ErrorIs(t, err, cryptoalg.ErrRetryLimitExceeded)
	})

	t.Run("InvalidWidth", func(t *testing.T) {
		tester := setupPrimalityTester(t, random.NewSeeded(testSeed), config.DefaultCipherSettings())

		_, err := tester.GenerateRandomPrime(1)
		assert.Error(t, err)
	})
}
