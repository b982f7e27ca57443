package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/bigint"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/config"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/logger"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/random"
)

// sieveLimit bounds the trial-division table.
const sieveLimit = 1 << 14

var smallPrimes = sieve(sieveLimit)

func sieve(limit int) []uint32 {
	composite := make([]bool, limit)
	var primes []uint32
	for i := 2; i < limit; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, uint32(i))
		for j := i * i; j < limit; j += i {
			composite[j] = true
		}
	}
	return primes
}

// primalityTester implements cryptoalg.PrimalityTester
type primalityTester struct {
	source      random.Source
	rounds      int
	maxAttempts int
	logger      logger.Logger
}

// NewPrimalityTester creates a tester drawing witnesses and candidates from source.
func NewPrimalityTester(source random.Source, settings *config.CipherSettings, logger logger.Logger) (cryptoalg.PrimalityTester, error) {
	if source == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cipher settings: %w", err)
	}
	return &primalityTester{
		source:      source,
		rounds:      settings.MillerRabinRounds,
		maxAttempts: settings.MaxAttempts,
		logger:      logger,
	}, nil
}

// IsProbablePrime rejects multiples of the small-prime table and then runs Miller-Rabin.
func (p *primalityTester) IsProbablePrime(n bigint.Uint, rounds int) (bool, error) {
	if n.BitLen() <= 32 && n.Uint64() < 2 {
		return false, nil
	}

	for _, sp := range smallPrimes {
		if n.ModWord(sp) == 0 {
			// n is only divisible by itself when it is the table prime
			return n.BitLen() <= 32 && n.Uint64() == uint64(sp), nil
		}
	}

	// every composite below the square of the largest table prime has a table factor
	largest := uint64(smallPrimes[len(smallPrimes)-1])
	if n.BitLen() <= 64 && n.Uint64() < largest*largest {
		return true, nil
	}

	return p.millerRabin(n, rounds)
}

func (p *primalityTester) millerRabin(n bigint.Uint, rounds int) (bool, error) {
	one := bigint.FromUint64(n.Width(), 1)
	nMinusOne := n.Sub(one)

	d := nMinusOne
	r := 0
	for !d.IsOdd() {
		d = d.Rsh(1)
		r++
	}

	lo := bigint.FromUint64(n.Width(), 2)
	hi := n.Sub(lo)
	for i := 0; i < rounds; i++ {
		a, err := random.Uniform(p.source, lo, hi)
		if err != nil {
			return false, fmt.Errorf("failed to draw witness: %w", err)
		}

		x := bigint.PowMod(a, d, n)
		if x.Equal(one) || x.Equal(nMinusOne) {
			continue
		}

		witnessed := true
		for j := 0; j < r-1; j++ {
			x = bigint.PowMod(x, lo, n)
			if x.Equal(nMinusOne) {
				witnessed = false
				break
			}
		}
		if witnessed {
			return false, nil
		}
	}
	return true, nil
}

// GenerateRandomPrime samples uniformly random odd candidates of the given width.
func (p *primalityTester) GenerateRandomPrime(bits uint) (bigint.Uint, error) {
	if bits < 2 {
		return bigint.Uint{}, fmt.Errorf("prime width must be at least 2 bits, got %d", bits)
	}
	one := bigint.FromUint64(bits, 1)

	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		candidate, err := random.Bits(p.source, bits)
		if err != nil {
			return bigint.Uint{}, fmt.Errorf("failed to draw prime candidate: %w", err)
		}
		if !candidate.IsOdd() {
			candidate = candidate.Add(one)
		}

		prime, err := p.IsProbablePrime(candidate, p.rounds)
		if err != nil {
			return bigint.Uint{}, err
		}
		if prime {
			p.logger.Debug("Found ", bits, "-bit prime after ", attempt, " candidates")
			return candidate, nil
		}
	}
	return bigint.Uint{}, fmt.Errorf("%w: no %d-bit prime within %d candidates", cryptoalg.ErrRetryLimitExceeded, bits, p.maxAttempts)
}
