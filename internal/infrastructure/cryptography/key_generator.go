package cryptography

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/rsa-vault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/bigint"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/config"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/logger"
	"github.com/MGTheTrain/rsa-vault/internal/pkg/random"
)

// keyGenerator struct that implements the KeyGenerator interface
type keyGenerator struct {
	tester      cryptoalg.PrimalityTester
	source      random.Source
	keyBits     uint
	plainBits   uint
	maxAttempts int
	logger      logger.Logger
}

// NewKeyGenerator creates a generator for keys of settings.KeyBits whose modulus can hold
// every plaintext block of settings.PlainBlockSize bytes.
func NewKeyGenerator(tester cryptoalg.PrimalityTester, source random.Source, settings *config.CipherSettings, logger logger.Logger) (cryptoalg.KeyGenerator, error) {
	if tester == nil {
		return nil, fmt.Errorf("primality tester cannot be nil")
	}
	if source == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cipher settings: %w", err)
	}
	return &keyGenerator{
		tester:      tester,
		source:      source,
		keyBits:     settings.KeyBits,
		plainBits:   settings.BlockParams().PlainBits(),
		maxAttempts: settings.MaxAttempts,
		logger:      logger,
	}, nil
}

// Generate draws two distinct primes of half the key width and derives n, phi, e and d.
func (g *keyGenerator) Generate(ctx context.Context) (*cryptoalg.KeyPair, error) {
	p, q, err := g.primes(ctx)
	if err != nil {
		return nil, err
	}

	one := bigint.FromUint64(g.keyBits, 1)
	n := p.Mul(q)
	phi := p.Sub(one).Mul(q.Sub(one))

	e, err := g.publicExponent(ctx, phi)
	if err != nil {
		return nil, err
	}

	d, err := bigint.ModInverse(e, phi)
	if err != nil {
		return nil, fmt.Errorf("failed to derive private exponent: %w", err)
	}

	keyPair, err := cryptoalg.NewKeyPairWithTotient(n, e, d, phi)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble key pair: %w", err)
	}

	g.logger.Info("Generated RSA key pair with ", n.BitLen(), "-bit modulus")
	return keyPair, nil
}

func (g *keyGenerator) primes(ctx context.Context) (bigint.Uint, bigint.Uint, error) {
	half := g.keyBits / 2
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return bigint.Uint{}, bigint.Uint{}, err
		}

		p, err := g.tester.GenerateRandomPrime(half)
		if err != nil {
			return bigint.Uint{}, bigint.Uint{}, fmt.Errorf("failed to generate p: %w", err)
		}
		q, err := g.tester.GenerateRandomPrime(half)
		if err != nil {
			return bigint.Uint{}, bigint.Uint{}, fmt.Errorf("failed to generate q: %w", err)
		}
		if p.Equal(q) {
			continue
		}

		p, q = p.Resize(g.keyBits), q.Resize(g.keyBits)
		// the modulus must stay above the largest plaintext block
		if uint(p.Mul(q).BitLen()) <= g.plainBits {
			g.logger.Debug("Discarding primes whose product cannot hold a plaintext block")
			continue
		}
		return p, q, nil
	}
	return bigint.Uint{}, bigint.Uint{}, fmt.Errorf("%w: no usable prime pair within %d draws", cryptoalg.ErrRetryLimitExceeded, g.maxAttempts)
}

func (g *keyGenerator) publicExponent(ctx context.Context, phi bigint.Uint) (bigint.Uint, error) {
	one := bigint.FromUint64(g.keyBits, 1)
	lo := bigint.FromUint64(g.keyBits, 2)
	hi := phi.Sub(one)
	if lo.Cmp(hi) > 0 {
		return bigint.Uint{}, fmt.Errorf("%w: totient %s leaves no exponent candidates", cryptoalg.ErrModulusTooSmall, phi)
	}

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return bigint.Uint{}, err
		}

		e, err := random.Uniform(g.source, lo, hi)
		if err != nil {
			return bigint.Uint{}, fmt.Errorf("failed to draw public exponent: %w", err)
		}
		if e.Gcd(phi).Equal(one) {
			return e, nil
		}
	}
	return bigint.Uint{}, fmt.Errorf("%w: no exponent coprime to phi within %d draws", cryptoalg.ErrRetryLimitExceeded, g.maxAttempts)
}
