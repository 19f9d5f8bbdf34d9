package cryptography

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
)

// primalityRounds is the Miller-Rabin round count used for candidate moduli
const primalityRounds = 64

var errParameterSearchExhausted = errors.New("no prime modulus found for current order")

// generateParameters searches for a modulusBits-bit prime p with an orderBits-bit prime q dividing p-1,
// then picks a = h^((p-1)/q) mod p for the smallest h >= 2 with a != 1.
func generateParameters(random io.Reader, modulusBits, orderBits int) (*gost3410.DomainParameters, error) {
	if orderBits < 2 || modulusBits <= orderBits {
		return nil, fmt.Errorf("%w: need 2 <= order bits < modulus bits, got %d and %d",
			gost3410.ErrInvalidParameters, orderBits, modulusBits)
	}

	for {
		q, err := rand.Prime(random, orderBits)
		if err != nil {
			return nil, fmt.Errorf("failed to generate order q: %w", err)
		}

		p, err := searchModulus(random, q, modulusBits)
		if errors.Is(err, errParameterSearchExhausted) {
			continue
		}
		if err != nil {
			return nil, err
		}

		a, err := subgroupGenerator(p, q)
		if err != nil {
			return nil, err
		}

		return gost3410.NewDomainParameters(p, q, a)
	}
}

// searchModulus tries up to 4*modulusBits candidates p = k*2q + 1 with exactly modulusBits bits.
func searchModulus(random io.Reader, q *big.Int, modulusBits int) (*big.Int, error) {
	buf := make([]byte, (modulusBits+7)/8)
	twoQ := new(big.Int).Lsh(q, 1)
	p := new(big.Int)
	rem := new(big.Int)

	for i := 0; i < 4*modulusBits; i++ {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, fmt.Errorf("failed to read random bytes: %w", err)
		}
		excess := uint(8*len(buf) - modulusBits)
		buf[0] &= byte(0xFF >> excess)
		buf[0] |= byte(0x80 >> excess)

		p.SetBytes(buf)
		rem.Mod(p, twoQ)
		p.Sub(p, rem)
		p.Add(p, one)

		if p.BitLen() < modulusBits {
			continue
		}
		if p.ProbablyPrime(primalityRounds) {
			return new(big.Int).Set(p), nil
		}
	}

	return nil, errParameterSearchExhausted
}

func subgroupGenerator(p, q *big.Int) (*big.Int, error) {
	e := new(big.Int).Sub(p, one)
	e.Div(e, q)

	for h := big.NewInt(2); h.Cmp(p) < 0; h.Add(h, one) {
		a := new(big.Int).Exp(h, e, p)
		if a.Cmp(one) != 0 {
			return a, nil
		}
	}

	return nil, fmt.Errorf("%w: no generator of order q", gost3410.ErrInvalidParameters)
}

// generateKeys draws 0 < x < q with the nonce sampler's masking and derives y = a^x mod p.
func generateKeys(source gost3410.NonceSource, params *gost3410.DomainParameters) (*gost3410.PrivateKey, *gost3410.PublicKey, error) {
	if params == nil {
		return nil, nil, fmt.Errorf("%w: parameters are required", gost3410.ErrInvalidParameters)
	}

	q := params.Q()
	for {
		x, err := source.RandomBits(q.BitLen())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to draw private scalar: %w", err)
		}
		if x.Sign() == 0 || x.Cmp(q) >= 0 {
			continue
		}

		priv, err := gost3410.NewPrivateKey(params, x)
		if err != nil {
			return nil, nil, err
		}
		return priv, priv.Public(), nil
	}
}
