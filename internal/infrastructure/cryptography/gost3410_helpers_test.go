//go:build unit
// +build unit

package cryptography

import (
	"crypto/rand"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/stretchr/testify/require"
)

// fixedNonceSource hands out a fixed sequence of values and fails once it runs dry
type fixedNonceSource struct {
	values []int64
	calls  int
	err    error
}

func (f *fixedNonceSource) RandomBits(int) (*big.Int, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.calls >= len(f.values) {
		return nil, errors.New("fixed nonce source exhausted")
	}
	v := big.NewInt(f.values[f.calls])
	f.calls++
	return v, nil
}

func newFixedNonceSource(values ...int64) *fixedNonceSource {
	return &fixedNonceSource{values: values}
}

// toy group: p = 23, q = 11, a = 4, x = 3, y = 18
func toyKeys(t *testing.T) (*gost3410.PrivateKey, *gost3410.PublicKey) {
	t.Helper()
	params, err := gost3410.NewDomainParameters(big.NewInt(23), big.NewInt(11), big.NewInt(4))
	require.NoError(t, err)
	priv, err := gost3410.NewPrivateKey(params, big.NewInt(3))
	require.NoError(t, err)
	return priv, priv.Public()
}

var (
	testParamsOnce sync.Once
	testParams     *gost3410.DomainParameters
	testParamsErr  error
)

// testParameters generates one 512/256-bit parameter set per test binary.
func testParameters(t *testing.T) *gost3410.DomainParameters {
	t.Helper()
	testParamsOnce.Do(func() {
		testParams, testParamsErr = generateParameters(rand.Reader, gost3410.ModulusBits512, gost3410.OrderBits)
	})
	require.NoError(t, testParamsErr)
	return testParams
}

func testKeys(t *testing.T) (*gost3410.PrivateKey, *gost3410.PublicKey) {
	t.Helper()
	priv, pub, err := generateKeys(DefaultNonceSource(), testParameters(t))
	require.NoError(t, err)
	return priv, pub
}
