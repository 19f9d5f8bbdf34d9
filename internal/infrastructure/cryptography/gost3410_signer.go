package cryptography

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
	"github.com/MGTheTrain/gost-vault/internal/pkg/logger"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// SignerOption configures a session created by NewGOST3410Signer
type SignerOption func(*gost3410Signer)

// WithConstraintGate sets the gate consulted on every Init. Defaults to NewAllowAllGate.
func WithConstraintGate(gate gost3410.ConstraintGate) SignerOption {
	return func(s *gost3410Signer) {
		if gate != nil {
			s.gate = gate
		}
	}
}

// WithDefaultNonceSource sets the source used when Init is called for signing without one.
// Defaults to DefaultNonceSource.
func WithDefaultNonceSource(source gost3410.NonceSource) SignerOption {
	return func(s *gost3410Signer) {
		if source != nil {
			s.defaultNonces = source
		}
	}
}

// WithMaxNonceAttempts caps the nonce rejection loop at n draws per signature.
// Zero, the default, leaves the loop unbounded.
func WithMaxNonceAttempts(n int) SignerOption {
	return func(s *gost3410Signer) {
		s.maxNonceAttempts = n
	}
}

// gost3410Signer implements the gost3410.Signer session
type gost3410Signer struct {
	state  gost3410.SessionState
	key    gost3410.Key
	nonces gost3410.NonceSource

	defaultNonces    gost3410.NonceSource
	gate             gost3410.ConstraintGate
	maxNonceAttempts int
	logger           logger.Logger
}

// NewGOST3410Signer creates an uninitialized GOST R 34.10-94 session.
func NewGOST3410Signer(logger logger.Logger, opts ...SignerOption) (gost3410.Signer, error) {
	s := &gost3410Signer{
		state:         gost3410.StateUninitialized,
		defaultNonces: DefaultNonceSource(),
		gate:          NewAllowAllGate(),
		logger:        logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.maxNonceAttempts < 0 {
		return nil, fmt.Errorf("max nonce attempts must not be negative, got %d", s.maxNonceAttempts)
	}

	return s, nil
}

// Init binds the session to role and key. Any previous binding is discarded first, so a failed
// Init leaves the session uninitialized.
func (s *gost3410Signer) Init(role gost3410.Role, key gost3410.Key, nonces gost3410.NonceSource) error {
	s.state = gost3410.StateUninitialized
	s.key = nil
	s.nonces = nil

	var next gost3410.SessionState
	switch role {
	case gost3410.RoleSigning:
		priv, ok := key.(*gost3410.PrivateKey)
		if !ok {
			return fmt.Errorf("%w: signing requires a private key, got %T", gost3410.ErrTypeMismatch, key)
		}
		if priv == nil || priv.Parameters() == nil {
			return fmt.Errorf("%w: private key is nil or has no parameters", gost3410.ErrInvalidKey)
		}
		if nonces == nil {
			nonces = s.defaultNonces
		}
		next = gost3410.StateSigningReady
	case gost3410.RoleVerifying:
		pub, ok := key.(*gost3410.PublicKey)
		if !ok {
			return fmt.Errorf("%w: verification requires a public key, got %T", gost3410.ErrTypeMismatch, key)
		}
		if pub == nil || pub.Parameters() == nil {
			return fmt.Errorf("%w: public key is nil or has no parameters", gost3410.ErrInvalidKey)
		}
		nonces = nil
		next = gost3410.StateVerifyingReady
	default:
		return fmt.Errorf("%w: %s", gost3410.ErrUnknownRole, role)
	}

	if err := s.gate.Check(gost3410.NewServiceProperties(key, role)); err != nil {
		return fmt.Errorf("%w: %w", gost3410.ErrPolicyViolation, err)
	}

	s.key = key
	s.nonces = nonces
	s.state = next
	return nil
}

// State reports the current session state.
func (s *gost3410Signer) State() gost3410.SessionState {
	return s.state
}

// Order returns q of the bound key's parameters.
func (s *gost3410Signer) Order() (*big.Int, error) {
	if s.state == gost3410.StateUninitialized {
		return nil, gost3410.ErrNotInitialized
	}
	return s.key.Parameters().Q(), nil
}

// GenerateSignature signs digest:
//
//	r = (a^k mod p) mod q
//	s = (k*m + x*r) mod q
//
// where m is the little-endian reading of digest and k is rejection-sampled below q.
// k, r and s equal to zero are not re-sampled.
func (s *gost3410Signer) GenerateSignature(digest []byte) (*gost3410.Signature, error) {
	if s.state != gost3410.StateSigningReady {
		return nil, s.stateError("generate signature", gost3410.StateSigningReady)
	}

	priv := s.key.(*gost3410.PrivateKey)
	params := priv.Parameters()
	p, q, a := params.P(), params.Q(), params.A()

	m := digestToInt(digest)

	k, err := s.sampleNonce(q)
	if err != nil {
		return nil, err
	}

	r := new(big.Int).Exp(a, k, p)
	r.Mod(r, q)

	sig := new(big.Int).Mul(k, m)
	sig.Add(sig, new(big.Int).Mul(priv.X(), r))
	sig.Mod(sig, q)

	if r.Sign() == 0 || sig.Sign() == 0 {
		s.logger.Warn("GOST3410 signature has a zero component and will not verify")
	}

	return &gost3410.Signature{R: r, S: sig}, nil
}

// VerifySignature checks (r, s) against digest:
//
//	v  = m^(q-2) mod q
//	z1 = s*v mod q, z2 = (q-r)*v mod q
//	u  = ((a^z1 mod p) * (y^z2 mod p) mod p) mod q
//
// and reports u == r. Out-of-range components and m = 0 mod q yield false.
func (s *gost3410Signer) VerifySignature(digest []byte, r, sig *big.Int) (bool, error) {
	if s.state != gost3410.StateVerifyingReady {
		return false, s.stateError("verify signature", gost3410.StateVerifyingReady)
	}

	pub := s.key.(*gost3410.PublicKey)
	params := pub.Parameters()
	p, q, a := params.P(), params.Q(), params.A()

	if !inOpenRange(r, q) || !inOpenRange(sig, q) {
		return false, nil
	}

	m := digestToInt(digest)
	if new(big.Int).Mod(m, q).Sign() == 0 {
		return false, nil
	}

	v := new(big.Int).Exp(m, new(big.Int).Sub(q, two), q)

	z1 := new(big.Int).Mul(sig, v)
	z1.Mod(z1, q)
	z2 := new(big.Int).Sub(q, r)
	z2.Mul(z2, v)
	z2.Mod(z2, q)

	z1.Exp(a, z1, p)
	z2.Exp(pub.Y(), z2, p)

	u := z1.Mul(z1, z2)
	u.Mod(u, p)
	u.Mod(u, q)

	return u.Cmp(r) == 0, nil
}

// sampleNonce draws values with the bit length of q until one is below q.
func (s *gost3410Signer) sampleNonce(q *big.Int) (*big.Int, error) {
	bitLen := q.BitLen()

	for attempt := 1; ; attempt++ {
		if s.maxNonceAttempts > 0 && attempt > s.maxNonceAttempts {
			return nil, fmt.Errorf("%w: %d draws", gost3410.ErrNonceAttemptsExhausted, s.maxNonceAttempts)
		}

		k, err := s.nonces.RandomBits(bitLen)
		if err != nil {
			return nil, fmt.Errorf("failed to draw nonce: %w", err)
		}
		if k == nil || k.Sign() < 0 || k.BitLen() > bitLen {
			return nil, fmt.Errorf("nonce source returned a value outside [0, 2^%d)", bitLen)
		}

		if k.Cmp(q) < 0 {
			return k, nil
		}
	}
}

func (s *gost3410Signer) stateError(op string, want gost3410.SessionState) error {
	if s.state == gost3410.StateUninitialized {
		return fmt.Errorf("%w: cannot %s", gost3410.ErrNotInitialized, op)
	}
	return fmt.Errorf("%w: cannot %s in state %s, requires %s", gost3410.ErrWrongState, op, s.state, want)
}

// digestToInt reads digest as a little-endian unsigned integer without touching the caller's slice.
func digestToInt(digest []byte) *big.Int {
	reversed := make([]byte, len(digest))
	for i, b := range digest {
		reversed[len(digest)-1-i] = b
	}
	return new(big.Int).SetBytes(reversed)
}

// inOpenRange reports 0 < v < q.
func inOpenRange(v, q *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(q) < 0
}
