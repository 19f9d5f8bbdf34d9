package gost3410

import (
	"fmt"
	"math/big"
)

var one = big.NewInt(1)

// DomainParameters holds the (p, q, a) triple shared by every key of one parameter set.
// Values are copied on construction and on access, so a *DomainParameters can be shared
// between keys and goroutines without synchronization.
type DomainParameters struct {
	p *big.Int
	q *big.Int
	a *big.Int
}

// NewDomainParameters copies p, q and a into a new parameter set and checks its structure.
// Primality of p and q is not tested.
func NewDomainParameters(p, q, a *big.Int) (*DomainParameters, error) {
	if p == nil || q == nil || a == nil {
		return nil, fmt.Errorf("%w: p, q and a are required", ErrInvalidParameters)
	}

	params := &DomainParameters{
		p: new(big.Int).Set(p),
		q: new(big.Int).Set(q),
		a: new(big.Int).Set(a),
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	return params, nil
}

// P returns the prime modulus.
func (d *DomainParameters) P() *big.Int { return new(big.Int).Set(d.p) }

// Q returns the prime order of the subgroup generated by A.
func (d *DomainParameters) Q() *big.Int { return new(big.Int).Set(d.q) }

// A returns the subgroup generator.
func (d *DomainParameters) A() *big.Int { return new(big.Int).Set(d.a) }

// Validate checks 1 < a < p, q | (p-1) and a^q mod p = 1.
func (d *DomainParameters) Validate() error {
	if d.p.Cmp(big.NewInt(3)) < 0 {
		return fmt.Errorf("%w: p must be greater than 2", ErrInvalidParameters)
	}
	if d.q.Cmp(big.NewInt(2)) < 0 || d.q.Cmp(d.p) >= 0 {
		return fmt.Errorf("%w: q must satisfy 1 < q < p", ErrInvalidParameters)
	}
	if d.a.Cmp(one) <= 0 || d.a.Cmp(d.p) >= 0 {
		return fmt.Errorf("%w: a must satisfy 1 < a < p", ErrInvalidParameters)
	}

	pMinusOne := new(big.Int).Sub(d.p, one)
	if new(big.Int).Mod(pMinusOne, d.q).Sign() != 0 {
		return fmt.Errorf("%w: q does not divide p-1", ErrInvalidParameters)
	}
	if new(big.Int).Exp(d.a, d.q, d.p).Cmp(one) != 0 {
		return fmt.Errorf("%w: a^q mod p != 1", ErrInvalidParameters)
	}

	return nil
}

// Equal reports whether both parameter sets hold the same (p, q, a).
func (d *DomainParameters) Equal(other *DomainParameters) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.p.Cmp(other.p) == 0 && d.q.Cmp(other.q) == 0 && d.a.Cmp(other.a) == 0
}

// ModulusBits returns the bit length of p.
func (d *DomainParameters) ModulusBits() int { return d.p.BitLen() }

// OrderByteLen returns the number of bytes needed to encode one signature component.
func (d *DomainParameters) OrderByteLen() int { return (d.q.BitLen() + 7) / 8 }

// ModulusByteLen returns the number of bytes needed to encode a public value.
func (d *DomainParameters) ModulusByteLen() int { return (d.p.BitLen() + 7) / 8 }

// BitsOfSecurity estimates the security strength of the finite field defined by p.
func (d *DomainParameters) BitsOfSecurity() int {
	return bitsOfSecurityForFF(d.p.BitLen())
}

func bitsOfSecurityForFF(strength int) int {
	switch {
	case strength >= 15360:
		return 256
	case strength >= 7680:
		return 192
	case strength >= 3072:
		return 128
	case strength >= 2048:
		return 112
	case strength >= 1024:
		return 80
	default:
		return 20
	}
}

// Key is the sealed sum of the two key variants, *PrivateKey and *PublicKey.
type Key interface {
	// Parameters returns the domain parameters the key belongs to.
	Parameters() *DomainParameters
	// Type returns KeyTypePrivate or KeyTypePublic.
	Type() string

	sealed()
}

// PrivateKey holds the secret scalar x, 0 < x < q.
type PrivateKey struct {
	params *DomainParameters
	x      *big.Int
}

// NewPrivateKey binds x to params after checking 0 < x < q.
func NewPrivateKey(params *DomainParameters, x *big.Int) (*PrivateKey, error) {
	if params == nil || x == nil {
		return nil, fmt.Errorf("%w: parameters and x are required", ErrInvalidKey)
	}
	if x.Sign() <= 0 || x.Cmp(params.q) >= 0 {
		return nil, fmt.Errorf("%w: x must satisfy 0 < x < q", ErrInvalidKey)
	}

	return &PrivateKey{params: params, x: new(big.Int).Set(x)}, nil
}

// Parameters returns the shared domain parameters.
func (k *PrivateKey) Parameters() *DomainParameters { return k.params }

// Type returns KeyTypePrivate.
func (k *PrivateKey) Type() string { return KeyTypePrivate }

// X returns a copy of the secret scalar.
func (k *PrivateKey) X() *big.Int { return new(big.Int).Set(k.x) }

// Public derives the matching public key y = a^x mod p.
func (k *PrivateKey) Public() *PublicKey {
	y := new(big.Int).Exp(k.params.a, k.x, k.params.p)
	return &PublicKey{params: k.params, y: y}
}

func (*PrivateKey) sealed() {}

// PublicKey holds the public value y = a^x mod p, 0 < y < p.
type PublicKey struct {
	params *DomainParameters
	y      *big.Int
}

// NewPublicKey binds y to params after checking 0 < y < p.
func NewPublicKey(params *DomainParameters, y *big.Int) (*PublicKey, error) {
	if params == nil || y == nil {
		return nil, fmt.Errorf("%w: parameters and y are required", ErrInvalidKey)
	}
	if y.Sign() <= 0 || y.Cmp(params.p) >= 0 {
		return nil, fmt.Errorf("%w: y must satisfy 0 < y < p", ErrInvalidKey)
	}

	return &PublicKey{params: params, y: new(big.Int).Set(y)}, nil
}

// Parameters returns the shared domain parameters.
func (k *PublicKey) Parameters() *DomainParameters { return k.params }

// Type returns KeyTypePublic.
func (k *PublicKey) Type() string { return KeyTypePublic }

// Y returns a copy of the public value.
func (k *PublicKey) Y() *big.Int { return new(big.Int).Set(k.y) }

// Equal reports whether both keys hold the same y over equal parameters.
func (k *PublicKey) Equal(other *PublicKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.y.Cmp(other.y) == 0 && k.params.Equal(other.params)
}

func (*PublicKey) sealed() {}

// Signature is the (r, s) pair. Produced values lie in [0, q); verification rejects
// anything outside (0, q).
type Signature struct {
	R *big.Int
	S *big.Int
}

// Bytes encodes r || s, each left-padded to size bytes.
func (s *Signature) Bytes(size int) ([]byte, error) {
	if s.R == nil || s.S == nil || s.R.Sign() < 0 || s.S.Sign() < 0 {
		return nil, fmt.Errorf("%w: r and s must be non-negative", ErrInvalidSignatureEncoding)
	}
	if (s.R.BitLen()+7)/8 > size || (s.S.BitLen()+7)/8 > size {
		return nil, fmt.Errorf("%w: component exceeds %d bytes", ErrInvalidSignatureEncoding, size)
	}

	out := make([]byte, 2*size)
	s.R.FillBytes(out[:size])
	s.S.FillBytes(out[size:])
	return out, nil
}

// ParseSignature splits r || s encoded with components of size bytes.
func ParseSignature(data []byte, size int) (*Signature, error) {
	if size <= 0 || len(data) != 2*size {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSignatureEncoding, 2*size, len(data))
	}

	return &Signature{
		R: new(big.Int).SetBytes(data[:size]),
		S: new(big.Int).SetBytes(data[size:]),
	}, nil
}

// Role selects what a session is initialized for.
type Role int

const (
	// RoleSigning binds a private key and a nonce source.
	RoleSigning Role = iota + 1
	// RoleVerifying binds a public key.
	RoleVerifying
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleSigning:
		return "signing"
	case RoleVerifying:
		return "verifying"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// SessionState is the state of a signer session.
type SessionState int

const (
	StateUninitialized SessionState = iota
	StateSigningReady
	StateVerifyingReady
)

// String returns the state name.
func (s SessionState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateSigningReady:
		return "signing-ready"
	case StateVerifyingReady:
		return "verifying-ready"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Purpose is the intended use reported to a constraint gate.
type Purpose string

const (
	PurposeSigning      Purpose = "signing"
	PurposeVerification Purpose = "verification"
)

// ServiceProperties describes one session configuration for a constraint gate.
type ServiceProperties struct {
	Algorithm    string
	SecurityBits int
	Key          Key
	Purpose      Purpose
}

// NewServiceProperties builds the properties a session reports for key and role.
func NewServiceProperties(key Key, role Role) ServiceProperties {
	purpose := PurposeVerification
	if role == RoleSigning {
		purpose = PurposeSigning
	}

	return ServiceProperties{
		Algorithm:    AlgorithmGOST3410,
		SecurityBits: key.Parameters().BitsOfSecurity(),
		Key:          key,
		Purpose:      purpose,
	}
}
