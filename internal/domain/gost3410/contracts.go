package gost3410

import "math/big"

// NonceSource supplies uniformly random non-negative integers of a requested bit length.
type NonceSource interface {
	// RandomBits returns a uniformly random value in [0, 2^bitLen).
	RandomBits(bitLen int) (*big.Int, error)
}

// ConstraintGate is the external policy check consulted once per session initialization.
// A non-nil error rejects the configuration.
type ConstraintGate interface {
	Check(props ServiceProperties) error
}

// ConstraintGateFunc adapts a function to a ConstraintGate.
type ConstraintGateFunc func(props ServiceProperties) error

// Check calls f(props).
func (f ConstraintGateFunc) Check(props ServiceProperties) error {
	return f(props)
}

// Signer is a GOST R 34.10-94 signing or verifying session.
// A Signer is not safe for concurrent use; use one session per goroutine and share
// the immutable keys and parameters between them.
type Signer interface {
	// Init binds the session to a role and key, discarding any previous binding.
	// Signing requires a *PrivateKey; nonces may be nil to use the signer's default source.
	// Verifying requires a *PublicKey; nonces is ignored.
	Init(role Role, key Key, nonces NonceSource) error

	// State reports the current session state.
	State() SessionState

	// Order returns q of the bound key's parameters.
	Order() (*big.Int, error)

	// GenerateSignature signs digest with the bound private key.
	GenerateSignature(digest []byte) (*Signature, error)

	// VerifySignature reports whether (r, s) is a valid signature of digest under the bound
	// public key. Malformed or out-of-range input yields false, never an error.
	VerifySignature(digest []byte, r, s *big.Int) (bool, error)
}

// Processor handles GOST R 34.10-94 parameter/key generation, message signing and key files.
type Processor interface {
	// GenerateParameters generates a parameter set with a modulusBits-bit p and an orderBits-bit q.
	GenerateParameters(modulusBits, orderBits int) (*DomainParameters, error)

	// GenerateKeys generates a key pair over params.
	GenerateKeys(params *DomainParameters) (*PrivateKey, *PublicKey, error)

	// Sign hashes message with the configured digest algorithm and signs the digest.
	// Returns r || s encoded with fixed-width components.
	Sign(message []byte, privateKey *PrivateKey) ([]byte, error)

	// Verify hashes message and checks the r || s encoded signature.
	// Returns true if the signature is valid, false otherwise.
	Verify(message, signature []byte, publicKey *PublicKey) (bool, error)

	// EncodePrivateKey returns the PEM encoding of the private key.
	EncodePrivateKey(privateKey *PrivateKey) ([]byte, error)

	// EncodePublicKey returns the PEM encoding of the public key.
	EncodePublicKey(publicKey *PublicKey) ([]byte, error)

	// DecodePrivateKey parses a PEM encoded private key.
	DecodePrivateKey(data []byte) (*PrivateKey, error)

	// DecodePublicKey parses a PEM encoded public key.
	DecodePublicKey(data []byte) (*PublicKey, error)

	// SaveSignatureToFile saves the signature bytes hex-encoded to a file.
	SaveSignatureToFile(filename string, data []byte) error

	// SavePrivateKeyToFile saves the private key to a PEM-encoded file.
	SavePrivateKeyToFile(privateKey *PrivateKey, filename string) error

	// SavePublicKeyToFile saves the public key to a PEM-encoded file.
	SavePublicKeyToFile(publicKey *PublicKey, filename string) error

	// ReadPrivateKey reads a private key from a PEM-encoded file.
	ReadPrivateKey(privateKeyPath string) (*PrivateKey, error)

	// ReadPublicKey reads a public key from a PEM-encoded file.
	ReadPublicKey(publicKeyPath string) (*PublicKey, error)
}
