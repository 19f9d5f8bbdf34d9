package gost3410

import "errors"

var (
	// ErrTypeMismatch is returned by Init when the key variant does not fit the requested role.
	ErrTypeMismatch = errors.New("key type does not match session role")

	// ErrPolicyViolation is returned by Init when the constraint gate rejects the configuration.
	ErrPolicyViolation = errors.New("constraint gate rejected configuration")

	// ErrNotInitialized is returned by session operations called before Init succeeded.
	ErrNotInitialized = errors.New("session not initialized")

	// ErrWrongState is returned when an operation is called in a state that does not allow it,
	// e.g. GenerateSignature on a verifying session.
	ErrWrongState = errors.New("operation not allowed in current session state")

	// ErrUnknownRole is returned by Init for a role other than RoleSigning or RoleVerifying.
	ErrUnknownRole = errors.New("unknown session role")

	// ErrNonceAttemptsExhausted is returned when the configured nonce attempt cap is reached.
	ErrNonceAttemptsExhausted = errors.New("nonce rejection sampling exceeded attempt cap")

	// ErrInvalidParameters is returned for domain parameters violating 1 < a < p, q | p-1 or a^q = 1 mod p.
	ErrInvalidParameters = errors.New("invalid domain parameters")

	// ErrInvalidKey is returned for nil keys or scalars outside their valid range.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidSignatureEncoding is returned when encoded signature bytes cannot be split into (r, s).
	ErrInvalidSignatureEncoding = errors.New("invalid signature encoding")

	// ErrUnsupportedHash is returned for digest algorithms the processor does not know.
	ErrUnsupportedHash = errors.New("unsupported hash algorithm")
)
