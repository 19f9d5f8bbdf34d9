// Package gost3410 defines the domain model of the GOST R 34.10-94 signature scheme:
// the shared (p, q, a) domain parameters, the private/public key variants bound to them,
// the signature pair (r, s) and the contracts for signer sessions, nonce sources,
// constraint gates and the key processor.
//
// Digests are interpreted little-endian: the byte sequence is reversed before it is read
// as a big-endian unsigned integer. Signers and verifiers must agree on this or every
// signature fails to verify without any error being raised.
package gost3410
