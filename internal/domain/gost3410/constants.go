package gost3410

// AlgorithmGOST3410 is the algorithm identifier reported to constraint gates and stored with key metadata
const AlgorithmGOST3410 = "GOST3410"

// KeyTypePrivate represents a private key
const KeyTypePrivate = "private"

// KeyTypePublic represents a public key
const KeyTypePublic = "public"

// OrderBits is the bit length of q used for generated parameter sets
const OrderBits = 256

// ModulusBits512 is the short p size of GOST R 34.10-94
const ModulusBits512 = 512

// ModulusBits1024 is the long p size of GOST R 34.10-94
const ModulusBits1024 = 1024

// Digest algorithms accepted by the processor
const (
	HashSHA256     = "sha256"
	HashBLAKE2b256 = "blake2b-256"
	HashBLAKE3256  = "blake3-256"
)

// PEM block types for encoded keys
const (
	PEMTypePrivateKey = "GOST3410 PRIVATE KEY"
	PEMTypePublicKey  = "GOST3410 PUBLIC KEY"
)
