package keys

import "errors"

// ErrKeyNotFound is returned when no metadata or material exists for a key ID
var ErrKeyNotFound = errors.New("cryptographic key not found")
