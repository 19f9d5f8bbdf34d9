package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
)

// NewAllowAllGate returns a gate accepting every configuration.
func NewAllowAllGate() gost3410.ConstraintGate {
	return gost3410.ConstraintGateFunc(func(gost3410.ServiceProperties) error {
		return nil
	})
}

// bitsOfSecurityGate rejects keys below a security floor. Verification uses a separate,
// usually lower, legacy floor so signatures made under older keys stay checkable.
type bitsOfSecurityGate struct {
	required       int
	legacyRequired int
}

// NewBitsOfSecurityGate returns a gate requiring required bits for signing and
// legacyRequired bits for verification.
func NewBitsOfSecurityGate(required, legacyRequired int) gost3410.ConstraintGate {
	return &bitsOfSecurityGate{required: required, legacyRequired: legacyRequired}
}

// Check compares the key's estimated security strength with the floor for its purpose.
func (g *bitsOfSecurityGate) Check(props gost3410.ServiceProperties) error {
	floor := g.required
	if props.Purpose == gost3410.PurposeVerification {
		floor = g.legacyRequired
	}

	if props.SecurityBits < floor {
		return fmt.Errorf("%s %s requires %d bits of security, key offers %d",
			props.Algorithm, props.Purpose, floor, props.SecurityBits)
	}

	return nil
}
