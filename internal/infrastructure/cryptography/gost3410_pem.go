package cryptography

import (
	"encoding/pem"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/gost-vault/internal/domain/gost3410"
)

// PEM headers carrying the domain parameters as lowercase hex
const (
	pemHeaderP = "P"
	pemHeaderQ = "Q"
	pemHeaderA = "A"
)

func parameterHeaders(params *gost3410.DomainParameters) map[string]string {
	return map[string]string{
		pemHeaderP: params.P().Text(16),
		pemHeaderQ: params.Q().Text(16),
		pemHeaderA: params.A().Text(16),
	}
}

func parseParameterHeaders(headers map[string]string) (*gost3410.DomainParameters, error) {
	values := make([]*big.Int, 0, 3)
	for _, name := range []string{pemHeaderP, pemHeaderQ, pemHeaderA} {
		raw, ok := headers[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing %s header", gost3410.ErrInvalidParameters, name)
		}
		v, ok := new(big.Int).SetString(raw, 16)
		if !ok {
			return nil, fmt.Errorf("%w: malformed %s header", gost3410.ErrInvalidParameters, name)
		}
		values = append(values, v)
	}

	return gost3410.NewDomainParameters(values[0], values[1], values[2])
}

// encodePrivateKeyPEM stores x left-padded to the byte length of q.
func encodePrivateKeyPEM(priv *gost3410.PrivateKey) ([]byte, error) {
	if priv == nil {
		return nil, fmt.Errorf("%w: private key cannot be nil", gost3410.ErrInvalidKey)
	}

	params := priv.Parameters()
	body := make([]byte, params.OrderByteLen())
	priv.X().FillBytes(body)

	return pem.EncodeToMemory(&pem.Block{
		Type:    gost3410.PEMTypePrivateKey,
		Headers: parameterHeaders(params),
		Bytes:   body,
	}), nil
}

// encodePublicKeyPEM stores y left-padded to the byte length of p.
func encodePublicKeyPEM(pub *gost3410.PublicKey) ([]byte, error) {
	if pub == nil {
		return nil, fmt.Errorf("%w: public key cannot be nil", gost3410.ErrInvalidKey)
	}

	params := pub.Parameters()
	body := make([]byte, params.ModulusByteLen())
	pub.Y().FillBytes(body)

	return pem.EncodeToMemory(&pem.Block{
		Type:    gost3410.PEMTypePublicKey,
		Headers: parameterHeaders(params),
		Bytes:   body,
	}), nil
}

func decodeBlock(data []byte, blockType string) (*pem.Block, *gost3410.DomainParameters, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, nil, fmt.Errorf("%w: failed to parse PEM block", gost3410.ErrInvalidKey)
	}
	if block.Type != blockType {
		return nil, nil, fmt.Errorf("%w: expected PEM block %q, got %q", gost3410.ErrInvalidKey, blockType, block.Type)
	}

	params, err := parseParameterHeaders(block.Headers)
	if err != nil {
		return nil, nil, err
	}

	return block, params, nil
}

func decodePrivateKeyPEM(data []byte) (*gost3410.PrivateKey, error) {
	block, params, err := decodeBlock(data, gost3410.PEMTypePrivateKey)
	if err != nil {
		return nil, err
	}
	if len(block.Bytes) != params.OrderByteLen() {
		return nil, fmt.Errorf("%w: private key body must be %d bytes, got %d",
			gost3410.ErrInvalidKey, params.OrderByteLen(), len(block.Bytes))
	}

	return gost3410.NewPrivateKey(params, new(big.Int).SetBytes(block.Bytes))
}

func decodePublicKeyPEM(data []byte) (*gost3410.PublicKey, error) {
	block, params, err := decodeBlock(data, gost3410.PEMTypePublicKey)
	if err != nil {
		return nil, err
	}
	if len(block.Bytes) != params.ModulusByteLen() {
		return nil, fmt.Errorf("%w: public key body must be %d bytes, got %d",
			gost3410.ErrInvalidKey, params.ModulusByteLen(), len(block.Bytes))
	}

	return gost3410.NewPublicKey(params, new(big.Int).SetBytes(block.Bytes))
}
