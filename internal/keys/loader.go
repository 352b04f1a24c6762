package keys

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"

	"jupbuy/internal/domain"
)

// Shapes named in format errors.
const (
	ShapeIntegerArray = "integer array"
	ShapeBase58String = "base58 string"
	ShapeUnsupported  = "unsupported"
)

const op = "load key"

// Load reads the key file at path and returns the signing key it holds.
func Load(path string) (solana.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError(domain.KindFormat, op, fmt.Sprintf("reading %s: %v", path, err), err)
	}
	defer wipe(raw)
	return Parse(raw)
}

// Parse decodes key file contents.
func Parse(raw []byte) (solana.PrivateKey, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, formatError(ShapeUnsupported, "not valid JSON: %v", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, formatError(ShapeUnsupported, "unexpected data after the key value")
	}

	switch data := v.(type) {
	case []any:
		return fromIntegerArray(data)
	case string:
		return fromBase58(data)
	default:
		return nil, formatError(ShapeUnsupported, "want a JSON array of integers or a base58 string, got %T", v)
	}
}

func fromIntegerArray(data []any) (solana.PrivateKey, error) {
	secret := make([]byte, len(data))
	defer wipe(secret)

	for i, el := range data {
		n, ok := el.(json.Number)
		if !ok {
			return nil, formatError(ShapeIntegerArray, "element %d is not an integer", i)
		}
		b, err := n.Int64()
		if err != nil || b < 0 || b > 255 {
			return nil, formatError(ShapeIntegerArray, "element %d (%s) is not a byte value", i, n)
		}
		secret[i] = byte(b)
	}

	switch len(secret) {
	case ed25519.SeedSize:
		return solana.PrivateKey(ed25519.NewKeyFromSeed(secret)), nil
	case ed25519.PrivateKeySize:
		return fromSecretKey(ShapeIntegerArray, secret)
	default:
		return nil, formatError(ShapeIntegerArray, "must contain %d or %d bytes, got %d",
			ed25519.SeedSize, ed25519.PrivateKeySize, len(secret))
	}
}

func fromBase58(s string) (solana.PrivateKey, error) {
	secret, err := base58.Decode(s)
	if err != nil {
		return nil, formatError(ShapeBase58String, "invalid base58 private key: %v", err)
	}
	defer wipe(secret)

	if len(secret) != ed25519.PrivateKeySize {
		return nil, formatError(ShapeBase58String, "must decode to %d bytes, got %d",
			ed25519.PrivateKeySize, len(secret))
	}
	return fromSecretKey(ShapeBase58String, secret)
}

// fromSecretKey copies a 64-byte secret key after checking that its public
// half matches the key derived from its seed.
func fromSecretKey(shape string, secret []byte) (solana.PrivateKey, error) {
	derived := ed25519.NewKeyFromSeed(secret[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], secret[ed25519.SeedSize:]) {
		wipe(derived)
		return nil, formatError(shape, "public key does not match secret seed")
	}
	return solana.PrivateKey(derived), nil
}

func formatError(shape, format string, args ...any) error {
	return domain.NewError(domain.KindFormat, op, shape+": "+fmt.Sprintf(format, args...), nil)
}
