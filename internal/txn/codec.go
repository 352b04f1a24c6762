package txn

import (
	"encoding/base64"
	"strings"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"jupbuy/internal/domain"
)

// Decode parses a base64 envelope into a transaction. Legacy and v0
// messages are both accepted.
func Decode(env domain.Envelope) (*solana.Transaction, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(env.String()))
	if err != nil {
		return nil, domain.NewError(domain.KindEnvelope, "decode", "envelope is not base64: "+err.Error(), err)
	}
	tx, err := solana.TransactionFromDecoder(bin.NewBinDecoder(data))
	if err != nil {
		return nil, domain.NewError(domain.KindEnvelope, "decode", "envelope is not a transaction: "+err.Error(), err)
	}
	return tx, nil
}

// Encode serializes tx back to a base64 envelope.
func Encode(tx *solana.Transaction) (domain.Envelope, error) {
	enc, err := tx.MarshalBinary()
	if err != nil {
		return "", domain.NewError(domain.KindEnvelope, "encode", err.Error(), err)
	}
	return domain.Envelope(base64.StdEncoding.EncodeToString(enc)), nil
}
