package types

import "github.com/gagliardetto/solana-go"

// Envelope is a base64 serialized transaction as returned by the swap
// endpoint, with placeholder signatures.
type Envelope string

// String returns the base64 text.
func (e Envelope) String() string { return string(e) }

// SignedTransaction is a decoded envelope with the signer's slot filled in.
type SignedTransaction struct {
	Tx        *solana.Transaction
	Signer    solana.PublicKey
	SlotIndex int
}

// Signature returns the signature placed in the signer's slot.
func (s *SignedTransaction) Signature() solana.Signature {
	return s.Tx.Signatures[s.SlotIndex]
}
