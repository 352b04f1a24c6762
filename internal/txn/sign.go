package txn

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"jupbuy/internal/domain"
)

// Sign decodes env and fills the signature slot belonging to kp. Slots of
// other signers are left as received. It performs no I/O.
func Sign(env domain.Envelope, kp domain.Keypair) (*domain.SignedTransaction, error) {
	tx, err := Decode(env)
	if err != nil {
		return nil, err
	}
	return SignTransaction(tx, kp)
}

// SignTransaction signs an already decoded transaction in place.
func SignTransaction(tx *solana.Transaction, kp domain.Keypair) (*domain.SignedTransaction, error) {
	signer := kp.PublicKey()
	idx, err := signerIndex(&tx.Message, signer)
	if err != nil {
		return nil, err
	}

	msg, err := tx.Message.MarshalBinary()
	if err != nil {
		return nil, domain.NewError(domain.KindEnvelope, "sign", "serializing message: "+err.Error(), err)
	}
	sig, err := kp.Sign(msg)
	if err != nil {
		return nil, fmt.Errorf("signing message: %w", err)
	}

	// Envelopes may carry fewer placeholder slots than required signers.
	required := int(tx.Message.Header.NumRequiredSignatures)
	for len(tx.Signatures) < required {
		tx.Signatures = append(tx.Signatures, solana.Signature{})
	}
	tx.Signatures[idx] = sig

	return &domain.SignedTransaction{Tx: tx, Signer: signer, SlotIndex: idx}, nil
}

// signerIndex returns the position of signer among the message's required
// signers, which is also its signature slot.
func signerIndex(msg *solana.Message, signer solana.PublicKey) (int, error) {
	required := int(msg.Header.NumRequiredSignatures)
	if required > len(msg.AccountKeys) {
		return 0, domain.NewError(domain.KindEnvelope, "sign",
			fmt.Sprintf("header requires %d signers but message lists %d account keys", required, len(msg.AccountKeys)), nil)
	}
	for i, key := range msg.AccountKeys[:required] {
		if key.Equals(signer) {
			return i, nil
		}
	}
	return 0, domain.NewError(domain.KindSignerNotFound, "sign",
		fmt.Sprintf("%s is not among the %d required signers", signer, required), nil)
}
