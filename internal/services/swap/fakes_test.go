package swap_test

import (
	"context"
	"crypto/ed25519"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"

	"jupbuy/internal/domain"
	"jupbuy/internal/txn"
)

// fakeRPC is a scripted domain.ChainRPC.
type fakeRPC struct {
	simResult *domain.SimulationResult
	simErr    error

	sendSig solana.Signature
	sendErr error

	status    *domain.SignatureStatus
	statusErr error

	simulated int
	sent      []*solana.Transaction
	polled    []solana.Signature
}

func (f *fakeRPC) SimulateTransaction(_ context.Context, _ *solana.Transaction) (*domain.SimulationResult, error) {
	f.simulated++
	return f.simResult, f.simErr
}

func (f *fakeRPC) SendTransaction(_ context.Context, tx *solana.Transaction) (solana.Signature, error) {
	f.sent = append(f.sent, tx)
	return f.sendSig, f.sendErr
}

func (f *fakeRPC) SignatureStatus(_ context.Context, sig solana.Signature) (*domain.SignatureStatus, error) {
	f.polled = append(f.polled, sig)
	return f.status, f.statusErr
}

var _ domain.ChainRPC = (*fakeRPC)(nil)

func testKey(b byte) solana.PrivateKey {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = b
	}
	return solana.PrivateKey(ed25519.NewKeyFromSeed(seed))
}

// envelopeFor returns an unsigned envelope paid by payer.
func envelopeFor(t *testing.T, payer solana.PublicKey) domain.Envelope {
	t.Helper()
	tx, err := solana.NewTransaction(
		[]solana.Instruction{solana.NewInstruction(
			solana.MustPublicKeyFromBase58("MemoSq4gqABAXKb96qnH8TysNcWxMyWCqXgDLGmfcHr"),
			solana.AccountMetaSlice{solana.NewAccountMeta(payer, true, true)},
			[]byte("swap"),
		)},
		solana.Hash{4, 2},
		solana.TransactionPayer(payer),
	)
	require.NoError(t, err)
	tx.Signatures = make([]solana.Signature, tx.Message.Header.NumRequiredSignatures)
	env, err := txn.Encode(tx)
	require.NoError(t, err)
	return env
}

// signedFor returns a transaction signed by kp.
func signedFor(t *testing.T, kp solana.PrivateKey) *domain.SignedTransaction {
	t.Helper()
	signed, err := txn.Sign(envelopeFor(t, kp.PublicKey()), kp)
	require.NoError(t, err)
	return signed
}

// instructionError is how the node reports a failed custom program check.
func instructionError(code int) map[string]any {
	return map[string]any{"InstructionError": []any{2.0, map[string]any{"Custom": float64(code)}}}
}
