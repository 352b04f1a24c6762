package interfaces

import (
	"context"

	"github.com/gagliardetto/solana-go"

	domaintypes "jupbuy/internal/domain/types"
)

// Keypair signs for exactly one account. solana.PrivateKey satisfies it.
type Keypair interface {
	PublicKey() solana.PublicKey
	Sign(payload []byte) (solana.Signature, error)
}

// Simulator dry-runs a signed transaction. A nil result means the
// simulation could not be obtained; it never fails the caller.
type Simulator interface {
	Simulate(ctx context.Context, signed *domaintypes.SignedTransaction) *domaintypes.SimulationResult
}

// Broadcaster submits a signed transaction and reconciles its status.
type Broadcaster interface {
	Broadcast(ctx context.Context, signed *domaintypes.SignedTransaction) (*domaintypes.SwapResult, error)
}
