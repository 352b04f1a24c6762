package interfaces

import (
	"context"

	"github.com/gagliardetto/solana-go"

	domaintypes "jupbuy/internal/domain/types"
)

// QuoteClient fetches a route quote for selling native SOL.
type QuoteClient interface {
	Quote(
		ctx context.Context,
		amountLamports uint64,
		outputMint domaintypes.Mint,
		slippageBps uint16,
	) (domaintypes.Quote, error)
}

// SwapBuilder turns a quote into an unsigned transaction envelope.
type SwapBuilder interface {
	SwapTransaction(
		ctx context.Context,
		quote domaintypes.Quote,
		userPublicKey solana.PublicKey,
		priorityFeeLamports *uint64,
	) (domaintypes.Envelope, error)
}

// ChainRPC is the subset of the Solana JSON-RPC API the pipeline uses.
type ChainRPC interface {
	SimulateTransaction(ctx context.Context, tx *solana.Transaction) (*domaintypes.SimulationResult, error)
	SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
	SignatureStatus(ctx context.Context, sig solana.Signature) (*domaintypes.SignatureStatus, error)
}
