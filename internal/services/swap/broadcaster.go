package swap

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"jupbuy/internal/domain"
)

// DefaultExplorerURL is the transaction page prefix used for result links.
const DefaultExplorerURL = "https://solscan.io/tx"

// Broadcaster submits signed transactions and polls their status once.
type Broadcaster struct {
	rpc      domain.ChainRPC
	sim      domain.Simulator
	explorer string
	log      *zap.Logger
}

// NewBroadcaster returns a Broadcaster. An empty explorer means
// DefaultExplorerURL.
func NewBroadcaster(rpc domain.ChainRPC, sim domain.Simulator, explorer string, log *zap.Logger) *Broadcaster {
	if explorer == "" {
		explorer = DefaultExplorerURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Broadcaster{rpc: rpc, sim: sim, explorer: explorer, log: log}
}

var _ domain.Broadcaster = (*Broadcaster)(nil)

// Broadcast simulates signed for diagnostics, sends it and polls its status.
//
// When the node rejects the send, the error is returned together with a
// result in StateRejected that carries the simulation diagnostics. Once the
// send is accepted the result is always returned with a nil error.
func (b *Broadcaster) Broadcast(ctx context.Context, signed *domain.SignedTransaction) (*domain.SwapResult, error) {
	res := &domain.SwapResult{State: domain.StateSigned}
	if sim := b.sim.Simulate(ctx, signed); sim != nil {
		res.SimulatedError = sim.Err
		res.SimulatedLogs = sim.Logs
	}

	sig, err := b.rpc.SendTransaction(ctx, signed.Tx)
	if err != nil {
		res.State = domain.StateRejected
		b.log.Warn("transaction rejected", zap.Error(err))
		return res, err
	}
	res.Signature = sig.String()
	res.ExplorerURL = ExplorerURL(b.explorer, res.Signature)
	res.State = domain.StateSubmitted
	b.log.Info("transaction submitted", zap.String("signature", res.Signature))

	status, err := b.rpc.SignatureStatus(ctx, sig)
	switch {
	case err != nil:
		b.log.Debug("status poll failed", zap.String("signature", res.Signature), zap.Error(err))
		res.State = domain.StateSubmittedUnconfirmed
	case status == nil:
		res.State = domain.StateSubmittedUnconfirmed
	default:
		res.State = domain.StateConfirmedWithStatus
		res.ExecutionError = status.Err
		if res.SimulatedError == nil {
			res.SimulatedError = status.Err
		}
	}
	b.log.Debug("broadcast finished",
		zap.String("signature", res.Signature),
		zap.Stringer("state", res.State),
	)
	return res, nil
}

// ExplorerURL joins base and signature into a transaction link.
func ExplorerURL(base, signature string) string {
	return strings.TrimRight(base, "/") + "/" + signature
}
