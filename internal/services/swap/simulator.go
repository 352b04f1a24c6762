package swap

import (
	"context"

	"go.uber.org/zap"

	"jupbuy/internal/domain"
)

// Simulator dry-runs signed transactions through a ChainRPC.
type Simulator struct {
	rpc domain.ChainRPC
	log *zap.Logger
}

// NewSimulator returns a Simulator over rpc.
func NewSimulator(rpc domain.ChainRPC, log *zap.Logger) *Simulator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Simulator{rpc: rpc, log: log}
}

var _ domain.Simulator = (*Simulator)(nil)

// Simulate returns the node's simulation of signed, or nil when none could
// be obtained.
func (s *Simulator) Simulate(ctx context.Context, signed *domain.SignedTransaction) *domain.SimulationResult {
	res, err := s.rpc.SimulateTransaction(ctx, signed.Tx)
	if err != nil {
		s.log.Debug("simulation unavailable", zap.Error(err))
		return nil
	}
	return res
}
