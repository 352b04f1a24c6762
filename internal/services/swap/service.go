package swap

import (
	"context"

	"go.uber.org/zap"

	"jupbuy/internal/domain"
	"jupbuy/internal/txn"
	"jupbuy/internal/validation"
)

// Service runs the buy pipeline for one wallet.
type Service struct {
	quotes      domain.QuoteClient
	builder     domain.SwapBuilder
	key         domain.Keypair
	simulator   domain.Simulator
	broadcaster domain.Broadcaster
	validate    *validation.Validator
	log         *zap.Logger
}

// Prepared holds everything built for an order before anything is sent.
type Prepared struct {
	Order    domain.Order
	Quote    domain.Quote
	Envelope domain.Envelope
	Signed   *domain.SignedTransaction
}

// New constructs a Service.
func New(
	quotes domain.QuoteClient,
	builder domain.SwapBuilder,
	key domain.Keypair,
	simulator domain.Simulator,
	broadcaster domain.Broadcaster,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		quotes:      quotes,
		builder:     builder,
		key:         key,
		simulator:   simulator,
		broadcaster: broadcaster,
		validate:    validation.New(),
		log:         log,
	}
}

// Wallet returns the public key the service signs for.
func (s *Service) Wallet() string { return s.key.PublicKey().String() }

// Quote validates order and fetches a quote for it.
func (s *Service) Quote(ctx context.Context, order domain.Order) (domain.Quote, error) {
	if err := s.validate.Struct(order); err != nil {
		return nil, domain.NewError(domain.KindInvalidOrder, "order", err.Error(), err)
	}
	return s.quotes.Quote(ctx, order.AmountLamports, order.OutputMint, order.SlippageBps)
}

// Prepare quotes, builds and signs order. Nothing is sent to the chain.
func (s *Service) Prepare(ctx context.Context, order domain.Order) (*Prepared, error) {
	quote, err := s.Quote(ctx, order)
	if err != nil {
		return nil, err
	}

	env, err := s.builder.SwapTransaction(ctx, quote, s.key.PublicKey(), order.PriorityFee)
	if err != nil {
		return nil, err
	}

	signed, err := txn.Sign(env, s.key)
	if err != nil {
		return nil, err
	}
	s.log.Info("transaction signed",
		zap.Uint64("amount", order.AmountLamports),
		zap.Stringer("output_mint", order.OutputMint),
		zap.Stringer("signature", signed.Signature()),
	)

	return &Prepared{Order: order, Quote: quote, Envelope: env, Signed: signed}, nil
}

// DryRun simulates p without sending it. A nil result means the simulation
// was unavailable.
func (s *Service) DryRun(ctx context.Context, p *Prepared) *domain.SimulationResult {
	return s.simulator.Simulate(ctx, p.Signed)
}

// Execute broadcasts p.
func (s *Service) Execute(ctx context.Context, p *Prepared) (*domain.SwapResult, error) {
	return s.broadcaster.Broadcast(ctx, p.Signed)
}
