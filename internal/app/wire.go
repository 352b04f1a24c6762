package app

import (
	"net/http"

	"go.uber.org/zap"

	"jupbuy/internal/chain"
	"jupbuy/internal/domain"
	"jupbuy/internal/jupiter"
	"jupbuy/internal/services/swap"
)

// Wire bundles the clients and services for the CLI.
type Wire struct {
	Jupiter     *jupiter.Client
	Chain       *chain.Client
	Simulator   *swap.Simulator
	Broadcaster *swap.Broadcaster
	HTTP        *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log *zap.Logger) *Wire {
	if log == nil {
		log = zap.NewNop()
	}

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	jup := jupiter.New(cfg.APIBaseURL, cfg.APIKey, httpClient, log.Named("jupiter"))
	jup.QuoteTimeout = cfg.Timeouts.Quote
	jup.SwapTimeout = cfg.Timeouts.Swap

	rpc := chain.New(cfg.RPCURL,
		chain.WithCommitment(cfg.Commitment),
		chain.WithTimeout(cfg.Timeouts.RPC),
		chain.WithLogger(log.Named("chain")),
	)

	sim := swap.NewSimulator(rpc, log.Named("simulate"))
	return &Wire{
		Jupiter:     jup,
		Chain:       rpc,
		Simulator:   sim,
		Broadcaster: swap.NewBroadcaster(rpc, sim, cfg.ExplorerURL, log.Named("broadcast")),
		HTTP:        httpClient,
	}
}

// Swapper returns the pipeline for key. A nil key is enough for quoting.
func (w *Wire) Swapper(key domain.Keypair, log *zap.Logger) *swap.Service {
	return swap.New(w.Jupiter, w.Jupiter, key, w.Simulator, w.Broadcaster, log)
}
