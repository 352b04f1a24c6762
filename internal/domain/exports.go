package domain

import (
	interfaces "jupbuy/internal/domain/interfaces"
	types "jupbuy/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Mint              = types.Mint
	Order             = types.Order
	Quote             = types.Quote
	QuoteSummary      = types.QuoteSummary
	Envelope          = types.Envelope
	SignedTransaction = types.SignedTransaction
	SimulationResult  = types.SimulationResult
	SignatureStatus   = types.SignatureStatus
	BroadcastState    = types.BroadcastState
	SwapResult        = types.SwapResult
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Keypair     = interfaces.Keypair
	QuoteClient = interfaces.QuoteClient
	SwapBuilder = interfaces.SwapBuilder
	ChainRPC    = interfaces.ChainRPC
	Simulator   = interfaces.Simulator
	Broadcaster = interfaces.Broadcaster
)

const (
	NativeMint     = types.NativeMint
	LamportsPerSOL = types.LamportsPerSOL

	StateBuilt                = types.StateBuilt
	StateSigned               = types.StateSigned
	StateSubmitted            = types.StateSubmitted
	StateConfirmedWithStatus  = types.StateConfirmedWithStatus
	StateSubmittedUnconfirmed = types.StateSubmittedUnconfirmed
	StateRejected             = types.StateRejected
)
