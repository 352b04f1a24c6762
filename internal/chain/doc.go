// Package chain adapts the Solana JSON-RPC client to domain.ChainRPC.
//
// Every call runs under its own deadline. Rejections from sendTransaction
// surface as domain.ErrBroadcast carrying the node's message and, when the
// node reports one, the program's custom error code.
package chain
