// Package commands defines the jupbuy CLI and wires dependencies for subcommands.
//
// Commands
//
//   - buy <amount>     Swap <amount> SOL for the configured token
//   - quote <amount>   Show the route quote for <amount> SOL
//   - address          Print the wallet public key
//
// # Implementation
//
// The root command loads configuration, builds the logger and the
// dependency graph (Jupiter client, RPC client, swap services) before any
// subcommand runs, so handlers share one app context. Command output goes
// to stdout; logs go to stderr.
package commands
