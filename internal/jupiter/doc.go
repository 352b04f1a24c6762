// Package jupiter provides an HTTP implementation of domain.QuoteClient and
// domain.SwapBuilder against the Jupiter swap API (v1).
//
// Supported operations:
//   - GET  /swap/v1/quote: price a native SOL input against an output mint.
//   - POST /swap/v1/swap:  exchange a quote for an unsigned transaction.
//
// All requests carry a context and a per-call deadline. A deadline hit is
// reported as domain.ErrTimeout. Non-200 responses are decoded as a JSON
// error body when possible, otherwise the raw text is kept; the resulting
// message is returned unchanged inside domain.ErrQuote or domain.ErrBuild.
// Nothing is retried or cached.
package jupiter
