// Package swap runs the buy pipeline: quote, build, sign, then either a
// dry run or a broadcast.
//
// Simulation is diagnostic. It never blocks submission and its failures are
// not errors. After a send is accepted the broadcaster polls the signature
// status once; a failed poll leaves the result unconfirmed rather than
// failing the call.
package swap
