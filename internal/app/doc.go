// Package app loads configuration and wires application dependencies for the
// CLI.
//
// Configuration comes from viper: defaults, then jupbuy.yaml, then JUPBUY_*
// environment variables, then flags bound by the commands. Load validates
// the result once. NewWire builds the Jupiter and RPC clients and the swap
// services from it, exposing them via the Wire struct for commands to use.
package app
