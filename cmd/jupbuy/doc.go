// Command jupbuy buys a token with SOL through the Jupiter swap API.
//
// Usage:
//
//	jupbuy buy 0.05                  # quote, build, sign and simulate
//	jupbuy buy 0.05 --no-dry-run     # ... then confirm and send
//	jupbuy buy 0.05 --yes            # send without prompting
//	jupbuy quote 0.05                # show the route quote only
//	jupbuy address                   # print the wallet address
//
// Configuration is read from jupbuy.yaml and JUPBUY_* environment variables;
// see package app.
package main
