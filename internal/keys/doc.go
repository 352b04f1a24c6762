// Package keys loads the single signing key used by jupbuy.
//
// Two key file shapes are accepted:
//
//   - A JSON array of byte values, as written by `solana-keygen`. 64 entries
//     hold the full secret key (seed followed by public key); 32 entries hold
//     the seed alone.
//   - A JSON string with the base58 encoding of the 64-byte secret key, as
//     exported by most browser wallets.
//
// Every other shape fails with domain.ErrFormat. Decoded intermediate buffers
// are wiped once the key has been built.
package keys
