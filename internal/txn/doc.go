// Package txn decodes swap envelopes and signs them for a single key.
//
// The envelope returned by the swap service is a serialized transaction whose
// signature slots are placeholders. Sign locates the signer among the
// message's required signers and writes an Ed25519 signature over the
// serialized message into that slot. A signer that is not listed fails with
// domain.ErrSignerNotFound; it is never skipped.
package txn
