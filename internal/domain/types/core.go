package types

// Mint is a base58 SPL token mint address.
type Mint string

// String returns the string form of the mint.
func (m Mint) String() string { return string(m) }

// NativeMint is the wrapped-SOL mint the quote service treats as native SOL.
const NativeMint Mint = "So11111111111111111111111111111111111111112"

// LamportsPerSOL is the number of lamports in one SOL.
const LamportsPerSOL = 1_000_000_000

// Order describes one buy: spend AmountLamports of SOL on OutputMint.
type Order struct {
	AmountLamports uint64  `validate:"gt=0"`
	OutputMint     Mint    `validate:"required,pubkey"`
	SlippageBps    uint16  `validate:"lte=10000"`
	PriorityFee    *uint64 // nil leaves the fee to the service
}
