// Package units converts user-facing SOL amounts to lamports.
package units

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"jupbuy/internal/domain"
)

var (
	lamportsPerSOL = decimal.NewFromInt(domain.LamportsPerSOL)
	maxLamports    = fromUint64(math.MaxUint64)
)

// ToLamports parses a decimal SOL amount such as "0.005" and returns it in
// lamports. Digits beyond lamport precision are truncated. Amounts that are
// not positive after truncation are rejected.
func ToLamports(sol string) (uint64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(sol))
	if err != nil {
		return 0, domain.NewError(domain.KindInvalidOrder, "amount",
			fmt.Sprintf("invalid SOL amount %q", sol), err)
	}
	lamports := d.Mul(lamportsPerSOL).Truncate(0)
	if !lamports.IsPositive() {
		return 0, domain.NewError(domain.KindInvalidOrder, "amount",
			fmt.Sprintf("amount %s SOL is less than one lamport", sol), nil)
	}
	if lamports.GreaterThan(maxLamports) {
		return 0, domain.NewError(domain.KindInvalidOrder, "amount",
			fmt.Sprintf("amount %s SOL is out of range", sol), nil)
	}
	return lamports.BigInt().Uint64(), nil
}

// FromLamports formats lamports as a SOL amount without trailing zeros.
func FromLamports(lamports uint64) string {
	return fromUint64(lamports).Div(lamportsPerSOL).String()
}

func fromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}
