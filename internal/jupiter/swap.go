package jupiter

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"jupbuy/internal/domain"
)

const swapPath = "/swap/v1/swap"

// swapRequest is the POST body of the swap endpoint. The routing preferences
// are fixed: unwrap SOL, versioned transaction, shared accounts, dynamic
// compute-unit limit.
type swapRequest struct {
	UserPublicKey             string       `json:"userPublicKey"`
	QuoteResponse             domain.Quote `json:"quoteResponse"`
	WrapAndUnwrapSol          bool         `json:"wrapAndUnwrapSol"`
	AsLegacyTransaction       bool         `json:"asLegacyTransaction"`
	UseSharedAccounts         bool         `json:"useSharedAccounts"`
	DynamicComputeUnitLimit   bool         `json:"dynamicComputeUnitLimit"`
	PrioritizationFeeLamports *uint64      `json:"prioritizationFeeLamports,omitempty"`
}

type swapResponse struct {
	SwapTransaction           string `json:"swapTransaction"`
	LastValidBlockHeight      uint64 `json:"lastValidBlockHeight"`
	PrioritizationFeeLamports uint64 `json:"prioritizationFeeLamports"`
}

// SwapTransaction exchanges quote for an unsigned base64 transaction paying
// from userPublicKey. A nil priorityFeeLamports leaves the fee to the service.
func (cl *Client) SwapTransaction(
	ctx context.Context,
	quote domain.Quote,
	userPublicKey solana.PublicKey,
	priorityFeeLamports *uint64,
) (domain.Envelope, error) {
	req := swapRequest{
		UserPublicKey:             userPublicKey.String(),
		QuoteResponse:             quote,
		WrapAndUnwrapSol:          true,
		AsLegacyTransaction:       false,
		UseSharedAccounts:         true,
		DynamicComputeUnitLimit:   true,
		PrioritizationFeeLamports: priorityFeeLamports,
	}

	fields := []zap.Field{zap.Stringer("user", userPublicKey)}
	if priorityFeeLamports != nil {
		fields = append(fields, zap.Uint64("priority_fee_lamports", *priorityFeeLamports))
	}
	cl.Log.Info("requesting swap transaction", fields...)

	body, err := cl.do(ctx, call{
		op:      "swap",
		kind:    domain.KindBuild,
		method:  http.MethodPost,
		path:    swapPath,
		body:    req,
		timeout: cl.SwapTimeout,
	})
	if err != nil {
		return "", err
	}

	var out swapResponse
	if err := json.Unmarshal(body, &out); err != nil || out.SwapTransaction == "" {
		return "", domain.NewError(domain.KindBuild, "swap",
			"swap response missing transaction: "+string(body), err)
	}
	return domain.Envelope(out.SwapTransaction), nil
}
