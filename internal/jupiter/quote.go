package jupiter

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"jupbuy/internal/domain"
)

const quotePath = "/swap/v1/quote"

// Quote asks for a route selling amountLamports of native SOL for outputMint.
func (cl *Client) Quote(
	ctx context.Context,
	amountLamports uint64,
	outputMint domain.Mint,
	slippageBps uint16,
) (domain.Quote, error) {
	q := url.Values{}
	q.Set("inputMint", domain.NativeMint.String())
	q.Set("outputMint", outputMint.String())
	q.Set("amount", strconv.FormatUint(amountLamports, 10))
	q.Set("slippageBps", strconv.FormatUint(uint64(slippageBps), 10))

	cl.Log.Info("requesting quote",
		zap.Uint64("amount", amountLamports),
		zap.String("output_mint", outputMint.String()),
		zap.Uint16("slippage_bps", slippageBps),
	)

	body, err := cl.do(ctx, call{
		op:      "quote",
		kind:    domain.KindQuote,
		method:  http.MethodGet,
		path:    quotePath + "?" + q.Encode(),
		timeout: cl.QuoteTimeout,
	})
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, domain.NewError(domain.KindQuote, "quote",
			"quote response is not a JSON object: "+decodeErrorBody(body), nil)
	}
	return domain.Quote(trimmed), nil
}
