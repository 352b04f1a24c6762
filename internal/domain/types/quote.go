package types

import (
	"encoding/json"
	"errors"
)

// Quote is the routing service's quote document. It is forwarded verbatim to
// the swap endpoint and is only valid for a short time.
type Quote json.RawMessage

// MarshalJSON returns the quote bytes unchanged.
func (q Quote) MarshalJSON() ([]byte, error) {
	if len(q) == 0 {
		return []byte("null"), nil
	}
	return json.RawMessage(q).MarshalJSON()
}

// UnmarshalJSON stores a copy of data.
func (q *Quote) UnmarshalJSON(data []byte) error {
	if q == nil {
		return errors.New("types.Quote: UnmarshalJSON on nil pointer")
	}
	*q = append((*q)[0:0], data...)
	return nil
}

// QuoteSummary is a display-only view of a few quote fields.
type QuoteSummary struct {
	InputMint      string `json:"inputMint"`
	OutputMint     string `json:"outputMint"`
	InAmount       string `json:"inAmount"`
	OutAmount      string `json:"outAmount"`
	MinOutAmount   string `json:"otherAmountThreshold"`
	SlippageBps    int    `json:"slippageBps"`
	PriceImpactPct string `json:"priceImpactPct"`
	RouteHops      int    `json:"-"`
}

// Summary decodes the display fields. Unknown or missing fields are left empty.
func (q Quote) Summary() (QuoteSummary, error) {
	var aux struct {
		QuoteSummary
		RoutePlan []json.RawMessage `json:"routePlan"`
	}
	if err := json.Unmarshal(q, &aux); err != nil {
		return QuoteSummary{}, err
	}
	s := aux.QuoteSummary
	s.RouteHops = len(aux.RoutePlan)
	return s, nil
}
