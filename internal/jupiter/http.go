package jupiter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"jupbuy/internal/domain"
)

const (
	// DefaultQuoteTimeout bounds a quote request.
	DefaultQuoteTimeout = 20 * time.Second
	// DefaultSwapTimeout bounds a swap-build request.
	DefaultSwapTimeout = 30 * time.Second

	apiKeyHeader = "x-api-key"
	maxBodyBytes = 4 << 20
)

// Client talks to one Jupiter API base URL.
type Client struct {
	Base         string
	APIKey       string
	HTTP         *http.Client
	QuoteTimeout time.Duration
	SwapTimeout  time.Duration
	Log          *zap.Logger
}

// New returns a Client for base. A nil httpClient means http.DefaultClient.
func New(base, apiKey string, httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		Base:         base,
		APIKey:       apiKey,
		HTTP:         httpClient,
		QuoteTimeout: DefaultQuoteTimeout,
		SwapTimeout:  DefaultSwapTimeout,
		Log:          log,
	}
}

var (
	_ domain.QuoteClient = (*Client)(nil)
	_ domain.SwapBuilder = (*Client)(nil)
)

// call describes one request for do.
type call struct {
	op      string
	kind    domain.ErrorKind
	method  string
	path    string
	body    any
	timeout time.Duration
}

// do performs c and returns the body of a 200 response. Every failure is a
// *domain.Error of c.kind, or of KindTimeout when the deadline is hit.
func (cl *Client) do(ctx context.Context, c call) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var rd io.Reader
	if c.body != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(c.body); err != nil {
			return nil, domain.NewError(c.kind, c.op, "encoding request: "+err.Error(), err)
		}
		rd = buf
	}

	req, err := http.NewRequestWithContext(ctx, c.method, cl.Base+c.path, rd)
	if err != nil {
		return nil, domain.NewError(c.kind, c.op, err.Error(), err)
	}
	req.Header.Set("Accept", "application/json")
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.APIKey != "" {
		req.Header.Set(apiKeyHeader, cl.APIKey)
	}

	start := time.Now()
	resp, err := cl.HTTP.Do(req)
	if err != nil {
		return nil, cl.transportError(ctx, c, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, cl.transportError(ctx, c, err)
	}

	cl.Log.Debug("jupiter response",
		zap.String("op", c.op),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("took", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewError(c.kind, c.op,
			fmt.Sprintf("HTTP %d: %s", resp.StatusCode, decodeErrorBody(body)), nil)
	}
	return body, nil
}

func (cl *Client) transportError(ctx context.Context, c call, err error) error {
	if isTimeout(ctx, err) {
		return domain.NewError(domain.KindTimeout, c.op,
			fmt.Sprintf("no response within %s", c.timeout), err)
	}
	return domain.NewError(c.kind, c.op, err.Error(), err)
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
