package chain

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"go.uber.org/zap"

	"jupbuy/internal/domain"
)

// DefaultTimeout bounds a single RPC call.
const DefaultTimeout = 30 * time.Second

// Client is a domain.ChainRPC backed by one RPC endpoint.
type Client struct {
	rpc        *rpc.Client
	commitment rpc.CommitmentType
	timeout    time.Duration
	log        *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithCommitment sets the commitment used for simulation and preflight.
func WithCommitment(c string) Option {
	return func(cl *Client) {
		if c != "" {
			cl.commitment = rpc.CommitmentType(c)
		}
	}
}

// WithTimeout sets the per-call deadline.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.log = l
		}
	}
}

// New returns a Client for endpoint.
func New(endpoint string, opts ...Option) *Client {
	cl := &Client{
		rpc:        rpc.New(endpoint),
		commitment: rpc.CommitmentConfirmed,
		timeout:    DefaultTimeout,
		log:        zap.NewNop(),
	}
	for _, o := range opts {
		o(cl)
	}
	return cl
}

var _ domain.ChainRPC = (*Client)(nil)

// SimulateTransaction dry-runs tx without signature verification.
func (c *Client) SimulateTransaction(ctx context.Context, tx *solana.Transaction) (*domain.SimulationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.rpc.SimulateTransactionWithOpts(ctx, tx, &rpc.SimulateTransactionOpts{
		SigVerify:  false,
		Commitment: c.commitment,
	})
	if err != nil {
		return nil, c.classify(ctx, "simulate", domain.KindBroadcast, err)
	}
	if out == nil || out.Value == nil {
		return nil, domain.NewError(domain.KindBroadcast, "simulate", "empty simulation result", nil)
	}
	c.log.Debug("simulated transaction",
		zap.Bool("failed", out.Value.Err != nil),
		zap.Int("logs", len(out.Value.Logs)),
	)
	return &domain.SimulationResult{Err: out.Value.Err, Logs: out.Value.Logs}, nil
}

// SendTransaction submits tx with preflight at the configured commitment.
func (c *Client) SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	sig, err := c.rpc.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight:       false,
		PreflightCommitment: c.commitment,
	})
	if err != nil {
		return solana.Signature{}, c.classify(ctx, "send", domain.KindBroadcast, err)
	}
	c.log.Debug("sent transaction", zap.Stringer("signature", sig))
	return sig, nil
}

// SignatureStatus returns the node's status for sig, or nil when the node
// does not know it yet.
func (c *Client) SignatureStatus(ctx context.Context, sig solana.Signature) (*domain.SignatureStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.rpc.GetSignatureStatuses(ctx, false, sig)
	if err != nil {
		return nil, c.classify(ctx, "status", domain.KindBroadcast, err)
	}
	if out == nil || len(out.Value) == 0 || out.Value[0] == nil {
		return nil, nil
	}
	st := out.Value[0]
	return &domain.SignatureStatus{
		Slot:               st.Slot,
		Err:                st.Err,
		ConfirmationStatus: string(st.ConfirmationStatus),
	}, nil
}

// classify maps a client error to a *domain.Error. JSON-RPC error objects
// keep the node's message verbatim.
func (c *Client) classify(ctx context.Context, op string, kind domain.ErrorKind, err error) error {
	if isTimeout(ctx, err) {
		return domain.NewError(domain.KindTimeout, op, fmt.Sprintf("no response within %s", c.timeout), err)
	}
	var rpcErr *jsonrpc.RPCError
	if errors.As(err, &rpcErr) {
		e := domain.NewError(kind, op, rpcErr.Message, err)
		e.Code = ProgramErrorCode(rpcErr.Data)
		return e
	}
	return domain.NewError(kind, op, err.Error(), err)
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
