package swap_test

import (
	"errors"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"jupbuy/internal/domain"
	"jupbuy/internal/services/swap"
)

func newBroadcaster(t *testing.T, rpc *fakeRPC) *swap.Broadcaster {
	t.Helper()
	log := zaptest.NewLogger(t)
	return swap.NewBroadcaster(rpc, swap.NewSimulator(rpc, log), "", log)
}

func TestSimulator_SwallowsFailure(t *testing.T) {
	rpc := &fakeRPC{simErr: errors.New("dial tcp: connection refused")}
	sim := swap.NewSimulator(rpc, zaptest.NewLogger(t))

	assert.Nil(t, sim.Simulate(testContext(t), signedFor(t, testKey(1))))
	assert.Equal(t, 1, rpc.simulated)
}

func TestSimulator_ReturnsResult(t *testing.T) {
	want := &domain.SimulationResult{Err: instructionError(6001), Logs: []string{"Program log: hi"}}
	sim := swap.NewSimulator(&fakeRPC{simResult: want}, nil)

	assert.Equal(t, want, sim.Simulate(testContext(t), signedFor(t, testKey(1))))
}

func TestBroadcast_ConfirmedWithoutError(t *testing.T) {
	sig := solana.Signature{9, 9, 9}
	rpc := &fakeRPC{
		simResult: &domain.SimulationResult{Logs: []string{"ok"}},
		sendSig:   sig,
		status:    &domain.SignatureStatus{Slot: 12, ConfirmationStatus: "confirmed"},
	}
	signed := signedFor(t, testKey(1))

	res, err := newBroadcaster(t, rpc).Broadcast(testContext(t), signed)
	require.NoError(t, err)
	assert.Equal(t, sig.String(), res.Signature)
	assert.Equal(t, domain.StateConfirmedWithStatus, res.State)
	assert.Nil(t, res.ExecutionError)
	assert.Nil(t, res.SimulatedError)
	assert.Equal(t, []string{"ok"}, res.SimulatedLogs)
	assert.True(t, res.Landed())

	require.Len(t, rpc.sent, 1)
	assert.Same(t, signed.Tx, rpc.sent[0])
	assert.Equal(t, []solana.Signature{sig}, rpc.polled)
}

func TestBroadcast_ExecutionErrorFillsEmptySimulation(t *testing.T) {
	sig := solana.Signature{1, 2, 3}
	execErr := instructionError(6001)
	rpc := &fakeRPC{
		simResult: &domain.SimulationResult{},
		sendSig:   sig,
		status:    &domain.SignatureStatus{Slot: 3, Err: execErr},
	}

	res, err := newBroadcaster(t, rpc).Broadcast(testContext(t), signedFor(t, testKey(1)))
	require.NoError(t, err)
	assert.Equal(t, sig.String(), res.Signature)
	assert.Equal(t, "https://solscan.io/tx/"+sig.String(), res.ExplorerURL)
	assert.Equal(t, execErr, res.ExecutionError)
	assert.Equal(t, execErr, res.SimulatedError)
	assert.Equal(t, domain.StateConfirmedWithStatus, res.State)
	assert.False(t, res.Landed())
}

func TestBroadcast_ExecutionErrorKeepsSimulatedError(t *testing.T) {
	simErr := instructionError(1)
	execErr := instructionError(2)
	rpc := &fakeRPC{
		simResult: &domain.SimulationResult{Err: simErr},
		status:    &domain.SignatureStatus{Err: execErr},
	}

	res, err := newBroadcaster(t, rpc).Broadcast(testContext(t), signedFor(t, testKey(1)))
	require.NoError(t, err)
	assert.Equal(t, simErr, res.SimulatedError)
	assert.Equal(t, execErr, res.ExecutionError)
}

func TestBroadcast_SimulationFailureDoesNotGate(t *testing.T) {
	rpc := &fakeRPC{
		simErr: errors.New("timeout"),
		status: &domain.SignatureStatus{},
	}

	res, err := newBroadcaster(t, rpc).Broadcast(testContext(t), signedFor(t, testKey(1)))
	require.NoError(t, err)
	assert.Len(t, rpc.sent, 1)
	assert.Nil(t, res.SimulatedError)
	assert.Nil(t, res.SimulatedLogs)
}

func TestBroadcast_SimulationErrorDoesNotGate(t *testing.T) {
	rpc := &fakeRPC{
		simResult: &domain.SimulationResult{Err: instructionError(6001)},
		status:    &domain.SignatureStatus{},
	}

	_, err := newBroadcaster(t, rpc).Broadcast(testContext(t), signedFor(t, testKey(1)))
	require.NoError(t, err)
	assert.Len(t, rpc.sent, 1)
}

func TestBroadcast_StatusPollFailureKeepsResult(t *testing.T) {
	sig := solana.Signature{5}
	simErr := instructionError(7)
	rpc := &fakeRPC{
		simResult: &domain.SimulationResult{Err: simErr, Logs: []string{"Program log: slippage exceeded"}},
		sendSig:   sig,
		statusErr: errors.New("connection reset"),
	}

	res, err := newBroadcaster(t, rpc).Broadcast(testContext(t), signedFor(t, testKey(1)))
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, sig.String(), res.Signature)
	assert.Equal(t, domain.StateSubmittedUnconfirmed, res.State)
	assert.Nil(t, res.ExecutionError)
	assert.Equal(t, simErr, res.SimulatedError)
	assert.Equal(t, []string{"Program log: slippage exceeded"}, res.SimulatedLogs)
}

func TestBroadcast_UnknownStatusIsUnconfirmed(t *testing.T) {
	rpc := &fakeRPC{sendSig: solana.Signature{5}}

	res, err := newBroadcaster(t, rpc).Broadcast(testContext(t), signedFor(t, testKey(1)))
	require.NoError(t, err)
	assert.Equal(t, domain.StateSubmittedUnconfirmed, res.State)
}

func TestBroadcast_Rejected(t *testing.T) {
	code := int64(6001)
	rejection := &domain.Error{
		Kind:    domain.KindBroadcast,
		Op:      "send",
		Message: "Transaction simulation failed: custom program error: 0x1771",
		Code:    &code,
	}
	rpc := &fakeRPC{
		simResult: &domain.SimulationResult{Err: instructionError(6001), Logs: []string{"Program log: slippage"}},
		sendErr:   rejection,
	}

	res, err := newBroadcaster(t, rpc).Broadcast(testContext(t), signedFor(t, testKey(1)))
	require.ErrorIs(t, err, domain.ErrBroadcast)
	require.NotNil(t, res)
	assert.Equal(t, domain.StateRejected, res.State)
	assert.Empty(t, res.Signature)
	assert.Equal(t, []string{"Program log: slippage"}, res.SimulatedLogs)
	assert.Empty(t, rpc.polled)

	var de *domain.Error
	require.ErrorAs(t, err, &de)
	require.NotNil(t, de.Code)
	assert.EqualValues(t, 6001, *de.Code)
}

func TestBroadcast_CustomExplorer(t *testing.T) {
	sig := solana.Signature{7}
	rpc := &fakeRPC{sendSig: sig}
	b := swap.NewBroadcaster(rpc, swap.NewSimulator(rpc, nil), "https://explorer.solana.com/tx/", nil)

	res, err := b.Broadcast(testContext(t), signedFor(t, testKey(1)))
	require.NoError(t, err)
	assert.Equal(t, "https://explorer.solana.com/tx/"+sig.String(), res.ExplorerURL)
}

func TestExplorerURL(t *testing.T) {
	assert.Equal(t, "https://solscan.io/tx/abc123", swap.ExplorerURL(swap.DefaultExplorerURL, "abc123"))
	assert.Equal(t, "https://solscan.io/tx/abc123", swap.ExplorerURL("https://solscan.io/tx/", "abc123"))
}
