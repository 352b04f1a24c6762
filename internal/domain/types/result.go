package types

// SimulationResult is the outcome of a dry execution. Err is the RPC's
// opaque error value (nil on success).
type SimulationResult struct {
	Err  any      `json:"err,omitempty"`
	Logs []string `json:"logs,omitempty"`
}

// SignatureStatus is the on-chain status of a submitted transaction.
type SignatureStatus struct {
	Slot               uint64 `json:"slot"`
	Err                any    `json:"err,omitempty"`
	ConfirmationStatus string `json:"confirmation_status,omitempty"`
}

// BroadcastState tracks a transaction through submission.
type BroadcastState string

const (
	StateBuilt                BroadcastState = "built"
	StateSigned               BroadcastState = "signed"
	StateSubmitted            BroadcastState = "submitted"
	StateConfirmedWithStatus  BroadcastState = "confirmed_with_status"
	StateSubmittedUnconfirmed BroadcastState = "submitted_unconfirmed"
	StateRejected             BroadcastState = "rejected"
)

// String returns the state name.
func (s BroadcastState) String() string { return string(s) }

// SwapResult is returned once a transaction has been accepted for processing.
// It says nothing definite about on-chain success: ExecutionError and State
// carry the best-effort status poll.
type SwapResult struct {
	Signature      string         `json:"signature"`
	ExplorerURL    string         `json:"explorer_url"`
	SimulatedError any            `json:"simulated_error,omitempty"`
	SimulatedLogs  []string       `json:"simulated_logs,omitempty"`
	ExecutionError any            `json:"execution_error,omitempty"`
	State          BroadcastState `json:"state"`
}

// Landed reports whether the status poll saw the transaction without an
// execution error. False means failed or unknown.
func (r *SwapResult) Landed() bool {
	return r.State == StateConfirmedWithStatus && r.ExecutionError == nil
}
