// Package execution defines the result type the executor returns: a
// tagged variant, either an accepted transaction or a rejection carrying
// one of the closed set of error codes block receipts surface.
package execution

// Error is the closed set of rejection codes a block receipt can carry.
// SUCCESS is never actually attached to a rejected Result; it exists so
// Error has a meaningful zero-adjacent "everything is fine" value for
// logging.
type Error string

const (
	// Success means the transaction applied cleanly. Only ever seen on an
	// accepted Result.
	Success Error = "SUCCESS"

	// Invalid is a catch-all structural or per-kind rule violation that
	// does not have a more specific code (e.g. a DELEGATE's `to` is not
	// EMPTY_ADDRESS, or its value is not the exact burn amount).
	Invalid Error = "INVALID"

	// InvalidFormat means tx.Validate failed: bad signature, oversized
	// data, wrong network id, or a missing digest.
	InvalidFormat Error = "INVALID_FORMAT"

	// InvalidNonce means account.nonce != tx.nonce.
	InvalidNonce Error = "INVALID_NONCE"

	// InvalidFee means the transaction's fee is below the network minimum.
	InvalidFee Error = "INVALID_FEE"

	// InvalidDelegating means a DELEGATE transaction's name failed
	// validation or the registration was rejected (address or name
	// already taken).
	InvalidDelegating Error = "INVALID_DELEGATING"

	// InvalidVoting means a VOTE or UNVOTE's `to` is not a registered
	// delegate.
	InvalidVoting Error = "INVALID_VOTING"

	// InsufficientAvailable means the sender's available balance cannot
	// cover the value and/or fee being debited.
	InsufficientAvailable Error = "INSUFFICIENT_AVAILABLE"

	// InsufficientLocked means an UNVOTE requested more than the voter
	// currently has staked on that delegate, or more than the voter's
	// locked balance.
	InsufficientLocked Error = "INSUFFICIENT_LOCKED"
)

// Result is the outcome of one Execute call: either Accepted (the staged
// views were mutated and the nonce advanced) or a Rejection (no staged
// mutation occurred, nonce unchanged).
type Result struct {
	success bool
	err     Error
	logs    []string
}

// Accepted builds a successful Result, optionally carrying log lines for
// diagnostics.
func Accepted(logs ...string) Result {
	return Result{success: true, err: Success, logs: logs}
}

// Rejected builds a failed Result carrying the given error code. Passing
// Success is a programmer error: use Accepted instead.
func Rejected(err Error) Result {
	if err == Success {
		panic("execution: Rejected called with the Success code")
	}

	return Result{success: false, err: err}
}

// IsSuccess reports whether the transaction was accepted.
func (r Result) IsSuccess() bool {
	return r.success
}

// Err returns the error code: Success for an accepted Result, or the
// specific rejection code otherwise.
func (r Result) Err() Error {
	return r.err
}

// Logs returns the diagnostic log lines attached to an accepted Result.
// Always empty for a rejection.
func (r Result) Logs() []string {
	return r.logs
}
