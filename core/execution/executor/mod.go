// Package executor implements the transaction execution core: the state
// machine that validates a signed transaction against a pair of staged
// state views and applies its deltas.
//
// The executor is stateless and single-threaded per call: it holds no
// shared state between Execute calls, and it requires exclusive use of the
// two staged views for the duration of one call. It neither commits nor
// discards those views; that is the caller's responsibility. See the
// per-kind rule functions (transfer.go, delegate.go, vote.go, unvote.go)
// for the guard lists themselves.
package executor

import (
	"go.semledger.dev/ledger"
	"go.semledger.dev/ledger/amount"
	"go.semledger.dev/ledger/config"
	"go.semledger.dev/ledger/core/execution"
	"go.semledger.dev/ledger/core/store/account"
	"go.semledger.dev/ledger/core/store/delegate"
	"go.semledger.dev/ledger/core/txn"
	"golang.org/x/xerrors"
)

// Executor applies one transaction at a time to a pair of staged views. It
// carries no state of its own beyond the ambient network configuration and
// is safe to reuse across an unbounded number of sequential Execute calls.
// It works directly on this ledger's two coupled stores rather than on a
// generic key/value trie.
type Executor struct {
	config  config.NetworkConfig
	metrics *Metrics
}

// New returns an Executor for the given network configuration.
func New(cfg config.NetworkConfig) *Executor {
	return &Executor{
		config:  cfg,
		metrics: defaultMetrics,
	}
}

// Execute validates tx against the guard list shared by every kind, then
// dispatches to the per-kind rules. On any failing guard the staged views
// are left untouched and the nonce is not advanced; on success every delta
// is applied and the sender's nonce is incremented exactly once, last.
func (e *Executor) Execute(tx *txn.Transaction, accounts *account.State, delegates *delegate.State) execution.Result {
	result := e.execute(tx, accounts, delegates)

	e.metrics.observe(tx.GetKind(), result)

	if !result.IsSuccess() {
		ledger.Logger.Debug().
			Str("kind", tx.GetKind().String()).
			Str("error", string(result.Err())).
			Msg("transaction rejected")
	}

	return result
}

func (e *Executor) execute(tx *txn.Transaction, accounts *account.State, delegates *delegate.State) execution.Result {
	if err := tx.Validate(e.config.NetworkID); err != nil {
		return execution.Rejected(execution.InvalidFormat)
	}

	if tx.GetFee().LessThan(e.config.MinTransactionFee) {
		return execution.Rejected(execution.InvalidFee)
	}

	from := tx.GetFrom()
	acc := accounts.GetAccount(from)

	if acc.Nonce != tx.GetNonce() {
		return execution.Rejected(execution.InvalidNonce)
	}

	// UNVOTE is exempt from this guard: it may pay its fee out of the value
	// it is about to unlock, so available(from) alone is not the right
	// affordability check for that kind. applyUnvote enforces its own
	// available(from)+value >= fee guard instead.
	if tx.GetKind() != txn.Unvote && acc.Available.LessThan(tx.GetFee()) {
		return execution.Rejected(execution.InsufficientAvailable)
	}

	var result execution.Result

	switch tx.GetKind() {
	case txn.Transfer:
		result = applyTransfer(tx, accounts, acc)
	case txn.Delegate:
		result = applyDelegate(tx, accounts, delegates, acc, e.config.MinDelegateBurnAmount)
	case txn.Vote:
		result = applyVote(tx, accounts, delegates, acc)
	case txn.Unvote:
		result = applyUnvote(tx, accounts, delegates, acc)
	default:
		return execution.Rejected(execution.Invalid)
	}

	if !result.IsSuccess() {
		return result
	}

	accounts.IncreaseNonce(from)

	return result
}

// mustSum and mustSub apply amount arithmetic that the guards above should
// have already made safe. A failure here is an executor invariant
// violation: it should be unreachable, and it must not be swallowed as a
// transaction failure.
func mustSum(a, b amount.Amount) amount.Amount {
	r, err := amount.Sum(a, b)
	if err != nil {
		panic(xerrors.Errorf("executor: unreachable overflow: %v", err))
	}

	return r
}

func mustSub(a, b amount.Amount) amount.Amount {
	r, err := amount.Sub(a, b)
	if err != nil {
		panic(xerrors.Errorf("executor: unreachable underflow: %v", err))
	}

	return r
}
