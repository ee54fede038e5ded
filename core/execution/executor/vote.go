package executor

import (
	"go.semledger.dev/ledger/core/execution"
	"go.semledger.dev/ledger/core/store/account"
	"go.semledger.dev/ledger/core/store/delegate"
	"go.semledger.dev/ledger/core/txn"
)

// applyVote locks value behind a registered delegate, burning the fee.
func applyVote(tx *txn.Transaction, accounts *account.State, delegates *delegate.State, acc account.Account) execution.Result {
	to := tx.GetTo()

	if _, ok := delegates.GetByAddress(to); !ok {
		return execution.Rejected(execution.InvalidVoting)
	}

	debit := mustSum(tx.GetValue(), tx.GetFee())

	if acc.Available.LessThan(debit) {
		return execution.Rejected(execution.InsufficientAvailable)
	}

	from := tx.GetFrom()

	if err := accounts.DecreaseAvailable(from, debit); err != nil {
		panic(err)
	}

	if err := accounts.IncreaseLocked(from, tx.GetValue()); err != nil {
		panic(err)
	}

	if !delegates.Vote(from, to, tx.GetValue()) {
		panic("executor: vote rejected by store after GetByAddress confirmed registration")
	}

	return execution.Accepted()
}
