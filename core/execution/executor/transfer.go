package executor

import (
	"go.semledger.dev/ledger/core/execution"
	"go.semledger.dev/ledger/core/store/account"
	"go.semledger.dev/ledger/core/txn"
)

// applyTransfer moves value from the sender to tx.GetTo, burning the fee.
// The universal fee-affordability guard has already run; this only adds
// the check that available also covers value.
func applyTransfer(tx *txn.Transaction, accounts *account.State, acc account.Account) execution.Result {
	debit := mustSum(tx.GetValue(), tx.GetFee())

	if acc.Available.LessThan(debit) {
		return execution.Rejected(execution.InsufficientAvailable)
	}

	from := tx.GetFrom()
	to := tx.GetTo()

	if err := accounts.DecreaseAvailable(from, debit); err != nil {
		panic(err)
	}

	if err := accounts.IncreaseAvailable(to, tx.GetValue()); err != nil {
		panic(err)
	}

	return execution.Accepted()
}
