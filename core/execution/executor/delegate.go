package executor

import (
	"go.semledger.dev/ledger/amount"
	"go.semledger.dev/ledger/core/execution"
	"go.semledger.dev/ledger/core/store/account"
	"go.semledger.dev/ledger/core/store/delegate"
	"go.semledger.dev/ledger/core/txn"
	"go.semledger.dev/ledger/crypto"
)

// applyDelegate registers the sender as a named delegate, burning exactly
// burnAmount. The registered name is taken from the transaction's data
// field; there is no separate name field on Transaction.
func applyDelegate(
	tx *txn.Transaction,
	accounts *account.State,
	delegates *delegate.State,
	acc account.Account,
	burnAmount amount.Amount,
) execution.Result {
	if tx.GetTo() != crypto.EmptyAddress {
		return execution.Rejected(execution.Invalid)
	}

	if tx.GetValue().Cmp(burnAmount) != 0 {
		return execution.Rejected(execution.Invalid)
	}

	debit := mustSum(tx.GetValue(), tx.GetFee())

	if acc.Available.LessThan(debit) {
		return execution.Rejected(execution.InsufficientAvailable)
	}

	if !delegate.ValidateName(tx.GetData()) {
		return execution.Rejected(execution.InvalidDelegating)
	}

	from := tx.GetFrom()

	if !delegates.Register(from, tx.GetData()) {
		return execution.Rejected(execution.InvalidDelegating)
	}

	if err := accounts.DecreaseAvailable(from, debit); err != nil {
		panic(err)
	}

	return execution.Accepted()
}
