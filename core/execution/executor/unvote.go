package executor

import (
	"go.semledger.dev/ledger/core/execution"
	"go.semledger.dev/ledger/core/store/account"
	"go.semledger.dev/ledger/core/store/delegate"
	"go.semledger.dev/ledger/core/txn"
)

// applyUnvote releases previously locked value from a registered delegate
// and settles the fee against whatever combination of available and
// freed-up value covers it.
//
// The available-balance guard here checks available(from) + value >= fee
// rather than available(from) >= fee alone: the fee can be paid out of the
// value being unlocked, not only out of what was already spendable. Using
// a signed net (value - fee) to settle the balance afterwards, instead of
// two unsigned ops in sequence, avoids spuriously rejecting a transaction
// whose fee exceeds available but not available+value.
func applyUnvote(tx *txn.Transaction, accounts *account.State, delegates *delegate.State, acc account.Account) execution.Result {
	to := tx.GetTo()

	if _, ok := delegates.GetByAddress(to); !ok {
		return execution.Rejected(execution.InvalidVoting)
	}

	value := tx.GetValue()
	fee := tx.GetFee()

	headroom := mustSum(acc.Available, value)
	if headroom.LessThan(fee) {
		return execution.Rejected(execution.InsufficientAvailable)
	}

	from := tx.GetFrom()

	if delegates.GetVote(from, to).LessThan(value) || acc.Locked.LessThan(value) {
		return execution.Rejected(execution.InsufficientLocked)
	}

	if !delegates.Unvote(from, to, value) {
		panic("executor: unvote rejected by store after guards confirmed sufficient stake")
	}

	if err := accounts.DecreaseLocked(from, value); err != nil {
		panic(err)
	}

	if value.GreaterOrEqual(fee) {
		if err := accounts.IncreaseAvailable(from, mustSub(value, fee)); err != nil {
			panic(err)
		}
	} else if err := accounts.DecreaseAvailable(from, mustSub(fee, value)); err != nil {
		panic(err)
	}

	return execution.Accepted()
}
