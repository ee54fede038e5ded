// Package account implements the account state store: a mapping from
// address to {nonce, available, locked}, with a copy-on-write staged view
// so that a failed transaction leaves no observable trace.
//
// The staging model mirrors core/store/trie/mem's in-memory trie: writes go
// to an overlay map, reads consult the overlay then walk up the parent
// chain to the base. Commit merges the overlay into its immediate parent;
// dropping a staged view without committing leaves every ancestor
// untouched.
package account

import (
	"go.semledger.dev/ledger/amount"
	"go.semledger.dev/ledger/crypto"
	"golang.org/x/xerrors"
)

// Account is the zero-initialised-by-default record kept per address.
type Account struct {
	Nonce     uint64
	Available amount.Amount
	Locked    amount.Amount
}

// State is both the base account store and, when it has a parent, a staged
// overlay over it. Accounts are created implicitly on first write and are
// never destroyed.
type State struct {
	parent *State
	data   map[crypto.Address]Account
}

// NewState returns a new, empty base account store.
func NewState() *State {
	return &State{data: make(map[crypto.Address]Account)}
}

// Track returns a new staged view layered on top of this state. Writes to
// the returned view are invisible to s until Commit is called.
func (s *State) Track() *State {
	return &State{parent: s, data: make(map[crypto.Address]Account)}
}

// GetAccount returns the account at addr, or the zero value if it has
// never been written.
func (s *State) GetAccount(addr crypto.Address) Account {
	if acc, ok := s.data[addr]; ok {
		return acc
	}

	if s.parent != nil {
		return s.parent.GetAccount(addr)
	}

	return Account{}
}

// IncreaseNonce sets nonce += 1 for addr.
func (s *State) IncreaseNonce(addr crypto.Address) {
	acc := s.GetAccount(addr)
	acc.Nonce++
	s.data[addr] = acc
}

// IncreaseAvailable adds amt to the available balance of addr. It cannot
// fail except on overflow, which is an executor invariant violation.
func (s *State) IncreaseAvailable(addr crypto.Address, amt amount.Amount) error {
	acc := s.GetAccount(addr)

	sum, err := amount.Sum(acc.Available, amt)
	if err != nil {
		return xerrors.Errorf("couldn't increase available balance of %s: %v", addr, err)
	}

	acc.Available = sum
	s.data[addr] = acc

	return nil
}

// DecreaseAvailable subtracts amt from the available balance of addr. By
// executor contract this is never called with an amt that would make the
// balance negative; a failure here is an invariant violation.
func (s *State) DecreaseAvailable(addr crypto.Address, amt amount.Amount) error {
	acc := s.GetAccount(addr)

	diff, err := amount.Sub(acc.Available, amt)
	if err != nil {
		return xerrors.Errorf("couldn't decrease available balance of %s: %v", addr, err)
	}

	acc.Available = diff
	s.data[addr] = acc

	return nil
}

// IncreaseLocked adds amt to the locked balance of addr.
func (s *State) IncreaseLocked(addr crypto.Address, amt amount.Amount) error {
	acc := s.GetAccount(addr)

	sum, err := amount.Sum(acc.Locked, amt)
	if err != nil {
		return xerrors.Errorf("couldn't increase locked balance of %s: %v", addr, err)
	}

	acc.Locked = sum
	s.data[addr] = acc

	return nil
}

// DecreaseLocked subtracts amt from the locked balance of addr.
func (s *State) DecreaseLocked(addr crypto.Address, amt amount.Amount) error {
	acc := s.GetAccount(addr)

	diff, err := amount.Sub(acc.Locked, amt)
	if err != nil {
		return xerrors.Errorf("couldn't decrease locked balance of %s: %v", addr, err)
	}

	acc.Locked = diff
	s.data[addr] = acc

	return nil
}

// Commit merges this view's overlay into its parent. It panics if called
// on the base store (Track was never called).
func (s *State) Commit() {
	if s.parent == nil {
		panic("account: commit called on a base store, not a staged view")
	}

	for addr, acc := range s.data {
		s.parent.data[addr] = acc
	}

	s.data = make(map[crypto.Address]Account)
}

// Len returns the number of addresses visible in this view's own overlay
// (not counting the parent chain); mainly useful in tests to assert that a
// failed transaction left no trace.
func (s *State) Len() int {
	return len(s.data)
}

// Reset wipes every account from the base store, for reuse across test
// cases without constructing a fresh State. It panics on a staged view.
func (s *State) Reset() {
	if s.parent != nil {
		panic("account: reset called on a staged view, not the base store")
	}

	s.data = make(map[crypto.Address]Account)
}
