// Package delegate implements the delegate state store: the bijective
// address<->name index of registered delegates, their vote tallies, and
// the per-(voter, delegate) vote edges, with the same staged-overlay model
// as core/store/account.
//
// Delegate entries are created by a successful DELEGATE transaction and
// never destroyed. Vote edges are created on first VOTE and may be mutated,
// including back to zero, by UNVOTE; they are never pruned.
package delegate

import (
	"sort"

	"go.semledger.dev/ledger/amount"
	"go.semledger.dev/ledger/crypto"
)

// Delegate is the record kept per registered address.
type Delegate struct {
	Name  []byte
	Votes amount.Amount
}

// edge is the composite key of a vote relationship.
type edge struct {
	voter    crypto.Address
	delegate crypto.Address
}

// State is both the base delegate store and, when it has a parent, a
// staged overlay over it.
type State struct {
	parent *State

	byAddr map[crypto.Address]Delegate
	byName map[string]crypto.Address
	votes  map[edge]amount.Amount
}

// NewState returns a new, empty base delegate store.
func NewState() *State {
	return &State{
		byAddr: make(map[crypto.Address]Delegate),
		byName: make(map[string]crypto.Address),
		votes:  make(map[edge]amount.Amount),
	}
}

// Track returns a new staged view layered on top of this state.
func (s *State) Track() *State {
	return &State{
		parent: s,
		byAddr: make(map[crypto.Address]Delegate),
		byName: make(map[string]crypto.Address),
		votes:  make(map[edge]amount.Amount),
	}
}

// GetByAddress returns the delegate registered at addr, if any.
func (s *State) GetByAddress(addr crypto.Address) (Delegate, bool) {
	if d, ok := s.byAddr[addr]; ok {
		return d, true
	}

	if s.parent != nil {
		return s.parent.GetByAddress(addr)
	}

	return Delegate{}, false
}

// GetByName returns the address registered under name, if any.
func (s *State) GetByName(name []byte) (crypto.Address, bool) {
	if addr, ok := s.byName[string(name)]; ok {
		return addr, true
	}

	if s.parent != nil {
		return s.parent.GetByName(name)
	}

	return crypto.Address{}, false
}

// GetVote returns the amount voter has staked on delegate, or Zero if the
// edge was never created.
func (s *State) GetVote(voter, delegateAddr crypto.Address) amount.Amount {
	key := edge{voter: voter, delegate: delegateAddr}

	if v, ok := s.votes[key]; ok {
		return v
	}

	if s.parent != nil {
		return s.parent.GetVote(voter, delegateAddr)
	}

	return amount.Zero
}

// Register creates a new delegate at addr with name, if and only if addr
// is not already registered and name is not already taken. Both checks
// are evaluated against this view's overlay merged with its whole parent
// chain, so that two registrations for the same name within the same
// staged view cannot both succeed: the uniqueness constraint is enforced
// on the overlay, not only on the committed base.
func (s *State) Register(addr crypto.Address, name []byte) bool {
	if _, ok := s.GetByAddress(addr); ok {
		return false
	}

	if _, ok := s.GetByName(name); ok {
		return false
	}

	s.byAddr[addr] = Delegate{Name: append([]byte{}, name...)}
	s.byName[string(name)] = addr

	return true
}

// Vote adds amount to both the (voter, delegateAddr) edge and delegate's
// tally. It fails if delegateAddr is not a registered delegate.
func (s *State) Vote(voter, delegateAddr crypto.Address, amt amount.Amount) bool {
	d, ok := s.GetByAddress(delegateAddr)
	if !ok {
		return false
	}

	sum, err := amount.Sum(d.Votes, amt)
	if err != nil {
		panic("delegate: vote tally overflow, executor misordered its checks: " + err.Error())
	}

	d.Votes = sum
	s.byAddr[delegateAddr] = d

	key := edge{voter: voter, delegate: delegateAddr}

	edgeSum, err := amount.Sum(s.GetVote(voter, delegateAddr), amt)
	if err != nil {
		panic("delegate: vote edge overflow, executor misordered its checks: " + err.Error())
	}

	s.votes[key] = edgeSum

	return true
}

// Unvote subtracts amount from the (voter, delegateAddr) edge and the
// delegate's tally. It fails if the edge's current amount is less than
// amount, or if delegateAddr is not a registered delegate.
func (s *State) Unvote(voter, delegateAddr crypto.Address, amt amount.Amount) bool {
	d, ok := s.GetByAddress(delegateAddr)
	if !ok {
		return false
	}

	current := s.GetVote(voter, delegateAddr)
	if current.LessThan(amt) {
		return false
	}

	edgeDiff, err := amount.Sub(current, amt)
	if err != nil {
		panic("delegate: vote edge underflow, executor misordered its checks: " + err.Error())
	}

	tallyDiff, err := amount.Sub(d.Votes, amt)
	if err != nil {
		panic("delegate: vote tally underflow, executor misordered its checks: " + err.Error())
	}

	d.Votes = tallyDiff
	s.byAddr[delegateAddr] = d
	s.votes[edge{voter: voter, delegate: delegateAddr}] = edgeDiff

	return true
}

// Commit merges this view's overlay into its parent. It panics if called
// on the base store.
func (s *State) Commit() {
	if s.parent == nil {
		panic("delegate: commit called on a base store, not a staged view")
	}

	for addr, d := range s.byAddr {
		s.parent.byAddr[addr] = d
	}

	for name, addr := range s.byName {
		s.parent.byName[name] = addr
	}

	for key, v := range s.votes {
		s.parent.votes[key] = v
	}

	s.byAddr = make(map[crypto.Address]Delegate)
	s.byName = make(map[string]crypto.Address)
	s.votes = make(map[edge]amount.Amount)
}

// Reset wipes every delegate, name and vote edge from the base store, for
// reuse across test cases without constructing a fresh State. It panics on
// a staged view.
func (s *State) Reset() {
	if s.parent != nil {
		panic("delegate: reset called on a staged view, not the base store")
	}

	s.byAddr = make(map[crypto.Address]Delegate)
	s.byName = make(map[string]crypto.Address)
	s.votes = make(map[edge]amount.Amount)
}

// ListDelegates returns every registered delegate address visible from
// this view, deterministically sorted, for diagnostics/reporting. It does
// not mutate state.
func (s *State) ListDelegates() []crypto.Address {
	seen := make(map[crypto.Address]struct{})

	for v := s; v != nil; v = v.parent {
		for addr := range v.byAddr {
			seen[addr] = struct{}{}
		}
	}

	out := make([]crypto.Address, 0, len(seen))
	for addr := range seen {
		out = append(out, addr)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})

	return out
}

// Len returns the number of delegates visible in this view's own overlay
// (not counting the parent chain); mainly useful in tests to assert that a
// failed transaction left no trace.
func (s *State) Len() int {
	return len(s.byAddr)
}
