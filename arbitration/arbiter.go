package arbitration

import (
	"fmt"
)

// A Grant is the arbitration decision for one cycle. At most one client owns
// the bus; Owner is only meaningful when Active is true.
type Grant struct {
	Active bool
	Owner  int
}

// CycleInputs carries the request and lock lines sampled for one cycle. Both
// slices must have one entry per client. A lock bit is honored only for the
// client that currently owns the bus.
type CycleInputs struct {
	Requests []bool
	Locks    []bool
}

// An Arbiter decides, cycle by cycle, which client owns the bus.
//
// The arbiter follows the registered-output discipline of clocked hardware:
// Step consumes the lines sampled at the current cycle and commits the
// decision that is driven on the grant wires from the next cycle on. A
// request raised at cycle t is therefore observable as a grant at cycle t+1
// at the earliest.
type Arbiter interface {
	Name() string

	// Step commits the ownership decision for the lines sampled this cycle
	// and returns it.
	Step(in CycleInputs) Grant

	// Grant returns the last committed decision.
	Grant() Grant

	// Reset forces the arbiter back to the idle state, with the rotation
	// pointer parked at the last client so that the next search starts at
	// client 0.
	Reset()

	// WeightTable returns the table that configures per-client weights. The
	// table may be updated between cycles.
	WeightTable() *WeightTable

	NumClients() int
}

// regState is the flat register state carried across cycles. While the
// arbiter is inactive, owner holds the rotation pointer for the next search.
type regState struct {
	active bool
	owner  int
	credit uint64
}

type wrrArbiter struct {
	name    string
	weights *WeightTable
	state   regState
}

func (a *wrrArbiter) Name() string {
	return a.name
}

func (a *wrrArbiter) NumClients() int {
	return a.weights.NumClients()
}

func (a *wrrArbiter) WeightTable() *WeightTable {
	return a.weights
}

func (a *wrrArbiter) Grant() Grant {
	return grantOf(a.state)
}

func (a *wrrArbiter) Reset() {
	a.state = idleState(a.weights.NumClients())
}

func (a *wrrArbiter) Step(in CycleInputs) Grant {
	a.linesMustBeValid(in)

	a.state = a.next(a.state, in)

	return grantOf(a.state)
}

// next is the per-cycle transition function. It is total: every
// (state, inputs) pair maps to exactly one successor state.
func (a *wrrArbiter) next(s regState, in CycleInputs) regState {
	if retains(s, in) {
		// The credit counts down on every retained cycle, locked or not.
		// If the lock is released after the credit already hit zero, the
		// very next cycle rotates; holding the lock earns no saved-up
		// cycles.
		if s.credit > 0 {
			s.credit--
		}

		return s
	}

	candidate, found := nextRequester(s.owner, in.Requests)
	if !found {
		// Keep the pointer where it is so that the next search still
		// starts right after the last owner, no matter how long the bus
		// stays idle.
		s.active = false
		s.credit = 0

		return s
	}

	return regState{
		active: true,
		owner:  candidate,
		credit: a.weights.Weight(candidate),
	}
}

// retains reports whether the current owner keeps the bus this cycle. An
// owner that stops requesting always loses the bus immediately, regardless
// of remaining credit or lock state. Lock bits of non-owner clients are
// ignored entirely.
func retains(s regState, in CycleInputs) bool {
	if !s.active {
		return false
	}

	if !in.Requests[s.owner] {
		return false
	}

	return in.Locks[s.owner] || s.credit > 0
}

func grantOf(s regState) Grant {
	if !s.active {
		return Grant{}
	}

	return Grant{Active: true, Owner: s.owner}
}

func idleState(numClients int) regState {
	return regState{
		active: false,
		owner:  numClients - 1,
		credit: 0,
	}
}

func (a *wrrArbiter) linesMustBeValid(in CycleInputs) {
	n := a.weights.NumClients()

	if len(in.Requests) != n {
		panic(fmt.Sprintf(
			"request line count %d does not match the client count %d",
			len(in.Requests), n))
	}

	if len(in.Locks) != n {
		panic(fmt.Sprintf(
			"lock line count %d does not match the client count %d",
			len(in.Locks), n))
	}
}
