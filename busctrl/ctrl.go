// Package busctrl provides the bus controller component that drives a
// weighted round-robin arbiter cycle by cycle.
package busctrl

import (
	"github.com/sarchlab/busarb/arbitration"
	"github.com/sarchlab/busarb/datarecording"
	"github.com/sarchlab/busarb/sim"
)

// HookPosGrantUpdate marks when the committed ownership decision changes.
var HookPosGrantUpdate = &sim.HookPos{Name: "Grant Update"}

// TraceTable is the name of the table the controller records its per-cycle
// decisions into.
const TraceTable = "arbitration_trace"

// A TraceEntry is one recorded arbitration cycle. The request and lock masks
// carry the lines of the first 64 clients, bit i for client i.
type TraceEntry struct {
	Cycle    int64
	Active   bool
	Owner    int
	ReqMask  uint64
	LockMask uint64
}

// A RequestLine is the pair of level-signaled wires one client drives to ask
// for the bus. The controller samples the line once per cycle; the driven
// values stay until the client changes them.
type RequestLine struct {
	ctrl *Comp
	req  bool
	lock bool
}

// Request drives the request wire, with or without the lock wire.
func (l *RequestLine) Request(lock bool) {
	l.req = true
	l.lock = lock
	l.ctrl.TickNow()
}

// Release drops both wires.
func (l *RequestLine) Release() {
	l.req = false
	l.lock = false
	l.ctrl.TickNow()
}

// Requesting returns the level of the request wire.
func (l *RequestLine) Requesting() bool {
	return l.req
}

// Locking returns the level of the lock wire.
func (l *RequestLine) Locking() bool {
	return l.lock
}

// Comp is the bus controller. It samples all request lines once per cycle,
// steps the arbiter, and drives the committed decision on the grant wires.
// The controller ticks on the secondary queue so that it always samples
// after the clients of the same cycle have driven their lines.
type Comp struct {
	*sim.TickingComponent

	arbiter  arbitration.Arbiter
	lines    []*RequestLine
	inputs   arbitration.CycleInputs
	recorder datarecording.DataRecorder
}

// Line returns the request line of a client.
func (c *Comp) Line(client int) *RequestLine {
	return c.lines[client]
}

// NumClients returns the number of clients on the bus.
func (c *Comp) NumClients() int {
	return len(c.lines)
}

// Grant returns the ownership decision currently driven on the grant wires.
// A request raised at cycle t is reflected here at cycle t+1 at the
// earliest.
func (c *Comp) Grant() arbitration.Grant {
	return c.arbiter.Grant()
}

// WeightTable returns the arbiter's weight configuration. It may be updated
// between cycles.
func (c *Comp) WeightTable() *arbitration.WeightTable {
	return c.arbiter.WeightTable()
}

// Reset forces the arbiter back to its idle state.
func (c *Comp) Reset() {
	c.arbiter.Reset()
}

// Tick samples the lines and commits the decision for the current cycle.
func (c *Comp) Tick() bool {
	for i, line := range c.lines {
		c.inputs.Requests[i] = line.req
		c.inputs.Locks[i] = line.lock
	}

	prev := c.arbiter.Grant()
	grant := c.arbiter.Step(c.inputs)

	if c.recorder != nil {
		c.recorder.InsertData(TraceTable, c.traceEntry(grant))
	}

	if grant != prev && c.NumHooks() > 0 {
		c.InvokeHook(sim.HookCtx{
			Domain: c,
			Pos:    HookPosGrantUpdate,
			Item:   grant,
			Detail: prev,
		})
	}

	return grant.Active || prev.Active
}

func (c *Comp) traceEntry(grant arbitration.Grant) TraceEntry {
	entry := TraceEntry{
		Cycle:  int64(c.CurrentCycle()),
		Active: grant.Active,
		Owner:  -1,
	}

	if grant.Active {
		entry.Owner = grant.Owner
	}

	for i := 0; i < len(c.lines) && i < 64; i++ {
		if c.inputs.Requests[i] {
			entry.ReqMask |= 1 << i
		}
		if c.inputs.Locks[i] {
			entry.LockMask |= 1 << i
		}
	}

	return entry
}
