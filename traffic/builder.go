package traffic

import (
	"math/rand"

	"github.com/sarchlab/busarb/busctrl"
	"github.com/sarchlab/busarb/sim"
)

// A Builder can build traffic clients.
type Builder struct {
	engine       sim.Engine
	ctrl         *busctrl.Comp
	clientID     int
	seed         int64
	numTransfers int
	maxBeats     int
	maxGap       int
	lockFraction float64
}

// MakeBuilder creates a default builder.
func MakeBuilder() Builder {
	return Builder{
		numTransfers: 10,
		maxBeats:     8,
		maxGap:       4,
	}
}

// WithEngine sets the engine that drives the client.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithController sets the bus controller the client requests from.
func (b Builder) WithController(ctrl *busctrl.Comp) Builder {
	b.ctrl = ctrl
	return b
}

// WithClientID sets the index of the request line the client drives.
func (b Builder) WithClientID(id int) Builder {
	b.clientID = id
	return b
}

// WithSeed seeds the client's pseudo-random generator.
func (b Builder) WithSeed(seed int64) Builder {
	b.seed = seed
	return b
}

// WithNumTransfers sets the number of transfers the client issues.
func (b Builder) WithNumTransfers(n int) Builder {
	b.numTransfers = n
	return b
}

// WithMaxBeats sets the longest transfer the client can issue, in cycles.
func (b Builder) WithMaxBeats(n int) Builder {
	b.maxBeats = n
	return b
}

// WithMaxGap sets the longest idle gap between two transfers, in cycles.
func (b Builder) WithMaxGap(n int) Builder {
	b.maxGap = n
	return b
}

// WithLockFraction sets the fraction of transfers that assert the lock wire
// for their whole duration.
func (b Builder) WithLockFraction(f float64) Builder {
	b.lockFraction = f
	return b
}

// Build builds a client with its transfer queue already generated.
func (b Builder) Build(name string) *Client {
	c := &Client{
		ctrl:   b.ctrl,
		line:   b.ctrl.Line(b.clientID),
		id:     b.clientID,
		rng:    rand.New(rand.NewSource(b.seed)),
		maxGap: b.maxGap,
	}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, c)

	c.pending = sim.NewBuffer(
		sim.BuildName(name, "PendingTransfers"), b.numTransfers)
	for i := 0; i < b.numTransfers; i++ {
		t := &transfer{beats: 1 + c.rng.Intn(b.maxBeats)}
		if c.rng.Float64() < b.lockFraction {
			t.locked = t.beats
		}
		c.pending.Push(t)
	}

	return c
}
