package busctrl

import (
	"github.com/sarchlab/busarb/arbitration"
	"github.com/sarchlab/busarb/datarecording"
	"github.com/sarchlab/busarb/sim"
)

// A Builder can build bus controllers.
type Builder struct {
	engine      sim.Engine
	numClients  int
	weightWidth int
	weights     []uint64
	recorder    datarecording.DataRecorder
}

// MakeBuilder creates a default builder.
func MakeBuilder() Builder {
	return Builder{
		numClients:  1,
		weightWidth: 1,
	}
}

// WithEngine sets the engine that drives the controller.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithNumClients sets the number of clients on the bus.
func (b Builder) WithNumClients(n int) Builder {
	b.numClients = n
	return b
}

// WithWeightWidth sets the bit width of the weights and credits.
func (b Builder) WithWeightWidth(w int) Builder {
	b.weightWidth = w
	return b
}

// WithWeights sets the initial per-client weights.
func (b Builder) WithWeights(weights []uint64) Builder {
	b.weights = weights
	return b
}

// WithDataRecorder makes the controller record one trace row per
// arbitration cycle.
func (b Builder) WithDataRecorder(rec datarecording.DataRecorder) Builder {
	b.recorder = rec
	return b
}

// Build builds a bus controller.
func (b Builder) Build(name string) (*Comp, error) {
	arbiter, err := arbitration.MakeBuilder().
		WithNumClients(b.numClients).
		WithWeightWidth(b.weightWidth).
		WithWeights(b.weights).
		Build(sim.BuildName(name, "Arbiter"))
	if err != nil {
		return nil, err
	}

	c := &Comp{
		arbiter: arbiter,
		inputs: arbitration.CycleInputs{
			Requests: make([]bool, b.numClients),
			Locks:    make([]bool, b.numClients),
		},
		recorder: b.recorder,
	}
	c.TickingComponent = sim.NewSecondaryTickingComponent(name, b.engine, c)

	c.lines = make([]*RequestLine, b.numClients)
	for i := range c.lines {
		c.lines[i] = &RequestLine{ctrl: c}
	}

	if b.recorder != nil {
		b.recorder.CreateTable(TraceTable, TraceEntry{})
	}

	return c, nil
}
