package arbitration

import "fmt"

// A Builder can build weighted round-robin arbiters.
type Builder struct {
	numClients  int
	weightWidth int
	weights     []uint64
}

// MakeBuilder creates a default builder for a single-client arbiter with a
// 1-bit weight width.
func MakeBuilder() Builder {
	return Builder{
		numClients:  1,
		weightWidth: 1,
	}
}

// WithNumClients sets the number of clients that compete for the bus.
func (b Builder) WithNumClients(n int) Builder {
	b.numClients = n
	return b
}

// WithWeightWidth sets the bit width that bounds weights and credits.
func (b Builder) WithWeightWidth(w int) Builder {
	b.weightWidth = w
	return b
}

// WithWeights sets the initial per-client weights. The slice must have one
// entry per client.
func (b Builder) WithWeights(weights []uint64) Builder {
	b.weights = weights
	return b
}

// Build builds an arbiter in the reset state.
func (b Builder) Build(name string) (Arbiter, error) {
	table, err := NewWeightTable(b.numClients, b.weightWidth)
	if err != nil {
		return nil, err
	}

	if b.weights != nil {
		if len(b.weights) != b.numClients {
			return nil, ConfigurationError{
				Reason: fmt.Sprintf(
					"%d weights provided for %d clients",
					len(b.weights), b.numClients),
			}
		}

		for c, w := range b.weights {
			if w > table.MaxWeight() {
				return nil, ConfigurationError{
					Reason: fmt.Sprintf(
						"weight %d of client %d exceeds the %d-bit range",
						w, c, b.weightWidth),
				}
			}

			table.SetWeight(c, w)
		}
	}

	a := &wrrArbiter{
		name:    name,
		weights: table,
		state:   idleState(b.numClients),
	}

	return a, nil
}
