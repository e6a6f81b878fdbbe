// Package arbitration decides, cycle by cycle, which client owns a shared
// bus.
package arbitration

import "fmt"

// A ConfigurationError reports an invalid static arbiter configuration. It
// is the only error the package can return, and only at construction time.
type ConfigurationError struct {
	Reason string
}

func (e ConfigurationError) Error() string {
	return "arbiter configuration error: " + e.Reason
}

// A WeightTable holds the per-client weight configuration. The weight of a
// client is the number of extra cycles it may hold the bus after the first
// granted cycle. Weights are bounded by the weight width W to [0, 2^W-1].
//
// The table may be updated between cycles, but must stay unchanged within a
// cycle.
type WeightTable struct {
	weights   []uint64
	maxWeight uint64
}

// NewWeightTable creates a table for numClients clients with weights bounded
// by weightWidth bits. All weights start at 0.
func NewWeightTable(numClients, weightWidth int) (*WeightTable, error) {
	if numClients < 1 {
		return nil, ConfigurationError{
			Reason: fmt.Sprintf(
				"the number of clients must be at least 1, got %d",
				numClients),
		}
	}

	if weightWidth < 1 {
		return nil, ConfigurationError{
			Reason: fmt.Sprintf(
				"the weight width must be at least 1 bit, got %d",
				weightWidth),
		}
	}

	if weightWidth > 63 {
		return nil, ConfigurationError{
			Reason: fmt.Sprintf(
				"the weight width must be at most 63 bits, got %d",
				weightWidth),
		}
	}

	t := &WeightTable{
		weights:   make([]uint64, numClients),
		maxWeight: 1<<weightWidth - 1,
	}

	return t, nil
}

// NumClients returns the number of clients the table is configured for.
func (t *WeightTable) NumClients() int {
	return len(t.weights)
}

// MaxWeight returns the largest weight the table can hold.
func (t *WeightTable) MaxWeight() uint64 {
	return t.maxWeight
}

// Weight returns the weight of a client. It panics if the client index is
// out of range.
func (t *WeightTable) Weight(client int) uint64 {
	t.clientMustBeValid(client)

	return t.weights[client]
}

// SetWeight updates the weight of a client. It panics if the client index is
// out of range or the weight exceeds the configured width.
func (t *WeightTable) SetWeight(client int, weight uint64) {
	t.clientMustBeValid(client)

	if weight > t.maxWeight {
		panic(fmt.Sprintf(
			"weight %d exceeds the maximum weight %d",
			weight, t.maxWeight))
	}

	t.weights[client] = weight
}

func (t *WeightTable) clientMustBeValid(client int) {
	if client < 0 || client >= len(t.weights) {
		panic(fmt.Sprintf(
			"client index %d out of range [0, %d)",
			client, len(t.weights)))
	}
}
