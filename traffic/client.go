// Package traffic provides pseudo-random client agents that stress the bus.
package traffic

import (
	"math/rand"

	"github.com/sarchlab/busarb/busctrl"
	"github.com/sarchlab/busarb/sim"
)

// A transfer is one burst of bus usage. The first locked beats are driven
// with the lock wire asserted.
type transfer struct {
	beats  int
	locked int
}

// A Client issues a pseudo-random sequence of transfers over the bus. It
// keeps its request line asserted until the current transfer has used the
// bus for all of its beats, then idles for a random gap before issuing the
// next transfer.
type Client struct {
	*sim.TickingComponent

	ctrl   *busctrl.Comp
	line   *busctrl.RequestLine
	id     int
	rng    *rand.Rand
	maxGap int

	pending sim.Buffer
	current *transfer
	gap     int

	beatsServed int64
}

// TransfersLeft returns the number of transfers that have not completed yet.
func (c *Client) TransfersLeft() int {
	n := c.pending.Size()
	if c.current != nil {
		n++
	}
	return n
}

// BeatsServed returns the number of cycles this client has owned the bus.
func (c *Client) BeatsServed() int64 {
	return c.beatsServed
}

// Tick issues and progresses transfers.
func (c *Client) Tick() bool {
	if c.current == nil {
		return c.issueNext()
	}

	grant := c.ctrl.Grant()
	if !grant.Active || grant.Owner != c.id {
		// Keep the line asserted and wait for the bus.
		return true
	}

	c.useBus()

	return true
}

func (c *Client) issueNext() bool {
	if c.gap > 0 {
		c.gap--
		return true
	}

	item := c.pending.Pop()
	if item == nil {
		return false
	}

	c.current = item.(*transfer)
	c.line.Request(c.current.locked > 0)

	return true
}

func (c *Client) useBus() {
	c.current.beats--
	if c.current.locked > 0 {
		c.current.locked--
	}
	c.beatsServed++

	if c.current.beats == 0 {
		c.line.Release()
		c.current = nil
		c.gap = c.rng.Intn(c.maxGap + 1)
		return
	}

	c.line.Request(c.current.locked > 0)
}
