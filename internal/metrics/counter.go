package metrics

import "sync/atomic"

// Counter accumulates a monotonically increasing total.
type Counter interface {
	Inc()
	Add(n uint64)
	Count() uint64
}

func NewCounter() Counter {
	return &counter{}
}

type counter struct {
	count atomic.Uint64
}

func (c *counter) Inc() {
	c.count.Add(1)
}

func (c *counter) Add(n uint64) {
	c.count.Add(n)
}

func (c *counter) Count() uint64 {
	return c.count.Load()
}
