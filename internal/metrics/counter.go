// Package metrics holds the process-scoped request counter. It is owned by
// main and injected where needed; nothing reads it as an ambient global.
package metrics

import "sync/atomic"

// RequestCounter counts inbound HTTP requests, successes and failures alike.
type RequestCounter struct {
	total atomic.Int64
}

func NewRequestCounter() *RequestCounter {
	return &RequestCounter{}
}

func (c *RequestCounter) Inc() {
	c.total.Add(1)
}

func (c *RequestCounter) Total() int64 {
	return c.total.Load()
}
