// Package state holds the observable result of the last resolution cycle.
// Only the lookup pipeline writes it; consumers read snapshots or subscribe.
package state

import (
	"sync"

	"weatherlookup/internal/location"
)

// Snapshot is the typed, immutable view handed to consumers: the four fields
// pushed on every resolution cycle plus the loading flag bracketing it.
type Snapshot struct {
	City     string                    `json:"city"`
	Country  string                    `json:"country"`
	Forecast *location.ForecastPayload `json:"forecast,omitempty"`
	Error    string                    `json:"error,omitempty"`
	Loading  bool                      `json:"loading"`
}

// Container is the state holder. Subscribers receive a snapshot after every
// mutation; a slow subscriber misses intermediate snapshots rather than
// blocking the pipeline.
type Container struct {
	mu     sync.RWMutex
	snap   Snapshot
	record *location.Record
	subs   []chan Snapshot
}

func New() *Container {
	return &Container{}
}

// Snapshot returns a copy of the current state.
func (c *Container) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// CurrentRecord returns the record backing the displayed city, if one is set.
func (c *Container) CurrentRecord() (location.Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.record == nil {
		return location.Record{}, false
	}
	return *c.record, true
}

// SetLoading flips the loading flag.
func (c *Container) SetLoading(loading bool) {
	c.mu.Lock()
	if c.snap.Loading == loading {
		c.mu.Unlock()
		return
	}
	c.snap.Loading = loading
	c.notifyLocked()
	c.mu.Unlock()
}

// SetResolved publishes a successful resolution cycle: city and country from
// the record, the forecast when one was fetched (nil keeps the previous one),
// and a cleared error.
func (c *Container) SetResolved(rec location.Record, forecast *location.ForecastPayload) {
	c.mu.Lock()
	c.record = &rec
	c.snap.City = rec.Name
	c.snap.Country = rec.Country
	if forecast != nil {
		c.snap.Forecast = forecast
	}
	c.snap.Error = ""
	c.notifyLocked()
	c.mu.Unlock()
}

// SetError publishes a terminal failure as a human-readable message.
func (c *Container) SetError(msg string) {
	c.mu.Lock()
	c.snap.Error = msg
	c.notifyLocked()
	c.mu.Unlock()
}

// Subscribe returns a channel receiving a snapshot after each mutation. The
// channel is buffered; snapshots are dropped rather than delivered late.
func (c *Container) Subscribe() <-chan Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan Snapshot, 8)
	c.subs = append(c.subs, ch)
	return ch
}

func (c *Container) notifyLocked() {
	for _, ch := range c.subs {
		select {
		case ch <- c.snap:
		default:
		}
	}
}
