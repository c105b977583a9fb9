package location

import (
	"context"
	"sync"
	"time"
)

// defaultSuggestDelay is the quiet period applied when no delay is given.
const defaultSuggestDelay = 200 * time.Millisecond

// Debouncer coalesces rapid suggestion lookups: only the newest request runs
// after the quiet period, and a superseded request's result is never applied.
// Each Lookup bumps a generation counter; the callback fires only when its
// generation is still the latest once results arrive.
type Debouncer struct {
	engine *SuggestionEngine
	delay  time.Duration

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

func NewDebouncer(engine *SuggestionEngine, delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = defaultSuggestDelay
	}
	return &Debouncer{
		engine: engine,
		delay:  delay,
	}
}

// Lookup schedules a suggestion lookup for partial after the quiet period,
// cancelling any pending one. apply receives the results unless a newer Lookup
// has superseded this one by the time they arrive.
func (d *Debouncer) Lookup(ctx context.Context, partial string, apply func([]RawPlaceMatch)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		results := d.engine.Suggest(ctx, partial)

		d.mu.Lock()
		latest := gen == d.gen
		d.mu.Unlock()

		if latest {
			apply(results)
		}
	})
}

// Stop cancels any pending lookup.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}
