package ai

import (
	"sync"
	"time"
)

// Debouncer absorbs an accidental double submission from one UI session. A
// second generation under the same key is briefly delayed and then proceeds;
// this is a debounce, not mutual exclusion, and makes no guarantee under real
// parallelism.
type Debouncer struct {
	mu       sync.Mutex
	inFlight map[string]bool
	delay    time.Duration
}

func NewDebouncer() *Debouncer {
	return &Debouncer{
		inFlight: make(map[string]bool),
		delay:    300 * time.Millisecond,
	}
}

// Begin marks the key in flight, first waiting the debounce delay when an
// earlier call under the same key has not finished.
func (d *Debouncer) Begin(key string) {
	d.mu.Lock()
	busy := d.inFlight[key]
	if !busy {
		d.inFlight[key] = true
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()

	time.Sleep(d.delay)

	d.mu.Lock()
	d.inFlight[key] = true
	d.mu.Unlock()
}

func (d *Debouncer) End(key string) {
	d.mu.Lock()
	delete(d.inFlight, key)
	d.mu.Unlock()
}
