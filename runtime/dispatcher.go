package runtime

import "sync"

// Dispatcher serializes state updates and renders.
//
// Invoke enqueues fn. If no drain is in progress, the calling goroutine becomes the
// drainer: it runs queued functions in order and renders once per batch until the
// queue is empty. Calls made while a drain is in progress (from a render, an update,
// or another goroutine) are picked up by that drain, so nothing deadlocks and only
// one goroutine touches component state at a time.
type Dispatcher struct {
	mu      sync.Mutex
	idle    *sync.Cond
	busy    bool
	pending bool
	queue   []func()
	render  func()
}

// NewDispatcher returns a Dispatcher that calls render after each batch of updates.
func NewDispatcher(render func()) *Dispatcher {
	d := &Dispatcher{render: render}
	d.idle = sync.NewCond(&d.mu)
	return d
}

// Flush blocks until no update or render is queued or running.
// It must not be called from inside an update or a render.
func (d *Dispatcher) Flush() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for d.busy || d.pending {
		d.idle.Wait()
	}
}

// Invoke schedules fn (nil requests a render only).
func (d *Dispatcher) Invoke(fn func()) {
	d.mu.Lock()
	if fn != nil {
		d.queue = append(d.queue, fn)
	}
	d.pending = true
	if d.busy {
		d.mu.Unlock()
		return
	}
	d.busy = true
	d.mu.Unlock()

	d.drain()
}

func (d *Dispatcher) drain() {
	var batch []func()
	next := 0
	done := false
	defer func() {
		if done {
			return
		}
		// An update or the render panicked. Updates not yet run are handed to a
		// new drainer so a settled fetch is never lost; the panic continues.
		d.mu.Lock()
		rest := append(batch[next:len(batch):len(batch)], d.queue...)
		d.queue = rest
		d.pending = len(rest) > 0
		d.busy = d.pending
		if !d.busy {
			d.idle.Broadcast()
		}
		d.mu.Unlock()
		if len(rest) > 0 {
			go d.drain()
		}
	}()

	for {
		d.mu.Lock()
		if !d.pending {
			d.busy = false
			d.idle.Broadcast()
			d.mu.Unlock()
			done = true
			return
		}
		batch = d.queue
		next = 0
		d.queue = nil
		d.pending = false
		d.mu.Unlock()

		for next < len(batch) {
			fn := batch[next]
			next++
			fn()
		}
		if d.render != nil {
			d.render()
		}
	}
}
