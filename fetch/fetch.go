// Package fetch implements the lifecycle of a network-backed read as seen by a
// component: Loading while a request is outstanding, then Found or NotFound.
//
//	user := fetch.New(client.GetUser, c.InvokeAsync)
//	user.Load(ctx, 1)
//
//	return fetch.Match(user.State(),
//	    func() *vdom.VNode { return vdom.Paragraph("Loading...", nil) },
//	    func() *vdom.VNode { return vdom.Paragraph("No user found", nil) },
//	    func(u *userapi.User) *vdom.VNode { return vdom.Paragraph(u.Name, nil) },
//	)
//
// A Resource is keyed: every Load tags its request with the key and a generation
// number, and a response is applied only while that tag is still current. A late
// response for a superseded key is dropped.
//
// There is no caching, retrying, cancellation or deduplication. Transport errors are
// logged and surface as NotFound.
package fetch

import (
	"context"
	"fmt"
	"sync"

	"github.com/vcrobe/userwidgets/console"
)

// Stage is the lifecycle stage of the current request.
type Stage int

const (
	Loading Stage = iota
	Found
	NotFound
)

func (s Stage) String() string {
	switch s {
	case Loading:
		return "loading"
	case Found:
		return "found"
	case NotFound:
		return "not-found"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// State is a snapshot of a Resource. Value is non-nil iff Stage is Found.
type State[T any] struct {
	Stage Stage
	Value *T
}

// Fetcher performs one read. A nil value with a nil error means the payload was absent.
type Fetcher[K comparable, T any] func(ctx context.Context, key K) (*T, error)

// Resource drives one keyed read at a time.
type Resource[K comparable, T any] struct {
	fetch    Fetcher[K, T]
	dispatch func(func())

	mu      sync.Mutex
	key     K
	hasKey  bool
	gen     uint64
	state   State[T]
	done    chan struct{}
	subs    map[int]func(State[T])
	nextSub int
}

// New returns a Resource in the Loading stage with no request issued.
//
// Settled results are applied through dispatch, which lets a component route them
// onto its renderer's update path (ComponentBase.InvokeAsync). A nil dispatch applies
// results on the goroutine that performed the fetch.
func New[K comparable, T any](fetch Fetcher[K, T], dispatch func(func())) *Resource[K, T] {
	return &Resource[K, T]{
		fetch:    fetch,
		dispatch: dispatch,
		subs:     make(map[int]func(State[T])),
	}
}

// Load discards the current record, enters Loading and issues a request for key.
// It returns immediately; the request runs on its own goroutine.
func (r *Resource[K, T]) Load(ctx context.Context, key K) {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.key = key
	r.hasKey = true
	r.state = State[T]{Stage: Loading}
	done := make(chan struct{})
	r.done = done
	subs := r.subscribers()
	r.mu.Unlock()

	notify(subs, State[T]{Stage: Loading})

	go func() {
		value, err := r.fetch(ctx, key)
		r.apply(func() { r.settle(key, gen, value, err, done) })
	}()
}

func (r *Resource[K, T]) apply(fn func()) {
	if r.dispatch == nil {
		fn()
		return
	}
	r.dispatch(fn)
}

func (r *Resource[K, T]) settle(key K, gen uint64, value *T, err error, done chan struct{}) {
	defer close(done)

	r.mu.Lock()
	if gen != r.gen || key != r.key {
		r.mu.Unlock()
		console.Debug("fetch: dropping stale response for key", fmt.Sprint(key))
		return
	}

	next := State[T]{Stage: Found, Value: value}
	if err != nil {
		console.Warn("fetch: request for key", fmt.Sprint(key), "failed:", err.Error())
		next = State[T]{Stage: NotFound}
	} else if value == nil {
		next = State[T]{Stage: NotFound}
	}
	r.state = next
	subs := r.subscribers()
	r.mu.Unlock()

	notify(subs, next)
}

// State returns the current snapshot.
func (r *Resource[K, T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Stage returns the current stage.
func (r *Resource[K, T]) Stage() Stage {
	return r.State().Stage
}

// Value returns the current record, or nil unless the stage is Found.
func (r *Resource[K, T]) Value() *T {
	return r.State().Value
}

// Key returns the key of the current request and whether Load has been called.
func (r *Resource[K, T]) Key() (K, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.key, r.hasKey
}

// OnChange registers fn to be called with every new state.
// It returns a function that removes the subscription; call it from OnDestroy.
func (r *Resource[K, T]) OnChange(fn func(State[T])) (unsubscribe func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs, id)
	}
}

// Wait blocks until the current request has settled or ctx is done.
// It returns immediately when no request was issued.
func (r *Resource[K, T]) Wait(ctx context.Context) error {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()

	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// subscribers must be called with r.mu held.
func (r *Resource[K, T]) subscribers() []func(State[T]) {
	subs := make([]func(State[T]), 0, len(r.subs))
	for i := 0; i < r.nextSub; i++ {
		if fn, ok := r.subs[i]; ok {
			subs = append(subs, fn)
		}
	}
	return subs
}

func notify[T any](subs []func(State[T]), s State[T]) {
	for _, fn := range subs {
		fn(s)
	}
}

// Match returns the result of the callback for s's stage.
func Match[T, R any](s State[T], onLoading func() R, onNotFound func() R, onFound func(*T) R) R {
	switch s.Stage {
	case Found:
		return onFound(s.Value)
	case NotFound:
		return onNotFound()
	default:
		return onLoading()
	}
}
