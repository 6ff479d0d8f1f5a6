// Package testcomponents provides an in-memory renderer for component tests.
package testcomponents

import (
	"sync"
	"time"

	"github.com/vcrobe/userwidgets/runtime"
	"github.com/vcrobe/userwidgets/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged() or InvokeAsync()
// - Inspect the resulting VDOM tree, or wait for a tree matching a condition
type TestRenderer struct {
	component  runtime.Component
	dispatcher *runtime.Dispatcher
	children   map[string]runtime.Component
	activeKeys map[string]bool // children rendered in the current cycle

	mu          sync.Mutex
	currentVDOM *vdom.VNode
	renders     int
	changed     chan struct{}
	navigated   []string
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// DefaultWait bounds WaitFor when the caller passes a zero timeout.
const DefaultWait = 2 * time.Second

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component:  comp,
		children:   make(map[string]runtime.Component),
		activeKeys: make(map[string]bool),
		changed:    make(chan struct{}),
	}
	r.dispatcher = runtime.NewDispatcher(r.render)
	comp.SetRenderer(r)
	return r
}

// RenderRoot performs the initial render of the component, running OnInit and
// OnParametersSet first the way the runtime does.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.dispatcher.Invoke(func() {
		if initializer, ok := r.component.(runtime.Initializer); ok {
			initializer.OnInit()
		}
	})
	return r.GetCurrentVDOM()
}

// SetParameters copies props from next onto the mounted component and re-renders,
// the way a parent re-render with new props does.
func (r *TestRenderer) SetParameters(next runtime.Component) *vdom.VNode {
	r.dispatcher.Invoke(func() {
		if updater, ok := r.component.(runtime.PropUpdater); ok {
			updater.ApplyProps(next)
		}
	})
	return r.GetCurrentVDOM()
}

func (r *TestRenderer) render() {
	r.activeKeys = make(map[string]bool)
	if receiver, ok := r.component.(runtime.ParameterReceiver); ok {
		receiver.OnParametersSet()
	}
	vnode := r.component.Render(r)
	r.cleanupUnmountedChildren()

	r.mu.Lock()
	r.currentVDOM = vnode
	r.renders++
	close(r.changed)
	r.changed = make(chan struct{})
	r.mu.Unlock()
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.dispatcher.Invoke(nil)
}

// InvokeAsync applies fn and re-renders, serialized with all other renders.
func (r *TestRenderer) InvokeAsync(fn func()) {
	r.dispatcher.Invoke(fn)
}

// Flush waits until queued updates, including settled fetches being applied on
// another goroutine, have been applied and rendered.
func (r *TestRenderer) Flush() {
	r.dispatcher.Flush()
}

// GetCurrentVDOM flushes pending updates and returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	r.Flush()
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentVDOM
}

// RenderCount returns how many times the component has rendered.
func (r *TestRenderer) RenderCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renders
}

// WaitFor blocks until cond holds for the current tree or the timeout elapses.
// It returns the last tree seen and whether cond was satisfied.
func (r *TestRenderer) WaitFor(timeout time.Duration, cond func(*vdom.VNode) bool) (*vdom.VNode, bool) {
	if timeout <= 0 {
		timeout = DefaultWait
	}
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		r.mu.Lock()
		vnode, changed := r.currentVDOM, r.changed
		r.mu.Unlock()

		if vnode != nil && cond(vnode) {
			return vnode, true
		}
		select {
		case <-changed:
		case <-deadline.C:
			return vnode, false
		}
	}
}

// WaitForText waits until some node's content contains text (case-insensitive).
func (r *TestRenderer) WaitForText(text string) (*vdom.VNode, bool) {
	return r.WaitFor(0, func(v *vdom.VNode) bool {
		return v.FindText(text) != nil
	})
}

// RenderChild renders a child component, keeping one live instance per key.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	r.activeKeys[key] = true
	instance, exists := r.children[key]
	if !exists {
		instance = child
		r.children[key] = instance
	} else if updater, ok := instance.(runtime.PropUpdater); ok && instance != child {
		updater.ApplyProps(child)
	}
	instance.SetRenderer(r)
	if !exists {
		if initializer, ok := instance.(runtime.Initializer); ok {
			initializer.OnInit()
		}
	}
	if receiver, ok := instance.(runtime.ParameterReceiver); ok {
		receiver.OnParametersSet()
	}
	return instance.Render(r)
}

// cleanupUnmountedChildren destroys children that were not rendered in this cycle.
func (r *TestRenderer) cleanupUnmountedChildren() {
	for key, instance := range r.children {
		if r.activeKeys[key] {
			continue
		}
		if cleaner, ok := instance.(runtime.Cleaner); ok {
			cleaner.OnDestroy()
		}
		delete(r.children, key)
	}
}

// Child flushes pending updates and returns the live child instance rendered under key.
func (r *TestRenderer) Child(key string) (runtime.Component, bool) {
	r.Flush()
	c, ok := r.children[key]
	return c, ok
}

// Navigate records the requested path.
func (r *TestRenderer) Navigate(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.navigated = append(r.navigated, path)
	return nil
}

// Navigations returns the paths passed to Navigate, in order.
func (r *TestRenderer) Navigations() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.navigated...)
}
