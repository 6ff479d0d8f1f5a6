package runtime

import (
	"fmt"

	"github.com/vcrobe/userwidgets/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// Target receives each committed VDOM tree.
type Target interface {
	// Commit replaces the previously committed tree (nil on the first render) with next.
	Commit(prev, next *vdom.VNode)
}

// RendererImpl is the concrete implementation of the Renderer interface.
// It manages the component instance tree and handles rendering lifecycle.
// All renders and InvokeAsync updates run through a Dispatcher, one at a time.
type RendererImpl struct {
	instances        map[string]Component
	activeKeys       map[string]bool // components rendered in the current cycle
	currentComponent Component
	currentKey       string
	rootInitialized  bool
	navManager       NavigationManager
	target           Target
	prevVDOM         *vdom.VNode
	dispatcher       *Dispatcher
}

// NewRenderer creates a new runtime renderer.
// If navManager is nil, the renderer works without routing.
func NewRenderer(navManager NavigationManager, target Target) *RendererImpl {
	r := &RendererImpl{
		instances:  make(map[string]Component),
		activeKeys: make(map[string]bool),
		navManager: navManager,
		target:     target,
	}
	r.dispatcher = NewDispatcher(r.renderRoot)
	return r
}

// SetCurrentComponent sets the root component and renders it.
// Under the same key a live root that implements PropUpdater is kept and receives
// comp's props; otherwise the previous root is destroyed and comp is mounted fresh.
func (r *RendererImpl) SetCurrentComponent(comp Component, key string) {
	r.dispatcher.Invoke(func() {
		switch {
		case r.currentComponent == nil:
		case comp == r.currentComponent && key == r.currentKey:
			return
		case key == r.currentKey:
			if updater, ok := r.currentComponent.(PropUpdater); ok {
				updater.ApplyProps(comp)
				return
			}
			r.destroyRoot()
		default:
			r.destroyRoot()
		}
		r.currentComponent = comp
		r.currentKey = key
	})
}

// destroyRoot unmounts the root and every child it rendered, so the next root
// starts with fresh children.
func (r *RendererImpl) destroyRoot() {
	for key, instance := range r.instances {
		if cleaner, ok := instance.(Cleaner); ok {
			r.callOnDestroy(cleaner, key)
		}
	}
	r.instances = make(map[string]Component)
	r.activeKeys = make(map[string]bool)

	if cleaner, ok := r.currentComponent.(Cleaner); ok {
		r.callOnDestroy(cleaner, "__root__:"+r.currentKey)
	}
	r.rootInitialized = false
}

// CurrentComponent returns the live root component.
func (r *RendererImpl) CurrentComponent() Component {
	return r.currentComponent
}

// CurrentVDOM returns the most recently committed tree.
func (r *RendererImpl) CurrentVDOM() *vdom.VNode {
	return r.prevVDOM
}

// renderRoot runs one render cycle for the whole application.
func (r *RendererImpl) renderRoot() {
	if r.currentComponent == nil {
		return
	}
	r.activeKeys = make(map[string]bool)

	rootKey := "__root__:" + r.currentKey
	r.currentComponent.SetRenderer(r)
	if !r.rootInitialized {
		if initializer, ok := r.currentComponent.(Initializer); ok {
			r.callOnInit(initializer, rootKey)
		}
		r.rootInitialized = true
	}
	if paramReceiver, ok := r.currentComponent.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, rootKey)
	}

	newVDOM := r.currentComponent.Render(r)
	if r.target != nil {
		r.target.Commit(r.prevVDOM, newVDOM)
	}
	r.prevVDOM = newVDOM

	r.cleanupUnmountedComponents()
}

// RenderChild renders a child component, reusing the live instance stored under key.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	if !exists {
		instance = childWithProps
		r.instances[key] = instance
	} else if updater, ok := instance.(PropUpdater); ok && instance != childWithProps {
		updater.ApplyProps(childWithProps)
	}

	instance.SetRenderer(r)

	if !exists {
		if initializer, ok := instance.(Initializer); ok {
			r.callOnInit(initializer, key)
		}
	}
	if paramReceiver, ok := instance.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, key)
	}

	return instance.Render(r)
}

// cleanupUnmountedComponents removes components that are no longer in the tree
// and calls their OnDestroy lifecycle method if they implement the Cleaner interface.
func (r *RendererImpl) cleanupUnmountedComponents() {
	for key, instance := range r.instances {
		if r.activeKeys[key] {
			continue
		}
		if cleaner, ok := instance.(Cleaner); ok {
			r.callOnDestroy(cleaner, key)
		}
		delete(r.instances, key)
	}
}

// ReRender schedules a render cycle.
func (r *RendererImpl) ReRender() {
	r.dispatcher.Invoke(nil)
}

// InvokeAsync runs fn on the update path and re-renders.
func (r *RendererImpl) InvokeAsync(fn func()) {
	r.dispatcher.Invoke(fn)
}

// Flush blocks until queued updates and renders have finished.
// It must not be called from a render or an update.
func (r *RendererImpl) Flush() {
	r.dispatcher.Flush()
}

// Navigate delegates to the NavigationManager (router).
// Returns an error if no router is configured.
func (r *RendererImpl) Navigate(path string) error {
	if r.navManager == nil {
		return fmt.Errorf("no router configured for navigation")
	}
	return r.navManager.Navigate(path)
}
