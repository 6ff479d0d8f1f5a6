package runtime

import "github.com/vcrobe/userwidgets/vdom"

// Component interface defines the structure for all components in the framework.
// This interface has NO build tags, making it available to both WASM and native test builds.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// The renderer parameter provides access to framework services like RenderChild.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders.
	SetRenderer(r Renderer)
}

// ComponentFactory builds a component from route parameters.
type ComponentFactory func(params map[string]string) Component

// Renderer defines the minimal set of runtime operations used by Render() code.
type Renderer interface {
	// RenderChild renders a child component.
	// The key uniquely identifies the instance so its state survives re-renders.
	RenderChild(key string, childWithProps Component) *vdom.VNode

	// ReRender requests that the renderer re-run the render cycle.
	ReRender()

	// InvokeAsync runs fn on the renderer's update path and re-renders afterwards.
	// Updates are serialized: fn never runs concurrently with a render or another update.
	InvokeAsync(fn func())

	// Navigate performs client-side navigation to the given path.
	Navigate(path string) error
}

// NavigationManager resolves navigation requests (implemented by the router).
type NavigationManager interface {
	Navigate(path string) error
}

// Initializer is implemented by components that need one-time setup before the first render.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that react to their props before every render.
type ParameterReceiver interface {
	OnParametersSet()
}

// PropUpdater copies props from a freshly constructed component onto the live instance.
type PropUpdater interface {
	ApplyProps(source Component)
}

// Cleaner is implemented by components that release resources when unmounted.
type Cleaner interface {
	OnDestroy()
}
