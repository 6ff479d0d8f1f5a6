package runtime

import (
	"fmt"

	"github.com/vcrobe/userwidgets/console"
)

// ComponentBase is a struct that components can embed to gain access to the
// StateHasChanged method, which triggers a UI re-render.
// This type has no build tags and works in both WASM and test environments.
type ComponentBase struct {
	renderer Renderer
}

// SetRenderer is called by the framework's runtime to inject a reference
// to the renderer, enabling StateHasChanged. This method should not be
// called by user code.
func (b *ComponentBase) SetRenderer(r Renderer) {
	// Called on every render; only a different renderer is stored.
	if b.renderer != r {
		b.renderer = r
	}
}

// GetRenderer returns the renderer attached to this component, if any.
func (b *ComponentBase) GetRenderer() Renderer {
	return b.renderer
}

// StateHasChanged signals to the framework that the component's state has
// been updated and the UI should be re-rendered to reflect the changes.
func (b *ComponentBase) StateHasChanged() {
	if b.renderer == nil {
		console.Debug("StateHasChanged called, but renderer is nil (component not mounted?)")
		return
	}
	b.renderer.ReRender()
}

// InvokeAsync applies a state mutation on the renderer's update path.
// Background work (for example a settled fetch) must mutate component state through
// InvokeAsync. Without a renderer, fn runs immediately.
func (b *ComponentBase) InvokeAsync(fn func()) {
	if b.renderer == nil {
		fn()
		return
	}
	b.renderer.InvokeAsync(fn)
}

// Navigate requests client-side navigation to a new path.
//
// Example usage in a component:
//
//	func (c *MyComponent) ShowUser(id int) {
//	    if err := c.Navigate(fmt.Sprintf("/users/%d", id)); err != nil {
//	        console.Error("Navigation failed:", err.Error())
//	    }
//	}
func (b *ComponentBase) Navigate(path string) error {
	if b.renderer == nil {
		return fmt.Errorf("navigate called, but renderer is nil (component not mounted?)")
	}
	return b.renderer.Navigate(path)
}
