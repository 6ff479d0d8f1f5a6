//go:build js && wasm

package runtime

import "github.com/vcrobe/userwidgets/vdom"

// DOMTarget mounts committed trees under a CSS selector in the browser document.
type DOMTarget struct {
	Selector string
}

// Commit clears the mount element and renders next into it.
func (t DOMTarget) Commit(prev, next *vdom.VNode) {
	vdom.Clear(t.Selector, prev)
	vdom.RenderToSelector(t.Selector, next)
}
