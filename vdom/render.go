//go:build js && wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/userwidgets/console"
)

// releaseCallbacks releases all js.Func objects held by the tree rooted at v.
func releaseCallbacks(v *VNode) {
	Walk(v, func(n *VNode) bool {
		for _, cb := range n.GetEventCallbacks() {
			if fn, ok := cb.(js.Func); ok {
				fn.Release()
			}
		}
		n.ClearEventCallbacks()
		return true
	})
}

// Clear empties the mount element and releases the callbacks of the previous tree.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}
	if prevVDOM != nil {
		releaseCallbacks(prevVDOM)
	}

	mount := querySelector(selector)
	if !mount.Truthy() {
		return
	}
	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}
	mount := querySelector(selector)
	if !mount.Truthy() {
		return
	}
	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}
	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

func querySelector(selector string) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined()
	}
	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
	}
	return mount
}

func setAttributeValue(el js.Value, key string, value any) {
	if b, ok := value.(bool); ok {
		if b {
			el.Call("setAttribute", key, "")
		}
		return
	}
	el.Call("setAttribute", key, value)
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	switch n.Tag {
	case "#text":
		if n.Content == "" {
			return js.Undefined()
		}
		return doc.Call("createTextNode", n.Content)
	case "p", "div", "button", "input", "span", "h1", "h2", "h3", "h4", "h5", "h6", "ul", "li", "a":
	default:
		console.Error("Unsupported tag: ", n.Tag)
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)
	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}

	if n.Content != "" {
		if n.Tag == "input" {
			el.Set("value", n.Content)
		} else {
			el.Set("textContent", n.Content)
		}
	}
	for _, child := range n.Children {
		if childEl := createElement(child); childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}

	if n.OnClick != nil {
		handler := n.OnClick
		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			handler()
			return nil
		})
		el.Call("addEventListener", "click", cb)
		n.AddEventCallback(cb)
	}
	return el
}
