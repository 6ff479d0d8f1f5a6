//go:build js && wasm

package router

import (
	"syscall/js"

	"github.com/vcrobe/userwidgets/console"
)

// BrowserHistory binds the router to window.history.
type BrowserHistory struct {
	popstateListener js.Func
}

// Push adds path to the browser history.
func (h *BrowserHistory) Push(path string) {
	js.Global().Get("history").Call("pushState", nil, "", path)
}

// Location returns the current location pathname.
func (h *BrowserHistory) Location() string {
	return js.Global().Get("location").Get("pathname").String()
}

// Listen calls fn with the new pathname on every popstate event.
func (h *BrowserHistory) Listen(fn func(path string)) {
	h.popstateListener = js.FuncOf(func(this js.Value, args []js.Value) any {
		path := h.Location()
		console.Log("[BrowserHistory] popstate path:", path)
		fn(path)
		return nil
	})
	js.Global().Call("addEventListener", "popstate", h.popstateListener)
}

// Close removes the popstate listener.
func (h *BrowserHistory) Close() {
	if !h.popstateListener.IsUndefined() {
		js.Global().Call("removeEventListener", "popstate", h.popstateListener)
		h.popstateListener.Release()
	}
}
