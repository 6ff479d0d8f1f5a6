//go:build js && wasm

package document

import "syscall/js"

// Browser writes titles to the page's document.title.
type Browser struct{}

// SetTitle implements TitleSink.
func (Browser) SetTitle(title string) {
	js.Global().Get("document").Set("title", title)
}
