//go:build !js || !wasm

package components

import (
	"testing"

	"github.com/vcrobe/userwidgets/testcomponents"
)

// TestHello_Greeting verifies the greeting text.
func TestHello_Greeting(t *testing.T) {
	renderer := testcomponents.NewTestRenderer(&Hello{Name: "World"})

	vnode := renderer.RenderRoot()

	if vnode.Tag != "p" {
		t.Errorf("Expected root tag 'p', got '%s'", vnode.Tag)
	}
	if vnode.Content != "Hello, World!" {
		t.Errorf("Expected 'Hello, World!', got '%s'", vnode.Content)
	}

	vnode = renderer.SetParameters(&Hello{Name: "Gopher"})
	if vnode.Content != "Hello, Gopher!" {
		t.Errorf("Expected 'Hello, Gopher!', got '%s'", vnode.Content)
	}
}
