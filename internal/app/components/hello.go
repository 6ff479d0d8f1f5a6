package components

import (
	"github.com/vcrobe/userwidgets/runtime"
	"github.com/vcrobe/userwidgets/vdom"
)

// Hello greets Name.
type Hello struct {
	runtime.ComponentBase

	Name string
}

func (h *Hello) ApplyProps(source runtime.Component) {
	if next, ok := source.(*Hello); ok {
		h.Name = next.Name
	}
}

func (h *Hello) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Paragraph("Hello, "+h.Name+"!", nil)
}
