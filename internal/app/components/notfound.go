package components

import (
	"github.com/vcrobe/userwidgets/runtime"
	"github.com/vcrobe/userwidgets/vdom"
)

// NotFound is shown for paths without a route.
type NotFound struct {
	runtime.ComponentBase
	Path string
}

func (c *NotFound) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(nil,
		vdom.Heading(1, "Page not found", nil),
		vdom.Paragraph("No page at "+c.Path, nil),
	)
}
