package components

import (
	"fmt"

	"github.com/vcrobe/userwidgets/document"
	"github.com/vcrobe/userwidgets/runtime"
	"github.com/vcrobe/userwidgets/vdom"
)

// Counter counts clicks and mirrors the count into the page title.
type Counter struct {
	runtime.ComponentBase

	Count int
	Title document.TitleSink
}

// OnInit publishes the initial title.
func (c *Counter) OnInit() {
	c.publishTitle()
}

// ApplyProps keeps Count (component state) and takes the new title sink.
func (c *Counter) ApplyProps(source runtime.Component) {
	if next, ok := source.(*Counter); ok && next.Title != nil {
		c.Title = next.Title
	}
}

// Increment increases the counter, republishes the title and triggers a re-render.
func (c *Counter) Increment() {
	c.InvokeAsync(func() {
		c.Count++
		c.publishTitle()
	})
}

func (c *Counter) publishTitle() {
	if c.Title != nil {
		c.Title.SetTitle(fmt.Sprintf("Count: %d", c.Count))
	}
}

func (c *Counter) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"class": "card"},
		vdom.Button(fmt.Sprintf("count is %d", c.Count), map[string]any{
			"onClick": c.Increment,
		}),
	)
}
