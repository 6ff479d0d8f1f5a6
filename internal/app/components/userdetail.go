package components

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vcrobe/userwidgets/console"
	"github.com/vcrobe/userwidgets/fetch"
	"github.com/vcrobe/userwidgets/runtime"
	"github.com/vcrobe/userwidgets/userapi"
	"github.com/vcrobe/userwidgets/vdom"
)

// UserDetail shows the user identified by UserID and re-fetches whenever UserID changes.
// A response for a superseded id is discarded.
type UserDetail struct {
	runtime.ComponentBase

	Users  UserSource
	UserID int

	user *userResource
}

// OnInit creates the fetch machine. Users is read once here.
func (c *UserDetail) OnInit() {
	c.user = newUserResource(&c.ComponentBase, c.Users)
}

// OnParametersSet re-enters Loading and re-fetches when UserID differs from the current request.
func (c *UserDetail) OnParametersSet() {
	if c.user == nil {
		c.OnInit()
	}
	loadIfChanged(c.user, c.UserID)
}

// ApplyProps takes the new UserID from a freshly built instance.
func (c *UserDetail) ApplyProps(source runtime.Component) {
	if next, ok := source.(*UserDetail); ok {
		c.UserID = next.UserID
	}
}

// Stage reports the widget's fetch stage.
func (c *UserDetail) Stage() fetch.Stage {
	return stateOf(c.user).Stage
}

// Wait blocks until the outstanding request has been applied.
func (c *UserDetail) Wait(ctx context.Context) error {
	return waitFor(ctx, c.user)
}

// ShowNext navigates to the following user id.
func (c *UserDetail) ShowNext() {
	if err := c.Navigate(UserPath(c.UserID + 1)); err != nil {
		console.Error("Navigation failed:", err.Error())
	}
}

// UserPath returns the route of the detail page for id.
func UserPath(id int) string {
	return "/users/" + strconv.Itoa(id)
}

func (c *UserDetail) Render(r runtime.Renderer) *vdom.VNode {
	return fetch.Match(stateOf(c.user),
		loadingView,
		notFoundView,
		func(u *userapi.User) *vdom.VNode {
			return vdom.Div(nil,
				vdom.Heading(2, "User Detail", nil),
				vdom.Paragraph(fmt.Sprintf("ID: %d", u.ID), nil),
				vdom.Paragraph("Name: "+u.Name, nil),
				vdom.Button("Next user", map[string]any{"onClick": c.ShowNext}),
			)
		},
	)
}
