package components

import (
	"context"

	"github.com/vcrobe/userwidgets/fetch"
	"github.com/vcrobe/userwidgets/runtime"
	"github.com/vcrobe/userwidgets/userapi"
	"github.com/vcrobe/userwidgets/vdom"
)

// UserProfile shows the name of one fixed user.
type UserProfile struct {
	runtime.ComponentBase

	Users  UserSource
	UserID int

	user *userResource
}

// OnInit issues the request. Users is read once here.
func (c *UserProfile) OnInit() {
	if c.UserID <= 0 {
		c.UserID = DefaultUserID
	}
	c.user = newUserResource(&c.ComponentBase, c.Users)
	loadIfChanged(c.user, c.UserID)
}

// Stage reports the widget's fetch stage.
func (c *UserProfile) Stage() fetch.Stage {
	return stateOf(c.user).Stage
}

// Wait blocks until the outstanding request has been applied.
func (c *UserProfile) Wait(ctx context.Context) error {
	return waitFor(ctx, c.user)
}

func (c *UserProfile) Render(r runtime.Renderer) *vdom.VNode {
	return fetch.Match(stateOf(c.user),
		loadingView,
		func() *vdom.VNode {
			return vdom.Div(nil,
				vdom.Heading(1, "User Profile", nil),
				notFoundView(),
			)
		},
		func(u *userapi.User) *vdom.VNode {
			return vdom.Div(nil,
				vdom.Heading(1, "User Profile", nil),
				vdom.Paragraph(u.Name, nil),
			)
		},
	)
}
