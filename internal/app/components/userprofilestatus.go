package components

import (
	"context"
	"fmt"

	"github.com/vcrobe/userwidgets/document"
	"github.com/vcrobe/userwidgets/fetch"
	"github.com/vcrobe/userwidgets/runtime"
	"github.com/vcrobe/userwidgets/userapi"
	"github.com/vcrobe/userwidgets/vdom"
)

// Status is the locally owned presence flag of UserProfileWithStatus.
type Status string

const (
	Offline Status = "offline"
	Online  Status = "online"
)

// Toggle returns the other status.
func (s Status) Toggle() Status {
	if s == Online {
		return Offline
	}
	return Online
}

// UserProfileWithStatus shows one fixed user with a toggleable presence status and
// publishes "{name} is {status}" to the title whenever either changes while a user is loaded.
type UserProfileWithStatus struct {
	runtime.ComponentBase

	Users  UserSource
	UserID int
	Title  document.TitleSink
	Status Status

	user        *userResource
	unsubscribe func()
}

// OnInit issues the request and subscribes the title to user changes. Users is read once here.
func (c *UserProfileWithStatus) OnInit() {
	if c.UserID <= 0 {
		c.UserID = DefaultUserID
	}
	if c.Status == "" {
		c.Status = Offline
	}
	c.user = newUserResource(&c.ComponentBase, c.Users)
	c.unsubscribe = c.user.OnChange(func(fetch.State[userapi.User]) {
		c.publishTitle()
	})
	loadIfChanged(c.user, c.UserID)
}

// OnDestroy drops the title subscription.
func (c *UserProfileWithStatus) OnDestroy() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// ApplyProps takes the new title sink; the status is local state.
func (c *UserProfileWithStatus) ApplyProps(source runtime.Component) {
	if next, ok := source.(*UserProfileWithStatus); ok && next.Title != nil {
		c.Title = next.Title
	}
}

// ToggleStatus flips online/offline and republishes the title.
func (c *UserProfileWithStatus) ToggleStatus() {
	c.InvokeAsync(func() {
		c.Status = c.Status.Toggle()
		c.publishTitle()
	})
}

// Stage reports the widget's fetch stage.
func (c *UserProfileWithStatus) Stage() fetch.Stage {
	return stateOf(c.user).Stage
}

// Wait blocks until the outstanding request has been applied.
func (c *UserProfileWithStatus) Wait(ctx context.Context) error {
	return waitFor(ctx, c.user)
}

func (c *UserProfileWithStatus) publishTitle() {
	if c.Title == nil || c.user == nil {
		return
	}
	if u := c.user.Value(); u != nil {
		c.Title.SetTitle(fmt.Sprintf("%s is %s", u.Name, c.Status))
	}
}

func (c *UserProfileWithStatus) Render(r runtime.Renderer) *vdom.VNode {
	heading := fetch.Match(stateOf(c.user),
		func() string { return "Loading user..." },
		func() string { return "No user found" },
		func(u *userapi.User) string { return u.Name },
	)
	return vdom.Div(nil,
		vdom.Heading(1, heading, nil),
		vdom.Paragraph("Status: "+string(c.Status), nil),
		vdom.Button("Toggle Status", map[string]any{"onClick": c.ToggleStatus}),
	)
}
