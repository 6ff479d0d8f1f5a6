package components

import (
	"context"

	"github.com/vcrobe/userwidgets/document"
	"github.com/vcrobe/userwidgets/runtime"
	"github.com/vcrobe/userwidgets/vdom"
)

// Home is the landing page: greeting, counter, profile and profile-with-status.
// It owns its children so callers can drive and await them.
type Home struct {
	runtime.ComponentBase

	Greeting      string
	Users         UserSource
	StatusUsers   UserSource // defaults to Users
	ProfileUserID int
	StatusUserID  int
	Title         document.TitleSink

	hello   *Hello
	counter *Counter
	profile *UserProfile
	status  *UserProfileWithStatus
}

// OnInit builds the children.
func (h *Home) OnInit() {
	statusUsers := h.StatusUsers
	if statusUsers == nil {
		statusUsers = h.Users
	}
	h.hello = &Hello{Name: h.Greeting}
	h.counter = &Counter{Title: h.Title}
	h.profile = &UserProfile{Users: h.Users, UserID: h.ProfileUserID}
	h.status = &UserProfileWithStatus{Users: statusUsers, UserID: h.StatusUserID, Title: h.Title}
}

// Counter returns the counter child (nil before OnInit).
func (h *Home) Counter() *Counter { return h.counter }

// Status returns the profile-with-status child (nil before OnInit).
func (h *Home) Status() *UserProfileWithStatus { return h.status }

// Profile returns the profile child (nil before OnInit).
func (h *Home) Profile() *UserProfile { return h.profile }

// Wait blocks until both user widgets have settled.
func (h *Home) Wait(ctx context.Context) error {
	if h.profile == nil {
		return nil
	}
	if err := h.profile.Wait(ctx); err != nil {
		return err
	}
	return h.status.Wait(ctx)
}

func (h *Home) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"id": "home"},
		r.RenderChild("hello", h.hello),
		r.RenderChild("counter", h.counter),
		r.RenderChild("profile", h.profile),
		r.RenderChild("status", h.status),
	)
}
