//go:build !js || !wasm

package components

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vcrobe/userwidgets/document"
	"github.com/vcrobe/userwidgets/testcomponents"
	"github.com/vcrobe/userwidgets/userapi"
)

func TestStatus_Toggle(t *testing.T) {
	if Offline.Toggle() != Online || Online.Toggle() != Offline {
		t.Errorf("Expected offline <-> online, got %s / %s", Offline.Toggle(), Online.Toggle())
	}
}

// TestUserProfileWithStatus_LoadingInitially verifies the heading before the user arrives.
func TestUserProfileWithStatus_LoadingInitially(t *testing.T) {
	users := newGatedUsers()
	title := document.NewRecorder()
	renderer := testcomponents.NewTestRenderer(&UserProfileWithStatus{Users: users, Title: title})

	vnode := renderer.RenderRoot()

	if got := vnode.FindTag("h1").Content; got != "Loading user..." {
		t.Errorf("Expected 'Loading user...', got '%s'", got)
	}
	if vnode.FindText("Status: offline") == nil {
		t.Errorf("Expected 'Status: offline', got '%s'", vnode.TextContent())
	}
	if len(title.History()) != 0 {
		t.Errorf("Expected no title writes before the user loads, got %v", title.History())
	}
	users.release(t, DefaultUserID, reply{})
}

// TestUserProfileWithStatus_TitleFollowsUserAndStatus verifies the title is republished
// when the user loads and on every toggle, and that two toggles return to offline.
func TestUserProfileWithStatus_TitleFollowsUserAndStatus(t *testing.T) {
	// Arrange
	users := newStaticUsers(userapi.User{ID: 1, Name: "John Doe"})
	title := document.NewRecorder()
	widget := &UserProfileWithStatus{Users: users, Title: title}
	renderer := testcomponents.NewTestRenderer(widget)
	renderer.RenderRoot()

	if vnode, ok := renderer.WaitForText("John Doe"); !ok {
		t.Fatalf("Expected 'John Doe', got '%s'", vnode.TextContent())
	}

	// Act: toggle twice through the rendered button
	renderer.GetCurrentVDOM().FindText("Toggle Status").OnClick()
	if renderer.GetCurrentVDOM().FindText("Status: online") == nil {
		t.Errorf("Expected 'Status: online', got '%s'", renderer.GetCurrentVDOM().TextContent())
	}
	renderer.GetCurrentVDOM().FindText("Toggle Status").OnClick()
	renderer.Flush()

	// Assert
	if widget.Status != Offline {
		t.Errorf("Expected offline after two toggles, got %s", widget.Status)
	}
	if renderer.GetCurrentVDOM().FindText("Status: offline") == nil {
		t.Errorf("Expected 'Status: offline', got '%s'", renderer.GetCurrentVDOM().TextContent())
	}
	want := []string{"John Doe is offline", "John Doe is online", "John Doe is offline"}
	if diff := cmp.Diff(want, title.History()); diff != "" {
		t.Errorf("title history mismatch (-want +got):\n%s", diff)
	}
}

// TestUserProfileWithStatus_ToggleWithoutUser verifies toggling works but publishes
// nothing while no user is loaded.
func TestUserProfileWithStatus_ToggleWithoutUser(t *testing.T) {
	title := document.NewRecorder()
	widget := &UserProfileWithStatus{Users: newStaticUsers(), Title: title}
	renderer := testcomponents.NewTestRenderer(widget)
	renderer.RenderRoot()

	if vnode, ok := renderer.WaitForText("No user found"); !ok {
		t.Fatalf("Expected 'No user found', got '%s'", vnode.TextContent())
	}

	widget.ToggleStatus()

	if renderer.GetCurrentVDOM().FindText("Status: online") == nil {
		t.Errorf("Expected 'Status: online', got '%s'", renderer.GetCurrentVDOM().TextContent())
	}
	if len(title.History()) != 0 {
		t.Errorf("Expected no title writes, got %v", title.History())
	}
}

// TestUserProfileWithStatus_OnDestroyUnsubscribes verifies no title writes after unmount.
func TestUserProfileWithStatus_OnDestroyUnsubscribes(t *testing.T) {
	users := newGatedUsers()
	title := document.NewRecorder()
	widget := &UserProfileWithStatus{Users: users, Title: title}
	renderer := testcomponents.NewTestRenderer(widget)
	renderer.RenderRoot()

	widget.OnDestroy()
	users.release(t, DefaultUserID, reply{user: &userapi.User{ID: 1, Name: "John Doe"}})
	if err := widget.Wait(waitCtx(t)); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	if len(title.History()) != 0 {
		t.Errorf("Expected no title writes after OnDestroy, got %v", title.History())
	}
}
