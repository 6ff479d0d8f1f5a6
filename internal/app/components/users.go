package components

import (
	"context"

	"github.com/vcrobe/userwidgets/fetch"
	"github.com/vcrobe/userwidgets/runtime"
	"github.com/vcrobe/userwidgets/userapi"
	"github.com/vcrobe/userwidgets/vdom"
)

// UserSource reads one user; (nil, nil) means no such user. *userapi.Client implements it.
type UserSource interface {
	GetUser(ctx context.Context, id int) (*userapi.User, error)
}

// DefaultUserID is the user shown by the fixed-id widgets when none is configured.
const DefaultUserID = 1

// userResource is the fetch machine shared by the user widgets.
type userResource = fetch.Resource[int, userapi.User]

// newUserResource binds a resource to src, settling through the component's update path.
// A nil src leaves the widget in NotFound.
func newUserResource(b *runtime.ComponentBase, src UserSource) *userResource {
	get := func(ctx context.Context, id int) (*userapi.User, error) {
		if src == nil {
			return nil, nil
		}
		return src.GetUser(ctx, id)
	}
	return fetch.New(get, b.InvokeAsync)
}

// loadIfChanged issues a request when the resource is idle or keyed to another user.
func loadIfChanged(res *userResource, id int) {
	if key, ok := res.Key(); ok && key == id {
		return
	}
	res.Load(context.Background(), id)
}

// stateOf returns res's state, treating a not yet initialized widget as Loading.
func stateOf(res *userResource) fetch.State[userapi.User] {
	if res == nil {
		return fetch.State[userapi.User]{Stage: fetch.Loading}
	}
	return res.State()
}

func waitFor(ctx context.Context, res *userResource) error {
	if res == nil {
		return nil
	}
	return res.Wait(ctx)
}

func loadingView() *vdom.VNode {
	return vdom.Paragraph("Loading...", nil)
}

func notFoundView() *vdom.VNode {
	return vdom.Paragraph("No user found", nil)
}
