//go:build !js || !wasm

package router

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vcrobe/userwidgets/runtime"
	"github.com/vcrobe/userwidgets/vdom"
)

type page struct {
	runtime.ComponentBase
	name   string
	params map[string]string
}

func (p *page) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Paragraph(p.name, nil)
}

func factory(name string) runtime.ComponentFactory {
	return func(params map[string]string) runtime.Component {
		return &page{name: name, params: params}
	}
}

type recordingHistory struct {
	pushed []string
}

func (h *recordingHistory) Push(path string) {
	h.pushed = append(h.pushed, path)
}

type change struct {
	name   string
	key    string
	params map[string]string
}

func startRouter(t *testing.T, r *Router, initial string) *[]change {
	t.Helper()
	var changes []change
	err := r.Start(func(comp runtime.Component, key string) {
		p := comp.(*page)
		changes = append(changes, change{name: p.name, key: key, params: p.params})
	}, initial)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return &changes
}

func TestRouter_Match(t *testing.T) {
	r := New(nil)
	r.Handle("/", factory("home"))
	r.Handle("/users/{id}", factory("user"))
	r.Handle("/users/new", factory("new-user"))
	r.Handle("/users/{id}/posts/{post}", factory("post"))

	tests := []struct {
		path    string
		want    Match
		matched bool
	}{
		{"/", Match{Pattern: "/", Params: map[string]string{}}, true},
		{"", Match{Pattern: "/", Params: map[string]string{}}, true},
		{"/users/7", Match{Pattern: "/users/{id}", Params: map[string]string{"id": "7"}}, true},
		{"/users/7/", Match{Pattern: "/users/{id}", Params: map[string]string{"id": "7"}}, true},
		{"/users/7?tab=1", Match{Pattern: "/users/{id}", Params: map[string]string{"id": "7"}}, true},
		{"/users/new", Match{Pattern: "/users/new", Params: map[string]string{}}, true},
		{"/users/3/posts/9", Match{Pattern: "/users/{id}/posts/{post}", Params: map[string]string{"id": "3", "post": "9"}}, true},
		{"/users", Match{}, false},
		{"/posts/1", Match{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := r.Match(tt.path)
			if ok != tt.matched {
				t.Fatalf("Expected matched=%v, got %v", tt.matched, ok)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Match mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRouter_StartDoesNotPushHistory(t *testing.T) {
	// Arrange
	history := &recordingHistory{}
	r := New(history)
	r.Handle("/", factory("home"))

	// Act
	changes := startRouter(t, r, "")

	// Assert
	want := []change{{name: "home", key: "/", params: map[string]string{}}}
	if diff := cmp.Diff(want, *changes, cmp.AllowUnexported(change{})); diff != "" {
		t.Errorf("changes mismatch (-want +got):\n%s", diff)
	}
	if len(history.pushed) != 0 {
		t.Errorf("Expected no history entries, got %v", history.pushed)
	}
	if r.CurrentPath() != "/" {
		t.Errorf("Expected current path /, got %q", r.CurrentPath())
	}
}

func TestRouter_NavigateBuildsComponentFromParams(t *testing.T) {
	// Arrange
	history := &recordingHistory{}
	r := New(history)
	r.Handle("/", factory("home"))
	r.Handle("/users/{id}", factory("user"))
	changes := startRouter(t, r, "/")

	// Act
	if err := r.Navigate("/users/1"); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if err := r.Navigate("/users/2"); err != nil {
		t.Fatalf("Navigate: %v", err)
	}

	// Assert
	want := []change{
		{name: "home", key: "/", params: map[string]string{}},
		{name: "user", key: "/users/{id}", params: map[string]string{"id": "1"}},
		{name: "user", key: "/users/{id}", params: map[string]string{"id": "2"}},
	}
	if diff := cmp.Diff(want, *changes, cmp.AllowUnexported(change{})); diff != "" {
		t.Errorf("changes mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/users/1", "/users/2"}, history.pushed); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
	if r.CurrentPath() != "/users/2" {
		t.Errorf("Expected current path /users/2, got %q", r.CurrentPath())
	}
}

func TestRouter_ReplaceSkipsHistory(t *testing.T) {
	history := &recordingHistory{}
	r := New(history)
	r.Handle("/users/{id}", factory("user"))
	startRouter(t, r, "/users/1")

	if err := r.Replace("/users/5"); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	if len(history.pushed) != 0 {
		t.Errorf("Expected no history entries, got %v", history.pushed)
	}
	if r.CurrentPath() != "/users/5" {
		t.Errorf("Expected current path /users/5, got %q", r.CurrentPath())
	}
}

func TestRouter_UnknownPath(t *testing.T) {
	r := New(nil)
	r.Handle("/", factory("home"))
	changes := startRouter(t, r, "/")

	if err := r.Navigate("/nowhere"); err == nil {
		t.Fatal("Expected an error for an unknown path")
	}
	if len(*changes) != 1 {
		t.Errorf("Expected 1 change, got %d", len(*changes))
	}
	if r.CurrentPath() != "/" {
		t.Errorf("Expected current path to stay /, got %q", r.CurrentPath())
	}
}

func TestRouter_NotFoundFactory(t *testing.T) {
	r := New(nil)
	r.Handle("/", factory("home"))
	r.HandleNotFound(factory("missing"))
	changes := startRouter(t, r, "/")

	if err := r.Navigate("/nowhere"); err != nil {
		t.Fatalf("Navigate: %v", err)
	}

	got := (*changes)[len(*changes)-1]
	want := change{name: "missing", key: NotFoundKey, params: map[string]string{"path": "/nowhere"}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(change{})); diff != "" {
		t.Errorf("change mismatch (-want +got):\n%s", diff)
	}
}

func TestRouter_NavigateBeforeStart(t *testing.T) {
	r := New(nil)
	r.Handle("/", factory("home"))

	if err := r.Navigate("/"); err == nil {
		t.Error("Expected an error before Start")
	}
}

func TestRouter_HandleReplacesPattern(t *testing.T) {
	r := New(nil)
	r.Handle("/", factory("old"))
	r.Handle("/", factory("new"))
	changes := startRouter(t, r, "/")

	if (*changes)[0].name != "new" {
		t.Errorf("Expected the later registration, got %q", (*changes)[0].name)
	}
}
