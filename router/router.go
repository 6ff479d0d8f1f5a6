// Package router maps URL paths to components.
//
// Patterns are slash-separated and may contain parameters in curly braces,
// e.g. "/users/{id}". The component for a path is built by the route's factory
// from the extracted parameters and handed to the change callback together with
// the route pattern as its key, so the renderer can keep the live instance when
// only the parameters change.
package router

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vcrobe/userwidgets/console"
	"github.com/vcrobe/userwidgets/runtime"
)

// Compile-time assertion that the router can serve as the renderer's NavigationManager.
var _ runtime.NavigationManager = (*Router)(nil)

// NotFoundKey is the key passed to the change callback for unmatched paths.
const NotFoundKey = "__not_found__"

// History records navigations (browser history under wasm).
type History interface {
	Push(path string)
}

// Match is a resolved route.
type Match struct {
	Pattern string
	Params  map[string]string
}

type route struct {
	pattern string
	factory runtime.ComponentFactory
}

// Router resolves paths against registered patterns and reports route changes.
type Router struct {
	mu          sync.Mutex
	routes      []route
	notFound    runtime.ComponentFactory
	history     History
	onChange    func(comp runtime.Component, key string)
	currentPath string
}

// New creates a router. history may be nil.
func New(history History) *Router {
	return &Router{history: history}
}

// Handle registers factory for pattern. Later registrations of the same pattern replace earlier ones.
func (r *Router) Handle(pattern string, factory runtime.ComponentFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pattern = normalize(pattern)
	for i := range r.routes {
		if r.routes[i].pattern == pattern {
			r.routes[i].factory = factory
			return
		}
	}
	r.routes = append(r.routes, route{pattern: pattern, factory: factory})
}

// HandleNotFound sets the factory used when no pattern matches.
func (r *Router) HandleNotFound(factory runtime.ComponentFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notFound = factory
}

// Match resolves path. Static patterns win over parameterized ones; otherwise
// the first registered match is used.
func (r *Router) Match(path string) (Match, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, m, ok := r.match(path)
	return m, ok
}

func (r *Router) match(path string) (route, Match, bool) {
	path = normalize(path)
	for _, rt := range r.routes {
		if rt.pattern == path {
			return rt, Match{Pattern: rt.pattern, Params: map[string]string{}}, true
		}
	}
	for _, rt := range r.routes {
		if matchesPattern(rt.pattern, path) {
			return rt, Match{Pattern: rt.pattern, Params: extractParams(rt.pattern, path)}, true
		}
	}
	return route{}, Match{}, false
}

// Start installs the change callback and navigates to initialPath without
// pushing a history entry.
func (r *Router) Start(onChange func(comp runtime.Component, key string), initialPath string) error {
	r.mu.Lock()
	r.onChange = onChange
	r.mu.Unlock()

	if initialPath == "" {
		initialPath = "/"
	}
	return r.navigate(initialPath, false)
}

// Navigate resolves path, records it in the history and reports the new component.
func (r *Router) Navigate(path string) error {
	return r.navigate(path, true)
}

// Replace is Navigate without a history entry (used for back/forward events).
func (r *Router) Replace(path string) error {
	return r.navigate(path, false)
}

func (r *Router) navigate(path string, push bool) error {
	r.mu.Lock()
	onChange := r.onChange
	if onChange == nil {
		r.mu.Unlock()
		return fmt.Errorf("router not started")
	}

	var (
		comp runtime.Component
		key  string
	)
	if rt, m, ok := r.match(path); ok {
		comp = rt.factory(m.Params)
		key = m.Pattern
	} else if r.notFound != nil {
		comp = r.notFound(map[string]string{"path": path})
		key = NotFoundKey
	} else {
		r.mu.Unlock()
		console.Error("[Router.Navigate] No route found for path:", path)
		return fmt.Errorf("no route for path: %s", path)
	}

	if push && r.history != nil {
		r.history.Push(path)
	}
	r.currentPath = path
	r.mu.Unlock()

	console.Debug("[Router.Navigate]", path, "->", key)
	onChange(comp, key)
	return nil
}

// CurrentPath returns the path of the last navigation.
func (r *Router) CurrentPath() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentPath
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return "/"
	}
	return path
}

// matchesPattern checks if an actual path matches a route pattern.
func matchesPattern(pattern, path string) bool {
	if pattern == path {
		return true
	}

	patternParts := strings.Split(strings.Trim(pattern, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")

	if len(patternParts) != len(pathParts) {
		return false
	}

	for i := range patternParts {
		if isParam(patternParts[i]) {
			if pathParts[i] == "" {
				return false
			}
			continue
		}
		if patternParts[i] != pathParts[i] {
			return false
		}
	}
	return true
}

// extractParams parses URL parameters from a path based on route pattern.
func extractParams(pattern, path string) map[string]string {
	patternParts := strings.Split(strings.Trim(pattern, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")

	params := make(map[string]string)
	for i := range patternParts {
		if i >= len(pathParts) {
			break
		}
		if isParam(patternParts[i]) {
			params[strings.Trim(patternParts[i], "{}")] = pathParts[i]
		}
	}
	return params
}

func isParam(part string) bool {
	return strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}")
}
