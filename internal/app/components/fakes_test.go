//go:build !js || !wasm

package components

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/vcrobe/userwidgets/userapi"
)

// staticUsers answers immediately from a fixed table; missing ids resolve to null.
type staticUsers struct {
	mu    sync.Mutex
	users map[int]*userapi.User
	calls []int
}

func newStaticUsers(users ...userapi.User) *staticUsers {
	s := &staticUsers{users: make(map[int]*userapi.User)}
	for i := range users {
		s.users[users[i].ID] = &users[i]
	}
	return s
}

func (s *staticUsers) GetUser(ctx context.Context, id int) (*userapi.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, id)
	return s.users[id], nil
}

func (s *staticUsers) Calls() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.calls...)
}

type reply struct {
	user *userapi.User
	err  error
}

// gatedUsers holds each request until the test releases it, like a mocked fetch
// whose promise the test resolves by hand.
type gatedUsers struct {
	mu    sync.Mutex
	gates map[int][]chan reply
}

func newGatedUsers() *gatedUsers {
	return &gatedUsers{gates: make(map[int][]chan reply)}
}

func (g *gatedUsers) GetUser(ctx context.Context, id int) (*userapi.User, error) {
	ch := make(chan reply, 1)
	g.mu.Lock()
	g.gates[id] = append(g.gates[id], ch)
	g.mu.Unlock()

	select {
	case r := <-ch:
		return r.user, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// release resolves the oldest outstanding request for id.
func (g *gatedUsers) release(t *testing.T, id int, r reply) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		g.mu.Lock()
		if q := g.gates[id]; len(q) > 0 {
			g.gates[id] = q[1:]
			g.mu.Unlock()
			q[0] <- r
			return
		}
		g.mu.Unlock()
		if time.Now().After(deadline) {
			t.Fatalf("no outstanding request for user %d", id)
		}
		time.Sleep(time.Millisecond)
	}
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}
