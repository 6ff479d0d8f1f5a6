package usertwin

import (
	"sort"
	"sync"
	"time"

	"github.com/vcrobe/userwidgets/userapi"
)

// Store is a thread-safe in-memory user table with optional per-user latency.
type Store struct {
	mu     sync.RWMutex
	users  map[int]userapi.User
	delays map[int]time.Duration
}

// NewStore returns a Store holding users.
func NewStore(users ...userapi.User) *Store {
	s := &Store{
		users:  make(map[int]userapi.User),
		delays: make(map[int]time.Duration),
	}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

// Get returns the user with id.
func (s *Store) Get(id int) (userapi.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	return u, ok
}

// Put inserts or replaces a user.
func (s *Store) Put(u userapi.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// Delete removes a user. It reports whether the user existed.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)
	return true
}

// List returns all users ordered by id.
func (s *Store) List() []userapi.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]userapi.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Reset replaces all users and clears delays.
func (s *Store) Reset(users []userapi.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make(map[int]userapi.User, len(users))
	for _, u := range users {
		s.users[u.ID] = u
	}
	s.delays = make(map[int]time.Duration)
}

// SetDelay makes reads of user id take at least d. Zero removes the delay.
func (s *Store) SetDelay(id int, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d <= 0 {
		delete(s.delays, id)
		return
	}
	s.delays[id] = d
}

// Delay returns the configured delay for id.
func (s *Store) Delay(id int) time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.delays[id]
}
