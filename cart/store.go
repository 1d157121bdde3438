package cart

import "sync"

// Store keeps one in-memory cart per browser session. Carts live for the
// lifetime of the process; durable storage could be layered behind this
// interface later without touching the handlers.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// With runs fn against the session's cart, creating it on first use.
// All mutations go through here so each operation is atomic with respect
// to concurrent requests for the same session.
func (s *Store) With(sessionID string, fn func(c *Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = newCart()
		s.carts[sessionID] = c
	}
	fn(c)
}

// Drop discards a session's cart, e.g. when the session expires.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
