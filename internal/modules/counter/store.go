package counter

import "sync"

// Store is an in-process counter. It starts at zero and lives as long as the
// process.
type Store struct {
	mu    sync.Mutex
	count int
}

func NewStore() *Store { return &Store{} }

func (s *Store) Value() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

func (s *Store) Increase() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	return s.count
}

func (s *Store) Decrease() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count--
	return s.count
}

func (s *Store) Reset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count = 0
	return s.count
}
