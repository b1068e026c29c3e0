package booking

import "sync"

// slotLocks hands out one mutex per (stylist, date) pair so that concurrent
// admissions for the same day serialize their read-check-write sequence.
type slotLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSlotLocks() *slotLocks {
	return &slotLocks{locks: make(map[string]*sync.Mutex)}
}

func (s *slotLocks) get(stylistID, date string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := stylistID + "|" + date
	lock, exists := s.locks[key]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}
