package database

import "sync"

// Guard serializes every read-modify-write sequence against the store.
// Reservations and entitlements are decided from a snapshot of current
// state, so the whole sequence must run as a single writer; gorm
// transactions alone give atomicity but not that exclusivity.
type Guard struct {
	mu sync.Mutex
}

func NewGuard() *Guard {
	return &Guard{}
}

// Do runs fn while holding the store lock.
func (g *Guard) Do(fn func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn()
}
