package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in process. Expired entries are hidden on read
// and removed by Purge.
type MemoryStore struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.RWMutex
	items map[uuid.UUID]Session
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[uuid.UUID]Session),
	}
}

func (m *MemoryStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	s, ok := m.items[id]
	m.mu.RUnlock()

	if !ok || !m.now().Before(s.ExpiresAt) {
		return nil, ErrSessionNotFound
	}
	s.State = s.State.Clone()
	return &s, nil
}

func (m *MemoryStore) Save(ctx context.Context, s *Session) error {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.items[s.ID]
	if ok && !now.Before(current.ExpiresAt) {
		ok = false
	}
	if err := checkVersion(ok, current.Version, s.Version); err != nil {
		return err
	}

	s.UpdatedAt = now
	s.ExpiresAt = now.Add(m.ttl)
	s.Version++

	stored := *s
	stored.State = s.State.Clone()
	m.items[s.ID] = stored
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	delete(m.items, id)
	m.mu.Unlock()
	return nil
}

// Purge removes expired sessions and returns how many were dropped
func (m *MemoryStore) Purge() int {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for id, s := range m.items {
		if !now.Before(s.ExpiresAt) {
			delete(m.items, id)
			n++
		}
	}
	return n
}

// Len returns the number of stored sessions, expired ones included
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
