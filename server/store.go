package server

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/daystram/rookery/game"
)

var ErrSessionNotFound = errors.New("session not found")

// entry serialises requests against one session.
type entry struct {
	mu      sync.Mutex
	session *game.Session
}

type store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entry
}

func newStore() *store {
	return &store{
		sessions: make(map[uuid.UUID]*entry),
	}
}

func (st *store) add(s *game.Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID()] = &entry{session: s}
}

func (st *store) get(id uuid.UUID) (*entry, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	e, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e, nil
}

func (st *store) ids() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	ids := make([]string, 0, len(st.sessions))
	for id := range st.sessions {
		ids = append(ids, id.String())
	}
	sort.Strings(ids)
	return ids
}
