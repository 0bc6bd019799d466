package repository

import (
	"context"
	"sync"
	"time"

	"github.com/ivanoskov/momentum_bot/internal/session"
)

// MemoryRepository хранит сессии в памяти процесса. После перезапуска
// все сессии теряются.
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[int64]session.State
	now      func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sessions: make(map[int64]session.State),
		now:      time.Now,
	}
}

func (r *MemoryRepository) GetSession(ctx context.Context, userID int64) (*session.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.sessions[userID]
	if !ok {
		return nil, ErrNotFound
	}
	res := st.Clone()
	return &res, nil
}

func (r *MemoryRepository) SaveSession(ctx context.Context, userID int64, state *session.State) error {
	st := state.Clone()
	st.UpdatedAt = r.now()

	r.mu.Lock()
	r.sessions[userID] = st
	r.mu.Unlock()

	state.UpdatedAt = st.UpdatedAt
	return nil
}

// Len количество сохраненных сессий
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
