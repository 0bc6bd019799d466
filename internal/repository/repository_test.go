package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanoskov/momentum_bot/internal/model"
	"github.com/ivanoskov/momentum_bot/internal/session"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	_, err := repo.GetSession(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	st := session.New()
	st.View = model.ViewCatalog
	require.NoError(t, repo.SaveSession(ctx, 1, &st))
	assert.Equal(t, fixed, st.UpdatedAt)
	assert.Equal(t, 1, repo.Len())

	got, err := repo.GetSession(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.ViewCatalog, got.View)
	assert.Equal(t, fixed, got.UpdatedAt)

	t.Run("stored copy is isolated", func(t *testing.T) {
		st.Saved[0] = 99
		got.Saved[1] = 77
		again, err := repo.GetSession(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 3, 5}, again.Saved)
	})
}

func TestMemoryRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	var wg sync.WaitGroup
	for i := int64(0); i < 20; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			st := session.New()
			assert.NoError(t, repo.SaveSession(ctx, id, &st))
			_, err := repo.GetSession(ctx, id)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 20, repo.Len())
}

func TestSupabaseRepository(t *testing.T) {
	ctx := context.Background()

	var mu sync.Mutex
	rows := map[string]json.RawMessage{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/sessions"), r.URL.Path)
		mu.Lock()
		defer mu.Unlock()

		switch r.Method {
		case http.MethodGet:
			id := strings.TrimPrefix(r.URL.Query().Get("user_id"), "eq.")
			w.Header().Set("Content-Type", "application/json")
			if row, ok := rows[id]; ok {
				_, _ = w.Write([]byte("[" + string(row) + "]"))
				return
			}
			_, _ = w.Write([]byte("[]"))
		case http.MethodPost:
			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			var row sessionRow
			if !assert.NoError(t, json.Unmarshal(body, &row)) {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			rows[jsonInt(row.UserID)] = body
			w.WriteHeader(http.StatusCreated)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer srv.Close()

	repo, err := NewSupabaseRepository(srv.URL, "test-key")
	require.NoError(t, err)

	_, err = repo.GetSession(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	st := session.New()
	st.Mood = model.MoodSocial
	st.Saved = []int{2}
	require.NoError(t, repo.SaveSession(ctx, 42, &st))
	assert.False(t, st.UpdatedAt.IsZero())

	got, err := repo.GetSession(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, model.MoodSocial, got.Mood)
	assert.Equal(t, []int{2}, got.Saved)
	assert.Equal(t, model.ViewHome, got.View)
}

func jsonInt(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
