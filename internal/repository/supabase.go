package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/supabase-community/supabase-go"

	"github.com/ivanoskov/momentum_bot/internal/session"
)

const sessionsTable = "sessions"

// SupabaseRepository хранит сессии в таблице sessions, одна строка на
// пользователя. Нужен для webhook-развертывания, где процесс не живет
// между запросами.
type SupabaseRepository struct {
	client *supabase.Client
}

type sessionRow struct {
	UserID    int64           `json:"user_id"`
	State     json.RawMessage `json:"state"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func NewSupabaseRepository(url, key string) (*SupabaseRepository, error) {
	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	return &SupabaseRepository{
		client: client,
	}, nil
}

func (r *SupabaseRepository) GetSession(ctx context.Context, userID int64) (*session.State, error) {
	data, _, err := r.client.From(sessionsTable).
		Select("*", "", false).
		Eq("user_id", strconv.FormatInt(userID, 10)).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var rows []sessionRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse session rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	var st session.State
	if err := json.Unmarshal(rows[0].State, &st); err != nil {
		return nil, fmt.Errorf("failed to parse session state: %w", err)
	}
	st = session.Normalize(st)
	st.UpdatedAt = rows[0].UpdatedAt
	return &st, nil
}

func (r *SupabaseRepository) SaveSession(ctx context.Context, userID int64, state *session.State) error {
	now := time.Now().UTC()
	state.UpdatedAt = now

	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	row := sessionRow{UserID: userID, State: raw, UpdatedAt: now}
	_, count, err := r.client.From(sessionsTable).
		Insert(row, true, "user_id", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	lgr.Printf("[DEBUG] session of user %d saved, count: %d", userID, count)
	return nil
}
