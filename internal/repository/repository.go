package repository

import (
	"context"
	"errors"

	"github.com/ivanoskov/momentum_bot/internal/session"
)

// ErrNotFound у пользователя еще нет сохраненной сессии
var ErrNotFound = errors.New("session not found")

type Repository interface {
	GetSession(ctx context.Context, userID int64) (*session.State, error)
	SaveSession(ctx context.Context, userID int64, state *session.State) error
}
