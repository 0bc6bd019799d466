package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/ivanoskov/momentum_bot/internal/catalog"
	"github.com/ivanoskov/momentum_bot/internal/charts"
	"github.com/ivanoskov/momentum_bot/internal/model"
	"github.com/ivanoskov/momentum_bot/internal/repository"
	"github.com/ivanoskov/momentum_bot/internal/session"
)

// Recommender связывает каталог, сессии пользователей и хранилище
type Recommender struct {
	repo    repository.Repository
	catalog *catalog.Catalog
	charts  *charts.ChartGenerator
	newID   func() string

	mu    sync.Mutex
	locks map[int64]*userLock
}

// userLock блокировка пользователя со счетчиком ожидающих
type userLock struct {
	sync.Mutex
	refs int
}

// Profile данные экрана профиля
type Profile struct {
	User    model.Friend
	Mood    model.Mood
	Stats   model.ProfileStats
	Tab     model.Tab
	Saved   []model.Activity
	Friends []model.Friend
}

// NewRecommender создает новый экземпляр Recommender
func NewRecommender(repo repository.Repository, c *catalog.Catalog) *Recommender {
	return &Recommender{
		repo:    repo,
		catalog: c,
		charts:  charts.NewChartGenerator(),
		newID:   func() string { return uuid.New().String() },
		locks:   make(map[int64]*userLock),
	}
}

func (s *Recommender) Catalog() *catalog.Catalog {
	return s.catalog
}

// lockUser сериализует действия одного пользователя. Запись удаляется,
// когда блокировку никто не держит и не ждет.
func (s *Recommender) lockUser(userID int64) (unlock func()) {
	s.mu.Lock()
	l, ok := s.locks[userID]
	if !ok {
		l = &userLock{}
		s.locks[userID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, userID)
		}
		s.mu.Unlock()
	}
}

func (s *Recommender) load(ctx context.Context, userID int64) (session.State, error) {
	st, err := s.repo.GetSession(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		lgr.Printf("[DEBUG] new session for user %d", userID)
		return session.New(), nil
	}
	if err != nil {
		return session.State{}, fmt.Errorf("failed to load session: %w", err)
	}
	return *st, nil
}

// State возвращает снимок текущей сессии пользователя
func (s *Recommender) State(ctx context.Context, userID int64) (*session.Snapshot, error) {
	defer s.lockUser(userID)()

	st, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return session.Project(st, s.catalog), nil
}

// Dispatch применяет действие пользователя и сохраняет новое состояние.
// Если действие недопустимо, возвращается снимок без изменений вместе с ошибкой.
func (s *Recommender) Dispatch(ctx context.Context, userID int64, action session.Action) (*session.Snapshot, error) {
	defer s.lockUser(userID)()

	st, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch a := action.(type) {
	case session.StartTest:
		if a.RunID == "" {
			a.RunID = s.newID()
		}
		action = a
	case session.ToggleSave:
		if !s.catalog.Has(a.ID) {
			return session.Project(st, s.catalog), fmt.Errorf("%w: unknown activity %d", session.ErrInvalidAction, a.ID)
		}
	}

	next, err := session.Reduce(st, action)
	if err != nil {
		lgr.Printf("[WARN] user %d: rejected %v: %v", userID, action, err)
		return session.Project(st, s.catalog), err
	}

	if err := s.repo.SaveSession(ctx, userID, &next); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logTransition(userID, st, next, action)
	return session.Project(next, s.catalog), nil
}

func (s *Recommender) logTransition(userID int64, prev, next session.State, action session.Action) {
	switch action.(type) {
	case session.StartTest:
		lgr.Printf("[INFO] user %d started quiz run %s", userID, next.QuizRunID)
	case session.Answer:
		if next.Step == model.StepResults && prev.Step != model.StepResults {
			lgr.Printf("[INFO] user %d finished quiz run %s, mood %s", userID, next.QuizRunID, next.Mood)
		}
	default:
		lgr.Printf("[DEBUG] user %d: %v, view %s", userID, action, next.View)
	}
}

// Profile возвращает данные экрана профиля
func (s *Recommender) Profile(ctx context.Context, userID int64) (*Profile, error) {
	snap, err := s.State(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ProfileOf(snap), nil
}

// ProfileOf собирает профиль из снимка сессии. Пользователь, статистика
// и друзья пока демонстрационные.
func ProfileOf(snap *session.Snapshot) *Profile {
	return &Profile{
		User:    model.DefaultUser,
		Mood:    snap.Mood,
		Stats:   model.DefaultProfileStats,
		Tab:     snap.ProfileTab,
		Saved:   snap.Saved,
		Friends: append([]model.Friend(nil), model.DefaultFriends...),
	}
}

// ProfileCharts рендерит графики профиля: статистику и, если избранное
// не пусто, распределение настроений
func (s *Recommender) ProfileCharts(ctx context.Context, userID int64) ([][]byte, error) {
	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.charts.GenerateProfileChart(profile.Stats, len(profile.Saved))
	if err != nil {
		return nil, err
	}
	res := [][]byte{stats}

	moods, err := s.charts.GenerateMoodChart(profile.Saved)
	if err != nil {
		return nil, err
	}
	if moods != nil {
		res = append(res, moods)
	}
	return res, nil
}
