package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-pkgz/lgr"

	"github.com/ivanoskov/momentum_bot/internal/bot"
	"github.com/ivanoskov/momentum_bot/internal/catalog"
	"github.com/ivanoskov/momentum_bot/internal/config"
	"github.com/ivanoskov/momentum_bot/internal/repository"
	"github.com/ivanoskov/momentum_bot/internal/service"
)

// Request структура входящего запроса от API Gateway
type Request struct {
	Body string `json:"body"`
}

// Response структура ответа для API Gateway
type Response struct {
	StatusCode int               `json:"statusCode"`
	Body       string            `json:"body"`
	Headers    map[string]string `json:"headers,omitempty"`
}

var (
	mu       sync.Mutex
	instance *bot.Bot

	// buildBot подменяется в тестах
	buildBot = newBot
)

// setup создает бота при первом успешном вызове. Ошибка не запоминается:
// следующий запрос попробует собрать бота заново. Пока экземпляр функции
// живет, сессии в памяти сохраняются между вызовами.
func setup() (*bot.Bot, error) {
	mu.Lock()
	defer mu.Unlock()
	if instance != nil {
		return instance, nil
	}

	b, err := buildBot()
	if err != nil {
		return nil, err
	}
	instance = b
	return instance, nil
}

func newBot() (*bot.Bot, error) {
	cfg, err := config.LoadConfig(nil)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var repo repository.Repository = repository.NewMemoryRepository()
	if cfg.UseSupabase() {
		supa, err := repository.NewSupabaseRepository(cfg.SupabaseURL, cfg.SupabaseKey)
		if err != nil {
			return nil, err
		}
		repo = supa
	}

	c, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return bot.NewBot(cfg.TelegramToken, service.NewRecommender(repo, c), cfg.PollTimeout)
}

func Handler(ctx context.Context, request Request) (*Response, error) {
	b, err := setup()
	if err != nil {
		lgr.Printf("[ERROR] webhook setup failed: %v", err)
		return errorResponse(err)
	}

	// Ошибку обработки только логируем: при ответе 5xx Telegram
	// будет повторять доставку того же обновления
	if err := b.HandleWebhook(ctx, []byte(request.Body)); err != nil {
		lgr.Printf("[WARN] webhook update failed: %v", err)
	}

	return &Response{
		StatusCode: 200,
		Body:       "",
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}

func errorResponse(err error) (*Response, error) {
	return &Response{
		StatusCode: 500,
		Body:       err.Error(),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}

func main() {
	// Точка входа для локального тестирования
}
