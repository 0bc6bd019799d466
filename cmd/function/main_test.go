package main

import (
	"context"
	"errors"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanoskov/momentum_bot/internal/bot"
	"github.com/ivanoskov/momentum_bot/internal/catalog"
	"github.com/ivanoskov/momentum_bot/internal/repository"
	"github.com/ivanoskov/momentum_bot/internal/service"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []tgbotapi.Chattable
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) Request(tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return &tgbotapi.APIResponse{Ok: true}, nil
}

const startUpdate = `{"update_id":1,"message":{"message_id":1,"from":{"id":5,"first_name":"A"},` +
	`"chat":{"id":5,"type":"private"},"text":"/start","entities":[{"type":"bot_command","offset":0,"length":6}]}}`

func resetSetup(t *testing.T, build func() (*bot.Bot, error)) {
	mu.Lock()
	instance = nil
	buildBot = build
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		instance = nil
		buildBot = newBot
		mu.Unlock()
	})
}

func TestHandler_RetriesFailedSetup(t *testing.T) {
	sender := &fakeSender{}
	calls := 0
	resetSetup(t, func() (*bot.Bot, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("getMe: connection reset")
		}
		svc := service.NewRecommender(repository.NewMemoryRepository(), catalog.MustDefault())
		return bot.NewWithSender(sender, svc), nil
	})
	ctx := context.Background()

	resp, err := Handler(ctx, Request{Body: startUpdate})
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Contains(t, resp.Body, "connection reset")

	resp, err = Handler(ctx, Request{Body: startUpdate})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Len(t, sender.sent, 1, "home screen sent after recovery")

	resp, err = Handler(ctx, Request{Body: startUpdate})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, 2, calls, "bot is kept after a successful setup")
}

func TestHandler_BadUpdateStillOK(t *testing.T) {
	resetSetup(t, func() (*bot.Bot, error) {
		svc := service.NewRecommender(repository.NewMemoryRepository(), catalog.MustDefault())
		return bot.NewWithSender(&fakeSender{}, svc), nil
	})

	resp, err := Handler(context.Background(), Request{Body: "not json"})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
}
