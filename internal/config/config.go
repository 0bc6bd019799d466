package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Config параметры запуска бота. Значения берутся из флагов, переменных
// окружения и файла .env, именно в таком приоритете.
type Config struct {
	TelegramToken string        `long:"token" env:"TELEGRAM_TOKEN" description:"telegram bot token"`
	SupabaseURL   string        `long:"supabase-url" env:"SUPABASE_URL" description:"supabase project url, sessions are kept in memory when empty"`
	SupabaseKey   string        `long:"supabase-key" env:"SUPABASE_KEY" description:"supabase api key"`
	PollTimeout   time.Duration `long:"poll-timeout" env:"POLL_TIMEOUT" default:"60s" description:"long polling timeout"`
	Debug         bool          `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version       bool          `short:"V" long:"version" description:"show version info"`
}

// LoadConfig читает .env (если он есть) и разбирает аргументы командной строки
func LoadConfig(args []string, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	var cfg Config
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.TelegramToken == "" {
		return errors.New("telegram token is required")
	}
	if c.SupabaseURL != "" && c.SupabaseKey == "" {
		return errors.New("supabase key is required when supabase url is set")
	}
	if c.PollTimeout < time.Second {
		return fmt.Errorf("poll timeout %v is too short", c.PollTimeout)
	}
	return nil
}

// UseSupabase сообщает, нужно ли хранить сессии в Supabase
func (c *Config) UseSupabase() bool {
	return c.SupabaseURL != ""
}
