package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/ivanoskov/momentum_bot/internal/bot"
	"github.com/ivanoskov/momentum_bot/internal/catalog"
	"github.com/ivanoskov/momentum_bot/internal/config"
	"github.com/ivanoskov/momentum_bot/internal/repository"
	"github.com/ivanoskov/momentum_bot/internal/service"
)

var revision = "unknown"

func main() {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.Fatal(err)
	}

	if cfg.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(cfg.Debug, cfg.TelegramToken, cfg.SupabaseKey)
	log.Printf("[INFO] starting momentum bot version %s", revision)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[ERROR] invalid config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, cfg); err != nil {
		log.Printf("[ERROR] bot failed: %v", err)
		os.Exit(1)
	}
	log.Print("[INFO] shutdown complete")
}

func run(ctx context.Context, cfg *config.Config) error {
	repo, err := newRepository(cfg)
	if err != nil {
		return err
	}

	c, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Printf("[INFO] catalog loaded, %d activities", c.Len())

	b, err := bot.NewBot(cfg.TelegramToken, service.NewRecommender(repo, c), cfg.PollTimeout)
	if err != nil {
		return err
	}
	return b.Start(ctx)
}

func newRepository(cfg *config.Config) (repository.Repository, error) {
	if !cfg.UseSupabase() {
		log.Print("[INFO] sessions are kept in memory")
		return repository.NewMemoryRepository(), nil
	}
	log.Printf("[INFO] sessions are kept in supabase %s", cfg.SupabaseURL)
	repo, err := repository.NewSupabaseRepository(cfg.SupabaseURL, cfg.SupabaseKey)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	var secrets []string
	for _, s := range secs {
		if s != "" {
			secrets = append(secrets, s)
		}
	}
	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
