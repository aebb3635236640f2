package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/udnewsupdate/news-site/config"
	"github.com/udnewsupdate/news-site/internal/app"
	"github.com/udnewsupdate/news-site/internal/content"
	"github.com/udnewsupdate/news-site/internal/events"
	"github.com/udnewsupdate/news-site/internal/store"
	"github.com/udnewsupdate/news-site/internal/store/memory"
	"github.com/udnewsupdate/news-site/internal/store/postgres"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug  = flag.Bool("debug", false, "enable debug mode")
	cfg      config.Config
	lg       *slog.Logger
)

// @title UD News Update API
// @version 1.0
// @description Thai news publishing site API
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}

	contentStore, cleanup, err := newStore(cfg)
	if err != nil {
		exitOnError(err)
	}
	defer cleanup()

	var publisher content.Publisher
	if cfg.Events.URL != "" {
		nc, err := events.NewNATSPublisher(cfg.Events.URL)
		if err != nil {
			exitOnError(err)
		}
		defer nc.Close()
		publisher = nc
	}

	service := app.New(cfg, contentStore, publisher, lg)
	ctx := context.Background()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx, cfg.App.Port)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

// newStore builds the configured store backend. The memory backend starts
// seeded with the launch content set.
func newStore(cfg config.Config) (store.ContentStore, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		db := pg.Connect(&cfg.Database)
		if err := db.Ping(context.Background()); err != nil {
			db.Close()
			return nil, nil, err
		}
		repo := postgres.New(db)
		return repo, func() { _ = repo.Close() }, nil
	case config.BackendMemory, "":
		return memory.NewSeeded(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
