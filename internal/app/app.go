package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/udnewsupdate/news-site/config"
	"github.com/udnewsupdate/news-site/internal/content"
	"github.com/udnewsupdate/news-site/internal/rest"
	"github.com/udnewsupdate/news-site/internal/store"
)

type App struct {
	Store  store.ContentStore
	Logger *slog.Logger
	Echo   *echo.Echo
	Config config.Config
}

func New(cfg config.Config, st store.ContentStore, events content.Publisher, logger *slog.Logger) *App {
	handler := rest.NewHandler(
		content.NewManager(st, events, logger),
		logger,
	)

	return &App{
		Store:  st,
		Logger: logger,
		Echo:   handler.RegisterRoutes(),
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
