package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const frontendDir = "frontend"

// RegisterRoutes builds the echo instance with all API, health, metrics and
// frontend routes.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(h.requestLogger)
	e.Use(metricsMiddleware)

	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	api.GET("/categories", h.Categories)
	api.GET("/categories/:slug", h.CategoryBySlug)
	api.GET("/categories/:slug/articles", h.ArticlesByCategory)

	api.GET("/articles", h.Articles)
	api.GET("/articles/featured", h.FeaturedArticle)
	api.GET("/articles/breaking", h.BreakingNews)
	api.GET("/articles/trending", h.TrendingArticles)
	api.GET("/articles/:slug", h.ArticleBySlug)
	api.POST("/articles", h.CreateArticle)
	api.PUT("/articles/:id", h.UpdateArticle)
	api.DELETE("/articles/:id", h.DeleteArticle)

	api.POST("/contact", h.CreateContact)

	api.GET("/banners", h.Banners)
	api.GET("/banners/:id", h.BannerByID)
	api.POST("/banners", h.CreateBanner)
	api.PUT("/banners/:id", h.UpdateBanner)
	api.DELETE("/banners/:id", h.DeleteBanner)

	e.Static("/static", frontendDir)
	e.File("/", frontendDir+"/index.html")
	e.File("/index.html", frontendDir+"/index.html")

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.Request().RemoteAddr,
		)

		return err
	}
}
