package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/udnewsupdate/news-site/internal/content"
	"github.com/udnewsupdate/news-site/internal/store"
)

type Handler struct {
	uc  *content.Manager
	log *slog.Logger
}

func NewHandler(uc *content.Manager, log *slog.Logger) *Handler {
	return &Handler{
		uc:  uc,
		log: log,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"message": message})
}

func (h *Handler) handleValidation(c echo.Context, err error) error {
	h.log.Warn("request validation failed", "error", err)
	return c.JSON(http.StatusBadRequest, map[string]any{
		"message": "ข้อมูลไม่ถูกต้อง",
		"errors":  fieldErrors(err),
	})
}

// Categories handles GET /api/categories
// @Summary Get all categories
// @Description Retrieves all categories in insertion order
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch categories")
	}

	return c.JSON(http.StatusOK, NewCategories(categories))
}

// CategoryBySlug handles GET /api/categories/:slug
// @Summary Get category by slug
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} rest.Category
// @Failure 404,500 {object} map[string]string
// @Router /api/categories/{slug} [get]
func (h *Handler) CategoryBySlug(c echo.Context) error {
	category, err := h.uc.CategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch category")
	}
	if category == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Category not found"})
	}

	return c.JSON(http.StatusOK, NewCategory(*category))
}

// ArticlesByCategory handles GET /api/categories/:slug/articles where the
// path segment is the numeric category id.
// @Summary Get articles in a category
// @Tags articles
// @Produce json
// @Param categoryId path int true "Category ID"
// @Success 200 {array} rest.Article
// @Failure 400,500 {object} map[string]string
// @Router /api/categories/{categoryId}/articles [get]
func (h *Handler) ArticlesByCategory(c echo.Context) error {
	categoryID, err := strconv.Atoi(c.Param("slug"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid category id")
	}

	articles, err := h.uc.ArticlesByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch articles by category")
	}

	return c.JSON(http.StatusOK, NewArticles(articles))
}

// Articles handles GET /api/articles
// @Summary List articles
// @Description Filters by categoryId and search, sorts by publishedAt descending, then applies offset and limit
// @Tags articles
// @Produce json
// @Param categoryId query int false "Filter by category ID"
// @Param search query string false "Case-insensitive substring over title, excerpt and content"
// @Param limit query int false "Maximum number of results"
// @Param offset query int false "Number of results to skip"
// @Success 200 {array} rest.Article
// @Failure 400,500 {object} map[string]string
// @Router /api/articles [get]
func (h *Handler) Articles(c echo.Context) error {
	var req ArticleListRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	articles, err := h.uc.Articles(c.Request().Context(), store.ArticleFilter{
		CategoryID: req.CategoryID,
		Search:     req.Search,
		Limit:      req.Limit,
		Offset:     req.Offset,
	})
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch articles")
	}

	return c.JSON(http.StatusOK, NewArticles(articles))
}

// FeaturedArticle handles GET /api/articles/featured
// @Summary Get the featured article
// @Tags articles
// @Produce json
// @Success 200 {object} rest.Article
// @Failure 404,500 {object} map[string]string
// @Router /api/articles/featured [get]
func (h *Handler) FeaturedArticle(c echo.Context) error {
	article, err := h.uc.FeaturedArticle(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch featured article")
	}
	if article == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Featured article not found"})
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// BreakingNews handles GET /api/articles/breaking
// @Summary Get breaking news
// @Tags articles
// @Produce json
// @Success 200 {array} rest.Article
// @Failure 500 {object} map[string]string
// @Router /api/articles/breaking [get]
func (h *Handler) BreakingNews(c echo.Context) error {
	articles, err := h.uc.BreakingNews(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch breaking news")
	}

	return c.JSON(http.StatusOK, NewArticles(articles))
}

// TrendingArticles handles GET /api/articles/trending
// @Summary Get the five most viewed articles
// @Tags articles
// @Produce json
// @Success 200 {array} rest.Article
// @Failure 500 {object} map[string]string
// @Router /api/articles/trending [get]
func (h *Handler) TrendingArticles(c echo.Context) error {
	articles, err := h.uc.TrendingArticles(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch trending articles")
	}

	return c.JSON(http.StatusOK, NewArticles(articles))
}

// ArticleBySlug handles GET /api/articles/:slug
// @Summary Get article detail
// @Description Returns the full article and increments its view counter
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} rest.Article
// @Failure 404,500 {object} map[string]string
// @Router /api/articles/{slug} [get]
func (h *Handler) ArticleBySlug(c echo.Context) error {
	article, err := h.uc.ReadArticle(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to fetch article")
	}
	if article == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "Article not found"})
	}

	articlesServedTotal.Inc()
	return c.JSON(http.StatusOK, NewArticle(*article))
}

// CreateArticle handles POST /api/articles
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Success 201 {object} map[string]any
// @Failure 400,409,500 {object} map[string]string
// @Router /api/articles [post]
func (h *Handler) CreateArticle(c echo.Context) error {
	var req CreateArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return h.handleValidation(c, err)
	}

	article, err := h.uc.CreateArticle(c.Request().Context(), req.toStore())
	if errors.Is(err, store.ErrSlugTaken) {
		return h.handleError(c, err, http.StatusConflict, "slug ถูกใช้งานแล้ว")
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to create article")
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "สร้างข่าวสำเร็จ",
		"article": NewArticle(*article),
	})
}

// UpdateArticle handles PUT /api/articles/:id
// @Summary Partially update an article
// @Tags articles
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]any
// @Failure 400,404,409,500 {object} map[string]string
// @Router /api/articles/{id} [put]
func (h *Handler) UpdateArticle(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	var req UpdateArticleRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return h.handleValidation(c, err)
	}

	article, err := h.uc.UpdateArticle(c.Request().Context(), id, req.toStore())
	if errors.Is(err, store.ErrArticleNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "ไม่พบข่าวที่ต้องการแก้ไข"})
	}
	if errors.Is(err, store.ErrSlugTaken) {
		return h.handleError(c, err, http.StatusConflict, "slug ถูกใช้งานแล้ว")
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to update article")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "แก้ไขข่าวสำเร็จ",
		"article": NewArticle(*article),
	})
}

// DeleteArticle handles DELETE /api/articles/:id
// @Summary Delete an article
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]string
// @Failure 400,404,500 {object} map[string]string
// @Router /api/articles/{id} [delete]
func (h *Handler) DeleteArticle(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	err = h.uc.DeleteArticle(c.Request().Context(), id)
	if errors.Is(err, store.ErrArticleNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"message": "ไม่พบข่าวที่ต้องการลบ"})
	}
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to delete article")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "ลบข่าวสำเร็จ"})
}

// CreateContact handles POST /api/contact
// @Summary Submit a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Success 201 {object} map[string]any
// @Failure 400,500 {object} map[string]string
// @Router /api/contact [post]
func (h *Handler) CreateContact(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return h.handleValidation(c, err)
	}

	contact, err := h.uc.CreateContact(c.Request().Context(), req.toStore())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "Failed to send contact message")
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "ส่งข้อความสำเร็จ ขอบคุณที่ติดต่อเรา",
		"contact": NewContact(*contact),
	})
}
