package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udnewsupdate/news-site/internal/store"
)

// Event subjects published after successful admin mutations.
const (
	SubjectArticleCreated = "content.articles.created"
	SubjectArticleUpdated = "content.articles.updated"
	SubjectArticleDeleted = "content.articles.deleted"
	SubjectBannerCreated  = "content.banners.created"
	SubjectBannerUpdated  = "content.banners.updated"
	SubjectBannerDeleted  = "content.banners.deleted"
)

// Publisher sends content mutation events to interested consumers.
// A nil Publisher disables publishing.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// Manager is the business layer between the HTTP handlers and the content
// store.
type Manager struct {
	store  store.ContentStore
	events Publisher
	log    *slog.Logger
}

func NewManager(st store.ContentStore, events Publisher, log *slog.Logger) *Manager {
	return &Manager{
		store:  st,
		events: events,
		log:    log,
	}
}

func (m *Manager) Categories(ctx context.Context) ([]store.Category, error) {
	list, err := m.store.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("store get categories: %w", err)
	}
	return list, nil
}

func (m *Manager) CategoryBySlug(ctx context.Context, slug string) (*store.Category, error) {
	c, err := m.store.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("store get category by slug: %w", err)
	}
	return c, nil
}

func (m *Manager) CreateCategory(ctx context.Context, in store.NewCategory) (*store.Category, error) {
	c, err := m.store.CreateCategory(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("store create category: %w", err)
	}
	return c, nil
}

func (m *Manager) Articles(ctx context.Context, filter store.ArticleFilter) ([]store.Article, error) {
	list, err := m.store.Articles(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("store get articles: %w", err)
	}
	return list, nil
}

func (m *Manager) FeaturedArticle(ctx context.Context) (*store.Article, error) {
	a, err := m.store.FeaturedArticle(ctx)
	if err != nil {
		return nil, fmt.Errorf("store get featured article: %w", err)
	}
	return a, nil
}

func (m *Manager) BreakingNews(ctx context.Context) ([]store.Article, error) {
	list, err := m.store.BreakingNews(ctx)
	if err != nil {
		return nil, fmt.Errorf("store get breaking news: %w", err)
	}
	return list, nil
}

func (m *Manager) TrendingArticles(ctx context.Context) ([]store.Article, error) {
	list, err := m.store.TrendingArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("store get trending articles: %w", err)
	}
	return list, nil
}

// ReadArticle looks an article up by slug for the detail page and counts the
// view. Every call increments the counter; the returned record reflects it.
func (m *Manager) ReadArticle(ctx context.Context, slug string) (*store.Article, error) {
	a, err := m.store.ArticleBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("store get article by slug: %w", err)
	}
	if a == nil {
		return nil, nil
	}

	if err := m.store.IncrementViews(ctx, a.ID); err != nil {
		return nil, fmt.Errorf("store increment views: %w", err)
	}
	a.Views++

	return a, nil
}

func (m *Manager) ArticlesByCategory(ctx context.Context, categoryID int) ([]store.Article, error) {
	list, err := m.store.ArticlesByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("store get articles by category: %w", err)
	}
	return list, nil
}

func (m *Manager) CreateArticle(ctx context.Context, in store.NewArticle) (*store.Article, error) {
	a, err := m.store.CreateArticle(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("store create article: %w", err)
	}
	m.publish(ctx, SubjectArticleCreated, a)
	return a, nil
}

func (m *Manager) UpdateArticle(ctx context.Context, id int, patch store.ArticlePatch) (*store.Article, error) {
	a, err := m.store.UpdateArticle(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("store update article: %w", err)
	}
	m.publish(ctx, SubjectArticleUpdated, a)
	return a, nil
}

func (m *Manager) DeleteArticle(ctx context.Context, id int) error {
	if err := m.store.DeleteArticle(ctx, id); err != nil {
		return fmt.Errorf("store delete article: %w", err)
	}
	m.publish(ctx, SubjectArticleDeleted, map[string]int{"id": id})
	return nil
}

func (m *Manager) CreateContact(ctx context.Context, in store.NewContact) (*store.Contact, error) {
	c, err := m.store.CreateContact(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("store create contact: %w", err)
	}
	return c, nil
}

func (m *Manager) Banners(ctx context.Context, filter store.BannerFilter) ([]store.Banner, error) {
	list, err := m.store.Banners(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("store get banners: %w", err)
	}
	return list, nil
}

func (m *Manager) BannerByID(ctx context.Context, id int) (*store.Banner, error) {
	b, err := m.store.BannerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store get banner by id: %w", err)
	}
	return b, nil
}

func (m *Manager) CreateBanner(ctx context.Context, in store.NewBanner) (*store.Banner, error) {
	b, err := m.store.CreateBanner(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("store create banner: %w", err)
	}
	m.publish(ctx, SubjectBannerCreated, b)
	return b, nil
}

func (m *Manager) UpdateBanner(ctx context.Context, id int, patch store.BannerPatch) (*store.Banner, error) {
	b, err := m.store.UpdateBanner(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("store update banner: %w", err)
	}
	m.publish(ctx, SubjectBannerUpdated, b)
	return b, nil
}

func (m *Manager) DeleteBanner(ctx context.Context, id int) error {
	if err := m.store.DeleteBanner(ctx, id); err != nil {
		return fmt.Errorf("store delete banner: %w", err)
	}
	m.publish(ctx, SubjectBannerDeleted, map[string]int{"id": id})
	return nil
}

// publish forwards a mutation event. Publishing is best effort: failures are
// logged and never surfaced to the caller.
func (m *Manager) publish(ctx context.Context, subject string, payload any) {
	if m.events == nil {
		return
	}
	if err := m.events.Publish(ctx, subject, payload); err != nil {
		m.log.Error("publish event failed", "subject", subject, "error", err)
	}
}
