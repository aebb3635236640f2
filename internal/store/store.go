package store

import (
	"context"
	"errors"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrBannerNotFound  = errors.New("banner not found")
	// ErrSlugTaken is returned when a create or a slug-changing update would
	// duplicate an existing slug.
	ErrSlugTaken = errors.New("slug already taken")
)

// ContentStore is the repository over categories, articles, contact messages
// and banners. Single-entity reads return (nil, nil) when nothing matches;
// id-addressed mutations return the sentinel not-found errors above.
type ContentStore interface {
	Categories(ctx context.Context) ([]Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*Category, error)
	CreateCategory(ctx context.Context, in NewCategory) (*Category, error)

	// Articles filters, sorts by publishedAt descending and paginates.
	// An empty filter yields the full list; an out-of-range offset yields
	// an empty one.
	Articles(ctx context.Context, filter ArticleFilter) ([]Article, error)
	FeaturedArticle(ctx context.Context) (*Article, error)
	BreakingNews(ctx context.Context) ([]Article, error)
	TrendingArticles(ctx context.Context) ([]Article, error)
	ArticleBySlug(ctx context.Context, slug string) (*Article, error)
	ArticlesByCategory(ctx context.Context, categoryID int) ([]Article, error)
	CreateArticle(ctx context.Context, in NewArticle) (*Article, error)
	// IncrementViews is a no-op when the id does not exist.
	IncrementViews(ctx context.Context, id int) error
	UpdateArticle(ctx context.Context, id int, patch ArticlePatch) (*Article, error)
	DeleteArticle(ctx context.Context, id int) error

	CreateContact(ctx context.Context, in NewContact) (*Contact, error)

	Banners(ctx context.Context, filter BannerFilter) ([]Banner, error)
	BannerByID(ctx context.Context, id int) (*Banner, error)
	CreateBanner(ctx context.Context, in NewBanner) (*Banner, error)
	UpdateBanner(ctx context.Context, id int, patch BannerPatch) (*Banner, error)
	DeleteBanner(ctx context.Context, id int) error
}
