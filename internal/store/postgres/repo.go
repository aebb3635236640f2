// Package postgres implements store.ContentStore on PostgreSQL via go-pg,
// for deployments that need writes to survive a restart.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"

	"github.com/udnewsupdate/news-site/internal/store"
)

const trendingLimit = 5

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Ping(ctx)
	}
	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.Close()
	}
	return nil
}

// inTransaction runs fn in a transaction, or directly when the repository
// already wraps one (integration tests run against a rolled-back pg.Tx).
func (r *Repository) inTransaction(ctx context.Context, fn func(tx pg.DBI) error) error {
	if db, ok := r.db.(*pg.DB); ok {
		return db.RunInTransaction(ctx, func(tx *pg.Tx) error {
			return fn(tx)
		})
	}
	return fn(r.db)
}

func (r *Repository) Categories(ctx context.Context) ([]store.Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return toDomainCategories(categories), nil
}

func (r *Repository) CategoryBySlug(ctx context.Context, slug string) (*store.Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."slug" = ?`, slug).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by slug: %w", err)
	}

	result := toDomainCategory(*category)
	return &result, nil
}

func (r *Repository) CreateCategory(ctx context.Context, in store.NewCategory) (*store.Category, error) {
	category := &Category{
		Name:  in.Name,
		Slug:  in.Slug,
		Color: in.Color,
	}
	_, err := r.db.ModelContext(ctx, category).Insert()
	if isUniqueViolation(err) {
		return nil, store.ErrSlugTaken
	} else if err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}

	result := toDomainCategory(*category)
	return &result, nil
}

func (r *Repository) Articles(ctx context.Context, filter store.ArticleFilter) ([]store.Article, error) {
	var articles []Article
	query := r.db.ModelContext(ctx, &articles)

	if filter.CategoryID != nil {
		query = query.Where(`"t"."category_id" = ?`, *filter.CategoryID)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			q = q.WhereOr(`"t"."title" ILIKE ?`, pattern).
				WhereOr(`"t"."excerpt" ILIKE ?`, pattern).
				WhereOr(`"t"."content" ILIKE ?`, pattern)
			return q, nil
		})
	}

	query = query.OrderExpr(`"t"."published_at" DESC, "t"."id" ASC`)

	if filter.Offset != nil && *filter.Offset > 0 {
		query = query.Offset(*filter.Offset)
	}
	if filter.Limit != nil {
		limit := *filter.Limit
		if limit < 0 {
			limit = 0
		}
		query = query.Limit(limit)
	}

	err := query.Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}

	return toDomainArticles(articles), nil
}

func (r *Repository) FeaturedArticle(ctx context.Context) (*store.Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Where(`"t"."is_featured" = TRUE`).
		OrderExpr(`"t"."id" ASC`).
		Limit(1).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get featured article: %w", err)
	}

	result := toDomainArticle(*article)
	return &result, nil
}

func (r *Repository) BreakingNews(ctx context.Context) ([]store.Article, error) {
	var articles []Article
	err := r.db.ModelContext(ctx, &articles).
		Where(`"t"."is_breaking" = TRUE`).
		OrderExpr(`"t"."published_at" DESC, "t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query breaking news: %w", err)
	}

	return toDomainArticles(articles), nil
}

func (r *Repository) TrendingArticles(ctx context.Context) ([]store.Article, error) {
	var articles []Article
	err := r.db.ModelContext(ctx, &articles).
		OrderExpr(`"t"."views" DESC, "t"."id" ASC`).
		Limit(trendingLimit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query trending articles: %w", err)
	}

	return toDomainArticles(articles), nil
}

func (r *Repository) ArticleBySlug(ctx context.Context, slug string) (*store.Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Where(`"t"."slug" = ?`, slug).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by slug: %w", err)
	}

	result := toDomainArticle(*article)
	return &result, nil
}

func (r *Repository) ArticlesByCategory(ctx context.Context, categoryID int) ([]store.Article, error) {
	return r.Articles(ctx, store.ArticleFilter{CategoryID: &categoryID})
}

func (r *Repository) CreateArticle(ctx context.Context, in store.NewArticle) (*store.Article, error) {
	article := &Article{
		Title:       in.Title,
		Slug:        in.Slug,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
		Author:      in.Author,
		ReadTime:    in.ReadTime,
		IsBreaking:  in.IsBreaking,
		IsFeatured:  in.IsFeatured,
		PublishedAt: time.Now(),
		Views:       0,
	}

	err := r.inTransaction(ctx, func(tx pg.DBI) error {
		if in.IsFeatured {
			if err := demoteFeatured(ctx, tx, 0); err != nil {
				return err
			}
		}
		_, err := tx.ModelContext(ctx, article).Insert()
		return err
	})
	if isUniqueViolation(err) {
		return nil, store.ErrSlugTaken
	} else if err != nil {
		return nil, fmt.Errorf("failed to insert article: %w", err)
	}

	result := toDomainArticle(*article)
	return &result, nil
}

func (r *Repository) IncrementViews(ctx context.Context, id int) error {
	_, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Set("views = views + 1").
		Where(`"t"."id" = ?`, id).
		Update()
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

func (r *Repository) UpdateArticle(ctx context.Context, id int, patch store.ArticlePatch) (*store.Article, error) {
	article := &Article{}

	err := r.inTransaction(ctx, func(tx pg.DBI) error {
		err := tx.ModelContext(ctx, article).
			Where(`"t"."id" = ?`, id).
			For("UPDATE").
			Select()
		if errors.Is(err, pg.ErrNoRows) {
			return store.ErrArticleNotFound
		} else if err != nil {
			return err
		}

		applyArticlePatch(article, patch)

		if patch.IsFeatured != nil && *patch.IsFeatured {
			if err := demoteFeatured(ctx, tx, id); err != nil {
				return err
			}
		}

		_, err = tx.ModelContext(ctx, article).WherePK().Update()
		return err
	})
	if errors.Is(err, store.ErrArticleNotFound) {
		return nil, err
	} else if isUniqueViolation(err) {
		return nil, store.ErrSlugTaken
	} else if err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	result := toDomainArticle(*article)
	return &result, nil
}

func (r *Repository) DeleteArticle(ctx context.Context, id int) error {
	res, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if res.RowsAffected() == 0 {
		return store.ErrArticleNotFound
	}
	return nil
}

func (r *Repository) CreateContact(ctx context.Context, in store.NewContact) (*store.Contact, error) {
	contact := &Contact{
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	_, err := r.db.ModelContext(ctx, contact).Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert contact: %w", err)
	}

	result := toDomainContact(*contact)
	return &result, nil
}

func (r *Repository) Banners(ctx context.Context, filter store.BannerFilter) ([]store.Banner, error) {
	now := time.Now()

	var banners []Banner
	query := r.db.ModelContext(ctx, &banners).
		Where(`("t"."start_date" IS NULL OR "t"."start_date" <= ?)`, now).
		Where(`("t"."end_date" IS NULL OR "t"."end_date" >= ?)`, now)

	if filter.Position != "" {
		query = query.Where(`"t"."position" = ?`, filter.Position)
	}
	if filter.Active != nil {
		query = query.Where(`"t"."is_active" = ?`, *filter.Active)
	}

	err := query.
		OrderExpr(`"t"."sort_order" ASC, "t"."id" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query banners: %w", err)
	}

	return toDomainBanners(banners), nil
}

func (r *Repository) BannerByID(ctx context.Context, id int) (*store.Banner, error) {
	banner := &Banner{}
	err := r.db.ModelContext(ctx, banner).
		Where(`"t"."id" = ?`, id).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get banner by id: %w", err)
	}

	result := toDomainBanner(*banner)
	return &result, nil
}

func (r *Repository) CreateBanner(ctx context.Context, in store.NewBanner) (*store.Banner, error) {
	now := time.Now()
	banner := &Banner{
		Title:       in.Title,
		ImageURL:    in.ImageURL,
		LinkURL:     in.LinkURL,
		Description: in.Description,
		Position:    in.Position,
		IsActive:    true,
		SortOrder:   0,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.IsActive != nil {
		banner.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		banner.SortOrder = *in.SortOrder
	}

	_, err := r.db.ModelContext(ctx, banner).Insert()
	if err != nil {
		return nil, fmt.Errorf("failed to insert banner: %w", err)
	}

	result := toDomainBanner(*banner)
	return &result, nil
}

func (r *Repository) UpdateBanner(ctx context.Context, id int, patch store.BannerPatch) (*store.Banner, error) {
	banner := &Banner{}

	err := r.inTransaction(ctx, func(tx pg.DBI) error {
		err := tx.ModelContext(ctx, banner).
			Where(`"t"."id" = ?`, id).
			For("UPDATE").
			Select()
		if errors.Is(err, pg.ErrNoRows) {
			return store.ErrBannerNotFound
		} else if err != nil {
			return err
		}

		applyBannerPatch(banner, patch)
		banner.UpdatedAt = time.Now()

		_, err = tx.ModelContext(ctx, banner).WherePK().Update()
		return err
	})
	if errors.Is(err, store.ErrBannerNotFound) {
		return nil, err
	} else if err != nil {
		return nil, fmt.Errorf("failed to update banner: %w", err)
	}

	result := toDomainBanner(*banner)
	return &result, nil
}

func (r *Repository) DeleteBanner(ctx context.Context, id int) error {
	res, err := r.db.ModelContext(ctx, (*Banner)(nil)).
		Where(`"t"."id" = ?`, id).
		Delete()
	if err != nil {
		return fmt.Errorf("failed to delete banner: %w", err)
	}
	if res.RowsAffected() == 0 {
		return store.ErrBannerNotFound
	}
	return nil
}

// demoteFeatured clears the featured flag on every article except exceptID.
func demoteFeatured(ctx context.Context, tx pg.DBI, exceptID int) error {
	_, err := tx.ModelContext(ctx, (*Article)(nil)).
		Set("is_featured = FALSE").
		Where(`"t"."is_featured" = TRUE`).
		Where(`"t"."id" <> ?`, exceptID).
		Update()
	return err
}

func isUniqueViolation(err error) bool {
	pgErr, ok := err.(pg.Error)
	return ok && pgErr.IntegrityViolation()
}
