package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udnewsupdate/news-site/internal/store"
)

func newArticle(slug string) store.NewArticle {
	return store.NewArticle{
		Title:    "Test " + slug,
		Slug:     slug,
		Excerpt:  "excerpt " + slug,
		Content:  "content " + slug,
		Author:   "A",
		ReadTime: 2,
	}
}

func TestCreateArticleDefaults(t *testing.T) {
	ctx := context.Background()
	s := New()

	before := time.Now()
	a, err := s.CreateArticle(ctx, store.NewArticle{
		Title: "Test", Slug: "test-1", Excerpt: "...", Content: "...",
		Author: "A", ReadTime: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 0, a.Views)
	assert.False(t, a.IsFeatured)
	assert.False(t, a.IsBreaking)
	assert.Nil(t, a.CategoryID)
	assert.Nil(t, a.ImageURL)
	assert.WithinRange(t, a.PublishedAt, before, time.Now())
}

func TestCreateArticleSequentialIDs(t *testing.T) {
	ctx := context.Background()
	s := New()

	for i, slug := range []string{"a", "b", "c"} {
		a, err := s.CreateArticle(ctx, newArticle(slug))
		require.NoError(t, err)
		assert.Equal(t, i+1, a.ID)
	}
}

func TestCreateArticleSlugConflict(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.CreateArticle(ctx, newArticle("dup"))
	require.NoError(t, err)

	_, err = s.CreateArticle(ctx, newArticle("dup"))
	assert.ErrorIs(t, err, store.ErrSlugTaken)
}

func TestArticlesSortedByPublishedAtDesc(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	articles, err := s.Articles(ctx, store.ArticleFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, articles)

	for i := 1; i < len(articles); i++ {
		assert.False(t, articles[i].PublishedAt.After(articles[i-1].PublishedAt),
			"articles[%d] published after articles[%d]", i, i-1)
	}
}

func TestArticlesLimitOffset(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	all, err := s.Articles(ctx, store.ArticleFilter{})
	require.NoError(t, err)
	total := len(all)
	require.Equal(t, 6, total)

	for _, tc := range []struct {
		limit, offset int
	}{
		{0, 0}, {1, 0}, {3, 2}, {10, 0}, {6, 6}, {2, 5}, {4, 100},
	} {
		got, err := s.Articles(ctx, store.ArticleFilter{Limit: &tc.limit, Offset: &tc.offset})
		require.NoError(t, err)

		want := total - tc.offset
		if want < 0 {
			want = 0
		}
		if tc.limit < want {
			want = tc.limit
		}
		assert.Len(t, got, want, "limit=%d offset=%d", tc.limit, tc.offset)

		// the window must line up with the full sorted list
		for i, a := range got {
			assert.Equal(t, all[tc.offset+i].ID, a.ID)
		}
	}
}

func TestArticlesFilterByCategory(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	categoryID := 4
	got, err := s.Articles(ctx, store.ArticleFilter{CategoryID: &categoryID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "thai-company-develops-ai-global-competition", got[0].Slug)

	// no category carries id 0
	zero := 0
	got, err = s.Articles(ctx, store.ArticleFilter{CategoryID: &zero})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestArticlesSearch(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	got, err := s.Articles(ctx, store.ArticleFilter{Search: "AI"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "thai-company-develops-ai-global-competition", got[0].Slug)

	// case-insensitive substring match
	got, err = s.Articles(ctx, store.ArticleFilter{Search: "ai ใหม่"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = s.Articles(ctx, store.ArticleFilter{Search: "no such text"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFeaturedArticleFromSeed(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	a, err := s.FeaturedArticle(ctx)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "รัฐบาลเร่งผลักดันนโยบายใหม่ กระตุ้นเศรษฐกิจหลังโควิด-19", a.Title)
}

func TestFeaturedArticleDemotion(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	in := newArticle("new-featured")
	in.IsFeatured = true
	created, err := s.CreateArticle(ctx, in)
	require.NoError(t, err)

	a, err := s.FeaturedArticle(ctx)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, created.ID, a.ID)

	featured := 0
	all, err := s.Articles(ctx, store.ArticleFilter{})
	require.NoError(t, err)
	for _, it := range all {
		if it.IsFeatured {
			featured++
		}
	}
	assert.Equal(t, 1, featured)
}

func TestFeaturedArticleDemotionOnUpdate(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	promote := true
	_, err := s.UpdateArticle(ctx, 2, store.ArticlePatch{IsFeatured: &promote})
	require.NoError(t, err)

	a, err := s.FeaturedArticle(ctx)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, 2, a.ID)

	old, err := s.ArticleBySlug(ctx, "government-economic-policy-post-covid")
	require.NoError(t, err)
	require.NotNil(t, old)
	assert.False(t, old.IsFeatured)
}

func TestBreakingNews(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	got, err := s.BreakingNews(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// most recent first: featured article is 2h old, cancer article 4h old
	assert.Equal(t, "government-economic-policy-post-covid", got[0].Slug)
	assert.Equal(t, "thai-scientists-discover-anti-cancer-compound", got[1].Slug)
}

func TestTrendingArticles(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	got, err := s.TrendingArticles(ctx)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Views, got[i].Views)
	}
	assert.Equal(t, 15420, got[0].Views)

	// stays capped at 5 as the collection grows
	for _, slug := range []string{"x-1", "x-2"} {
		_, err := s.CreateArticle(ctx, newArticle(slug))
		require.NoError(t, err)
	}
	got, err = s.TrendingArticles(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestIncrementViews(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	before, err := s.ArticleBySlug(ctx, "thai-stock-market-recovery-new-record")
	require.NoError(t, err)
	require.NotNil(t, before)

	require.NoError(t, s.IncrementViews(ctx, before.ID))

	after, err := s.ArticleBySlug(ctx, before.Slug)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, before.Views+1, after.Views)

	// unknown id is a no-op, not an error
	require.NoError(t, s.IncrementViews(ctx, 99999))
}

func TestUpdateArticleEmptyPatch(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	before, err := s.ArticleBySlug(ctx, "thailand-national-team-world-cup-2026")
	require.NoError(t, err)
	require.NotNil(t, before)

	after, err := s.UpdateArticle(ctx, before.ID, store.ArticlePatch{})
	require.NoError(t, err)
	assert.Equal(t, *before, *after)
}

func TestUpdateArticlePartialMerge(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	title := "หัวข้อใหม่"
	after, err := s.UpdateArticle(ctx, 3, store.ArticlePatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, after.Title)
	assert.Equal(t, "thailand-national-team-world-cup-2026", after.Slug)
	assert.Equal(t, 12850, after.Views)
}

func TestUpdateArticleNotFound(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.UpdateArticle(ctx, 42, store.ArticlePatch{})
	assert.ErrorIs(t, err, store.ErrArticleNotFound)
}

func TestUpdateArticleSlugConflict(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	taken := "thai-movie-wins-international-film-festival"
	_, err := s.UpdateArticle(ctx, 1, store.ArticlePatch{Slug: &taken})
	assert.ErrorIs(t, err, store.ErrSlugTaken)

	// keeping the same slug is not a conflict
	same := "government-economic-policy-post-covid"
	_, err = s.UpdateArticle(ctx, 1, store.ArticlePatch{Slug: &same})
	assert.NoError(t, err)
}

func TestDeleteArticleTwice(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	require.NoError(t, s.DeleteArticle(ctx, 2))
	assert.ErrorIs(t, s.DeleteArticle(ctx, 2), store.ErrArticleNotFound)

	a, err := s.ArticleBySlug(ctx, "thai-company-develops-ai-global-competition")
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestCategories(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	cats, err := s.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 7)
	// insertion order
	assert.Equal(t, "politics", cats[0].Slug)
	assert.Equal(t, "environment", cats[6].Slug)

	c, err := s.CategoryBySlug(ctx, "sports")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "กีฬา", c.Name)

	// case-sensitive exact match
	c, err = s.CategoryBySlug(ctx, "Sports")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	c, err := s.CreateCategory(ctx, store.NewCategory{Name: "อาชญากรรม", Slug: "crime", Color: "gray"})
	require.NoError(t, err)
	assert.Equal(t, 8, c.ID)

	_, err = s.CreateCategory(ctx, store.NewCategory{Name: "ซ้ำ", Slug: "crime", Color: "gray"})
	assert.ErrorIs(t, err, store.ErrSlugTaken)
}

func TestArticlesByCategory(t *testing.T) {
	ctx := context.Background()
	s := NewSeeded()

	got, err := s.ArticlesByCategory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "government-economic-policy-post-covid", got[0].Slug)

	got, err = s.ArticlesByCategory(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCreateContact(t *testing.T) {
	ctx := context.Background()
	s := New()

	before := time.Now()
	c, err := s.CreateContact(ctx, store.NewContact{
		Name: "สมชาย", Email: "somchai@example.com", Subject: "สอบถาม", Message: "สวัสดีครับ",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, c.ID)
	assert.WithinRange(t, c.CreatedAt, before, time.Now())
}

func TestBannerDefaults(t *testing.T) {
	ctx := context.Background()
	s := New()

	b, err := s.CreateBanner(ctx, store.NewBanner{
		Title:    "โปรโมชั่น",
		ImageURL: "https://example.com/banner.png",
		Position: store.PositionSidebar,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, b.ID)
	assert.True(t, b.IsActive)
	assert.Equal(t, 0, b.SortOrder)
	assert.Equal(t, b.CreatedAt, b.UpdatedAt)
}

func TestBannersFilterAndWindow(t *testing.T) {
	ctx := context.Background()
	s := New()

	base := time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	inactive := false
	past := base.Add(-time.Hour)
	farPast := base.Add(-48 * time.Hour)
	future := base.Add(time.Hour)

	mk := func(title, position string, active *bool, sortOrder int, start, end *time.Time) {
		t.Helper()
		_, err := s.CreateBanner(ctx, store.NewBanner{
			Title:     title,
			ImageURL:  "https://example.com/" + title + ".png",
			Position:  position,
			IsActive:  active,
			SortOrder: &sortOrder,
			StartDate: start,
			EndDate:   end,
		})
		require.NoError(t, err)
	}

	mk("open", store.PositionSidebar, nil, 2, nil, nil)
	mk("windowed", store.PositionSidebar, nil, 1, &past, &future)
	mk("expired", store.PositionSidebar, nil, 0, &farPast, &past)
	mk("upcoming", store.PositionSidebar, nil, 0, &future, nil)
	mk("off", store.PositionSidebar, &inactive, 0, nil, nil)
	mk("header", store.PositionHeader, nil, 0, nil, nil)

	got, err := s.Banners(ctx, store.BannerFilter{Position: store.PositionSidebar})
	require.NoError(t, err)
	require.Len(t, got, 3)
	// sortOrder ascending
	assert.Equal(t, "off", got[0].Title)
	assert.Equal(t, "windowed", got[1].Title)
	assert.Equal(t, "open", got[2].Title)

	// active=true excludes the expired banner even though isActive is true
	active := true
	got, err = s.Banners(ctx, store.BannerFilter{Position: store.PositionSidebar, Active: &active})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, b := range got {
		assert.True(t, b.IsActive)
		assert.NotEqual(t, "expired", b.Title)
	}

	got, err = s.Banners(ctx, store.BannerFilter{Active: &inactive})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "off", got[0].Title)
}

func TestBannerCRUD(t *testing.T) {
	ctx := context.Background()
	s := New()

	b, err := s.CreateBanner(ctx, store.NewBanner{
		Title: "เปิดตัว", ImageURL: "https://example.com/a.png", Position: store.PositionContent,
	})
	require.NoError(t, err)

	got, err := s.BannerByID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "เปิดตัว", got.Title)

	title := "เปิดตัวใหม่"
	s.now = func() time.Time { return b.UpdatedAt.Add(time.Minute) }
	updated, err := s.UpdateBanner(ctx, b.ID, store.BannerPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.True(t, updated.UpdatedAt.After(b.UpdatedAt))
	assert.Equal(t, b.CreatedAt, updated.CreatedAt)

	_, err = s.UpdateBanner(ctx, 99, store.BannerPatch{})
	assert.ErrorIs(t, err, store.ErrBannerNotFound)

	require.NoError(t, s.DeleteBanner(ctx, b.ID))
	assert.ErrorIs(t, s.DeleteBanner(ctx, b.ID), store.ErrBannerNotFound)

	got, err = s.BannerByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
