// Package memory implements store.ContentStore with process-local maps.
// Data does not survive a restart; the process entry point is expected to
// seed it on startup.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/udnewsupdate/news-site/internal/store"
)

const trendingLimit = 5

// Store keeps every collection in a map keyed by id, plus the insertion
// order of ids so listings and sort ties stay deterministic. All access goes
// through mu because the HTTP layer serves requests on parallel goroutines.
type Store struct {
	mu sync.RWMutex

	categories map[int]store.Category
	articles   map[int]store.Article
	contacts   map[int]store.Contact
	banners    map[int]store.Banner

	categoryOrder []int
	articleOrder  []int
	bannerOrder   []int

	categorySeq int
	articleSeq  int
	contactSeq  int
	bannerSeq   int

	now func() time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{
		categories: make(map[int]store.Category),
		articles:   make(map[int]store.Article),
		contacts:   make(map[int]store.Contact),
		banners:    make(map[int]store.Banner),
		now:        time.Now,
	}
}

// NewSeeded returns a store populated with the initial categories and
// articles the site ships with.
func NewSeeded() *Store {
	s := New()
	s.seed()
	return s
}

func (s *Store) Categories(ctx context.Context) ([]store.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]store.Category, 0, len(s.categoryOrder))
	for _, id := range s.categoryOrder {
		result = append(result, s.categories[id])
	}
	return result, nil
}

func (s *Store) CategoryBySlug(ctx context.Context, slug string) (*store.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.categoryOrder {
		if c := s.categories[id]; c.Slug == slug {
			return &c, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateCategory(ctx context.Context, in store.NewCategory) (*store.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.Slug == in.Slug {
			return nil, store.ErrSlugTaken
		}
	}

	s.categorySeq++
	c := store.Category{
		ID:    s.categorySeq,
		Name:  in.Name,
		Slug:  in.Slug,
		Color: in.Color,
	}
	s.categories[c.ID] = c
	s.categoryOrder = append(s.categoryOrder, c.ID)
	return &c, nil
}

func (s *Store) Articles(ctx context.Context, filter store.ArticleFilter) ([]store.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]store.Article, 0, len(s.articleOrder))
	for _, id := range s.articleOrder {
		a := s.articles[id]
		if filter.CategoryID != nil && (a.CategoryID == nil || *a.CategoryID != *filter.CategoryID) {
			continue
		}
		if filter.Search != "" && !matchesSearch(a, filter.Search) {
			continue
		}
		result = append(result, a)
	}

	sortByPublishedAtDesc(result)

	if filter.Offset != nil {
		offset := *filter.Offset
		if offset < 0 {
			offset = 0
		}
		if offset >= len(result) {
			result = result[:0]
		} else {
			result = result[offset:]
		}
	}
	if filter.Limit != nil {
		limit := *filter.Limit
		if limit < 0 {
			limit = 0
		}
		if limit < len(result) {
			result = result[:limit]
		}
	}

	return result, nil
}

func (s *Store) FeaturedArticle(ctx context.Context) (*store.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.articleOrder {
		if a := s.articles[id]; a.IsFeatured {
			return &a, nil
		}
	}
	return nil, nil
}

func (s *Store) BreakingNews(ctx context.Context) ([]store.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]store.Article, 0)
	for _, id := range s.articleOrder {
		if a := s.articles[id]; a.IsBreaking {
			result = append(result, a)
		}
	}
	sortByPublishedAtDesc(result)
	return result, nil
}

func (s *Store) TrendingArticles(ctx context.Context) ([]store.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]store.Article, 0, len(s.articleOrder))
	for _, id := range s.articleOrder {
		result = append(result, s.articles[id])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Views > result[j].Views
	})
	if len(result) > trendingLimit {
		result = result[:trendingLimit]
	}
	return result, nil
}

func (s *Store) ArticleBySlug(ctx context.Context, slug string) (*store.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.articleOrder {
		if a := s.articles[id]; a.Slug == slug {
			return &a, nil
		}
	}
	return nil, nil
}

func (s *Store) ArticlesByCategory(ctx context.Context, categoryID int) ([]store.Article, error) {
	return s.Articles(ctx, store.ArticleFilter{CategoryID: &categoryID})
}

func (s *Store) CreateArticle(ctx context.Context, in store.NewArticle) (*store.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.articleSlugTaken(in.Slug, 0) {
		return nil, store.ErrSlugTaken
	}
	if in.IsFeatured {
		s.demoteFeatured(0)
	}

	s.articleSeq++
	a := store.Article{
		ID:          s.articleSeq,
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
		PublishedAt: s.now(),
		Views:       0,
	}
	s.articles[a.ID] = a
	s.articleOrder = append(s.articleOrder, a.ID)
	return &a, nil
}

func (s *Store) IncrementViews(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a, ok := s.articles[id]; ok {
		a.Views++
		s.articles[id] = a
	}
	return nil
}

func (s *Store) UpdateArticle(ctx context.Context, id int, patch store.ArticlePatch) (*store.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.articles[id]
	if !ok {
		return nil, store.ErrArticleNotFound
	}

	if patch.Slug != nil && *patch.Slug != a.Slug && s.articleSlugTaken(*patch.Slug, id) {
		return nil, store.ErrSlugTaken
	}

	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Slug != nil {
		a.Slug = *patch.Slug
	}
	if patch.Excerpt != nil {
		a.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		a.Content = *patch.Content
	}
	if patch.ImageURL != nil {
		a.ImageURL = patch.ImageURL
	}
	if patch.CategoryID != nil {
		a.CategoryID = patch.CategoryID
	}
	if patch.Author != nil {
		a.Author = *patch.Author
	}
	if patch.ReadTime != nil {
		a.ReadTime = *patch.ReadTime
	}
	if patch.IsBreaking != nil {
		a.IsBreaking = *patch.IsBreaking
	}
	if patch.IsFeatured != nil {
		a.IsFeatured = *patch.IsFeatured
		if a.IsFeatured {
			s.demoteFeatured(id)
		}
	}

	s.articles[id] = a
	return &a, nil
}

func (s *Store) DeleteArticle(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.articles[id]; !ok {
		return store.ErrArticleNotFound
	}
	delete(s.articles, id)
	s.articleOrder = removeID(s.articleOrder, id)
	return nil
}

func (s *Store) CreateContact(ctx context.Context, in store.NewContact) (*store.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contactSeq++
	c := store.Contact{
		ID:        s.contactSeq,
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: s.now(),
	}
	s.contacts[c.ID] = c
	return &c, nil
}

func (s *Store) Banners(ctx context.Context, filter store.BannerFilter) ([]store.Banner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	result := make([]store.Banner, 0, len(s.bannerOrder))
	for _, id := range s.bannerOrder {
		b := s.banners[id]
		if filter.Position != "" && b.Position != filter.Position {
			continue
		}
		if filter.Active != nil && b.IsActive != *filter.Active {
			continue
		}
		if b.StartDate != nil && b.StartDate.After(now) {
			continue
		}
		if b.EndDate != nil && b.EndDate.Before(now) {
			continue
		}
		result = append(result, b)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].SortOrder < result[j].SortOrder
	})
	return result, nil
}

func (s *Store) BannerByID(ctx context.Context, id int) (*store.Banner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if b, ok := s.banners[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (s *Store) CreateBanner(ctx context.Context, in store.NewBanner) (*store.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.bannerSeq++
	b := store.Banner{
		ID:          s.bannerSeq,
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
		b.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		b.SortOrder = *in.SortOrder
	}
	s.banners[b.ID] = b
	s.bannerOrder = append(s.bannerOrder, b.ID)
	return &b, nil
}

func (s *Store) UpdateBanner(ctx context.Context, id int, patch store.BannerPatch) (*store.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.banners[id]
	if !ok {
		return nil, store.ErrBannerNotFound
	}

	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.ImageURL != nil {
		b.ImageURL = *patch.ImageURL
	}
	if patch.LinkURL != nil {
		b.LinkURL = patch.LinkURL
	}
	if patch.Description != nil {
		b.Description = patch.Description
	}
	if patch.Position != nil {
		b.Position = *patch.Position
	}
	if patch.IsActive != nil {
		b.IsActive = *patch.IsActive
	}
	if patch.SortOrder != nil {
		b.SortOrder = *patch.SortOrder
	}
	if patch.StartDate != nil {
		b.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		b.EndDate = patch.EndDate
	}
	b.UpdatedAt = s.now()

	s.banners[id] = b
	return &b, nil
}

func (s *Store) DeleteBanner(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.banners[id]; !ok {
		return store.ErrBannerNotFound
	}
	delete(s.banners, id)
	s.bannerOrder = removeID(s.bannerOrder, id)
	return nil
}

// articleSlugTaken reports whether any article other than exceptID already
// uses slug. Callers must hold mu.
func (s *Store) articleSlugTaken(slug string, exceptID int) bool {
	for id, a := range s.articles {
		if id != exceptID && a.Slug == slug {
			return true
		}
	}
	return false
}

// demoteFeatured clears the featured flag on every article except exceptID,
// keeping at most one article featured. Callers must hold mu.
func (s *Store) demoteFeatured(exceptID int) {
	for id, a := range s.articles {
		if id != exceptID && a.IsFeatured {
			a.IsFeatured = false
			s.articles[id] = a
		}
	}
}

func matchesSearch(a store.Article, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(a.Title), needle) ||
		strings.Contains(strings.ToLower(a.Excerpt), needle) ||
		strings.Contains(strings.ToLower(a.Content), needle)
}

func sortByPublishedAtDesc(articles []store.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
}

func removeID(ids []int, id int) []int {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
