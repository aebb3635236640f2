package rest

import "github.com/udnewsupdate/news-site/internal/store"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewCategory(c store.Category) Category {
	return Category{
		ID:    c.ID,
		Name:  c.Name,
		Slug:  c.Slug,
		Color: c.Color,
	}
}

func NewCategories(list []store.Category) []Category {
	return Map(list, NewCategory)
}

func NewArticle(a store.Article) Article {
	return Article{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		ImageURL:    a.ImageURL,
		CategoryID:  a.CategoryID,
		Author:      a.Author,
		ReadTime:    a.ReadTime,
		IsBreaking:  a.IsBreaking,
		IsFeatured:  a.IsFeatured,
		PublishedAt: a.PublishedAt,
		Views:       a.Views,
	}
}

func NewArticles(list []store.Article) []Article {
	return Map(list, NewArticle)
}

func NewContact(c store.Contact) Contact {
	return Contact{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func NewBanner(b store.Banner) Banner {
	return Banner{
		ID:          b.ID,
		Title:       b.Title,
		ImageURL:    b.ImageURL,
		LinkURL:     b.LinkURL,
		Description: b.Description,
		Position:    b.Position,
		IsActive:    b.IsActive,
		SortOrder:   b.SortOrder,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func NewBanners(list []store.Banner) []Banner {
	return Map(list, NewBanner)
}

func (r CreateArticleRequest) toStore() store.NewArticle {
	return store.NewArticle{
		Title:      r.Title,
		Slug:       r.Slug,
		Excerpt:    r.Excerpt,
		Content:    r.Content,
		ImageURL:   r.ImageURL,
		CategoryID: r.CategoryID,
		Author:     r.Author,
		ReadTime:   r.ReadTime,
		IsBreaking: r.IsBreaking,
		IsFeatured: r.IsFeatured,
	}
}

func (r UpdateArticleRequest) toStore() store.ArticlePatch {
	return store.ArticlePatch{
		Title:      r.Title,
		Slug:       r.Slug,
		Excerpt:    r.Excerpt,
		Content:    r.Content,
		ImageURL:   r.ImageURL,
		CategoryID: r.CategoryID,
		Author:     r.Author,
		ReadTime:   r.ReadTime,
		IsBreaking: r.IsBreaking,
		IsFeatured: r.IsFeatured,
	}
}

func (r ContactRequest) toStore() store.NewContact {
	return store.NewContact{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}

func (r CreateBannerRequest) toStore() store.NewBanner {
	return store.NewBanner{
		Title:       r.Title,
		ImageURL:    r.ImageURL,
		LinkURL:     r.LinkURL,
		Description: r.Description,
		Position:    r.Position,
		IsActive:    r.IsActive,
		SortOrder:   r.SortOrder,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

func (r UpdateBannerRequest) toStore() store.BannerPatch {
	return store.BannerPatch{
		Title:       r.Title,
		ImageURL:    r.ImageURL,
		LinkURL:     r.LinkURL,
		Description: r.Description,
		Position:    r.Position,
		IsActive:    r.IsActive,
		SortOrder:   r.SortOrder,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}
