package postgres

import (
	"github.com/udnewsupdate/news-site/internal/store"
)

func toDomainCategory(c Category) store.Category {
	return store.Category{
		ID:    c.ID,
		Name:  c.Name,
		Slug:  c.Slug,
		Color: c.Color,
	}
}

func toDomainCategories(list []Category) []store.Category {
	result := make([]store.Category, len(list))
	for i := range list {
		result[i] = toDomainCategory(list[i])
	}
	return result
}

func toDomainArticle(a Article) store.Article {
	return store.Article{
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

func toDomainArticles(list []Article) []store.Article {
	result := make([]store.Article, len(list))
	for i := range list {
		result[i] = toDomainArticle(list[i])
	}
	return result
}

func toDomainContact(c Contact) store.Contact {
	return store.Contact{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func toDomainBanner(b Banner) store.Banner {
	return store.Banner{
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

func toDomainBanners(list []Banner) []store.Banner {
	result := make([]store.Banner, len(list))
	for i := range list {
		result[i] = toDomainBanner(list[i])
	}
	return result
}

// applyArticlePatch merges non-nil patch fields onto the row.
func applyArticlePatch(a *Article, patch store.ArticlePatch) {
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
	}
}

func applyBannerPatch(b *Banner, patch store.BannerPatch) {
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
}
