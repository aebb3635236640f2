package store

import (
	"time"
)

// Banner placement zones.
const (
	PositionSidebar = "sidebar"
	PositionHeader  = "header"
	PositionFooter  = "footer"
	PositionContent = "content"
)

type Category struct {
	ID    int
	Name  string
	Slug  string
	Color string
}

type Article struct {
	ID          int
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	ImageURL    *string
	CategoryID  *int
	Author      string
	ReadTime    int
	IsBreaking  bool
	IsFeatured  bool
	PublishedAt time.Time
	Views       int
}

type Contact struct {
	ID        int
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

type Banner struct {
	ID          int
	Title       string
	ImageURL    string
	LinkURL     *string
	Description *string
	Position    string
	IsActive    bool
	SortOrder   int
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type NewCategory struct {
	Name  string
	Slug  string
	Color string
}

type NewArticle struct {
	Title      string
	Slug       string
	Excerpt    string
	Content    string
	ImageURL   *string
	CategoryID *int
	Author     string
	ReadTime   int
	IsBreaking bool
	IsFeatured bool
}

// ArticlePatch carries a partial update. Nil fields keep the prior value.
type ArticlePatch struct {
	Title      *string
	Slug       *string
	Excerpt    *string
	Content    *string
	ImageURL   *string
	CategoryID *int
	Author     *string
	ReadTime   *int
	IsBreaking *bool
	IsFeatured *bool
}

type NewContact struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type NewBanner struct {
	Title       string
	ImageURL    string
	LinkURL     *string
	Description *string
	Position    string
	IsActive    *bool
	SortOrder   *int
	StartDate   *time.Time
	EndDate     *time.Time
}

type BannerPatch struct {
	Title       *string
	ImageURL    *string
	LinkURL     *string
	Description *string
	Position    *string
	IsActive    *bool
	SortOrder   *int
	StartDate   *time.Time
	EndDate     *time.Time
}

// ArticleFilter narrows Articles. Nil/empty fields are ignored.
// Offset is applied before Limit.
type ArticleFilter struct {
	CategoryID *int
	Search     string
	Limit      *int
	Offset     *int
}

// BannerFilter narrows Banners. The publication date window is always applied
// on top of these.
type BannerFilter struct {
	Position string
	Active   *bool
}
