package rest

import "time"

type Category struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

type Article struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	ImageURL    *string   `json:"imageUrl"`
	CategoryID  *int      `json:"categoryId"`
	Author      string    `json:"author"`
	ReadTime    int       `json:"readTime"`
	IsBreaking  bool      `json:"isBreaking"`
	IsFeatured  bool      `json:"isFeatured"`
	PublishedAt time.Time `json:"publishedAt"`
	Views       int       `json:"views"`
}

type Contact struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type Banner struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	ImageURL    string     `json:"imageUrl"`
	LinkURL     *string    `json:"linkUrl"`
	Description *string    `json:"description"`
	Position    string     `json:"position"`
	IsActive    bool       `json:"isActive"`
	SortOrder   int        `json:"sortOrder"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type ArticleListRequest struct {
	CategoryID *int   `query:"categoryId"`
	Limit      *int   `query:"limit"`
	Offset     *int   `query:"offset"`
	Search     string `query:"search"`
}

type BannerListRequest struct {
	Position string `query:"position"`
	Active   *bool  `query:"active"`
}

type CreateArticleRequest struct {
	Title      string  `json:"title" validate:"required,min=1"`
	Slug       string  `json:"slug" validate:"required,min=1"`
	Excerpt    string  `json:"excerpt" validate:"required"`
	Content    string  `json:"content" validate:"required"`
	ImageURL   *string `json:"imageUrl" validate:"omitempty,url"`
	CategoryID *int    `json:"categoryId"`
	Author     string  `json:"author" validate:"required"`
	ReadTime   int     `json:"readTime" validate:"required,gt=0"`
	IsBreaking bool    `json:"isBreaking"`
	IsFeatured bool    `json:"isFeatured"`
}

// UpdateArticleRequest is a partial update: absent fields keep their prior
// value.
type UpdateArticleRequest struct {
	Title      *string `json:"title" validate:"omitempty,min=1"`
	Slug       *string `json:"slug" validate:"omitempty,min=1"`
	Excerpt    *string `json:"excerpt" validate:"omitempty,min=1"`
	Content    *string `json:"content" validate:"omitempty,min=1"`
	ImageURL   *string `json:"imageUrl" validate:"omitempty,url"`
	CategoryID *int    `json:"categoryId"`
	Author     *string `json:"author" validate:"omitempty,min=1"`
	ReadTime   *int    `json:"readTime" validate:"omitempty,gt=0"`
	IsBreaking *bool   `json:"isBreaking"`
	IsFeatured *bool   `json:"isFeatured"`
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=1"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=1"`
	Message string `json:"message" validate:"required,min=1"`
}

type CreateBannerRequest struct {
	Title       string     `json:"title" validate:"required,min=1"`
	ImageURL    string     `json:"imageUrl" validate:"required,url"`
	LinkURL     *string    `json:"linkUrl" validate:"omitempty,url"`
	Description *string    `json:"description"`
	Position    string     `json:"position" validate:"required,oneof=sidebar header footer content"`
	IsActive    *bool      `json:"isActive"`
	SortOrder   *int       `json:"sortOrder"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

type UpdateBannerRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1"`
	ImageURL    *string    `json:"imageUrl" validate:"omitempty,url"`
	LinkURL     *string    `json:"linkUrl" validate:"omitempty,url"`
	Description *string    `json:"description"`
	Position    *string    `json:"position" validate:"omitempty,oneof=sidebar header footer content"`
	IsActive    *bool      `json:"isActive"`
	SortOrder   *int       `json:"sortOrder"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}
