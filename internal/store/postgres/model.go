package postgres

import (
	"time"
)

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID    int    `pg:"id,pk"`
	Name  string `pg:"name,use_zero"`
	Slug  string `pg:"slug,use_zero"`
	Color string `pg:"color,use_zero"`
}

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID          int       `pg:"id,pk"`
	Title       string    `pg:"title,use_zero"`
	Slug        string    `pg:"slug,use_zero"`
	Excerpt     string    `pg:"excerpt,use_zero"`
	Content     string    `pg:"content,use_zero"`
	ImageURL    *string   `pg:"image_url"`
	CategoryID  *int      `pg:"category_id"`
	Author      string    `pg:"author,use_zero"`
	ReadTime    int       `pg:"read_time,use_zero"`
	IsBreaking  bool      `pg:"is_breaking,use_zero"`
	IsFeatured  bool      `pg:"is_featured,use_zero"`
	PublishedAt time.Time `pg:"published_at,use_zero"`
	Views       int       `pg:"views,use_zero"`
}

type Contact struct {
	tableName struct{} `pg:"contacts,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	Name      string    `pg:"name,use_zero"`
	Email     string    `pg:"email,use_zero"`
	Subject   string    `pg:"subject,use_zero"`
	Message   string    `pg:"message,use_zero"`
	CreatedAt time.Time `pg:"created_at,use_zero"`
}

type Banner struct {
	tableName struct{} `pg:"banners,alias:t,discard_unknown_columns"`

	ID          int        `pg:"id,pk"`
	Title       string     `pg:"title,use_zero"`
	ImageURL    string     `pg:"image_url,use_zero"`
	LinkURL     *string    `pg:"link_url"`
	Description *string    `pg:"description"`
	Position    string     `pg:"position,use_zero"`
	IsActive    bool       `pg:"is_active,use_zero"`
	SortOrder   int        `pg:"sort_order,use_zero"`
	StartDate   *time.Time `pg:"start_date"`
	EndDate     *time.Time `pg:"end_date"`
	CreatedAt   time.Time  `pg:"created_at,use_zero"`
	UpdatedAt   time.Time  `pg:"updated_at,use_zero"`
}
