package dtos

import "time"

type BlogPostCreationRequest struct {
	Title         string     `json:"title" yaml:"title" binding:"required,max=300"`
	Slug          string     `json:"slug" yaml:"slug" binding:"omitempty,max=300"` // Generated from Title if empty
	Excerpt       string     `json:"excerpt" yaml:"excerpt" binding:"required"`
	Content       string     `json:"content" yaml:"content" binding:"required"`
	AuthorName    string     `json:"authorName" yaml:"authorName" binding:"required,max=200"`
	AuthorAvatar  string     `json:"authorAvatar" yaml:"authorAvatar" binding:"omitempty,url"`
	Category      string     `json:"category" yaml:"category" binding:"required,max=100"`
	Tags          []string   `json:"tags" yaml:"tags" binding:"dive,required,max=50"`
	FeaturedImage string     `json:"featuredImage" yaml:"featuredImage" binding:"omitempty,url"`
	Published     *bool      `json:"isPublished" yaml:"isPublished"` // Defaults to true if nil
	PublishedAt   *time.Time `json:"publishedAt" yaml:"publishedAt"`
}
