package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/search"
	"gorm.io/gorm"
)

type BlogService struct {
	DB *gorm.DB
}

func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{
		DB: db,
	}
}

func published(tx *gorm.DB) *gorm.DB {
	return tx.Where("is_published = ?", true)
}

// List returns published posts, most recently published first.
func (s *BlogService) List(ctx context.Context, p search.Paging) ([]models.BlogPost, error) {
	p = p.Normalize(search.DefaultLimit)
	posts := make([]models.BlogPost, 0, p.Limit)
	err := s.DB.WithContext(ctx).
		Scopes(published).
		Order("published_at DESC, id DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("listing blog posts: %w", err)
	}
	return posts, nil
}

func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrNotFound
	}
	return s.first(ctx, "slug = ?", slug)
}

func (s *BlogService) Get(ctx context.Context, id string) (*models.BlogPost, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	return s.first(ctx, "id = ?", id)
}

func (s *BlogService) first(ctx context.Context, clause string, arg any) (*models.BlogPost, error) {
	var post models.BlogPost
	result := s.DB.WithContext(ctx).Scopes(published).Where(clause, arg).Limit(1).Find(&post)
	if result.Error != nil {
		return nil, fmt.Errorf("loading blog post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &post, nil
}

func (s *BlogService) CreatePost(ctx context.Context, in *dtos.BlogPostCreationRequest) (*models.BlogPost, error) {
	req := in.Trimmed()
	if err := validateStruct(&req); err != nil {
		return nil, err
	}

	base := req.Slug
	if base == "" {
		base = req.Title
	}

	post := &models.BlogPost{
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		AuthorName:    req.AuthorName,
		AuthorAvatar:  optional(req.AuthorAvatar),
		Category:      req.Category,
		Tags:          append([]string{}, req.Tags...),
		FeaturedImage: optional(req.FeaturedImage),
		IsPublished:   req.Published == nil || *req.Published,
	}
	if req.PublishedAt != nil {
		post.PublishedAt = *req.PublishedAt
	}

	db := s.DB.WithContext(ctx)
	slug, err := uniqueSlug(db, Slugify(base))
	if err != nil {
		return nil, fmt.Errorf("choosing slug: %w", err)
	}
	post.Slug = slug

	// A concurrent insert of the same slug is rejected by the partial unique index.
	if err := db.Create(post).Error; err != nil {
		return nil, fmt.Errorf("creating blog post: %w", err)
	}
	return post, nil
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s and joins its ASCII alphanumeric runs with hyphens.
func Slugify(s string) string {
	slug := nonAlnum.ReplaceAllString(strings.ToLower(s), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "post"
	}
	return slug
}

// uniqueSlug appends -2, -3, ... to base until no post holds it.
func uniqueSlug(tx *gorm.DB, base string) (string, error) {
	slug := base
	for i := 1; ; {
		var count int64
		if err := tx.Model(&models.BlogPost{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		i++
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
