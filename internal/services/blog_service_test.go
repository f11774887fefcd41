package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/jobboard/internal/database/dbtest"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/search"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello, Go World!":          "hello-go-world",
		"  10 Tips for Interviews ": "10-tips-for-interviews",
		"already-a-slug":            "already-a-slug",
		"Über café":                 "ber-caf",
		"!!!":                       "post",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestBlogListPublishedOnly(t *testing.T) {
	db := dbtest.DryRun(t)
	rec := dbtest.Record(t, db)

	posts, err := NewBlogService(db).List(context.Background(), search.Paging{Limit: 3, Offset: 6})
	require.NoError(t, err)
	assert.NotNil(t, posts)

	sql := rec.Last()
	assert.Contains(t, sql, "is_published = true")
	assert.Contains(t, sql, "ORDER BY published_at DESC, id DESC")
	assert.Contains(t, sql, "LIMIT 3")
	assert.Contains(t, sql, "OFFSET 6")
}

func TestBlogGetBySlugNotFound(t *testing.T) {
	db := dbtest.DryRun(t)
	rec := dbtest.Record(t, db)
	svc := NewBlogService(db)

	_, err := svc.GetBySlug(context.Background(), " ")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, rec.Statements())

	post, err := svc.GetBySlug(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, post)
	assert.Contains(t, rec.Last(), "slug = 'does-not-exist'")
	assert.Contains(t, rec.Last(), "is_published = true")
}

func TestCreatePostGeneratesSlug(t *testing.T) {
	db := dbtest.DryRun(t)
	rec := dbtest.Record(t, db)

	post, err := NewBlogService(db).CreatePost(context.Background(), &dtos.BlogPostCreationRequest{
		Title:      "Remote Work in 2024: What Changed?",
		Excerpt:    "A look back.",
		Content:    "Long form content.",
		AuthorName: "Sam",
		Category:   "Career",
		Tags:       []string{"remote", "trends"},
	})
	require.NoError(t, err)

	assert.Equal(t, "remote-work-in-2024-what-changed", post.Slug)
	assert.True(t, post.IsPublished)
	assert.False(t, post.PublishedAt.IsZero())

	stmts := rec.Statements()
	require.Len(t, stmts, 2)
	assert.Contains(t, stmts[0], "count(*)")
	assert.Contains(t, stmts[0], "slug = 'remote-work-in-2024-what-changed'")
	assert.Contains(t, stmts[1], `INSERT INTO "blog_posts"`)
}

func TestCreatePostKeepsExplicitSlugAndDate(t *testing.T) {
	when := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	draft := false

	post, err := NewBlogService(dbtest.DryRun(t)).CreatePost(context.Background(), &dtos.BlogPostCreationRequest{
		Title:       "Anything",
		Slug:        "Custom Slug",
		Excerpt:     "x",
		Content:     "y",
		AuthorName:  "Sam",
		Category:    "News",
		Published:   &draft,
		PublishedAt: &when,
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", post.Slug)
	assert.False(t, post.IsPublished)
	assert.Equal(t, when, post.PublishedAt)
}

func TestCreatePostValidation(t *testing.T) {
	db := dbtest.DryRun(t)
	rec := dbtest.Record(t, db)

	_, err := NewBlogService(db).CreatePost(context.Background(), &dtos.BlogPostCreationRequest{Title: "No body"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, rec.Statements())
}
