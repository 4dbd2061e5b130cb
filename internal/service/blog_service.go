package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"oilsaas/internal/model"
)

// BlogCreateInput carries the fields of a new post.
type BlogCreateInput struct {
	Title      string
	Excerpt    string
	Content    string
	Author     string
	Tags       []string
	CoverImage string
}

// BlogService creates and lists blog posts.
type BlogService interface {
	Create(ctx context.Context, in BlogCreateInput) (id, slug string, err error)
	List(ctx context.Context, limit int) ([]map[string]interface{}, error)
}

type blogService struct {
	store DocumentStore
	log   zerolog.Logger
}

// NewBlogService creates a new blog service.
func NewBlogService(store DocumentStore, log zerolog.Logger) BlogService {
	return &blogService{store: store, log: log}
}

// Slugify derives a URL slug from a title: lowercase with each space replaced
// by a hyphen. Other characters pass through unchanged, and slugs are not
// checked for uniqueness.
func Slugify(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-")
}

// Create persists a post with published=true and the current time.
func (s *blogService) Create(ctx context.Context, in BlogCreateInput) (string, string, error) {
	slug := Slugify(in.Title)

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	post := model.BlogPost{
		Title:       in.Title,
		Slug:        slug,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		Author:      in.Author,
		Tags:        tags,
		Published:   true,
		PublishedAt: time.Now().UTC(),
		CoverImage:  in.CoverImage,
	}

	id, err := s.store.CreateDocument(ctx, model.CollectionBlogPost, post)
	if err != nil {
		return "", "", fmt.Errorf("create post: %w", err)
	}

	s.log.Info().Str("id", id).Str("slug", slug).Msg("blog post created")
	return id, slug, nil
}

// List returns up to limit published posts with their store identifiers
// exposed as plain "id" fields.
func (s *blogService) List(ctx context.Context, limit int) ([]map[string]interface{}, error) {
	posts, err := s.store.GetDocuments(ctx, model.CollectionBlogPost, map[string]interface{}{"published": true}, limit)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return exposeID(posts), nil
}
