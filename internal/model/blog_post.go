package model

import "time"

// CollectionBlogPost is the document collection holding blog posts.
const CollectionBlogPost = "blogpost"

// BlogPost represents a published article. Posts are always created with
// published=true and are never updated afterwards.
type BlogPost struct {
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	Tags        []string  `json:"tags"`
	Published   bool      `json:"published"`
	PublishedAt time.Time `json:"published_at"`
	CoverImage  string    `json:"cover_image,omitempty"`
}
