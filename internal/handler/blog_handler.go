package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "oilsaas/internal/errors"
	"oilsaas/internal/service"
)

// defaultBlogLimit bounds GET /api/blog when no limit is supplied.
const defaultBlogLimit = 10

// BlogHandler handles blog post endpoints.
type BlogHandler struct {
	blogService service.BlogService
}

// NewBlogHandler creates a new blog handler.
func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// BlogCreateRequest represents a new blog post.
type BlogCreateRequest struct {
	Title      string   `json:"title" validate:"required"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content" validate:"required"`
	Author     string   `json:"author" validate:"required"`
	Tags       []string `json:"tags"`
	CoverImage string   `json:"cover_image"`
}

// BlogCreateResponse is returned after creating a post.
type BlogCreateResponse struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
}

// Create godoc
// @Summary Create a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param request body BlogCreateRequest true "Post data"
// @Success 200 {object} BlogCreateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/blog [post]
func (h *BlogHandler) Create(c echo.Context) error {
	var req BlogCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "invalid request body", Code: "INVALID_BODY"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: err.Error(), Code: "VALIDATION_FAILED"})
	}

	id, slug, err := h.blogService.Create(c.Request().Context(), service.BlogCreateInput{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		Author:     req.Author,
		Tags:       req.Tags,
		CoverImage: req.CoverImage,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, BlogCreateResponse{ID: id, Slug: slug})
}

// List godoc
// @Summary List published blog posts
// @Tags blog
// @Produce json
// @Param limit query int false "Maximum number of posts" default(10)
// @Success 200 {array} map[string]interface{}
// @Router /api/blog [get]
func (h *BlogHandler) List(c echo.Context) error {
	limit := defaultBlogLimit
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	posts, err := h.blogService.List(c.Request().Context(), limit)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, posts)
}
