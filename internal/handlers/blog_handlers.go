package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/helpers"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/requests"
)

// maxUploadSize caps CMS image uploads at 10 MiB.
const maxUploadSize = 10 << 20

// BlogHandler serves the public blog and its back-office CMS
type BlogHandler struct {
	blogService interfaces.BlogService
	logger      *zap.Logger
}

// NewBlogHandler creates a handler with interface dependencies
func NewBlogHandler(blogService interfaces.BlogService, logger *zap.Logger) *BlogHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &BlogHandler{
		blogService: blogService,
		logger:      logger,
	}
}

// ListPublishedPosts godoc
// @Summary List published posts
// @Description Returns a page of published blog posts for the public site
// @Tags blog
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /blog/posts [get]
func (h *BlogHandler) ListPublishedPosts(c *gin.Context) {
	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	list, err := h.blogService.ListPublishedPosts(c.Request.Context(), pagination.Limit, pagination.Offset)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list posts", err)
		return
	}

	response := paginatedResponse(list.Posts, int(pagination.Page), int(pagination.Limit), int(list.TotalItems))
	sendSuccess(c, http.StatusOK, response)
}

// GetPostBySlug godoc
// @Summary Get a post by slug
// @Description Returns one published blog post addressed by its URL slug
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} business.BlogPost
// @Failure 404 {object} ErrorResponse
// @Router /blog/posts/{slug} [get]
func (h *BlogHandler) GetPostBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		sendError(c, http.StatusBadRequest, "Post slug is required", nil)
		return
	}

	post, err := h.blogService.GetPostBySlug(c.Request.Context(), slug)
	if err != nil {
		handleUpstreamError(c, err, "Post not found")
		return
	}

	sendSuccess(c, http.StatusOK, post)
}

// ListAllPosts godoc
// @Summary List all posts
// @Description Returns a page of posts including drafts for the CMS
// @Tags blog
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/blog/posts [get]
func (h *BlogHandler) ListAllPosts(c *gin.Context) {
	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	list, err := h.blogService.ListAllPosts(c.Request.Context(), pagination.Limit, pagination.Offset)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list posts", err)
		return
	}

	response := paginatedResponse(list.Posts, int(pagination.Page), int(pagination.Limit), int(list.TotalItems))
	sendSuccess(c, http.StatusOK, response)
}

// CreatePost godoc
// @Summary Create a post
// @Description Creates a blog post, deriving the slug from the title when none is given
// @Tags blog
// @Accept json
// @Produce json
// @Param request body requests.CreateBlogPostRequest true "Post content"
// @Success 201 {object} business.BlogPost
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/blog/posts [post]
func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req requests.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid post payload", err)
		return
	}

	post, err := h.blogService.CreatePost(c.Request.Context(), req)
	if err != nil {
		if strings.Contains(err.Error(), "cannot derive a slug") {
			sendError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to create post", err)
		return
	}

	h.logger.Info("Blog post created",
		zap.String("post_id", post.ID),
		zap.String("slug", post.Slug))
	sendSuccess(c, http.StatusCreated, post)
}

// UpdatePost godoc
// @Summary Update a post
// @Description Amends a post's content or publication state
// @Tags blog
// @Accept json
// @Produce json
// @Param post_id path string true "Post ID"
// @Param request body requests.UpdateBlogPostRequest true "Post amendment"
// @Success 200 {object} business.BlogPost
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/blog/posts/{post_id} [patch]
func (h *BlogHandler) UpdatePost(c *gin.Context) {
	postID := c.Param("post_id")
	if postID == "" {
		sendError(c, http.StatusBadRequest, "Post ID is required", nil)
		return
	}

	var req requests.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid post payload", err)
		return
	}

	post, err := h.blogService.UpdatePost(c.Request.Context(), postID, req)
	if err != nil {
		handleUpstreamError(c, err, "Post not found")
		return
	}

	sendSuccess(c, http.StatusOK, post)
}

// DeletePost godoc
// @Summary Delete a post
// @Description Removes a blog post from the site
// @Tags blog
// @Produce json
// @Param post_id path string true "Post ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/blog/posts/{post_id} [delete]
func (h *BlogHandler) DeletePost(c *gin.Context) {
	postID := c.Param("post_id")
	if postID == "" {
		sendError(c, http.StatusBadRequest, "Post ID is required", nil)
		return
	}

	if err := h.blogService.DeletePost(c.Request.Context(), postID); err != nil {
		handleUpstreamError(c, err, "Post not found")
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Post deleted")
}

// UploadImage godoc
// @Summary Upload a CMS image
// @Description Stores a cover image and returns its optimized and thumbnail URLs
// @Tags blog
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Param folder formData string false "Target folder" default(blog)
// @Success 201 {object} responses.UploadedImage
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/blog/images [post]
func (h *BlogHandler) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		sendError(c, http.StatusBadRequest, "Image file is required", err)
		return
	}
	defer file.Close()

	uploaded, err := h.blogService.UploadImage(c.Request.Context(), params.UploadImageParams{
		File:     file,
		Filename: header.Filename,
		Folder:   c.PostForm("folder"),
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to upload image", err)
		return
	}

	h.logger.Info("CMS image uploaded", zap.String("filename", header.Filename))
	sendSuccess(c, http.StatusCreated, uploaded)
}
