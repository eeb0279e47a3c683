package services

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/requests"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/responses"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
)

// blogImageFolder is where CMS uploads land on the media CDN.
const blogImageFolder = "blog"

var slugStripPattern = regexp.MustCompile(`[^a-z0-9]+`)

// BlogService manages the public site's articles. Posts live in the
// reservation system of record; cover images are uploaded to the media CDN
// and only their delivery URLs are stored on the post.
type BlogService struct {
	crs      interfaces.CRSAPI
	uploader interfaces.ImageUploader
	logger   *zap.Logger
}

// NewBlogService creates a new blog service
func NewBlogService(crsAPI interfaces.CRSAPI, uploader interfaces.ImageUploader) *BlogService {
	return &BlogService{
		crs:      crsAPI,
		uploader: uploader,
		logger:   logger.Log,
	}
}

// ListPublishedPosts pages through live articles for the public site.
func (s *BlogService) ListPublishedPosts(ctx context.Context, limit, offset int32) (*responses.BlogPostList, error) {
	return s.listPosts(ctx, true, limit, offset)
}

// ListAllPosts pages through every article, drafts included, for the CMS.
func (s *BlogService) ListAllPosts(ctx context.Context, limit, offset int32) (*responses.BlogPostList, error) {
	return s.listPosts(ctx, false, limit, offset)
}

func (s *BlogService) listPosts(ctx context.Context, publishedOnly bool, limit, offset int32) (*responses.BlogPostList, error) {
	page, err := s.crs.ListBlogPosts(ctx, publishedOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	return &responses.BlogPostList{
		Posts:      page.Posts,
		TotalItems: page.TotalItems,
	}, nil
}

// GetPostBySlug resolves one article by its URL slug.
func (s *BlogService) GetPostBySlug(ctx context.Context, slug string) (*business.BlogPost, error) {
	post, err := s.crs.GetBlogPostBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blog post: %w", err)
	}
	return post, nil
}

// CreatePost stores a new article. A missing slug is derived from the title;
// publishing stamps the publication time.
func (s *BlogService) CreatePost(ctx context.Context, req requests.CreateBlogPostRequest) (*business.BlogPost, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}
	if slug == "" {
		return nil, fmt.Errorf("cannot derive a slug from title %q", req.Title)
	}

	post := business.BlogPost{
		Slug:      slug,
		Title:     req.Title,
		Excerpt:   req.Excerpt,
		Body:      req.Body,
		CoverURL:  req.CoverURL,
		Tags:      req.Tags,
		Author:    req.Author,
		Published: req.Published,
	}
	if req.Published {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	created, err := s.crs.CreateBlogPost(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}

	s.logger.Info("Blog post created",
		zap.String("post_id", created.ID),
		zap.String("slug", created.Slug),
		zap.Bool("published", created.Published))
	return created, nil
}

// UpdatePost applies the request's set fields over the stored article. A
// draft flipping to published gets its publication time stamped once.
func (s *BlogService) UpdatePost(ctx context.Context, postID string, req requests.UpdateBlogPostRequest) (*business.BlogPost, error) {
	post, err := s.crs.GetBlogPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blog post: %w", err)
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Excerpt != "" {
		post.Excerpt = req.Excerpt
	}
	if req.Body != "" {
		post.Body = req.Body
	}
	if req.CoverURL != "" {
		post.CoverURL = req.CoverURL
	}
	if req.Tags != nil {
		post.Tags = req.Tags
	}
	if req.Published != nil {
		if *req.Published && !post.Published && post.PublishedAt == nil {
			now := time.Now().UTC()
			post.PublishedAt = &now
		}
		post.Published = *req.Published
	}

	updated, err := s.crs.UpdateBlogPost(ctx, postID, *post)
	if err != nil {
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}

	s.logger.Info("Blog post updated",
		zap.String("post_id", postID),
		zap.Bool("published", updated.Published))
	return updated, nil
}

// DeletePost removes an article.
func (s *BlogService) DeletePost(ctx context.Context, postID string) error {
	if err := s.crs.DeleteBlogPost(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	s.logger.Info("Blog post deleted", zap.String("post_id", postID))
	return nil
}

// UploadImage stores a CMS image on the media CDN and returns its delivery
// URLs. The public ID is derived from the filename plus a random suffix so
// re-uploads never overwrite each other.
func (s *BlogService) UploadImage(ctx context.Context, p params.UploadImageParams) (*responses.UploadedImage, error) {
	folder := p.Folder
	if folder == "" {
		folder = blogImageFolder
	}

	base := strings.TrimSuffix(p.Filename, filepath.Ext(p.Filename))
	publicID := Slugify(base)
	if publicID == "" {
		publicID = "image"
	}
	publicID = fmt.Sprintf("%s-%s", publicID, uuid.New().String()[:8])

	result, err := s.uploader.UploadImage(ctx, p.File, folder, publicID)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	s.logger.Info("Blog image uploaded",
		zap.String("public_id", result.PublicID),
		zap.String("folder", folder))
	return &responses.UploadedImage{
		URL:          result.URL,
		ThumbnailURL: result.ThumbnailURL,
	}, nil
}

// Slugify lowercases text and collapses every non-alphanumeric run into a
// single hyphen.
func Slugify(text string) string {
	slug := slugStripPattern.ReplaceAllString(strings.ToLower(text), "-")
	return strings.Trim(slug, "-")
}
