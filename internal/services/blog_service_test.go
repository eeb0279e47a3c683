package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/crs"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/media"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/mocks"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/services"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/requests"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/business"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"Top 10 Hotels Near Al Haram", "top-10-hotels-near-al-haram"},
		{"  Umrah -- Season   Guide  ", "umrah-season-guide"},
		{"Already-Slugged", "already-slugged"},
		{"!!!", ""},
		{"دليل العمرة", ""}, // non-Latin titles need an explicit slug
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, services.Slugify(tt.text), "slugify %q", tt.text)
	}
}

func TestBlogService_ListPosts(t *testing.T) {
	t.Run("the public listing only asks for published posts", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewBlogService(crsMock, mocks.NewMockImageUploaderForTest(t))

		crsMock.EXPECT().
			ListBlogPosts(gomock.Any(), true, int32(10), int32(0)).
			Return(&crs.BlogPostListResponse{
				Posts:      []business.BlogPost{{ID: "post_1", Slug: "top-10-hotels"}},
				TotalItems: 1,
			}, nil)

		result, err := svc.ListPublishedPosts(context.Background(), 10, 0)

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.TotalItems)
		require.Len(t, result.Posts, 1)
		assert.Equal(t, "top-10-hotels", result.Posts[0].Slug)
	})

	t.Run("the CMS listing includes drafts", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewBlogService(crsMock, mocks.NewMockImageUploaderForTest(t))

		crsMock.EXPECT().
			ListBlogPosts(gomock.Any(), false, int32(10), int32(0)).
			Return(&crs.BlogPostListResponse{TotalItems: 7}, nil)

		result, err := svc.ListAllPosts(context.Background(), 10, 0)

		require.NoError(t, err)
		assert.Equal(t, int64(7), result.TotalItems)
	})
}

func TestBlogService_CreatePost(t *testing.T) {
	t.Run("derives the slug and stamps publication time", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewBlogService(crsMock, mocks.NewMockImageUploaderForTest(t))

		crsMock.EXPECT().
			CreateBlogPost(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, post business.BlogPost) (*business.BlogPost, error) {
				assert.Equal(t, "top-10-hotels-near-al-haram", post.Slug)
				assert.True(t, post.Published)
				require.NotNil(t, post.PublishedAt)
				assert.WithinDuration(t, time.Now().UTC(), *post.PublishedAt, time.Minute)
				post.ID = "post_1"
				return &post, nil
			})

		created, err := svc.CreatePost(context.Background(), requests.CreateBlogPostRequest{
			Title:     "Top 10 Hotels Near Al Haram",
			Body:      "…",
			Published: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "post_1", created.ID)
	})

	t.Run("an explicit slug wins and drafts get no timestamp", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewBlogService(crsMock, mocks.NewMockImageUploaderForTest(t))

		crsMock.EXPECT().
			CreateBlogPost(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, post business.BlogPost) (*business.BlogPost, error) {
				assert.Equal(t, "umrah-guide-2026", post.Slug)
				assert.False(t, post.Published)
				assert.Nil(t, post.PublishedAt)
				return &post, nil
			})

		_, err := svc.CreatePost(context.Background(), requests.CreateBlogPostRequest{
			Title: "دليل العمرة",
			Slug:  "umrah-guide-2026",
			Body:  "…",
		})

		require.NoError(t, err)
	})

	t.Run("a title that yields no slug is rejected", func(t *testing.T) {
		svc := services.NewBlogService(
			mocks.NewMockCRSAPIForTest(t), mocks.NewMockImageUploaderForTest(t))

		created, err := svc.CreatePost(context.Background(), requests.CreateBlogPostRequest{
			Title: "دليل العمرة",
			Body:  "…",
		})

		assert.Nil(t, created)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot derive a slug")
	})
}

func TestBlogService_UpdatePost(t *testing.T) {
	stored := func() *business.BlogPost {
		return &business.BlogPost{
			ID:        "post_1",
			Slug:      "top-10-hotels",
			Title:     "Top 10 Hotels",
			Body:      "original body",
			Tags:      []string{"hotels"},
			Published: false,
		}
	}

	t.Run("merges set fields over the stored post", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewBlogService(crsMock, mocks.NewMockImageUploaderForTest(t))

		crsMock.EXPECT().GetBlogPost(gomock.Any(), "post_1").Return(stored(), nil)
		crsMock.EXPECT().
			UpdateBlogPost(gomock.Any(), "post_1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, post business.BlogPost) (*business.BlogPost, error) {
				assert.Equal(t, "Top 12 Hotels", post.Title)
				assert.Equal(t, "original body", post.Body) // untouched
				assert.Equal(t, []string{"hotels", "makkah"}, post.Tags)
				return &post, nil
			})

		updated, err := svc.UpdatePost(context.Background(), "post_1", requests.UpdateBlogPostRequest{
			Title: "Top 12 Hotels",
			Tags:  []string{"hotels", "makkah"},
		})

		require.NoError(t, err)
		assert.Equal(t, "Top 12 Hotels", updated.Title)
	})

	t.Run("flipping a draft to published stamps the time once", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewBlogService(crsMock, mocks.NewMockImageUploaderForTest(t))

		published := true
		crsMock.EXPECT().GetBlogPost(gomock.Any(), "post_1").Return(stored(), nil)
		crsMock.EXPECT().
			UpdateBlogPost(gomock.Any(), "post_1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, post business.BlogPost) (*business.BlogPost, error) {
				assert.True(t, post.Published)
				require.NotNil(t, post.PublishedAt)
				return &post, nil
			})

		_, err := svc.UpdatePost(context.Background(), "post_1", requests.UpdateBlogPostRequest{
			Published: &published,
		})

		require.NoError(t, err)
	})

	t.Run("unpublishing keeps the original publication time", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewBlogService(crsMock, mocks.NewMockImageUploaderForTest(t))

		firstPublished := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
		post := stored()
		post.Published = true
		post.PublishedAt = &firstPublished

		unpublish := false
		crsMock.EXPECT().GetBlogPost(gomock.Any(), "post_1").Return(post, nil)
		crsMock.EXPECT().
			UpdateBlogPost(gomock.Any(), "post_1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, updated business.BlogPost) (*business.BlogPost, error) {
				assert.False(t, updated.Published)
				assert.Equal(t, &firstPublished, updated.PublishedAt)
				return &updated, nil
			})

		_, err := svc.UpdatePost(context.Background(), "post_1", requests.UpdateBlogPostRequest{
			Published: &unpublish,
		})

		require.NoError(t, err)
	})

	t.Run("a missing post aborts the update", func(t *testing.T) {
		crsMock := mocks.NewMockCRSAPIForTest(t)
		svc := services.NewBlogService(crsMock, mocks.NewMockImageUploaderForTest(t))

		crsMock.EXPECT().
			GetBlogPost(gomock.Any(), "post_404").
			Return(nil, errors.New("404 not found"))

		updated, err := svc.UpdatePost(context.Background(), "post_404", requests.UpdateBlogPostRequest{})

		assert.Nil(t, updated)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch blog post")
	})
}

func TestBlogService_UploadImage(t *testing.T) {
	t.Run("uploads under the blog folder with a slugged public id", func(t *testing.T) {
		uploader := mocks.NewMockImageUploaderForTest(t)
		svc := services.NewBlogService(mocks.NewMockCRSAPIForTest(t), uploader)

		file := strings.NewReader("png-bytes")
		uploader.EXPECT().
			UploadImage(gomock.Any(), file, "blog", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, _ string, publicID string) (*media.UploadResult, error) {
				assert.True(t, strings.HasPrefix(publicID, "al-haram-view-"))
				return &media.UploadResult{
					URL:          "https://media.example/blog/" + publicID + ".webp",
					ThumbnailURL: "https://media.example/blog/thumb/" + publicID + ".webp",
					PublicID:     publicID,
				}, nil
			})

		uploaded, err := svc.UploadImage(context.Background(), params.UploadImageParams{
			File:     file,
			Filename: "Al Haram View.PNG",
		})

		require.NoError(t, err)
		assert.Contains(t, uploaded.URL, "al-haram-view-")
		assert.NotEmpty(t, uploaded.ThumbnailURL)
	})

	t.Run("an unusable filename falls back to a generic public id", func(t *testing.T) {
		uploader := mocks.NewMockImageUploaderForTest(t)
		svc := services.NewBlogService(mocks.NewMockCRSAPIForTest(t), uploader)

		file := strings.NewReader("png-bytes")
		uploader.EXPECT().
			UploadImage(gomock.Any(), file, "covers", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, _ string, publicID string) (*media.UploadResult, error) {
				assert.True(t, strings.HasPrefix(publicID, "image-"))
				return &media.UploadResult{URL: "https://media.example/covers/x.webp"}, nil
			})

		_, err := svc.UploadImage(context.Background(), params.UploadImageParams{
			File:     file,
			Filename: "صورة.png",
			Folder:   "covers",
		})

		require.NoError(t, err)
	})
}

func TestBlogService_DeletePost(t *testing.T) {
	crsMock := mocks.NewMockCRSAPIForTest(t)
	svc := services.NewBlogService(crsMock, mocks.NewMockImageUploaderForTest(t))

	crsMock.EXPECT().DeleteBlogPost(gomock.Any(), "post_1").Return(nil)

	require.NoError(t, svc.DeletePost(context.Background(), "post_1"))
}
