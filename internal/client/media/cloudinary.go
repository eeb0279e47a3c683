package media

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
)

// MediaConfig holds the Cloudinary credentials.
type MediaConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// Delivery transformations applied to uploaded blog images.
const (
	imageEager = "q_auto,f_auto,w_800,c_fill"
	imageWidth = 800
	thumbWidth = 200
)

var eagerAsyncFalse = false

// MediaClient uploads blog images to Cloudinary and builds optimized
// delivery URLs.
type MediaClient struct {
	cloudName string
	uploader  *uploader.API
}

func NewMediaClient(cfg MediaConfig) (*MediaClient, error) {
	sdkConfig, err := config.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to configure media client: %w", err)
	}
	up, err := uploader.NewWithConfiguration(sdkConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create media uploader: %w", err)
	}
	return &MediaClient{
		cloudName: cfg.CloudName,
		uploader:  up,
	}, nil
}

// UploadResult carries the stored image's delivery URLs.
type UploadResult struct {
	URL          string
	ThumbnailURL string
	PublicID     string
}

// UploadImage uploads an image with eager optimizations so the public site
// serves a resized, format-negotiated asset.
func (c *MediaClient) UploadImage(ctx context.Context, file io.Reader, folder, publicID string) (*UploadResult, error) {
	result, err := c.uploader.Upload(ctx, file, uploader.UploadParams{
		Folder:     folder,
		PublicID:   publicID,
		Eager:      imageEager,
		EagerAsync: &eagerAsyncFalse,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	upload := &UploadResult{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
	}
	if len(result.Eager) > 0 {
		upload.ThumbnailURL = result.Eager[0].SecureURL
	}
	if upload.ThumbnailURL == "" {
		upload.ThumbnailURL = BuildOptimizedImageURL(c.cloudName, result.PublicID, thumbWidth)
	}

	return upload, nil
}

// BuildOptimizedImageURL returns a Cloudinary URL with delivery
// transformations for an existing public ID.
func BuildOptimizedImageURL(cloudName, publicID string, width int) string {
	if width <= 0 {
		width = imageWidth
	}
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/q_auto,f_auto,w_%d,c_fill/%s",
		cloudName, width, publicID)
}
