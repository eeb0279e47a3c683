package business

import "time"

// BlogPost is a CMS article owned by the reservation system of record.
// Cover images are hosted on Cloudinary; this tier uploads them and stores
// only the resulting URLs on the post.
type BlogPost struct {
	ID           string     `json:"id"`
	Slug         string     `json:"slug"`
	Title        string     `json:"title"`
	Excerpt      string     `json:"excerpt,omitempty"`
	Body         string     `json:"body"`
	CoverURL     string     `json:"cover_url,omitempty"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	Author       string     `json:"author,omitempty"`
	Published    bool       `json:"published"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
