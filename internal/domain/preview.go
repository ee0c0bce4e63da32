package domain

import "context"

// LinkPreview is the Open Graph summary of a page. It is built per request and never stored.
type LinkPreview struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	URL         string `json:"url"`
}

type PreviewUsecase interface {
	Preview(ctx context.Context, rawURL string) (*LinkPreview, error)
}
