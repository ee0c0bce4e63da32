package usecase

import (
	"context"

	"job-board-backend/internal/domain"
	"job-board-backend/pkg/apperror"
	"job-board-backend/pkg/opengraph"
)

// OpenGraphFetcher is satisfied by *opengraph.Client.
type OpenGraphFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*opengraph.Metadata, error)
}

type previewUsecase struct {
	fetcher OpenGraphFetcher
}

func NewPreviewUsecase(fetcher OpenGraphFetcher) domain.PreviewUsecase {
	return &previewUsecase{fetcher: fetcher}
}

func (u *previewUsecase) Preview(ctx context.Context, rawURL string) (*domain.LinkPreview, error) {
	if rawURL == "" {
		return nil, apperror.BadRequest("Invalid URL")
	}

	md, err := u.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch preview", err)
	}

	return &domain.LinkPreview{
		Title:       md.Title,
		Description: md.Description,
		Image:       md.Image,
		URL:         rawURL,
	}, nil
}
