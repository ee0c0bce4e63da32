package domain

import "context"

// Export formats for job listings.
const (
	ExportFormatXLSX = "xlsx"
	ExportFormatCSV  = "csv"
)

type ExportRequest struct {
	Filter JobFilter
	Format string
}

// ExportFile is a rendered listing ready to be sent as an attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ExportUsecase interface {
	ExportJobs(ctx context.Context, req ExportRequest) (*ExportFile, error)
}
