package domain

import (
	"context"
	"time"
)

type JobType string

const (
	JobTypeFullTime   JobType = "Full Time"
	JobTypePartTime   JobType = "Part Time"
	JobTypeInternship JobType = "Internship"
	JobTypeContract   JobType = "Contract"
)

// Defaults applied when a create request omits the field.
const (
	DefaultLocation = "Remote"
	DefaultJobType  = JobTypeFullTime
)

// JobTypes lists the values offered by the board, in display order.
var JobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeContract}

// Job is a posting on the board. Jobs are never updated or deleted once stored.
type Job struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	Type        JobType   `json:"type"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}

// JobInput is the create payload. Nil Location/Type/Tags mean "not supplied";
// an empty string is stored as-is.
type JobInput struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    *string  `json:"location"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	Type        *string  `json:"type"`
	Tags        []string `json:"tags"`
}

// NewJob builds an unsaved Job from input, filling defaults.
func NewJob(in JobInput, now time.Time) *Job {
	job := &Job{
		Title:       in.Title,
		Company:     in.Company,
		Location:    DefaultLocation,
		Link:        in.Link,
		Description: in.Description,
		Type:        DefaultJobType,
		Tags:        []string{},
		CreatedAt:   now,
	}
	if in.Location != nil {
		job.Location = *in.Location
	}
	if in.Type != nil {
		job.Type = JobType(*in.Type)
	}
	if in.Tags != nil {
		job.Tags = append(job.Tags, in.Tags...)
	}
	return job
}

// JobFilter narrows a listing. Empty fields add no constraint.
//   - Type matches exactly.
//   - Location is a case-insensitive substring of the job's location.
//   - Tag is a case-insensitive substring of any of the job's tags.
type JobFilter struct {
	Type     string `json:"type"`
	Location string `json:"location"`
	Tag      string `json:"tag"`
}

type JobRepository interface {
	// Create stores job and sets job.ID.
	Create(ctx context.Context, job *Job) error
	// Fetch returns every job matching filter, newest CreatedAt first.
	Fetch(ctx context.Context, filter JobFilter) ([]Job, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, in JobInput) (*Job, error)
	ListJobs(ctx context.Context, filter JobFilter) ([]Job, error)
}
