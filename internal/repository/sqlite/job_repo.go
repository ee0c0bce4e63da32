package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"job-board-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationLower and tagRecord.ValueLower hold strings.ToLower of the
// original; SQLite's lower() folds ASCII only.
type jobRecord struct {
	ID            string `gorm:"primaryKey"`
	Title         string
	Company       string
	Location      string
	LocationLower string
	Link          string
	Description   string
	Type          string      `gorm:"index"`
	CreatedAt     time.Time   `gorm:"index"`
	Tags          []tagRecord `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}

func (jobRecord) TableName() string { return "jobs" }

// tagRecord keeps tag order through Position.
type tagRecord struct {
	ID         uint   `gorm:"primaryKey"`
	JobID      string `gorm:"index"`
	Position   int
	Value      string
	ValueLower string
}

func (tagRecord) TableName() string { return "job_tags" }

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) domain.JobRepository {
	return &jobRepo{db: db}
}

// Migrate creates or updates the jobs and job_tags tables and fills the
// lowered columns of rows written before they existed.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&jobRecord{}, &tagRecord{}); err != nil {
		return fmt.Errorf("migrate jobs: %w", err)
	}
	return backfillLowered(db)
}

func backfillLowered(db *gorm.DB) error {
	var jobs []jobRecord
	if err := db.Select("id", "location").Where("(location_lower IS NULL OR location_lower = '') AND location <> ''").Find(&jobs).Error; err != nil {
		return fmt.Errorf("backfill jobs: %w", err)
	}
	for _, j := range jobs {
		if err := db.Model(&jobRecord{}).Where("id = ?", j.ID).Update("location_lower", strings.ToLower(j.Location)).Error; err != nil {
			return fmt.Errorf("backfill job %s: %w", j.ID, err)
		}
	}

	var tags []tagRecord
	if err := db.Select("id", "value").Where("(value_lower IS NULL OR value_lower = '') AND value <> ''").Find(&tags).Error; err != nil {
		return fmt.Errorf("backfill tags: %w", err)
	}
	for _, t := range tags {
		if err := db.Model(&tagRecord{}).Where("id = ?", t.ID).Update("value_lower", strings.ToLower(t.Value)).Error; err != nil {
			return fmt.Errorf("backfill tag %d: %w", t.ID, err)
		}
	}
	return nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	rec := jobRecord{
		ID:            uuid.NewString(),
		Title:         job.Title,
		Company:       job.Company,
		Location:      job.Location,
		LocationLower: strings.ToLower(job.Location),
		Link:          job.Link,
		Description:   job.Description,
		Type:          string(job.Type),
		CreatedAt:     job.CreatedAt.UTC(),
	}
	for i, tag := range job.Tags {
		rec.Tags = append(rec.Tags, tagRecord{Position: i, Value: tag, ValueLower: strings.ToLower(tag)})
	}

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	job.ID = rec.ID
	return nil
}

func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	q := r.db.WithContext(ctx).
		Model(&jobRecord{}).
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") })

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Location != "" {
		q = q.Where("instr(location_lower, ?) > 0", strings.ToLower(filter.Location))
	}
	if filter.Tag != "" {
		q = q.Where("EXISTS (SELECT 1 FROM job_tags WHERE job_tags.job_id = jobs.id AND instr(job_tags.value_lower, ?) > 0)", strings.ToLower(filter.Tag))
	}

	var recs []jobRecord
	if err := q.Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}

	jobs := make([]domain.Job, 0, len(recs))
	for _, rec := range recs {
		tags := make([]string, 0, len(rec.Tags))
		for _, t := range rec.Tags {
			tags = append(tags, t.Value)
		}
		jobs = append(jobs, domain.Job{
			ID:          rec.ID,
			Title:       rec.Title,
			Company:     rec.Company,
			Location:    rec.Location,
			Link:        rec.Link,
			Description: rec.Description,
			Type:        domain.JobType(rec.Type),
			Tags:        tags,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return jobs, nil
}
