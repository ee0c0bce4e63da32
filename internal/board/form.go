package board

import (
	"job-board-backend/internal/domain"
)

// Form is the "Submit a Job" dialog. The validate tags are checked before
// anything is sent.
type Form struct {
	Title       string `validate:"required"`
	Company     string `validate:"required"`
	Location    string
	Link        string `validate:"required"`
	Description string `validate:"required"`
	Type        domain.JobType
	tags        []string
}

// NewForm returns a form holding the defaults the dialog opens with.
func NewForm() Form {
	return Form{
		Location: domain.DefaultLocation,
		Type:     domain.DefaultJobType,
		tags:     []string{},
	}
}

// Tags returns a copy of the tags in the order they were added.
func (f *Form) Tags() []string {
	out := make([]string, len(f.tags))
	copy(out, f.tags)
	return out
}

// AddTag appends tag unless it is empty or already present (exact match).
func (f *Form) AddTag(tag string) bool {
	if tag == "" {
		return false
	}
	for _, t := range f.tags {
		if t == tag {
			return false
		}
	}
	f.tags = append(f.tags, tag)
	return true
}

// RemoveTag drops every tag equal to tag.
func (f *Form) RemoveTag(tag string) {
	kept := f.tags[:0]
	for _, t := range f.tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	f.tags = kept
}

func (f *Form) input() domain.JobInput {
	location := f.Location
	jobType := string(f.Type)
	return domain.JobInput{
		Title:       f.Title,
		Company:     f.Company,
		Location:    &location,
		Link:        f.Link,
		Description: f.Description,
		Type:        &jobType,
		Tags:        f.Tags(),
	}
}
