// Package board holds the job board's client-side state: the filter panel,
// the listing and the submission dialog. Rendering is left to callers.
package board

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"job-board-backend/internal/domain"
	"job-board-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// TypeAll is the "All Types" option of the type filter.
const TypeAll = "all"

const (
	MsgFetchFailed   = "Failed to fetch jobs"
	MsgMissingFields = "Please fill in all required fields"
	MsgSubmitted     = "Job submitted successfully"
	MsgSubmitFailed  = "Failed to submit job"
)

// ErrMissingFields is returned by Submit when a required field is blank.
var ErrMissingFields = errors.New("board: required fields missing")

// JobsAPI is the subset of the HTTP API the board calls.
type JobsAPI interface {
	ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error)
	CreateJob(ctx context.Context, in domain.JobInput) error
}

type Level int

const (
	LevelSuccess Level = iota
	LevelError
)

// Notice is a user-visible message such as a toast.
type Notice struct {
	Level   Level
	Message string
}

type Notifier interface {
	Notify(Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }

// Board is safe for concurrent use. The lock is never held during API calls.
type Board struct {
	api      JobsAPI
	notifier Notifier
	validate *validator.Validate

	mu          sync.Mutex
	filters     domain.JobFilter
	showFilters bool
	jobs        []domain.Job
	form        Form
	dialogOpen  bool
	listSeq     uint64
}

func New(api JobsAPI, notifier Notifier) *Board {
	if notifier == nil {
		notifier = NotifierFunc(func(Notice) {})
	}
	return &Board{
		api:      api,
		notifier: notifier,
		validate: validator.New(),
		jobs:     []domain.Job{},
		form:     NewForm(),
	}
}

// Mount performs the initial listing.
func (b *Board) Mount(ctx context.Context) error {
	return b.refresh(ctx)
}

func (b *Board) Jobs() []domain.Job {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Job, len(b.jobs))
	copy(out, b.jobs)
	return out
}

func (b *Board) Filters() domain.JobFilter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.filters
}

// SetFilters replaces the filters and lists again.
func (b *Board) SetFilters(ctx context.Context, f domain.JobFilter) error {
	if f.Type == TypeAll {
		f.Type = ""
	}
	b.mu.Lock()
	b.filters = f
	b.mu.Unlock()
	return b.refresh(ctx)
}

// ResetFilters clears every filter, hides the panel and lists again.
func (b *Board) ResetFilters(ctx context.Context) error {
	b.mu.Lock()
	b.filters = domain.JobFilter{}
	b.showFilters = false
	b.mu.Unlock()
	return b.refresh(ctx)
}

func (b *Board) ToggleFilters() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.showFilters = !b.showFilters
	return b.showFilters
}

func (b *Board) FiltersVisible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.showFilters
}

func (b *Board) OpenDialog() {
	b.mu.Lock()
	b.dialogOpen = true
	b.mu.Unlock()
}

func (b *Board) CloseDialog() {
	b.mu.Lock()
	b.dialogOpen = false
	b.mu.Unlock()
}

func (b *Board) DialogOpen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dialogOpen
}

// Form returns a snapshot of the dialog fields.
func (b *Board) Form() Form {
	b.mu.Lock()
	defer b.mu.Unlock()
	f := b.form
	f.tags = b.form.Tags()
	return f
}

// EditForm applies edit to the dialog fields under the board's lock.
func (b *Board) EditForm(edit func(*Form)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	edit(&b.form)
}

func (b *Board) AddTag(tag string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.form.AddTag(tag)
}

func (b *Board) RemoveTag(tag string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.form.RemoveTag(tag)
}

// Submit sends the form. A blank required field aborts before any call is
// made. On success the listing is refreshed, the dialog closed and the form
// reset; on failure the form is kept.
func (b *Board) Submit(ctx context.Context) error {
	b.mu.Lock()
	form := b.form
	form.tags = b.form.Tags()
	b.mu.Unlock()

	if err := b.validate.Struct(form); err != nil {
		b.notifier.Notify(Notice{Level: LevelError, Message: MsgMissingFields})
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(validation.MissingFields(err), ", "))
	}

	if err := b.api.CreateJob(ctx, form.input()); err != nil {
		b.notifier.Notify(Notice{Level: LevelError, Message: MsgSubmitFailed})
		return err
	}

	b.notifier.Notify(Notice{Level: LevelSuccess, Message: MsgSubmitted})

	b.mu.Lock()
	b.dialogOpen = false
	b.form = NewForm()
	b.mu.Unlock()

	return b.refresh(ctx)
}

// refresh lists with the current filters. When calls overlap only the most
// recently issued one may update the board; older results are dropped.
func (b *Board) refresh(ctx context.Context) error {
	b.mu.Lock()
	b.listSeq++
	seq := b.listSeq
	filters := b.filters
	b.mu.Unlock()

	jobs, err := b.api.ListJobs(ctx, filters)

	b.mu.Lock()
	stale := seq != b.listSeq
	if !stale && err == nil {
		if jobs == nil {
			jobs = []domain.Job{}
		}
		b.jobs = jobs
	}
	b.mu.Unlock()

	if stale {
		return nil
	}
	if err != nil {
		b.notifier.Notify(Notice{Level: LevelError, Message: MsgFetchFailed})
		return err
	}
	return nil
}
