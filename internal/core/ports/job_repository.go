// Package ports defines the persistence contracts the application layer depends on.
package ports

import (
	"context"

	"jobly/internal/core/domain/model/job"
	"jobly/internal/core/domain/model/kernel"
)

// JobRepository stores jobs.
//
// Failures are reported through the errs package: errs.ErrObjectNotFound for a
// missing id, errs.ErrObjectAlreadyExists for an exact duplicate on Create,
// errs.ErrEmptyUpdate for an empty patch and errs.ErrStore for anything else.
type JobRepository interface {
	// Create stores j and returns it with the generated id.
	Create(ctx context.Context, j *job.Job) (*job.Job, error)

	// FindAll returns the jobs matching filter ordered by title. No match is an empty slice.
	FindAll(ctx context.Context, filter job.Filter) ([]*job.Job, error)

	Get(ctx context.Context, id job.ID) (*job.Job, error)

	// Update applies the set fields of patch and returns the updated job.
	Update(ctx context.Context, id job.ID, patch job.Patch) (*job.Job, error)

	Delete(ctx context.Context, id job.ID) error

	// ListByCompany returns the jobs of a company ordered by id.
	ListByCompany(ctx context.Context, handle kernel.Handle) ([]*job.Job, error)
}
