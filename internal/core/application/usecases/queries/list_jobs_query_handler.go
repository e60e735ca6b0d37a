package queries

import (
	"context"

	"jobly/internal/core/domain/model/job"
	"jobly/internal/core/ports"
)

// ListJobsQueryHandler returns matching jobs ordered by title. No match is an empty slice.
type ListJobsQueryHandler struct {
	jobs ports.JobRepository
}

func NewListJobsQueryHandler(jobs ports.JobRepository) ListJobsQueryHandler {
	return ListJobsQueryHandler{jobs: jobs}
}

func (h ListJobsQueryHandler) Handle(ctx context.Context, query ListJobsQuery) ([]*job.Job, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.jobs.FindAll(ctx, query.Filter())
}
