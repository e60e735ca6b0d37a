package queries

import (
	"context"

	"jobly/internal/core/domain/model/job"
	"jobly/internal/core/ports"
)

// GetJobQueryHandler looks a job up by id. A missing job fails with errs.ErrObjectNotFound.
type GetJobQueryHandler struct {
	jobs ports.JobRepository
}

func NewGetJobQueryHandler(jobs ports.JobRepository) GetJobQueryHandler {
	return GetJobQueryHandler{jobs: jobs}
}

func (h GetJobQueryHandler) Handle(ctx context.Context, query GetJobQuery) (*job.Job, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.jobs.Get(ctx, query.ID())
}
