package commands

import (
	"context"

	"jobly/internal/core/domain/model/job"
	"jobly/internal/core/ports"
)

// CreateJobCommandHandler stores new jobs. An exact duplicate of an existing
// posting fails with errs.ErrObjectAlreadyExists.
type CreateJobCommandHandler struct {
	jobs ports.JobRepository
}

func NewCreateJobCommandHandler(jobs ports.JobRepository) CreateJobCommandHandler {
	return CreateJobCommandHandler{jobs: jobs}
}

// Handle returns the stored job with its generated id.
func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	j, err := job.NewJob(cmd.Title(), cmd.Salary(), cmd.Equity(), cmd.CompanyHandle())
	if err != nil {
		return nil, err
	}

	return h.jobs.Create(ctx, j)
}
