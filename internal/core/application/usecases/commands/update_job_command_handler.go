package commands

import (
	"context"

	"jobly/internal/core/domain/model/job"
	"jobly/internal/core/ports"
)

type UpdateJobCommandHandler struct {
	jobs ports.JobRepository
}

func NewUpdateJobCommandHandler(jobs ports.JobRepository) UpdateJobCommandHandler {
	return UpdateJobCommandHandler{jobs: jobs}
}

// Handle returns the job as stored after the update.
func (h UpdateJobCommandHandler) Handle(ctx context.Context, cmd UpdateJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.jobs.Update(ctx, cmd.ID(), cmd.Patch())
}
