package commands

import (
	"context"

	"jobly/internal/core/ports"
)

type DeleteJobCommandHandler struct {
	jobs ports.JobRepository
}

func NewDeleteJobCommandHandler(jobs ports.JobRepository) DeleteJobCommandHandler {
	return DeleteJobCommandHandler{jobs: jobs}
}

func (h DeleteJobCommandHandler) Handle(ctx context.Context, cmd DeleteJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.jobs.Delete(ctx, cmd.ID())
}
