package commands

import (
	"errors"

	"jobly/internal/core/domain/model/job"
	"jobly/internal/pkg/guard"
)

var ErrUpdateJobCommandIsNotConstructed = errors.New(
	"UpdateJobCommand must be created via NewUpdateJobCommand constructor",
)

// UpdateJobCommand changes the fields set in a job.Patch. An empty patch is
// accepted here and rejected by the repository with errs.ErrEmptyUpdate.
type UpdateJobCommand struct {
	id    job.ID
	patch job.Patch

	guard guard.ConstructorGuard
}

func NewUpdateJobCommand(id job.ID, patch job.Patch) UpdateJobCommand {
	return UpdateJobCommand{id: id, patch: patch, guard: guard.NewConstructorGuard()}
}

func (c UpdateJobCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobCommandIsNotConstructed)
}

func (c UpdateJobCommand) ID() job.ID {
	return c.id
}

func (c UpdateJobCommand) Patch() job.Patch {
	return c.patch
}
