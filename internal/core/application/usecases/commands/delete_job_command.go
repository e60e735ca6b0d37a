package commands

import (
	"errors"

	"jobly/internal/core/domain/model/job"
	"jobly/internal/pkg/guard"
)

var ErrDeleteJobCommandIsNotConstructed = errors.New(
	"DeleteJobCommand must be created via NewDeleteJobCommand constructor",
)

type DeleteJobCommand struct {
	id    job.ID
	guard guard.ConstructorGuard
}

func NewDeleteJobCommand(id job.ID) DeleteJobCommand {
	return DeleteJobCommand{id: id, guard: guard.NewConstructorGuard()}
}

func (c DeleteJobCommand) Validate() error {
	return c.guard.Validate(ErrDeleteJobCommandIsNotConstructed)
}

func (c DeleteJobCommand) ID() job.ID {
	return c.id
}
