package commands

import (
	"errors"

	"jobly/internal/core/domain/model/kernel"
	"jobly/internal/pkg/guard"
)

var ErrDeleteCompanyCommandIsNotConstructed = errors.New(
	"DeleteCompanyCommand must be created via NewDeleteCompanyCommand constructor",
)

// DeleteCompanyCommand removes a company together with all of its jobs.
type DeleteCompanyCommand struct {
	handle kernel.Handle
	guard  guard.ConstructorGuard
}

func NewDeleteCompanyCommand(handle string) (DeleteCompanyCommand, error) {
	h, err := kernel.NewHandle(handle)
	if err != nil {
		return DeleteCompanyCommand{}, err
	}
	return DeleteCompanyCommand{handle: h, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCompanyCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCompanyCommandIsNotConstructed)
}

func (c DeleteCompanyCommand) Handle() kernel.Handle {
	return c.handle
}
