package commands

import (
	"errors"

	"jobly/internal/core/domain/model/company"
	"jobly/internal/core/domain/model/kernel"
	"jobly/internal/pkg/guard"
)

var ErrUpdateCompanyCommandIsNotConstructed = errors.New(
	"UpdateCompanyCommand must be created via NewUpdateCompanyCommand constructor",
)

// UpdateCompanyCommand changes the fields set in a company.Patch. The handle itself never changes.
type UpdateCompanyCommand struct {
	handle kernel.Handle
	patch  company.Patch

	guard guard.ConstructorGuard
}

func NewUpdateCompanyCommand(handle string, patch company.Patch) (UpdateCompanyCommand, error) {
	h, err := kernel.NewHandle(handle)
	if err != nil {
		return UpdateCompanyCommand{}, err
	}
	return UpdateCompanyCommand{handle: h, patch: patch, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateCompanyCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCompanyCommandIsNotConstructed)
}

func (c UpdateCompanyCommand) Handle() kernel.Handle {
	return c.handle
}

func (c UpdateCompanyCommand) Patch() company.Patch {
	return c.patch
}
