package commands

import (
	"errors"

	"jobly/internal/core/domain/model/company"
	"jobly/internal/core/domain/model/kernel"
	"jobly/internal/pkg/guard"
)

var ErrCreateCompanyCommandIsNotConstructed = errors.New(
	"CreateCompanyCommand must be created via NewCreateCompanyCommand constructor",
)

// CreateCompanyCommand represents a request to register a company.
type CreateCompanyCommand struct {
	company *company.Company
	guard   guard.ConstructorGuard
}

// NewCreateCompanyCommand validates the raw request values. numEmployees and logoURL are optional.
func NewCreateCompanyCommand(
	handle, name, description string, numEmployees *int, logoURL *string,
) (CreateCompanyCommand, error) {
	h, err := kernel.NewHandle(handle)
	if err != nil {
		return CreateCompanyCommand{}, err
	}

	c, err := company.NewCompany(h, name, description, numEmployees, logoURL)
	if err != nil {
		return CreateCompanyCommand{}, err
	}

	return CreateCompanyCommand{company: c, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCompanyCommand) Validate() error {
	return c.guard.Validate(ErrCreateCompanyCommandIsNotConstructed)
}

func (c CreateCompanyCommand) Company() *company.Company {
	return c.company
}
