package commands

import (
	"context"

	"jobly/internal/core/ports"
)

type DeleteCompanyCommandHandler struct {
	companies ports.CompanyRepository
}

func NewDeleteCompanyCommandHandler(companies ports.CompanyRepository) DeleteCompanyCommandHandler {
	return DeleteCompanyCommandHandler{companies: companies}
}

func (h DeleteCompanyCommandHandler) Handle(ctx context.Context, cmd DeleteCompanyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.companies.Delete(ctx, cmd.Handle())
}
