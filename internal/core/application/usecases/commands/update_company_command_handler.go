package commands

import (
	"context"

	"jobly/internal/core/domain/model/company"
	"jobly/internal/core/ports"
)

type UpdateCompanyCommandHandler struct {
	companies ports.CompanyRepository
}

func NewUpdateCompanyCommandHandler(companies ports.CompanyRepository) UpdateCompanyCommandHandler {
	return UpdateCompanyCommandHandler{companies: companies}
}

func (h UpdateCompanyCommandHandler) Handle(ctx context.Context, cmd UpdateCompanyCommand) (*company.Company, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.companies.Update(ctx, cmd.Handle(), cmd.Patch())
}
