package commands

import (
	"context"

	"jobly/internal/core/domain/model/company"
	"jobly/internal/core/ports"
)

// CreateCompanyCommandHandler stores new companies. A taken handle or name
// fails with errs.ErrObjectAlreadyExists.
type CreateCompanyCommandHandler struct {
	companies ports.CompanyRepository
}

func NewCreateCompanyCommandHandler(companies ports.CompanyRepository) CreateCompanyCommandHandler {
	return CreateCompanyCommandHandler{companies: companies}
}

func (h CreateCompanyCommandHandler) Handle(ctx context.Context, cmd CreateCompanyCommand) (*company.Company, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return h.companies.Create(ctx, cmd.Company())
}
