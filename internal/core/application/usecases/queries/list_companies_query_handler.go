package queries

import (
	"context"

	"jobly/internal/core/domain/model/company"
	"jobly/internal/core/ports"
)

type ListCompaniesQueryHandler struct {
	companies ports.CompanyRepository
}

func NewListCompaniesQueryHandler(companies ports.CompanyRepository) ListCompaniesQueryHandler {
	return ListCompaniesQueryHandler{companies: companies}
}

func (h ListCompaniesQueryHandler) Handle(ctx context.Context, query ListCompaniesQuery) ([]*company.Company, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.companies.FindAll(ctx, query.Filter())
}
