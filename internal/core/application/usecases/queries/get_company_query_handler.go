package queries

import (
	"context"

	"jobly/internal/core/ports"
)

type GetCompanyQueryHandler struct {
	companies ports.CompanyRepository
	jobs      ports.JobRepository
}

func NewGetCompanyQueryHandler(companies ports.CompanyRepository, jobs ports.JobRepository) GetCompanyQueryHandler {
	return GetCompanyQueryHandler{companies: companies, jobs: jobs}
}

// Handle reads the company first, so a missing company is errs.ErrObjectNotFound
// rather than an empty job list.
func (h GetCompanyQueryHandler) Handle(ctx context.Context, query GetCompanyQuery) (GetCompanyQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCompanyQueryResponse{}, err
	}

	c, err := h.companies.Get(ctx, query.Handle())
	if err != nil {
		return GetCompanyQueryResponse{}, err
	}

	jobs, err := h.jobs.ListByCompany(ctx, query.Handle())
	if err != nil {
		return GetCompanyQueryResponse{}, err
	}

	return GetCompanyQueryResponse{Company: c, Jobs: jobs}, nil
}
