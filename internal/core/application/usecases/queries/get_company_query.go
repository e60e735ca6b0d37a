package queries

import (
	"errors"

	"jobly/internal/core/domain/model/company"
	"jobly/internal/core/domain/model/job"
	"jobly/internal/core/domain/model/kernel"
	"jobly/internal/pkg/guard"
)

var ErrGetCompanyQueryIsNotConstructed = errors.New(
	"GetCompanyQuery must be created via NewGetCompanyQuery constructor",
)

type GetCompanyQuery struct {
	handle kernel.Handle
	guard  guard.ConstructorGuard
}

func NewGetCompanyQuery(handle string) (GetCompanyQuery, error) {
	h, err := kernel.NewHandle(handle)
	if err != nil {
		return GetCompanyQuery{}, err
	}
	return GetCompanyQuery{handle: h, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCompanyQuery) Validate() error {
	return q.guard.Validate(ErrGetCompanyQueryIsNotConstructed)
}

func (q GetCompanyQuery) Handle() kernel.Handle {
	return q.handle
}

// GetCompanyQueryResponse is a company with the jobs it offers, ordered by id.
type GetCompanyQueryResponse struct {
	Company *company.Company
	Jobs    []*job.Job
}
