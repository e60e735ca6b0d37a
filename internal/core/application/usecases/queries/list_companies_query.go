package queries

import (
	"errors"

	"jobly/internal/core/domain/model/company"
	"jobly/internal/pkg/guard"
)

var ErrListCompaniesQueryIsNotConstructed = errors.New(
	"ListCompaniesQuery must be created via NewListCompaniesQuery constructor",
)

type ListCompaniesQuery struct {
	filter company.Filter
	guard  guard.ConstructorGuard
}

// NewListCompaniesQuery rejects a minEmployees above maxEmployees.
func NewListCompaniesQuery(filter company.Filter) (ListCompaniesQuery, error) {
	if err := filter.Validate(); err != nil {
		return ListCompaniesQuery{}, err
	}
	return ListCompaniesQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCompaniesQuery) Validate() error {
	return q.guard.Validate(ErrListCompaniesQueryIsNotConstructed)
}

func (q ListCompaniesQuery) Filter() company.Filter {
	return q.filter
}
