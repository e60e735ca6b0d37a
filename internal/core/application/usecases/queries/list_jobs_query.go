package queries

import (
	"errors"

	"jobly/internal/core/domain/model/job"
	"jobly/internal/pkg/guard"
)

var ErrListJobsQueryIsNotConstructed = errors.New(
	"ListJobsQuery must be created via NewListJobsQuery constructor",
)

// ListJobsQuery lists jobs, optionally narrowed by a job.Filter.
//
// Example:
//
//	minSalary := 12000
//	query, err := NewListJobsQuery(job.Filter{Title: "engineer", MinSalary: &minSalary, HasEquity: true})
//	if err != nil {
//	    return err
//	}
//
//	jobs, err := NewListJobsQueryHandler(jobRepo).Handle(ctx, query)
type ListJobsQuery struct {
	filter job.Filter
	guard  guard.ConstructorGuard
}

func NewListJobsQuery(filter job.Filter) (ListJobsQuery, error) {
	if err := filter.Validate(); err != nil {
		return ListJobsQuery{}, err
	}
	return ListJobsQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListJobsQuery) Validate() error {
	return q.guard.Validate(ErrListJobsQueryIsNotConstructed)
}

func (q ListJobsQuery) Filter() job.Filter {
	return q.filter
}
