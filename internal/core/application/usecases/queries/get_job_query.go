// Package queries contains the read operations on jobs and companies.
// Queries never change state and return domain objects or read models built from them.
package queries

import (
	"errors"

	"jobly/internal/core/domain/model/job"
	"jobly/internal/pkg/guard"
)

var ErrGetJobQueryIsNotConstructed = errors.New(
	"GetJobQuery must be created via NewGetJobQuery constructor",
)

type GetJobQuery struct {
	id    job.ID
	guard guard.ConstructorGuard
}

func NewGetJobQuery(id job.ID) GetJobQuery {
	return GetJobQuery{id: id, guard: guard.NewConstructorGuard()}
}

func (q GetJobQuery) Validate() error {
	return q.guard.Validate(ErrGetJobQueryIsNotConstructed)
}

func (q GetJobQuery) ID() job.ID {
	return q.id
}
