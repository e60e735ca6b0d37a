package commands

import (
	"errors"

	"jobly/internal/core/domain/model/job"
	"jobly/internal/core/domain/model/kernel"
	"jobly/internal/pkg/guard"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand represents a request to post a new job for a company.
//
// Example:
//
//	salary, equity := 50000, "0.25"
//	cmd, err := NewCreateJobCommand("new", &salary, &equity, "c1")
//	if err != nil {
//	    return fmt.Errorf("invalid job: %w", err)
//	}
//
//	handler := NewCreateJobCommandHandler(jobRepo)
//	created, err := handler.Handle(ctx, cmd)
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	title         string
	salary        *int
	equity        *job.Equity
	companyHandle kernel.Handle

	guard guard.ConstructorGuard
}

// NewCreateJobCommand validates the raw request values. salary and equity are optional.
func NewCreateJobCommand(title string, salary *int, equity *string, companyHandle string) (CreateJobCommand, error) {
	cmd := CreateJobCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setEquity(equity),
		cmd.setCompanyHandle(companyHandle),
	); err != nil {
		return CreateJobCommand{}, err
	}

	// Title and salary rules belong to the entity.
	if _, err := job.NewJob(title, salary, cmd.equity, cmd.companyHandle); err != nil {
		return CreateJobCommand{}, err
	}
	cmd.title = title
	if salary != nil {
		s := *salary
		cmd.salary = &s
	}

	return cmd, nil
}

func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

func (c CreateJobCommand) Title() string {
	return c.title
}

func (c CreateJobCommand) Salary() *int {
	if c.salary == nil {
		return nil
	}
	s := *c.salary
	return &s
}

func (c CreateJobCommand) Equity() *job.Equity {
	if c.equity == nil {
		return nil
	}
	e := *c.equity
	return &e
}

func (c CreateJobCommand) CompanyHandle() kernel.Handle {
	return c.companyHandle
}

func (c *CreateJobCommand) setEquity(equity *string) error {
	if equity == nil {
		return nil
	}
	e, err := job.ParseEquity(*equity)
	if err != nil {
		return err
	}
	c.equity = &e
	return nil
}

func (c *CreateJobCommand) setCompanyHandle(handle string) error {
	h, err := kernel.NewHandle(handle)
	if err != nil {
		return err
	}
	c.companyHandle = h
	return nil
}
