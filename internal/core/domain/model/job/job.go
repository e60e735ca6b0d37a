package job

import (
	"errors"
	"strings"

	"jobly/internal/core/domain/model/kernel"
	"jobly/internal/pkg/errs"
)

// ErrJobIsNotConstructed is returned when a Job bypassed NewJob and RestoreJob.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructor")

// ID is the store-generated identifier of a job. IDs are never reused.
type ID int64

// Job is a position offered by a company.
//
// A Job built by NewJob has no ID yet (zero); the store assigns one on insert
// and hands back a restored Job.
type Job struct {
	id            ID
	title         string
	salary        *int
	equity        *Equity
	companyHandle kernel.Handle

	isConstructed bool
}

// NewJob validates the fields of a job that has not been stored yet.
// salary and equity are optional (nil).
//
// Example:
//
//	equity, _ := job.ParseEquity("0.25")
//	salary := 50000
//	j, err := job.NewJob("new", &salary, &equity, kernel.MustHandle("c1"))
func NewJob(title string, salary *int, equity *Equity, companyHandle kernel.Handle) (*Job, error) {
	j := &Job{isConstructed: true}

	if err := errors.Join(
		j.setTitle(title),
		j.setSalary(salary),
		j.setEquity(equity),
		j.setCompanyHandle(companyHandle),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob rebuilds a stored job. The same rules as NewJob apply.
func RestoreJob(id ID, title string, salary *int, equity *Equity, companyHandle kernel.Handle) (*Job, error) {
	j, err := NewJob(title, salary, equity, companyHandle)
	if err != nil {
		return nil, err
	}
	j.id = id
	return j, nil
}

func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

func (j *Job) ID() ID {
	return j.id
}

func (j *Job) Title() string {
	return j.title
}

// Salary returns a copy of the salary, nil when not set.
func (j *Job) Salary() *int {
	if j.salary == nil {
		return nil
	}
	s := *j.salary
	return &s
}

// Equity returns a copy of the equity, nil when not set.
func (j *Job) Equity() *Equity {
	if j.equity == nil {
		return nil
	}
	e := *j.equity
	return &e
}

func (j *Job) CompanyHandle() kernel.Handle {
	return j.companyHandle
}

func (j *Job) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}
	j.title = title
	return nil
}

func (j *Job) setSalary(salary *int) error {
	if salary != nil && *salary < 0 {
		return errs.NewValueIsOutOfRangeError("salary", *salary, 0, "unbounded")
	}
	j.salary = copyInt(salary)
	return nil
}

func (j *Job) setEquity(equity *Equity) error {
	if equity == nil {
		j.equity = nil
		return nil
	}
	if equity.text == "" {
		return errs.NewValueIsInvalidError("equity must be created via ParseEquity")
	}
	e := *equity
	j.equity = &e
	return nil
}

func (j *Job) setCompanyHandle(handle kernel.Handle) error {
	if err := handle.Validate(); err != nil {
		return err
	}
	j.companyHandle = handle
	return nil
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
