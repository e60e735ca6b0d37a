// Package jobrepo stores jobs in PostgreSQL through pgx.
package jobrepo

import (
	"fmt"

	"jobly/internal/core/domain/model/job"
	"jobly/internal/core/domain/model/kernel"
	"jobly/internal/pkg/errs"
	"jobly/internal/pkg/sqlpatch"
)

// jobRow mirrors one row of the jobs table. Equity travels as text so the
// decimal comes back exactly as stored.
type jobRow struct {
	ID            int64   `db:"id"`
	Title         string  `db:"title"`
	Salary        *int    `db:"salary"`
	Equity        *string `db:"equity"`
	CompanyHandle string  `db:"company_handle"`
}

func fromDomain(j *job.Job) jobRow {
	row := jobRow{
		ID:            int64(j.ID()),
		Title:         j.Title(),
		Salary:        j.Salary(),
		CompanyHandle: j.CompanyHandle().String(),
	}
	if e := j.Equity(); e != nil {
		s := e.String()
		row.Equity = &s
	}
	return row
}

// toDomain fails with a StoreError when a stored row breaks the domain rules.
func toDomain(row jobRow) (*job.Job, error) {
	j, err := restore(row)
	if err != nil {
		return nil, errs.NewStoreError("decode job", fmt.Errorf("job %d: %w", row.ID, err))
	}
	return j, nil
}

func restore(row jobRow) (*job.Job, error) {
	handle, err := kernel.NewHandle(row.CompanyHandle)
	if err != nil {
		return nil, err
	}

	var equity *job.Equity
	if row.Equity != nil {
		e, err := job.ParseEquity(*row.Equity)
		if err != nil {
			return nil, err
		}
		equity = &e
	}

	return job.RestoreJob(job.ID(row.ID), row.Title, row.Salary, equity, handle)
}

func toDomainList(rows []jobRow) ([]*job.Job, error) {
	jobs := make([]*job.Job, 0, len(rows))
	for _, row := range rows {
		j, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// duplicateKey names the four fields that identify a posting.
func (r jobRow) duplicateKey() string {
	salary, equity := "null", "null"
	if r.Salary != nil {
		salary = fmt.Sprint(*r.Salary)
	}
	if r.Equity != nil {
		equity = *r.Equity
	}
	return fmt.Sprintf("title=%s, salary=%s, equity=%s, companyHandle=%s", r.Title, salary, equity, r.CompanyHandle)
}

// patchFields lists the set fields of p in the order they were set.
// A cleared field carries a nil value.
func patchFields(p job.Patch) sqlpatch.Fields {
	var fields sqlpatch.Fields
	for _, name := range p.Fields() {
		switch name {
		case job.FieldTitle:
			title, _ := p.Title()
			fields = fields.Set(name, title)
		case job.FieldSalary:
			if salary, _ := p.Salary(); salary != nil {
				fields = fields.Set(name, *salary)
			} else {
				fields = fields.Set(name, nil)
			}
		case job.FieldEquity:
			if equity, _ := p.Equity(); equity != nil {
				fields = fields.Set(name, equity.String())
			} else {
				fields = fields.Set(name, nil)
			}
		}
	}
	return fields
}
