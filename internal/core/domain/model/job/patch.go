package job

import (
	"strings"

	"jobly/internal/pkg/errs"
)

// Patch is a partial update of a job. Only fields that were set are changed.
//
// Setting salary or equity to nil clears the stored value, which is different
// from not setting the field at all.
type Patch struct {
	title     string
	hasTitle  bool
	salary    *int
	hasSalary bool
	equity    *Equity
	hasEquity bool
	order     []string
}

// Patch field names, as exposed by the API.
const (
	FieldTitle  = "title"
	FieldSalary = "salary"
	FieldEquity = "equity"
)

func (p *Patch) SetTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}
	p.mark(FieldTitle, p.hasTitle)
	p.title, p.hasTitle = title, true
	return nil
}

// SetSalary sets or, with nil, clears the salary.
func (p *Patch) SetSalary(salary *int) error {
	if salary != nil && *salary < 0 {
		return errs.NewValueIsOutOfRangeError("salary", *salary, 0, "unbounded")
	}
	p.mark(FieldSalary, p.hasSalary)
	p.salary, p.hasSalary = copyInt(salary), true
	return nil
}

// SetEquity sets or, with nil, clears the equity.
func (p *Patch) SetEquity(equity *Equity) {
	p.mark(FieldEquity, p.hasEquity)
	p.equity, p.hasEquity = nil, true
	if equity != nil {
		e := *equity
		p.equity = &e
	}
}

func (p Patch) Title() (string, bool) {
	return p.title, p.hasTitle
}

func (p Patch) Salary() (*int, bool) {
	return copyInt(p.salary), p.hasSalary
}

func (p Patch) Equity() (*Equity, bool) {
	if p.equity == nil {
		return nil, p.hasEquity
	}
	e := *p.equity
	return &e, p.hasEquity
}

func (p Patch) IsEmpty() bool {
	return !p.hasTitle && !p.hasSalary && !p.hasEquity
}

// Fields names the set fields in the order they were first set.
func (p Patch) Fields() []string {
	return append([]string(nil), p.order...)
}

func (p *Patch) mark(field string, set bool) {
	if !set {
		p.order = append(p.order, field)
	}
}
