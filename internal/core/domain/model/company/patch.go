package company

import (
	"strings"

	"jobly/internal/pkg/errs"
)

// Patch field names, as exposed by the API.
const (
	FieldName         = "name"
	FieldDescription  = "description"
	FieldNumEmployees = "numEmployees"
	FieldLogoURL      = "logoUrl"
)

// Patch is a partial update of a company. The handle is not updatable.
type Patch struct {
	values map[string]any
	order  []string
}

func (p *Patch) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.set(FieldName, name)
	return nil
}

func (p *Patch) SetDescription(description string) {
	p.set(FieldDescription, description)
}

// SetNumEmployees sets or, with nil, clears the head count.
func (p *Patch) SetNumEmployees(n *int) error {
	if n != nil && *n < 0 {
		return errs.NewValueIsOutOfRangeError("numEmployees", *n, 0, "unbounded")
	}
	if n == nil {
		p.set(FieldNumEmployees, nil)
		return nil
	}
	p.set(FieldNumEmployees, *n)
	return nil
}

// SetLogoURL sets or, with nil, clears the logo.
func (p *Patch) SetLogoURL(url *string) {
	if url == nil {
		p.set(FieldLogoURL, nil)
		return
	}
	p.set(FieldLogoURL, *url)
}

// Each calls fn for every set field in the order the fields were first set.
// A cleared field is reported with a nil value.
func (p Patch) Each(fn func(field string, value any)) {
	for _, name := range p.order {
		fn(name, p.values[name])
	}
}

func (p Patch) IsEmpty() bool {
	return len(p.order) == 0
}

func (p *Patch) set(field string, value any) {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[field]; !ok {
		p.order = append(p.order, field)
	}
	p.values[field] = value
}
