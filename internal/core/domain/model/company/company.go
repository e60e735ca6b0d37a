// Package company provides the Company entity that jobs belong to.
package company

import (
	"errors"
	"strings"

	"jobly/internal/core/domain/model/kernel"
	"jobly/internal/pkg/errs"
)

var ErrCompanyIsNotConstructed = errors.New("Company must be created via NewCompany constructor")

// Company is an employer, identified by its handle.
type Company struct {
	handle       kernel.Handle
	name         string
	description  string
	numEmployees *int
	logoURL      *string

	isConstructed bool
}

func NewCompany(
	handle kernel.Handle, name, description string, numEmployees *int, logoURL *string,
) (*Company, error) {
	c := &Company{isConstructed: true, description: description}

	if err := errors.Join(
		c.setHandle(handle),
		c.setName(name),
		c.setNumEmployees(numEmployees),
	); err != nil {
		return nil, err
	}
	c.logoURL = copyString(logoURL)

	return c, nil
}

// RestoreCompany rebuilds a stored company. The same rules as NewCompany apply.
func RestoreCompany(
	handle kernel.Handle, name, description string, numEmployees *int, logoURL *string,
) (*Company, error) {
	return NewCompany(handle, name, description, numEmployees, logoURL)
}

func (c *Company) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCompanyIsNotConstructed
	}
	return nil
}

func (c *Company) Handle() kernel.Handle {
	return c.handle
}

func (c *Company) Name() string {
	return c.name
}

func (c *Company) Description() string {
	return c.description
}

func (c *Company) NumEmployees() *int {
	return copyInt(c.numEmployees)
}

func (c *Company) LogoURL() *string {
	return copyString(c.logoURL)
}

func (c *Company) setHandle(handle kernel.Handle) error {
	if err := handle.Validate(); err != nil {
		return err
	}
	c.handle = handle
	return nil
}

func (c *Company) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Company) setNumEmployees(n *int) error {
	if n != nil && *n < 0 {
		return errs.NewValueIsOutOfRangeError("numEmployees", *n, 0, "unbounded")
	}
	c.numEmployees = copyInt(n)
	return nil
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
