package company

import (
	"fmt"

	"jobly/internal/pkg/errs"
)

// Filter narrows a company listing. The zero Filter matches every company.
type Filter struct {
	Name         string
	MinEmployees *int
	MaxEmployees *int
}

func (f Filter) Validate() error {
	if f.MinEmployees != nil && f.MaxEmployees != nil && *f.MinEmployees > *f.MaxEmployees {
		return errs.NewValueIsInvalidErrorWithCause(
			"minEmployees",
			fmt.Errorf("%d is greater than maxEmployees %d", *f.MinEmployees, *f.MaxEmployees),
		)
	}
	return nil
}
