package job

import (
	"jobly/internal/pkg/errs"
)

// Filter narrows a job listing. The zero Filter matches every job.
type Filter struct {
	// Title matches case-insensitively anywhere in the job title. Empty means no filter.
	Title string
	// MinSalary, when set, keeps jobs with salary >= *MinSalary. Zero is a real bound.
	MinSalary *int
	// HasEquity keeps only jobs with equity > 0 when true; false filters nothing.
	HasEquity bool
}

func (f Filter) Validate() error {
	if f.MinSalary != nil && *f.MinSalary < 0 {
		return errs.NewValueIsOutOfRangeError("minSalary", *f.MinSalary, 0, "unbounded")
	}
	return nil
}
