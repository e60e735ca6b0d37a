package job

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"jobly/internal/pkg/errs"
)

var equityPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

// Equity is the share of the company offered with a job, a decimal in [0, 1].
// It keeps the decimal text exactly as the store returns it ("0.4", "0.25").
type Equity struct {
	text string
}

// ParseEquity validates s as a plain decimal in [0, 1].
func ParseEquity(s string) (Equity, error) {
	s = strings.TrimSpace(s)
	if !equityPattern.MatchString(s) {
		return Equity{}, errs.NewValueIsInvalidErrorWithCause("equity", fmt.Errorf("%q is not a decimal number", s))
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Equity{}, errs.NewValueIsInvalidErrorWithCause("equity", err)
	}
	if v > 1 {
		return Equity{}, errs.NewValueIsOutOfRangeError("equity", s, 0, 1)
	}

	return Equity{text: s}, nil
}

// EquityFromFloat formats f with the shortest exact representation, so 0.4 becomes "0.4".
func EquityFromFloat(f float64) (Equity, error) {
	if f < 0 || f > 1 {
		return Equity{}, errs.NewValueIsOutOfRangeError("equity", f, 0, 1)
	}
	return ParseEquity(strconv.FormatFloat(f, 'f', -1, 64))
}

func (e Equity) String() string {
	return e.text
}
