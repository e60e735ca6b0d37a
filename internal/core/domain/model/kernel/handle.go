package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"jobly/internal/pkg/errs"
	"jobly/internal/pkg/guard"
)

// HandleMaxLength matches the width of the companies.handle column.
const HandleMaxLength = 25

// ErrHandleIsNotConstructed is returned when validating a zero-value Handle.
var ErrHandleIsNotConstructed = errs.NewValueIsRequiredError("handle must be created via NewHandle")

var handlePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Handle identifies a company, e.g. "c1" or "anderson-arias-morrow".
// Lowercase letters, digits and dashes, 1 to HandleMaxLength characters.
// The zero value is invalid.
type Handle struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewHandle validates s and returns it as a Handle. Surrounding whitespace is trimmed.
func NewHandle(s string) (Handle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Handle{}, errs.NewValueIsRequiredError("handle")
	}
	if len(s) > HandleMaxLength {
		return Handle{}, errs.NewValueIsOutOfRangeError("handle length", len(s), 1, HandleMaxLength)
	}
	if !handlePattern.MatchString(s) {
		return Handle{}, errs.NewValueIsInvalidErrorWithCause(
			"handle",
			fmt.Errorf("%q must contain only lowercase letters, digits and dashes", s),
		)
	}

	return Handle{value: s, guard: guard.NewConstructorGuard()}, nil
}

// MustHandle is NewHandle for literals known to be valid. It panics otherwise.
func MustHandle(s string) Handle {
	h, err := NewHandle(s)
	if err != nil {
		panic(err)
	}
	return h
}

func (h Handle) String() string {
	return h.value
}

func (h Handle) IsEqual(other Handle) bool {
	return h.value == other.value
}

func (h Handle) Validate() error {
	return h.guard.Validate(ErrHandleIsNotConstructed)
}

func (h Handle) MarshalText() ([]byte, error) {
	return []byte(h.value), nil
}

func (h *Handle) UnmarshalText(b []byte) error {
	parsed, err := NewHandle(string(b))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
