package company_test

import (
	"testing"

	"jobly/internal/core/domain/model/company"
	"jobly/internal/core/domain/model/kernel"
	"jobly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestNewCompany(t *testing.T) {
	t.Run("should create company", func(t *testing.T) {
		c, err := company.NewCompany(kernel.MustHandle("c1"), "C1", "Desc1", intPtr(1), strPtr("http://c1.img"))

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "c1", c.Handle().String())
		assert.Equal(t, "C1", c.Name())
		assert.Equal(t, "Desc1", c.Description())
		assert.Equal(t, 1, *c.NumEmployees())
		assert.Equal(t, "http://c1.img", *c.LogoURL())
	})

	t.Run("should fail without name and with negative head count", func(t *testing.T) {
		_, err := company.NewCompany(kernel.MustHandle("c1"), "", "", intPtr(-1), nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with zero handle", func(t *testing.T) {
		_, err := company.NewCompany(kernel.Handle{}, "C1", "", nil, nil)

		require.ErrorIs(t, err, kernel.ErrHandleIsNotConstructed)
	})
}

func TestPatch_Each(t *testing.T) {
	var p company.Patch
	require.NoError(t, p.SetNumEmployees(intPtr(5)))
	p.SetLogoURL(nil)
	require.NoError(t, p.SetName("New"))
	require.NoError(t, p.SetNumEmployees(intPtr(6)))

	var names []string
	var values []any
	p.Each(func(field string, value any) {
		names = append(names, field)
		values = append(values, value)
	})

	assert.Equal(t, []string{"numEmployees", "logoUrl", "name"}, names)
	assert.Equal(t, []any{6, nil, "New"}, values)
	assert.False(t, p.IsEmpty())
}

func TestPatch_Empty(t *testing.T) {
	var p company.Patch

	assert.True(t, p.IsEmpty())
	require.ErrorIs(t, p.SetName(" "), errs.ErrValueIsRequired)
	assert.True(t, p.IsEmpty())
}

func TestFilter_Validate(t *testing.T) {
	require.NoError(t, company.Filter{MinEmployees: intPtr(1), MaxEmployees: intPtr(1)}.Validate())
	require.ErrorIs(t, company.Filter{MinEmployees: intPtr(3), MaxEmployees: intPtr(2)}.Validate(), errs.ErrValueIsInvalid)
}
