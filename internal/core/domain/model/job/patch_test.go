package job_test

import (
	"testing"

	"jobly/internal/core/domain/model/job"
	"jobly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatch(t *testing.T) {
	t.Run("zero patch is empty", func(t *testing.T) {
		var p job.Patch

		assert.True(t, p.IsEmpty())
		_, ok := p.Title()
		assert.False(t, ok)
	})

	t.Run("explicit null is distinct from absent", func(t *testing.T) {
		var p job.Patch
		require.NoError(t, p.SetSalary(nil))
		p.SetEquity(nil)

		salary, salarySet := p.Salary()
		equity, equitySet := p.Equity()
		_, titleSet := p.Title()

		assert.False(t, p.IsEmpty())
		assert.True(t, salarySet)
		assert.Nil(t, salary)
		assert.True(t, equitySet)
		assert.Nil(t, equity)
		assert.False(t, titleSet)
	})

	t.Run("values are copied", func(t *testing.T) {
		var p job.Patch
		salary := 88
		require.NoError(t, p.SetSalary(&salary))
		p.SetEquity(mustEquity(t, "0.9"))
		salary = 1

		got, _ := p.Salary()
		assert.Equal(t, 88, *got)
		eq, _ := p.Equity()
		assert.Equal(t, "0.9", eq.String())
	})

	t.Run("fields keep first-set order", func(t *testing.T) {
		var p job.Patch
		p.SetEquity(nil)
		require.NoError(t, p.SetTitle("a"))
		require.NoError(t, p.SetSalary(intPtr(1)))
		require.NoError(t, p.SetTitle("b"))

		assert.Equal(t, []string{job.FieldEquity, job.FieldTitle, job.FieldSalary}, p.Fields())
		title, _ := p.Title()
		assert.Equal(t, "b", title)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		var p job.Patch

		require.ErrorIs(t, p.SetTitle(""), errs.ErrValueIsRequired)
		require.ErrorIs(t, p.SetSalary(intPtr(-3)), errs.ErrValueIsOutOfRange)
		assert.True(t, p.IsEmpty())
		assert.Empty(t, p.Fields())
	})
}

func TestFilter_Validate(t *testing.T) {
	require.NoError(t, job.Filter{}.Validate())
	require.NoError(t, job.Filter{MinSalary: intPtr(0)}.Validate())
	require.ErrorIs(t, job.Filter{MinSalary: intPtr(-1)}.Validate(), errs.ErrValueIsOutOfRange)
}
