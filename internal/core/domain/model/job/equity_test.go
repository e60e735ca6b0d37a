package job_test

import (
	"testing"

	"jobly/internal/core/domain/model/job"
	"jobly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEquity(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "0.4", want: "0.4"},
		{in: "0", want: "0"},
		{in: "1", want: "1"},
		{in: "1.0", want: "1.0"},
		{in: " 0.25 ", want: "0.25"},
		{in: "1.01", wantErr: errs.ErrValueIsOutOfRange},
		{in: "2", wantErr: errs.ErrValueIsOutOfRange},
		{in: "-0.1", wantErr: errs.ErrValueIsInvalid},
		{in: "1e-1", wantErr: errs.ErrValueIsInvalid},
		{in: ".5", wantErr: errs.ErrValueIsInvalid},
		{in: "abc", wantErr: errs.ErrValueIsInvalid},
		{in: "", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			e, err := job.ParseEquity(tc.in)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, e.String())
		})
	}
}

func TestEquityFromFloat(t *testing.T) {
	e, err := job.EquityFromFloat(0.4)
	require.NoError(t, err)
	assert.Equal(t, "0.4", e.String())

	_, err = job.EquityFromFloat(2)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = job.EquityFromFloat(-0.5)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
