package kernel_test

import (
	"encoding/json"
	"strings"
	"testing"

	"jobly/internal/core/domain/model/kernel"
	"jobly/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandle(t *testing.T) {
	t.Run("should accept valid handles", func(t *testing.T) {
		for _, s := range []string{"c1", "anderson-arias-morrow", "a", strings.Repeat("x", kernel.HandleMaxLength)} {
			h, err := kernel.NewHandle(s)

			require.NoError(t, err, s)
			require.NoError(t, h.Validate())
			assert.Equal(t, s, h.String())
		}
	})

	t.Run("should trim whitespace", func(t *testing.T) {
		h, err := kernel.NewHandle("  c1 ")

		require.NoError(t, err)
		assert.Equal(t, "c1", h.String())
	})

	t.Run("should reject empty handle", func(t *testing.T) {
		_, err := kernel.NewHandle("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject long handle", func(t *testing.T) {
		_, err := kernel.NewHandle(strings.Repeat("x", kernel.HandleMaxLength+1))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject invalid characters", func(t *testing.T) {
		for _, s := range []string{"C1", "c 1", "-c1", "c1;drop", `c"1`} {
			_, err := kernel.NewHandle(s)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, s)
		}
	})
}

func TestHandle_Validate(t *testing.T) {
	var h kernel.Handle

	err := h.Validate()

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, kernel.ErrHandleIsNotConstructed, err)
}

func TestHandle_IsEqual(t *testing.T) {
	assert.True(t, kernel.MustHandle("c1").IsEqual(kernel.MustHandle("c1")))
	assert.False(t, kernel.MustHandle("c1").IsEqual(kernel.MustHandle("c2")))
}

func TestHandle_JSON(t *testing.T) {
	var payload struct {
		Handle kernel.Handle `json:"handle"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"handle":"c2"}`), &payload))
	assert.Equal(t, "c2", payload.Handle.String())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"handle":"c2"}`, string(out))

	require.Error(t, json.Unmarshal([]byte(`{"handle":"Bad Handle"}`), &payload))
}

func TestMustHandle_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { kernel.MustHandle("") })
}
