package httputil_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xeptore/dcue/errutil"
	"github.com/xeptore/dcue/httputil"
)

func response(body string) *http.Response {
	return &http.Response{Body: io.NopCloser(strings.NewReader(body))} //nolint:exhaustruct
}

func TestReadResponseBody(t *testing.T) {
	t.Parallel()

	t.Run("non_empty", func(t *testing.T) {
		t.Parallel()
		b, err := httputil.ReadResponseBody(t.Context(), response(`{"id":1}`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":1}`, string(b))
	})

	t.Run("empty_is_flaw", func(t *testing.T) {
		t.Parallel()
		_, err := httputil.ReadResponseBody(t.Context(), response(""))
		require.Error(t, err)
		assert.True(t, errutil.IsFlaw(err))
	})

	t.Run("optional_empty", func(t *testing.T) {
		t.Parallel()
		b, err := httputil.ReadOptionalResponseBody(t.Context(), response(""))
		require.NoError(t, err)
		assert.Empty(t, b)
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	msg, err := httputil.ErrorMessage([]byte(`{"message": "You are making requests too quickly."}`))
	require.NoError(t, err)
	assert.Equal(t, "You are making requests too quickly.", msg)

	_, err = httputil.ErrorMessage([]byte(`<html>`))
	require.Error(t, err)
	assert.True(t, errutil.IsFlaw(err))
}
