package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPError(t *testing.T) {
	t.Run("carries code and message", func(t *testing.T) {
		err := NewError(Teapot, "short and stout")
		require.EqualError(t, err, "short and stout")

		httpErr, ok := err.(HTTPError)
		require.True(t, ok)
		require.Equal(t, Teapot, httpErr.Code)
	})

	t.Run("comparable as sentinel", func(t *testing.T) {
		require.Equal(t, ErrBadRequest, NewError(BadRequest, "bad request"))
		require.NotEqual(t, ErrBadRequest, ErrBadEncoding)
	})

	t.Run("parse failures carry distinct kinds", func(t *testing.T) {
		kinds := []error{
			ErrBadRequest, ErrNoBodySeparator, ErrMalformedHeader,
			ErrBadEncoding, ErrMethodNotImplemented, ErrHTTPVersionNotSupported,
		}
		seen := make(map[error]bool, len(kinds))
		for _, kind := range kinds {
			require.False(t, seen[kind])
			seen[kind] = true
		}
	})
}
