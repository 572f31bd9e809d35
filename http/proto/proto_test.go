package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("canonical literals", func(t *testing.T) {
		require.Equal(t, HTTP09, Parse("HTTP/0.9"))
		require.Equal(t, HTTP10, Parse("HTTP/1.0"))
		require.Equal(t, HTTP11, Parse("HTTP/1.1"))
	})

	t.Run("scheme case is ignored", func(t *testing.T) {
		require.Equal(t, HTTP11, Parse("http/1.1"))
		require.Equal(t, HTTP10, Parse("Http/1.0"))
		require.Equal(t, HTTP09, Parse("hTtP/0.9"))
	})

	t.Run("anything else is rejected", func(t *testing.T) {
		for _, token := range []string{
			"", "HTTP", "HTTP/", "HTTP/1", "HTTP/1.", "HTTP/1.2",
			"HTTP/2.0", "HTTP/0.1", "HTTP/11", "HTTP/1x1", "SMTP/1.1",
			"HTTP/1.1 ", " HTTP/1.1",
		} {
			assert.Equal(t, Unknown, Parse(token), token)
		}
	})
}

func TestString(t *testing.T) {
	require.Equal(t, "HTTP/0.9", HTTP09.String())
	require.Equal(t, "HTTP/1.0", HTTP10.String())
	require.Equal(t, "HTTP/1.1", HTTP11.String())
	require.Empty(t, Unknown.String())

	t.Run("round-trip", func(t *testing.T) {
		for _, p := range []Proto{HTTP09, HTTP10, HTTP11} {
			require.Equal(t, p, Parse(p.String()))
		}
	})
}
