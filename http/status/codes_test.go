package status

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	t.Run("known codes", func(t *testing.T) {
		require.Equal(t, Status("OK"), Text(OK))
		require.Equal(t, Status("Not Found"), Text(NotFound))
		require.Equal(t, Status("I'm a teapot"), Text(Teapot))
		require.Equal(t, Status("HTTP Version Not Supported"), Text(HTTPVersionNotSupported))
	})

	t.Run("unknown code", func(t *testing.T) {
		require.Equal(t, Status("Unknown Status Code"), Text(Code(999)))
	})
}

func TestCodeStatus(t *testing.T) {
	t.Run("matches Text", func(t *testing.T) {
		for _, code := range []Code{
			OK, Created, NoContent, MovedPermanently, Found, NotModified,
			BadRequest, Unauthorized, Forbidden, NotFound, MethodNotAllowed,
			RequestEntityTooLarge, InternalServerError, NotImplemented,
			ServiceUnavailable, HTTPVersionNotSupported,
		} {
			want := strconv.Itoa(int(code)) + " " + string(Text(code)) + "\r\n"
			require.Equal(t, want, CodeStatus(code))
		}
	})

	t.Run("unknown code renders nothing", func(t *testing.T) {
		require.Empty(t, CodeStatus(Teapot))
		require.Empty(t, CodeStatus(Code(999)))
	})

	t.Run("terminated by crlf", func(t *testing.T) {
		require.True(t, strings.HasSuffix(CodeStatus(OK), "\r\n"))
	})
}
