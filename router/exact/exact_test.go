package exact

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nessie-web/nessie/http"
	"github.com/nessie-web/nessie/http/status"
	"github.com/nessie-web/nessie/kv"
)

func newRequest(path string) *http.Request {
	request := http.NewRequest(kv.New(), http.NewResponse(), nil)
	request.Path = path

	return request
}

func TestRouter(t *testing.T) {
	t.Run("positive match", func(t *testing.T) {
		r := New().
			Route("/", func(request *http.Request) *http.Response {
				return http.String(request, "root")
			}).
			Route("/stats", func(request *http.Request) *http.Response {
				return http.String(request, "stats")
			}).
			Build()

		resp := r.OnRequest(newRequest(""))
		require.Equal(t, "root", string(resp.Reveal().Body))

		resp = r.OnRequest(newRequest("/stats"))
		require.Equal(t, "stats", string(resp.Reveal().Body))
	})

	t.Run("trailing slash is normalized at registration", func(t *testing.T) {
		r := New().
			Route("/stats/", func(request *http.Request) *http.Response {
				return http.String(request, "stats")
			}).
			Build()

		resp := r.OnRequest(newRequest("/stats"))
		require.Equal(t, "stats", string(resp.Reveal().Body))
	})

	t.Run("no prefix or wildcard matching", func(t *testing.T) {
		r := New().
			Route("/stats", http.Respond).
			Build()

		resp := r.OnRequest(newRequest("/stats/daily"))
		require.Equal(t, status.NotFound, resp.Reveal().Code)
	})

	t.Run("default handler", func(t *testing.T) {
		t.Run("built-in", func(t *testing.T) {
			resp := New().Build().OnRequest(newRequest("/nowhere"))
			fields := resp.Reveal()
			require.Equal(t, status.NotFound, fields.Code)
			require.Contains(t, string(fields.Body), "Nessie")
		})

		t.Run("custom", func(t *testing.T) {
			r := New().
				Default(func(request *http.Request) *http.Response {
					return http.Code(request, status.Teapot)
				}).
				Build()

			resp := r.OnRequest(newRequest("/nowhere"))
			require.Equal(t, status.Teapot, resp.Reveal().Code)
		})
	})

	t.Run("last registration wins", func(t *testing.T) {
		r := New().
			Route("/", func(request *http.Request) *http.Response {
				return http.String(request, "first")
			}).
			Route("/", func(request *http.Request) *http.Response {
				return http.String(request, "second")
			}).
			Build()

		resp := r.OnRequest(newRequest(""))
		require.Equal(t, "second", string(resp.Reveal().Body))
	})
}

func TestOnError(t *testing.T) {
	t.Run("built-in maps error kinds to codes", func(t *testing.T) {
		for _, tc := range []struct {
			err  error
			want status.Code
		}{
			{status.ErrMethodNotImplemented, status.NotImplemented},
			{status.ErrHTTPVersionNotSupported, status.HTTPVersionNotSupported},
			{status.ErrBadRequest, status.BadRequest},
			{status.ErrNoBodySeparator, status.BadRequest},
		} {
			resp := New().Build().OnError(newRequest(""), tc.err)
			require.Equal(t, tc.want, resp.Reveal().Code)
		}
	})

	t.Run("catch overrides", func(t *testing.T) {
		r := New().
			Catch(func(request *http.Request, err error) *http.Response {
				return http.String(request, "caught: "+err.Error())
			}).
			Build()

		resp := r.OnError(newRequest(""), status.ErrBadRequest)
		require.Equal(t, "caught: bad request", string(resp.Reveal().Body))
	})
}
