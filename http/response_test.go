package http

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nessie-web/nessie/http/proto"
	"github.com/nessie-web/nessie/http/status"
	"github.com/nessie-web/nessie/kv"
)

func TestResponse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		fields := NewResponse().Reveal()
		require.Equal(t, status.OK, fields.Code)
		require.Equal(t, proto.HTTP11, fields.Proto)
		require.Empty(t, fields.Status)
		require.Nil(t, fields.Body)
		require.True(t, fields.Headers.Empty())
	})

	t.Run("builder", func(t *testing.T) {
		fields := NewResponse().
			Proto(proto.HTTP10).
			Code(status.Teapot).
			Status("Kettle").
			Header("Server", "nessie").
			String("short and stout").
			Reveal()

		require.Equal(t, proto.HTTP10, fields.Proto)
		require.Equal(t, status.Teapot, fields.Code)
		require.Equal(t, status.Status("Kettle"), fields.Status)
		require.Equal(t, "nessie", fields.Headers.Value("server"))
		require.Equal(t, "short and stout", string(fields.Body))
	})

	t.Run("header override", func(t *testing.T) {
		fields := NewResponse().
			Header("Server", "nessie").
			Header("SERVER", "nessie/2").
			Reveal()

		require.Equal(t, []kv.Pair{{Key: "Server", Value: "nessie/2"}}, fields.Headers.Expose())
	})

	t.Run("empty body still counts as set", func(t *testing.T) {
		fields := NewResponse().String("").Reveal()
		require.NotNil(t, fields.Body)
		require.Empty(t, fields.Body)
	})

	t.Run("nil bytes unset the body", func(t *testing.T) {
		fields := NewResponse().String("payload").Bytes(nil).Reveal()
		require.Nil(t, fields.Body)
	})

	t.Run("JSON", func(t *testing.T) {
		resp, err := NewResponse().TryJSON([]int{1, 2, 3})
		require.NoError(t, err)

		fields := resp.Reveal()
		require.Equal(t, "[1,2,3]", string(fields.Body))
		require.Equal(t, "application/json", fields.Headers.Value("content-type"))
	})

	t.Run("error with attached code", func(t *testing.T) {
		fields := NewResponse().Error(status.ErrNotFound).Reveal()
		require.Equal(t, status.NotFound, fields.Code)
		require.Nil(t, fields.Body)
	})

	t.Run("plain error defaults to 500", func(t *testing.T) {
		fields := NewResponse().Error(errors.New("some crap happened, unable to recover")).Reveal()
		require.Equal(t, status.InternalServerError, fields.Code)
		require.Equal(t, "some crap happened, unable to recover", string(fields.Body))
	})

	t.Run("nil error changes nothing", func(t *testing.T) {
		fields := NewResponse().Error(nil).Reveal()
		require.Equal(t, status.OK, fields.Code)
	})

	t.Run("clear", func(t *testing.T) {
		resp := NewResponse().
			Proto(proto.HTTP09).
			Code(status.NotFound).
			Status("Gone Fishing").
			Header("Server", "nessie").
			String("monster")

		fields := resp.Clear().Reveal()
		require.Equal(t, proto.HTTP11, fields.Proto)
		require.Equal(t, status.OK, fields.Code)
		require.Empty(t, fields.Status)
		require.True(t, fields.Headers.Empty())
		require.Nil(t, fields.Body)
	})
}

func TestRequest(t *testing.T) {
	t.Run("respond clears the bound builder", func(t *testing.T) {
		resp := NewResponse().Code(status.Teapot)
		request := NewRequest(kv.New(), resp, nil)

		fields := request.Respond().Reveal()
		require.Equal(t, status.OK, fields.Code)
	})
}
