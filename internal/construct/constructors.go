package construct

import (
	"net"

	"github.com/nessie-web/nessie/config"
	"github.com/nessie-web/nessie/http"
	"github.com/nessie-web/nessie/kv"
	"github.com/nessie-web/nessie/transport"
)

func Request(cfg *config.Config, client transport.Client) *http.Request {
	headers := kv.NewPrealloc(cfg.HTTP.HeadersPrealloc)

	return http.NewRequest(headers, http.NewResponse(), client.Remote())
}

// Client wraps the accepted connection. Decryption inflates the data, so
// encrypted connections get the bigger read buffer.
func Client(cfg config.NET, conn net.Conn, encrypted bool) transport.Client {
	size := cfg.ReadBufferSize
	if encrypted {
		size = cfg.TLSReadBufferSize
	}

	return transport.NewClient(conn, cfg.ReadTimeout, cfg.WriteTimeout, make([]byte, size))
}
