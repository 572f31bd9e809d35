package serve

import (
	"net"

	"github.com/nessie-web/nessie/config"
	"github.com/nessie-web/nessie/http/crypt"
	"github.com/nessie-web/nessie/internal/construct"
	"github.com/nessie-web/nessie/internal/protocol/http1"
	"github.com/nessie-web/nessie/obs"
	"github.com/nessie-web/nessie/router"
)

// HTTP1 sets up and serves a single HTTP/1.x exchange over the connection.
// Closing the connection afterwards is on the acceptor that spawned us.
func HTTP1(cfg *config.Config, conn net.Conn, enc crypt.Encryption, r router.Router, sink obs.Sink) {
	client := construct.Client(cfg.NET, conn, enc.IsSafe())
	request := construct.Request(cfg, client)
	tracer := obs.NewTracer(sink,
		obs.Label{Key: "remote", Value: remote(conn)},
		obs.Label{Key: "enc", Value: enc.String()},
	)

	http1.Initialize(cfg, r, client, request, tracer).Serve()
}

func remote(conn net.Conn) string {
	if addr := conn.RemoteAddr(); addr != nil {
		return addr.String()
	}

	return "unknown"
}
