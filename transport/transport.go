package transport

import (
	"net"

	"github.com/nessie-web/nessie/config"
)

// Transport owns a listening socket. Bind acquires it, and binding errors are
// fatal startup errors, not something to retry. Listen accepts until Stop,
// handing every connection to the callback on a goroutine of its own. The
// teardown sequence Stop, Wait, Close is orchestrated by the Supervisor.
type Transport interface {
	Bind(addr string) error
	Listen(cfg config.NET, cb func(conn net.Conn)) error
	Stop()
	Close()
	Wait()
}
