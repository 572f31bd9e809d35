package nessie

import (
	"crypto/tls"
	"errors"
	"net"

	"github.com/nessie-web/nessie/config"
	"github.com/nessie-web/nessie/http/crypt"
	"github.com/nessie-web/nessie/http/serve"
	"github.com/nessie-web/nessie/obs"
	"github.com/nessie-web/nessie/router"
	"github.com/nessie-web/nessie/transport"
)

var (
	ErrBadCertificate = errors.New("one or more passed certificates are empty")
	ErrNoCertificates = errors.New("no certificates were passed")
)

// Transport couples a listener with the way accepted connections are served.
type Transport struct {
	inner         transport.Transport
	spawnCallback func(cfg *config.Config, r router.Router, sink obs.Sink) func(net.Conn)
	error         error
}

func TCP() Transport {
	return Transport{
		inner: transport.NewTCP(),
		spawnCallback: func(cfg *config.Config, r router.Router, sink obs.Sink) func(net.Conn) {
			return func(conn net.Conn) {
				serve.HTTP1(cfg, conn, crypt.Plain, r, sink)
			}
		},
	}
}

func TLS(cert, key string) Transport {
	c, err := tls.LoadX509KeyPair(cert, key)
	if err != nil {
		// if any error occurred, there's no way to report it at this point.
		// Save it in the transport, the App will catch and return it when
		// will bind listeners. Deferred error?
		return Transport{error: err}
	}

	return HTTPS(c)
}

func HTTPS(certs ...tls.Certificate) Transport {
	// simple anti-idiot checks in order to avoid the most obvious mistakes
	switch {
	case len(certs) == 0:
		return Transport{error: ErrNoCertificates}
	case !noEmptyCerts(certs):
		return Transport{error: ErrBadCertificate}
	}

	return encrypted(transport.NewTLS(certs))
}

// Cert loads the certificate pair, deferring errors the same way TLS does.
func Cert(cert, key string) tls.Certificate {
	// in case of an error an empty certificate is returned. This will be
	// checked and instantly reported on starting the application
	c, _ := tls.LoadX509KeyPair(cert, key)
	return c
}

// encrypted wraps any TLS-terminating transport. The handshake is lazy, so
// the negotiated version is unknown until the first read; the crypt token
// reflects that honestly.
func encrypted(inner transport.Transport) Transport {
	return Transport{
		inner: inner,
		spawnCallback: func(cfg *config.Config, r router.Router, sink obs.Sink) func(net.Conn) {
			return func(conn net.Conn) {
				enc := crypt.Unknown
				if c, ok := conn.(*tls.Conn); ok {
					enc = tlsver2crypttoken(c.ConnectionState().Version)
				}

				serve.HTTP1(cfg, conn, enc, r, sink)
			}
		},
	}
}

func noEmptyCerts(certs []tls.Certificate) bool {
	for _, c := range certs {
		if c.Certificate == nil {
			return false
		}
	}

	return true
}

func tlsver2crypttoken(ver uint16) crypt.Encryption {
	switch ver {
	case tls.VersionTLS10:
		return crypt.TLSv10
	case tls.VersionTLS11:
		return crypt.TLSv11
	case tls.VersionTLS12:
		return crypt.TLSv12
	case tls.VersionTLS13:
		return crypt.TLSv13
	case tls.VersionSSL30:
		return crypt.SSL
	default:
		return crypt.Unknown
	}
}
