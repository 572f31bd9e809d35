package transport

import (
	"crypto/tls"
	"net"
)

// TLS accepts through a crypto/tls listener wrapped around a plain TCP one.
// The handshake happens lazily inside the first read of the connection, so a
// failed one surfaces as an ordinary per-connection read error and never
// disturbs the accept loop.
type TLS struct {
	conf *tls.Config
	TCP
}

// NewTLS serves the certificates loaded by the caller in advance.
func NewTLS(certs []tls.Certificate) *TLS {
	return NewTLSConfig(&tls.Config{
		Certificates: certs,
	})
}

// NewTLSConfig accepts a ready-made TLS config, e.g. one issuing certificates
// on demand.
func NewTLSConfig(conf *tls.Config) *TLS {
	return &TLS{conf: conf}
}

func (t *TLS) Bind(addr string) error {
	tcp, err := bindTCP(addr)
	if err != nil {
		return err
	}

	l := tls.NewListener(tcp, t.conf)
	t.TCP = newTCP(tlsAdapter{tcp, l})

	return nil
}

// tlsAdapter keeps the SetDeadline of the raw TCP listener, as tls.NewListener
// hides it behind a plain net.Listener.
type tlsAdapter struct {
	*net.TCPListener
	tls net.Listener
}

func (t tlsAdapter) Accept() (net.Conn, error) {
	return t.tls.Accept()
}
