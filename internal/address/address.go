package address

import (
	"net"
	"strings"
)

const DefaultAddr = "0.0.0.0"

// Normalize completes a bare ":port" with the catch-all host.
func Normalize(addr string) string {
	if len(Host(addr)) == 0 {
		// only port is presented
		return DefaultAddr + addr
	}

	return addr
}

// IsLocalhost reports whether the addr points at this very machine, by name
// or by a loopback IP.
func IsLocalhost(addr string) bool {
	host := Host(addr)
	if strings.EqualFold(host, "localhost") {
		return true
	}

	return net.ParseIP(host).IsLoopback()
}

// Host returns the host part of a host:port pair, or the whole addr if
// there's no port attached.
func Host(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}

	return host
}
