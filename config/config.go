package config

import "time"

type (
	NET struct {
		// ReadBufferSize is the size of the buffer, in bytes, a single read from
		// a plaintext socket can fill at most. The server never reads a request
		// in more than one call, so this is also the hard cap on the request
		// head plus however much of the body fits.
		ReadBufferSize int
		// TLSReadBufferSize is the same cap for encrypted connections. TLS
		// records arrive in bigger chunks, hence the separate, larger default.
		TLSReadBufferSize int
		// ReadTimeout limits how long a connection may stay silent before the
		// read is abandoned and the connection closed.
		ReadTimeout time.Duration
		// WriteTimeout limits a single response write.
		WriteTimeout time.Duration
		// AcceptLoopInterruptPeriod controls how often the Accept() call is
		// interrupted in order to check whether it's time to stop.
		AcceptLoopInterruptPeriod time.Duration
		// MaxConnections caps the number of connections served at once. The
		// excess is still accepted, but parks before serving until a seat
		// frees up. Zero means no cap, which is also the default.
		MaxConnections int `test:"nullable"`
	}

	HTTP struct {
		// HeadersPrealloc is the number of header seats allocated per connection
		// in advance. Requests carrying more headers still work, at the cost of
		// a slice growth.
		HeadersPrealloc int
		// ResponseBuffSize is the initial size of the per-connection buffer
		// responses are rendered into. It grows when a response outsizes it and
		// keeps the length for the connection's lifetime.
		ResponseBuffSize int
		// DefaultHeaders are included into every response unless explicitly
		// overridden by a handler. Empty by default: the wire carries exactly
		// what the handler set, plus Content-Length.
		DefaultHeaders map[string]string `test:"nullable"`
	}
)

// Config holds settings used across various parts of nessie, mainly
// restrictions, limitations and pre-allocations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to
// initialize the config manually, because most likely this will result in
// ambiguous errors.
type Config struct {
	NET  NET
	HTTP HTTP
}

// Default returns the default config, tuned to mirror a small plaintext
// server: one kilobyte-scale read, second-scale timeouts.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize:            2 * 1024,
			TLSReadBufferSize:         64*1024 - 1, // a single TLS record can't carry more anyway
			ReadTimeout:               time.Second,
			WriteTimeout:              time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
		HTTP: HTTP{
			HeadersPrealloc:  10,
			ResponseBuffSize: 1024,
			DefaultHeaders:   make(map[string]string),
		},
	}
}
