package nessie

import (
	"log"

	"github.com/nessie-web/nessie/config"
	"github.com/nessie-web/nessie/internal/address"
	"github.com/nessie-web/nessie/obs"
	"github.com/nessie-web/nessie/router"
	"github.com/nessie-web/nessie/router/exact"
	"github.com/nessie-web/nessie/transport"
)

// App is the entry point of the library: a builder collecting routes,
// listeners and tunables, turned into a serving application by Serve. All
// the builder methods are chainable and none of them may be called after
// serving began.
type App struct {
	addr       string
	cfg        *config.Config
	sink       obs.Sink
	routes     *exact.Router
	hooks      hooks
	extras     []boundAddr
	supervisor transport.Supervisor
}

type hooks struct {
	OnStart func()
	OnStop  func()
}

type boundAddr struct {
	addr      string
	transport Transport
}

// New returns an App serving plaintext HTTP on addr. A bare ":port" addr is
// completed with the catch-all host.
func New(addr string) *App {
	return &App{
		addr:       address.Normalize(addr),
		cfg:        config.Default(),
		sink:       obs.NopSink{},
		routes:     exact.New(),
		supervisor: transport.NewSupervisor(),
	}
}

// Tune replaces the default config. Modify config.Default(), don't build
// the struct from scratch.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Observe plugs a span sink in. Every connection phase is reported to it
// from that point on; the default sink discards everything.
func (a *App) Observe(sink obs.Sink) *App {
	a.sink = sink
	return a
}

// Path registers the handler for the path on the built-in router. The path
// is normalized, so /stats and /stats/ are the same route.
func (a *App) Path(path string, handler router.Handler) *App {
	a.routes.Route(path, handler)
	return a
}

// Default sets the handler serving requests no route matched. Without one,
// a built-in 404 handler takes the misses.
func (a *App) Default(handler router.Handler) *App {
	a.routes.Default(handler)
	return a
}

// Catch sets the handler converting pre-routing failures, most notably
// malformed requests, into responses.
func (a *App) Catch(handler router.ErrorHandler) *App {
	a.routes.Catch(handler)
	return a
}

// NotifyOnStart calls the callback once all the listeners are bound and
// serving is about to begin.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback after the last listener went down and all
// in-flight connections were served.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Bind attaches one more listener to the application, e.g. nessie.TCP() or
// nessie.TLS(...). The plaintext listener on the addr passed to New is
// always present and need not be added.
func (a *App) Bind(addr string, t Transport) *App {
	a.extras = append(a.extras, boundAddr{address.Normalize(addr), t})
	return a
}

// TLS adds an encrypted listener serving the PEM certificate/key pair,
// loaded once right away. Decrypted connections run the very same pipeline
// as plaintext ones.
func (a *App) TLS(addr, cert, key string) *App {
	return a.Bind(addr, TLS(cert, key))
}

// AutoHTTPS adds an encrypted listener with certificates issued on demand
// via ACME, or a self-signed one when the addr points at this very machine.
func (a *App) AutoHTTPS(addr string, domains ...string) *App {
	if address.IsLocalhost(addr) {
		cert, key, err := generateSelfSignedCert()
		if err != nil {
			log.Printf("WARNING: AutoHTTPS(%s): can't generate a self-signed certificate: %s. Disabling TLS", addr, err)
			return a
		}

		return a.TLS(addr, cert, key)
	}

	return a.Bind(addr, autoHTTPS(domains...))
}

// Serve builds the accumulated routes and blocks serving them. The route
// table is frozen at this point: nothing registered later is ever seen.
// A nil error means the server was deliberately stopped.
func (a *App) Serve() error {
	return a.ServeRouter(a.routes.Build())
}

// ServeRouter serves a custom router instead of the built-in one. The
// router is shared by all connections concurrently, so it must be
// read-only by the time ServeRouter is called.
func (a *App) ServeRouter(r router.Router) error {
	listeners := append([]boundAddr{{a.addr, TCP()}}, a.extras...)

	// deferred construction errors are checked upfront, so no listener gets
	// bound just to be abandoned by a doomed startup
	for _, l := range listeners {
		if l.transport.error != nil {
			return l.transport.error
		}
	}

	for _, l := range listeners {
		cb := l.transport.spawnCallback(a.cfg, r, a.sink)
		if err := a.supervisor.Add(l.addr, l.transport.inner, cb); err != nil {
			return err
		}
	}

	callIfNotNil(a.hooks.OnStart)
	err := a.supervisor.Run(a.cfg.NET)
	callIfNotNil(a.hooks.OnStop)

	return err
}

// Stop takes the application down: listeners close first, connections
// already in flight are served to the end. Blocks until the teardown is
// complete.
func (a *App) Stop() {
	a.supervisor.Stop()
}

func callIfNotNil(cb func()) {
	if cb != nil {
		cb()
	}
}
