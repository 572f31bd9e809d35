package exact

import (
	"strings"

	"github.com/nessie-web/nessie/http"
	"github.com/nessie-web/nessie/http/status"
	"github.com/nessie-web/nessie/router"
)

var _ router.Builder = new(Router)

// Router is the default router implementation: a flat table of handlers
// looked up by exact comparison against the normalized request path. No
// wildcards, no prefixes, no path parameters.
type Router struct {
	routes map[string]router.Handler
	def    router.Handler
	catch  router.ErrorHandler
}

// New returns a new instance of the exact-match Router.
func New() *Router {
	return &Router{
		routes: make(map[string]router.Handler),
	}
}

// Route registers the handler for the path. The path is normalized the same
// way request targets are, so /stats and /stats/ land on the same handler.
// Registering the same path twice silently overrides the previous handler.
func (r *Router) Route(path string, handler router.Handler) *Router {
	r.routes[normalize(path)] = handler
	return r
}

// Default sets the handler for requests whose path matches no route.
func (r *Router) Default(handler router.Handler) *Router {
	r.def = handler
	return r
}

// Catch sets the handler for requests that failed before routing, replacing
// the built-in error responses.
func (r *Router) Catch(handler router.ErrorHandler) *Router {
	r.catch = handler
	return r
}

func (r *Router) Build() router.Router {
	def := r.def
	if def == nil {
		def = NotFound
	}

	catch := r.catch
	if catch == nil {
		catch = respondError
	}

	routes := make(map[string]router.Handler, len(r.routes))
	for path, handler := range r.routes {
		routes[path] = handler
	}

	return &runtimeRouter{
		routes: routes,
		def:    def,
		catch:  catch,
	}
}

// normalize drops a single trailing slash, collapsing the root path into an
// empty string. Request targets are normalized identically at parse time.
func normalize(path string) string {
	return strings.TrimSuffix(path, "/")
}

// NotFound is the fallback used when no default handler is registered.
func NotFound(request *http.Request) *http.Response {
	return http.Code(request, status.NotFound).
		String("404 Not Found\nOops! Looks like Nessie took our page for a swim in the Loch")
}

func respondError(request *http.Request, err error) *http.Response {
	return http.Error(request, err)
}

var _ router.Router = new(runtimeRouter)

type runtimeRouter struct {
	routes map[string]router.Handler
	def    router.Handler
	catch  router.ErrorHandler
}

func (r *runtimeRouter) OnRequest(request *http.Request) *http.Response {
	if handler, found := r.routes[request.Path]; found {
		return handler(request)
	}

	return r.def(request)
}

func (r *runtimeRouter) OnError(request *http.Request, err error) *http.Response {
	return r.catch(request, err)
}
