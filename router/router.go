package router

import (
	"github.com/nessie-web/nessie/http"
)

// Handler processes a complete request and returns the response to be sent.
type Handler func(request *http.Request) *http.Response

// ErrorHandler converts an error the framework encountered before any handler
// could run (most notably parse failures) into a response.
type ErrorHandler func(request *http.Request, err error) *http.Response

// Router routes incoming requests. OnError is called instead of OnRequest
// whenever the request never made it to routing, e.g. malformed requests.
type Router interface {
	OnRequest(request *http.Request) *http.Response
	OnError(request *http.Request, err error) *http.Response
}

// Builder is a router fabric. Routers are built once, right before the
// application starts serving, so the resulting instance can be shared across
// connections without synchronization.
type Builder interface {
	Build() Router
}
