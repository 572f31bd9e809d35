package http

import (
	"net"

	"github.com/nessie-web/nessie/http/method"
	"github.com/nessie-web/nessie/http/proto"
	"github.com/nessie-web/nessie/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// Request represents a single parsed HTTP request. It is owned exclusively by the
// connection it arrived on and lives until the connection is served, so it must
// not be retained past the handler.
type Request struct {
	// Method is an enum representing the request method.
	Method method.Method
	// Path is the request path with exactly one trailing slash stripped, so the
	// root "/" comes out as an empty string. No decoding nor validation beyond
	// that is applied.
	Path string
	// Proto is the protocol version the request line announced.
	Proto proto.Proto
	// Headers holds non-normalized header pairs, even though lookup is
	// case-insensitive. A header repeated on the wire keeps the value seen last.
	Headers Headers
	// Body is the raw remainder of the read buffer past the blank line. No
	// framing is applied to it: what was read is what you get, and it may be
	// truncated by the read buffer capacity.
	Body string
	// Remote holds the remote address. Please note that this is generally not a
	// good parameter to identify a user, because there might be proxies in the
	// middle.
	Remote net.Addr

	response *Response
}

// NewRequest returns a blank request, ready to be filled by the parser. The
// response builder is bound to the request for its whole lifetime.
func NewRequest(headers Headers, response *Response, remote net.Addr) *Request {
	return &Request{
		Method:   method.Unknown,
		Proto:    proto.HTTP11,
		Headers:  headers,
		Remote:   remote,
		response: response,
	}
}

// Respond returns the response builder bound to the request.
//
// WARNING: this method clears the builder under the hood. As it is passed
// by reference, it'll be cleared EVERYWHERE along a handler
func (r *Request) Respond() *Response {
	return r.response.Clear()
}
