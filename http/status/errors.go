package status

// HTTPError carries a status code along with the message, so the connection
// worker can answer a failed exchange with something more telling than a
// blanket 400. Comparable by value, thereby usable as a sentinel.
type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

// CloseConnection is a pseudo-code carried by control-flow sentinels. It
// never appears on the wire.
const CloseConnection Code = 0

var (
	// ErrCloseConnection is an internal signal to close the connection with
	// no further writes to it. It isn't an error by itself.
	ErrCloseConnection = NewError(CloseConnection, "actively closing the connection")

	ErrBadRequest              = NewError(BadRequest, "bad request")
	ErrNoBodySeparator         = NewError(BadRequest, "no blank line after the headers section")
	ErrMalformedHeader         = NewError(BadRequest, "malformed header line")
	ErrBadEncoding             = NewError(BadRequest, "request contains a malformed byte sequence")
	ErrNotFound                = NewError(NotFound, "not found")
	ErrMethodNotAllowed        = NewError(MethodNotAllowed, "method not allowed")
	ErrMethodNotImplemented    = NewError(NotImplemented, "request method is not supported")
	ErrHTTPVersionNotSupported = NewError(HTTPVersionNotSupported, "protocol version is not supported")
	ErrRequestTimeout          = NewError(RequestTimeout, "request timeout")
	ErrRequestEntityTooLarge   = NewError(RequestEntityTooLarge, "request entity too large")
	ErrURITooLong              = NewError(RequestURITooLong, "request URI too long")
	ErrInternalServerError     = NewError(InternalServerError, "internal server error")
)
