package status

type (
	Code   uint16
	Status string
)

// Status codes as registered with IANA. The list is trimmed to codes a
// plaintext HTTP/1.x server can actually produce or pass through; anything
// else still serializes fine, just with the "Unknown Status Code" phrase
// unless the response carries a custom one.
const (
	Continue           Code = 100
	SwitchingProtocols Code = 101

	OK             Code = 200
	Created        Code = 201
	Accepted       Code = 202
	NoContent      Code = 204
	PartialContent Code = 206

	MovedPermanently  Code = 301
	Found             Code = 302
	SeeOther          Code = 303
	NotModified       Code = 304
	TemporaryRedirect Code = 307
	PermanentRedirect Code = 308

	BadRequest            Code = 400
	Unauthorized          Code = 401
	PaymentRequired       Code = 402
	Forbidden             Code = 403
	NotFound              Code = 404
	MethodNotAllowed      Code = 405
	NotAcceptable         Code = 406
	RequestTimeout        Code = 408
	Conflict              Code = 409
	Gone                  Code = 410
	LengthRequired        Code = 411
	RequestEntityTooLarge Code = 413
	RequestURITooLong     Code = 414
	UnsupportedMediaType  Code = 415
	Teapot                Code = 418
	UpgradeRequired       Code = 426
	TooManyRequests       Code = 429

	InternalServerError     Code = 500
	NotImplemented          Code = 501
	BadGateway              Code = 502
	ServiceUnavailable      Code = 503
	GatewayTimeout          Code = 504
	HTTPVersionNotSupported Code = 505
)

// Text returns the canonical reason phrase for the code, or
// "Unknown Status Code" for codes outside of the set above.
func Text(code Code) Status {
	switch code {
	case Continue:
		return "Continue"
	case SwitchingProtocols:
		return "Switching Protocols"
	case OK:
		return "OK"
	case Created:
		return "Created"
	case Accepted:
		return "Accepted"
	case NoContent:
		return "No Content"
	case PartialContent:
		return "Partial Content"
	case MovedPermanently:
		return "Moved Permanently"
	case Found:
		return "Found"
	case SeeOther:
		return "See Other"
	case NotModified:
		return "Not Modified"
	case TemporaryRedirect:
		return "Temporary Redirect"
	case PermanentRedirect:
		return "Permanent Redirect"
	case BadRequest:
		return "Bad Request"
	case Unauthorized:
		return "Unauthorized"
	case PaymentRequired:
		return "Payment Required"
	case Forbidden:
		return "Forbidden"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	case NotAcceptable:
		return "Not Acceptable"
	case RequestTimeout:
		return "Request Timeout"
	case Conflict:
		return "Conflict"
	case Gone:
		return "Gone"
	case LengthRequired:
		return "Length Required"
	case RequestEntityTooLarge:
		return "Request Entity Too Large"
	case RequestURITooLong:
		return "Request URI Too Long"
	case UnsupportedMediaType:
		return "Unsupported Media Type"
	case Teapot:
		return "I'm a teapot"
	case UpgradeRequired:
		return "Upgrade Required"
	case TooManyRequests:
		return "Too Many Requests"
	case InternalServerError:
		return "Internal Server Error"
	case NotImplemented:
		return "Not Implemented"
	case BadGateway:
		return "Bad Gateway"
	case ServiceUnavailable:
		return "Service Unavailable"
	case GatewayTimeout:
		return "Gateway Timeout"
	case HTTPVersionNotSupported:
		return "HTTP Version Not Supported"
	default:
		return "Unknown Status Code"
	}
}

// CodeStatus returns the whole pre-rendered "<code> <phrase>\r\n" chunk of
// the status line for codes commonly met in the wild, sparing an itoa on the
// hot path. Empty string means the caller renders the line itself.
func CodeStatus(code Code) string {
	switch code {
	case OK:
		return "200 OK\r\n"
	case Created:
		return "201 Created\r\n"
	case NoContent:
		return "204 No Content\r\n"
	case MovedPermanently:
		return "301 Moved Permanently\r\n"
	case Found:
		return "302 Found\r\n"
	case NotModified:
		return "304 Not Modified\r\n"
	case BadRequest:
		return "400 Bad Request\r\n"
	case Unauthorized:
		return "401 Unauthorized\r\n"
	case Forbidden:
		return "403 Forbidden\r\n"
	case NotFound:
		return "404 Not Found\r\n"
	case MethodNotAllowed:
		return "405 Method Not Allowed\r\n"
	case RequestEntityTooLarge:
		return "413 Request Entity Too Large\r\n"
	case InternalServerError:
		return "500 Internal Server Error\r\n"
	case NotImplemented:
		return "501 Not Implemented\r\n"
	case ServiceUnavailable:
		return "503 Service Unavailable\r\n"
	case HTTPVersionNotSupported:
		return "505 HTTP Version Not Supported\r\n"
	default:
		return ""
	}
}
