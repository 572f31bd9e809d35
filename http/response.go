package http

import (
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"

	"github.com/nessie-web/nessie/http/proto"
	"github.com/nessie-web/nessie/http/status"
	"github.com/nessie-web/nessie/kv"
)

// why 7? I don't know. There's no theory behind this number nor researches.
// It can be adjusted to 10 as well, but why you would ever need to do this?
const preallocRespHeaders = 7

// Fields is the bare data a response builder accumulates. Exposed mostly for
// the serializer and tests, handlers should stick to the builder.
type Fields struct {
	// Proto is the version announced by the status line, HTTP/1.1 if left alone.
	Proto proto.Proto
	Code  status.Code
	// Status is a custom reason phrase. Empty means the canonical phrase of Code.
	Status status.Status
	// Headers hold exactly one value per key, the one set last.
	Headers *kv.Storage
	// Body distinguishes never-set (nil) from explicitly empty. The serializer
	// emits a Content-Length only for the latter.
	Body []byte
}

func (f *Fields) Clear() {
	f.Proto = proto.HTTP11
	f.Code = status.OK
	f.Status = ""
	f.Headers.Clear()
	f.Body = nil
}

// Response is a builder over Fields. A zero value is unusable, acquire one
// via NewResponse or, better, Request.Respond().
type Response struct {
	fields Fields
}

// NewResponse returns a new instance of the Response object with status code
// set to 200 OK, an HTTP/1.1 status line and pre-allocated space for headers.
// NOTE: it's recommended to use the Request.Respond() method inside of
// handlers, if there's no clear reason otherwise
func NewResponse() *Response {
	return &Response{
		Fields{
			Proto:   proto.HTTP11,
			Code:    status.OK,
			Headers: kv.NewPrealloc(preallocRespHeaders),
		},
	}
}

// Proto overrides the protocol version of the status line. Responses answer
// with HTTP/1.1 by default, no matter what the request came with.
func (r *Response) Proto(p proto.Proto) *Response {
	r.fields.Proto = p
	return r
}

// Code sets a Response code and a corresponding status.
// In case of unknown code, "Unknown Status Code" will be set as a status
// text. In this case you should call Status explicitly
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// Status sets a custom status text. This text does not matter at all, and usually
// is totally ignored by clients, so there is actually no reason to use this except
// some rare cases when you need to represent a Response status text somewhere
func (r *Response) Status(status status.Status) *Response {
	r.fields.Status = status
	return r
}

// Header sets the value of the key. In case the key already exists, the value
// is overridden, matching keys case-insensitively.
func (r *Response) Header(key, value string) *Response {
	r.fields.Headers.Set(key, value)
	return r
}

// Headers simply merges the passed map into the Response. As maps are
// unordered, so will be the merged pairs.
func (r *Response) Headers(headers map[string]string) *Response {
	for k, v := range headers {
		r.Header(k, v)
	}

	return r
}

// String sets the response's body to the passed string. Passing an empty one
// still counts as setting a body, so a Content-Length: 0 will be emitted.
func (r *Response) String(body string) *Response {
	if len(body) == 0 {
		return r.Bytes(emptyBody)
	}

	return r.Bytes(uf.S2B(body))
}

var emptyBody = make([]byte, 0)

// Bytes sets the response's body to the passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself. Passing nil
// unsets the body.
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// Write implements the io.Writer interface. It always returns n=len(b) and err=nil
func (r *Response) Write(b []byte) (n int, err error) {
	r.fields.Body = append(r.fields.Body, b...)
	return len(b), nil
}

// TryJSON receives a model (must be a pointer to the structure) and returns a
// Response object with the body set to the marshaled model, and an error
func (r *Response) TryJSON(model any) (*Response, error) {
	r.fields.Body = r.fields.Body[:0]
	stream := json.ConfigDefault.BorrowStream(r)
	stream.WriteVal(model)
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	return r.Header("Content-Type", "application/json"), err
}

// JSON does the same as TryJSON does, except the returned error is implicitly
// wrapped by Error
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Error returns a response builder with an error set. If the passed err is nil,
// nothing will happen. If an instance of status.HTTPError is passed, the error
// code will be automatically set. Custom codes can be passed, however only the
// first will be used. By default, the error is status.ErrInternalServerError
func (r *Response) Error(err error, code ...status.Code) *Response {
	if err == nil {
		return r
	}

	if http, ok := err.(status.HTTPError); ok {
		return r.Code(http.Code)
	}

	c := status.InternalServerError
	if len(code) > 0 {
		// peek the first, ignore the rest
		c = code[0]
	}

	return r.
		Code(c).
		String(err.Error())
}

// Reveal returns the struct with values, filled by the builder. Used mostly for
// internal purposes
func (r *Response) Reveal() *Fields {
	return &r.fields
}

// Clear discards everything was done with the Response object before
func (r *Response) Clear() *Response {
	r.fields.Clear()
	return r
}

// Respond is a predicate to request.Respond(). May be used as a dummy handler
func Respond(request *Request) *Response {
	return request.Respond()
}

// Code is a predicate to request.Respond().Code(...)
func Code(request *Request, code status.Code) *Response {
	return request.Respond().Code(code)
}

// String is a predicate to request.Respond().String(...)
func String(request *Request, str string) *Response {
	return request.Respond().String(str)
}

// Bytes is a predicate to request.Respond().Bytes(...)
func Bytes(request *Request, b []byte) *Response {
	return request.Respond().Bytes(b)
}

// JSON is a predicate to request.Respond().JSON(...)
func JSON(request *Request, model any) *Response {
	return request.Respond().JSON(model)
}

// Error is a predicate to request.Respond().Error(...)
func Error(request *Request, err error, code ...status.Code) *Response {
	return request.Respond().Error(err, code...)
}
