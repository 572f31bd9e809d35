package http1

import (
	"strconv"

	"github.com/indigo-web/utils/strcomp"

	"github.com/nessie-web/nessie/http"
	"github.com/nessie-web/nessie/http/proto"
	"github.com/nessie-web/nessie/http/status"
	"github.com/nessie-web/nessie/kv"
	"github.com/nessie-web/nessie/transport"
)

const (
	contentLength = "Content-Length: "
	colonsp       = ": "
	crlf          = "\r\n"
)

type Serializer struct {
	buff           []byte
	defaultHeaders defaultHeaders
	client         transport.Client
}

func NewSerializer(buff []byte, defHdrs map[string]string, client transport.Client) *Serializer {
	return &Serializer{
		buff:           buff[:0],
		defaultHeaders: processDefaultHeaders(defHdrs),
		client:         client,
	}
}

// Write renders the response and sends it off in a single client write. The
// response body is consumed: writing the same response twice reproduces the
// head of it, but not the body, nor its Content-Length.
func (s *Serializer) Write(response *http.Response) error {
	defer s.clear()

	fields := response.Reveal()
	s.renderProtocol(fields.Proto)
	s.renderResponseLine(fields)
	s.renderHeaders(fields)

	if fields.Body != nil {
		s.renderContentLength(int64(len(fields.Body)))
	}

	s.crlf()
	s.buff = append(s.buff, fields.Body...)
	fields.Body = nil

	_, err := s.client.Write(s.buff)

	return err
}

func (s *Serializer) renderProtocol(protocol proto.Proto) {
	if protocol == proto.Unknown {
		// the request was malformed enough for the parser to never reach the
		// protocol token. The best guess we have left is the default one.
		protocol = proto.HTTP11
	}

	s.buff = append(s.buff, protocol.String()...)
	s.sp()
}

func (s *Serializer) renderResponseLine(fields *http.Fields) {
	codeStatus := status.CodeStatus(fields.Code)

	if fields.Status == "" && codeStatus != "" {
		s.buff = append(s.buff, codeStatus...)
		return
	}

	// in case we have a custom response status text or unknown code, fallback to an old way
	s.buff = strconv.AppendInt(s.buff, int64(fields.Code), 10)
	s.sp()

	statusText := fields.Status
	if len(statusText) == 0 {
		statusText = status.Text(fields.Code)
	}

	s.buff = append(s.buff, statusText...)
	s.crlf()
}

func (s *Serializer) renderHeaders(fields *http.Fields) {
	for _, header := range fields.Headers.Expose() {
		s.renderHeader(header)
		s.defaultHeaders.Exclude(header.Key)
	}

	for _, header := range s.defaultHeaders {
		if header.Excluded {
			continue
		}

		s.buff = append(s.buff, header.Full...)
	}
}

// renderHeader writes a complete header field line including the trailing CRLF.
func (s *Serializer) renderHeader(header kv.Pair) {
	s.buff = append(s.buff, header.Key...)
	s.colonsp()
	s.buff = append(s.buff, header.Value...)
	s.crlf()
}

func (s *Serializer) renderContentLength(value int64) {
	s.buff = strconv.AppendInt(append(s.buff, contentLength...), value, 10)
	s.crlf()
}

func (s *Serializer) sp() {
	s.buff = append(s.buff, ' ')
}

func (s *Serializer) colonsp() {
	s.buff = append(s.buff, colonsp...)
}

func (s *Serializer) crlf() {
	s.buff = append(s.buff, crlf...)
}

func (s *Serializer) clear() {
	s.buff = s.buff[:0]
	s.defaultHeaders.Reset()
}

func processDefaultHeaders(hdrs map[string]string) defaultHeaders {
	processed := make(defaultHeaders, 0, len(hdrs))

	for key, value := range hdrs {
		full := renderHeader(key, value)
		processed = append(processed, defaultHeader{
			// we let the GC release all the values of the map, as here we're using only
			// the brand-new line without keeping the original string
			Key:  full[:len(key)],
			Full: full,
		})
	}

	return processed
}

func renderHeader(key, value string) string {
	return key + colonsp + value + crlf
}

// defaultHeader is a pre-rendered header field appended to every response,
// unless a header with the same key was set explicitly.
type defaultHeader struct {
	Excluded bool
	Key      string
	Full     string
}

type defaultHeaders []defaultHeader

func (d defaultHeaders) Exclude(key string) {
	for i, header := range d {
		if strcomp.EqualFold(header.Key, key) {
			header.Excluded = true
			d[i] = header
			return
		}
	}
}

func (d defaultHeaders) Reset() {
	for i := range d {
		d[i].Excluded = false
	}
}
