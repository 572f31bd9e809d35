package http1

import (
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/utils/uf"

	"github.com/nessie-web/nessie/http"
	"github.com/nessie-web/nessie/http/method"
	"github.com/nessie-web/nessie/http/proto"
	"github.com/nessie-web/nessie/http/status"
)

// Parser decodes a complete request out of a single buffer. Streaming is out
// of its competence: whatever the first read brought is all the request
// there is, and everything past the blank line is the body.
type Parser struct {
	request *http.Request
}

func NewParser(request *http.Request) *Parser {
	return &Parser{
		request: request,
	}
}

// Parse fills the bound request from data. Returned errors are status package
// sentinels, each carrying the code the client is to be refused with. The
// parsed strings alias data, so the buffer must stay untouched for as long
// as the request is in use.
func (p *Parser) Parse(data []byte) error {
	if !utf8.Valid(data) {
		return status.ErrBadEncoding
	}

	head, body, found := strings.Cut(uf.B2S(data), "\r\n\r\n")
	if !found {
		return status.ErrNoBodySeparator
	}

	lines := strings.Split(head, "\n")
	if err := p.parseRequestLine(strings.TrimSuffix(lines[0], "\r")); err != nil {
		return err
	}

	headers := p.request.Headers
	for _, line := range lines[1:] {
		key, value, found := strings.Cut(line, ":")
		if !found {
			return status.ErrMalformedHeader
		}

		headers.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	p.request.Body = body

	return nil
}

// parseRequestLine consumes the three leading tokens of the line, ignoring
// any extra ones. The path collapses the same way routes are registered:
// one trailing slash down, so the root path turns into an empty string.
func (p *Parser) parseRequestLine(line string) error {
	tokens := strings.Split(line, " ")
	if len(tokens) < 3 {
		return status.ErrBadRequest
	}

	m := method.Parse(tokens[0])
	if m == method.Unknown {
		return status.ErrMethodNotImplemented
	}

	protocol := proto.Parse(tokens[2])
	if protocol == proto.Unknown {
		return status.ErrHTTPVersionNotSupported
	}

	p.request.Method = m
	p.request.Path = strings.TrimSuffix(tokens[1], "/")
	p.request.Proto = protocol

	return nil
}
