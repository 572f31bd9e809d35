package http1

import (
	"github.com/nessie-web/nessie/config"
	"github.com/nessie-web/nessie/http"
	"github.com/nessie-web/nessie/http/status"
	"github.com/nessie-web/nessie/obs"
	"github.com/nessie-web/nessie/router"
	"github.com/nessie-web/nessie/transport"
)

// Suit glues the parser and the serializer together with a router in between.
type Suit struct {
	*Parser
	*Serializer
	router router.Router
	client transport.Client
	tracer obs.Tracer
}

func New(
	r router.Router,
	request *http.Request,
	client transport.Client,
	respBuff []byte,
	defaultHeaders map[string]string,
	tracer obs.Tracer,
) *Suit {
	return &Suit{
		Parser:     NewParser(request),
		Serializer: NewSerializer(respBuff, defaultHeaders, client),
		router:     r,
		client:     client,
		tracer:     tracer,
	}
}

// Initialize is the same constructor as just New, but consumes fewer arguments.
func Initialize(
	cfg *config.Config, r router.Router, client transport.Client, request *http.Request, tracer obs.Tracer,
) *Suit {
	respBuff := make([]byte, 0, cfg.HTTP.ResponseBuffSize)

	return New(r, request, client, respBuff, cfg.HTTP.DefaultHeaders, tracer)
}

// Serve runs the whole exchange: one request in, one response out, and the
// connection is done. Malformed requests are refused with an error response
// rather than dropped, whereas read and write failures close the connection
// silently, as there's nobody reliable left to answer to.
func (s *Suit) Serve() {
	req := s.Parser.request

	data, err := s.read()
	if err != nil {
		// a read error mostly means the deadline has been exceeded or the
		// peer is gone. The router is notified, the response is discarded:
		// writing to nobody in particular isn't worth it
		s.onError(req, status.ErrCloseConnection)
		return
	}

	if err = s.parse(data); err != nil {
		s.write(notNil(req, s.onError(req, err)))
		return
	}

	s.write(notNil(req, s.onRequest(req)))
}

func (s *Suit) read() ([]byte, error) {
	end := s.tracer.Span("read")
	data, err := s.client.Read()
	end(err)

	return data, err
}

func (s *Suit) parse(data []byte) error {
	end := s.tracer.Span("parse")
	err := s.Parse(data)
	end(err)

	return err
}

func (s *Suit) onRequest(req *http.Request) *http.Response {
	end := s.tracer.Span("handle")
	resp := s.router.OnRequest(req)
	end(nil)

	return resp
}

func (s *Suit) onError(req *http.Request, err error) *http.Response {
	end := s.tracer.Span("handle")
	resp := s.router.OnError(req, err)
	end(err)

	return resp
}

func (s *Suit) write(resp *http.Response) {
	end := s.tracer.Span("write")
	end(s.Serializer.Write(resp))
}

func notNil(req *http.Request, resp *http.Response) *http.Response {
	if resp != nil {
		return resp
	}

	return http.Respond(req)
}
