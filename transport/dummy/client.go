package dummy

import (
	"io"
	"net"

	"github.com/nessie-web/nessie/transport"
)

var _ transport.Client = new(Client)

// Client replays the data it was initialised with, one slice per read, and
// tracks all the written data, making it thereby a universal mock suitable
// for most of the tests. Reads past the last slice report io.EOF, unless
// looping is enabled.
type Client struct {
	closed     bool
	loop       bool
	journaling bool
	pointer    int
	written    []byte
	data       [][]byte
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		data:       data,
		journaling: true,
	}
}

func (c *Client) Read() ([]byte, error) {
	if c.closed {
		return nil, io.EOF
	}

	if c.pointer >= len(c.data) {
		if !c.loop {
			c.closed = true
			return nil, io.EOF
		}

		c.pointer = 0
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *Client) Write(p []byte) (int, error) {
	if c.journaling {
		c.written = append(c.written, p...)
	}

	return len(p), nil
}

func (c *Client) Conn() net.Conn {
	return new(Conn).Nop()
}

func (*Client) Remote() net.Addr {
	return nil
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

// LoopReads makes the client return to the first slice after the last one is
// consumed instead of reporting io.EOF. This is used mainly for benchmarking.
func (c *Client) LoopReads() *Client {
	c.loop = true
	return c
}

func (c *Client) Journaling(flag bool) *Client {
	c.journaling = flag
	return c
}

func (c *Client) Written() string {
	if !c.journaling {
		panic("mock client: cannot access written data: journaling is disabled!")
	}

	return string(c.written)
}
