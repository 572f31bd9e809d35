package transport

import (
	"errors"
	"log"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nessie-web/nessie/config"
	"github.com/nessie-web/nessie/internal/timer"
)

type listener interface {
	net.Listener
	SetDeadline(t time.Time) error
}

type TCP struct {
	l    listener
	wg   *sync.WaitGroup
	sema chan struct{}
	stop *atomic.Bool
}

func NewTCP() *TCP {
	tcp := newTCP(nil)
	return &tcp
}

func newTCP(l listener) TCP {
	return TCP{
		l:    l,
		wg:   new(sync.WaitGroup),
		stop: new(atomic.Bool),
	}
}

func bindTCP(addr string) (*net.TCPListener, error) {
	tcpaddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}

	return net.ListenTCP("tcp", tcpaddr)
}

func (t *TCP) Bind(addr string) (err error) {
	t.l, err = bindTCP(addr)
	return err
}

// Listen accepts connections until stopped. The Accept call runs under a
// periodic deadline, otherwise Stop() would be noticed only after one more
// client shows up.
func (t *TCP) Listen(cfg config.NET, cb func(conn net.Conn)) error {
	if cfg.MaxConnections > 0 {
		t.sema = make(chan struct{}, cfg.MaxConnections)
	}

	for !t.stop.Load() {
		err := t.l.SetDeadline(timer.Now().Add(cfg.AcceptLoopInterruptPeriod))
		if err != nil {
			return err
		}

		conn, err := t.l.Accept()
		if err != nil {
			switch {
			case errors.Is(err, os.ErrDeadlineExceeded):
				// just the periodic interrupt, time to re-check the stop flag
			case t.stop.Load():
				return nil
			case errors.Is(err, net.ErrClosed):
				// somebody closed the listener under us, there is nothing
				// left to accept from
				return err
			default:
				// a failure of a single accept affects that client only,
				// never the server
				log.Printf("accept: %s", err)
			}

			continue
		}

		t.wg.Add(1)
		go func(conn net.Conn) {
			defer t.wg.Done()

			t.acquire()
			cb(conn)
			_ = conn.Close()
			t.release()
		}(conn)
	}

	return nil
}

func (t *TCP) Stop() {
	t.stop.Store(true)
}

func (t *TCP) Close() {
	_ = t.l.Close()
}

func (t *TCP) Wait() {
	t.wg.Wait()
}

// acquire parks the connection's goroutine until a serving seat is free. With
// no cap configured it's free of charge.
func (t *TCP) acquire() {
	if t.sema != nil {
		t.sema <- struct{}{}
	}
}

func (t *TCP) release() {
	if t.sema != nil {
		<-t.sema
	}
}
