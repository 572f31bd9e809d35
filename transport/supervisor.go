package transport

import (
	"net"
	"sync"

	"github.com/nessie-web/nessie/config"
)

// Supervisor runs a set of bound transports as one server. The first listener
// to fail takes the rest down with it, and an external Stop() does the same
// minus the error. In-flight connections are served to the end either way.
type Supervisor struct {
	members  []member
	stopping chan struct{}
	dead     chan struct{}
	once     *sync.Once
}

type member struct {
	transport Transport
	callback  func(conn net.Conn)
}

func NewSupervisor() Supervisor {
	return Supervisor{
		stopping: make(chan struct{}),
		dead:     make(chan struct{}),
		once:     new(sync.Once),
	}
}

// Add binds the transport to the address right away, so a misconfigured
// listener surfaces before any serving starts. On failure the listeners
// bound so far are closed back and the supervisor is unusable.
func (s *Supervisor) Add(addr string, t Transport, cb func(net.Conn)) error {
	if err := t.Bind(addr); err != nil {
		for _, m := range s.members {
			m.transport.Close()
		}

		return err
	}

	s.members = append(s.members, member{transport: t, callback: cb})

	return nil
}

// Run blocks serving all the added transports until the first of them fails
// or Stop is called. A deliberate stop comes out as nil.
func (s *Supervisor) Run(cfg config.NET) error {
	if len(s.members) == 0 {
		close(s.dead)
		return nil
	}

	// buffered, so the listeners outliving the first failure can still
	// report their exit without anybody around to listen to them
	errch := make(chan error, len(s.members))

	for _, m := range s.members {
		go func(m member) {
			errch <- m.transport.Listen(cfg, m.callback)
		}(m)
	}

	var err error
	select {
	case err = <-errch:
	case <-s.stopping:
	}

	for _, m := range s.members {
		m.transport.Stop()
	}

	for _, m := range s.members {
		m.transport.Wait()
		m.transport.Close()
	}

	close(s.dead)

	return err
}

// Stop asks Run to tear everything down and blocks until the teardown is
// complete. Stopping a supervisor that already died is a no-op.
func (s *Supervisor) Stop() {
	s.once.Do(func() {
		close(s.stopping)
	})

	<-s.dead
}
