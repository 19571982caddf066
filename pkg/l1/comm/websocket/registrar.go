package websocket

import (
	"context"
	"net"
	"net/http"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	fx "github.com/robotalks/tiva.go/pkg/framework"
	"github.com/robotalks/tiva.go/pkg/l1/comm"
)

// Registrar serves a board over websocket. Every client connection
// is a Pipe: commands from any client are posted into the loop and
// events are broadcast to all clients.
type Registrar struct {
	Addr string
	Path string

	listener net.Listener
	clients  map[*comm.Registrar]struct{}
	lock     sync.Mutex
}

// DefaultPath is the websocket endpoint path.
const DefaultPath = "/l1"

// NewRegistrar creates a Registrar listening on addr.
func NewRegistrar(addr string) *Registrar {
	return &Registrar{Addr: addr, Path: DefaultPath, clients: make(map[*comm.Registrar]struct{})}
}

// Listen binds the listener, Run binds lazily when not called.
func (r *Registrar) Listen() error {
	ln, err := net.Listen("tcp", r.Addr)
	if err != nil {
		return err
	}
	r.listener = ln
	return nil
}

// ListenAddr returns the bound address.
func (r *Registrar) ListenAddr() net.Addr {
	if r.listener == nil {
		return nil
	}
	return r.listener.Addr()
}

// Clients reports the number of connected clients.
func (r *Registrar) Clients() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.clients)
}

// SendEvent implements l1.Registrar.
func (r *Registrar) SendEvent(ctx context.Context, msg fx.Message) error {
	r.lock.Lock()
	clients := make([]*comm.Registrar, 0, len(r.clients))
	for c := range r.clients {
		clients = append(clients, c)
	}
	r.lock.Unlock()
	var errs fx.AggregatedError
	for _, c := range clients {
		errs.Add(c.SendEvent(ctx, msg))
	}
	return errs.Aggregate()
}

// AddToLoop implements LoopAdder.
func (r *Registrar) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(r)
}

// Name implements Named.
func (r *Registrar) Name() string {
	return "ws-registrar"
}

// Run implements Runnable. ctx must come from the loop so that
// commands reach the controllers.
func (r *Registrar) Run(ctx context.Context) error {
	if r.listener == nil {
		if err := r.Listen(); err != nil {
			return err
		}
	}
	mux := http.NewServeMux()
	mux.Handle(r.Path, websocket.Handler(func(conn *websocket.Conn) {
		r.serve(ctx, conn)
	}))
	server := &http.Server{Handler: mux}
	glog.Infof("websocket registrar on %s%s", r.listener.Addr(), r.Path)
	return fx.RunWithContextCancel(ctx, func() {
		server.Close()
	}, func() error {
		err := server.Serve(r.listener)
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	})
}

func (r *Registrar) serve(ctx context.Context, conn *websocket.Conn) {
	rw := New(conn)
	client := comm.NewRegistrar(rw)
	r.lock.Lock()
	r.clients[client] = struct{}{}
	r.lock.Unlock()
	glog.V(2).Infof("websocket client %s connected", conn.Request().RemoteAddr)
	defer func() {
		r.lock.Lock()
		delete(r.clients, client)
		r.lock.Unlock()
		glog.V(2).Infof("websocket client %s disconnected", conn.Request().RemoteAddr)
	}()
	if err := client.Serve(ctx); err != nil && err != context.Canceled {
		glog.Warningf("websocket client: %v", err)
	}
}
