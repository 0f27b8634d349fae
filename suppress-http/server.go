// Package suppress_http is a minimal HTTP routing framework built directly
// on TCP. It maps an incoming request's method and exact path to a registered
// handler, with optional grouping of routes under path-prefixed sub-tables.
//
// The server is both a route table and a registry of route tables: routes
// registered directly on it live in its root table, while AddSubTable mounts
// an independent table under a base path. On each request the first path
// segment selects the sub-table (with the prefix stripped before lookup), or
// the root table when no sub-table matches.
//
// Matching is exact: no wildcards, no path parameters, no middleware chain.
// The router answers for itself only twice, both with structured JSON
// bodies: 404 when a known method misses every registered path, and 405 when
// the method is not one of GET, POST, PUT or DELETE. Everything else on the
// wire is produced by handlers, and a handler that panics is not caught by
// the routing layers.
//
// Example usage:
//
//	srv := suppress_http.NewServer[AppState]("3000", makeState)
//	srv.Get("/", index)
//	users := suppress_http.NewRouteTable[AppState]()
//	users.Get("/profile", profile)
//	srv.AddSubTable("/user", users)
//	srv.Start()
package suppress_http

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

const DefaultPort = "3000"

// Server owns the listening socket and routes each request to the correct
// route table. It embeds a root RouteTable for unprefixed registrations plus
// a base-path registry of sub-tables.
//
// The generic State parameter is per-request data built by MakeState and
// handed to every handler, so applications can thread sessions or auth
// context through without global state.
//
// Route registration is expected to finish before Start; the route maps are
// read without locking while traffic is served.
type Server[State any] struct {
	Port             string
	Routes           *RouteTable[State]
	SubTables        map[string]*RouteTable[State]
	MakeState        func(*HttpRequest) *State
	Database         *pgxpool.Pool
	SilentMode       bool
	Context          context.Context
	WorkerCount      int32
	LogRequestsLevel int
}

// NewServer creates a server that shuts down gracefully on SIGINT/SIGKILL.
// An empty port selects the default port 3000.
func NewServer[State any](port string, makeState func(*HttpRequest) *State) *Server[State] {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	return NewInlineServer(port, makeState, ctx)
}

// NewInlineServer creates a server bound to a caller-supplied context,
// for custom lifecycle control.
func NewInlineServer[State any](port string, makeState func(*HttpRequest) *State, ctx context.Context) *Server[State] {
	if port == "" {
		port = DefaultPort
	}
	return &Server[State]{
		Port:        port,
		Routes:      NewRouteTable[State](),
		SubTables:   make(map[string]*RouteTable[State]),
		MakeState:   makeState,
		SilentMode:  false,
		Context:     ctx,
		WorkerCount: 10,
	}
}

// ConnectDatabase opens a pgx connection pool that workers will draw from,
// handing each handler a dedicated connection. Panics if the pool cannot be
// created.
func (s *Server[State]) ConnectDatabase(cfg DatabaseConfiguration) {
	pool, err := pgxpool.New(s.Context, cfg.GetConnectionString())
	if err != nil {
		panic(err)
	}
	s.Database = pool
}

// Get registers a handler on the server's root route table.
func (s *Server[State]) Get(path string, fn HandlerFn[State]) {
	s.Routes.Get(path, fn)
}

// Post registers a handler on the server's root route table.
func (s *Server[State]) Post(path string, fn HandlerFn[State]) {
	s.Routes.Post(path, fn)
}

// Put registers a handler on the server's root route table.
func (s *Server[State]) Put(path string, fn HandlerFn[State]) {
	s.Routes.Put(path, fn)
}

// Delete registers a handler on the server's root route table.
func (s *Server[State]) Delete(path string, fn HandlerFn[State]) {
	s.Routes.Delete(path, fn)
}

// AddSubTable mounts a route table under a base path, silently replacing any
// table already mounted there. The base path is normalized to a single
// leading "/" with no trailing one; only its first segment is ever matched.
func (s *Server[State]) AddSubTable(basePath string, table *RouteTable[State]) {
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	basePath = strings.TrimSuffix(basePath, "/")
	if basePath == "" {
		basePath = "/"
	}
	s.SubTables[basePath] = table
}

// route picks the target table for a request and dispatches to it. The
// method gate lives here and only here: route tables themselves never
// produce a 405.
func (s *Server[State]) route(req *HttpRequest, db *pgxpool.Conn, state *State) *HttpResponse {
	if !req.Method.Recognized() {
		return MethodNotAllowedResponse()
	}
	basePath := BasePath(req.Path)
	if table, found := s.SubTables[basePath]; found {
		return table.Dispatch(req, db, state, basePath)
	}
	return s.Routes.Dispatch(req, db, state, "/")
}

// Start begins listening for connections and blocks until the server context
// is cancelled. A receiver goroutine accepts connections and queues them;
// WorkerCount workers process requests from the queue. Panics on bind
// failure.
func (s *Server[State]) Start() {
	if !s.SilentMode {
		fmt.Printf("Starting server on port %v.\n\nRegistered routes:\n", s.Port)
		s.PrintRoutes()
	}
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", s.Port))
	if err != nil {
		panic(err)
	}
	var wg sync.WaitGroup
	queue := make(chan net.Conn, s.WorkerCount*10)
	recvQueue := make(chan net.Conn, s.WorkerCount*10)
	for i := int32(0); i < s.WorkerCount; i++ {
		wg.Add(1)
		go func(i int32) {
			defer wg.Done()
			handleRequest(queue, s, s.Context, i)
		}(i)
	}
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				if errors.Is(err, net.ErrClosed) {
					return
				} else {
					panic(err)
				}
			}
			recvQueue <- conn
		}
	}()
	func() {
		for {
			select {
			case <-s.Context.Done():
				log.Println("Stopping suppress server...")
				listener.Close()
				wg.Wait()
				return
			case conn := <-recvQueue:
				queue <- conn
			}
		}
	}()
}

// PrintRoutes outputs the root table followed by each mounted sub-table.
func (s *Server[State]) PrintRoutes() {
	s.Routes.PrintRoutes(0)
	for basePath, table := range s.SubTables {
		fmt.Printf("%v\n", basePath)
		table.PrintRoutes(1)
	}
}

func handlerLog(id int32, connId int64, ip net.Addr, msg string) {
	log.Printf("{%d/%d} (%s): %s\n", id, connId, ip.String(), msg)
}

// handleRequest is the worker loop: parse, gate the method, pick a table,
// dispatch, write, close. Handler panics propagate out of here untouched.
func handleRequest[State any](conn <-chan net.Conn, s *Server[State], ctx context.Context, id int32) {
	var db *pgxpool.Conn
	if s.Database != nil {
		acquired, err := s.Database.Acquire(ctx)
		if err != nil {
			panic(err)
		}
		db = acquired
	}
	var connId int64 = 0
ReqLoop:
	for {
		select {
		case <-ctx.Done():
			if db != nil {
				db.Release()
			}
			return
		case conn := <-conn:
			connId++
			request := ParseRequest(&conn)
			if request == nil {
				if s.LogRequestsLevel > 1 {
					handlerLog(id, connId, conn.RemoteAddr(), "Could not parse request.")
				}
				conn.Close()
				continue ReqLoop
			}
			if s.LogRequestsLevel > 0 {
				handlerLog(id, connId, conn.RemoteAddr(), fmt.Sprintf("%s: '%s'", request.Method, request.Path))
			}

			var state *State
			if s.MakeState != nil {
				state = s.MakeState(request)
			} else {
				state = new(State)
			}

			response := s.route(request, db, state)
			response.Write(conn)
			conn.Close()
		}
	}
}
