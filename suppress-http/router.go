package suppress_http

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HandlerFn processes one matched request. The handler owns the full
// response; the router never inspects or rewrites what it returns. The
// database connection is nil when the server has no database configured.
type HandlerFn[State any] func(*HttpRequest, *pgxpool.Conn, *State) *HttpResponse

// RouteTable maps (method, exact path) pairs to handlers. Paths are matched
// byte-for-byte after being normalized to start with "/"; there are no
// wildcards or parameters. Registration always succeeds and silently
// overwrites; routes are never removed.
//
// A RouteTable has no notion of method validity. Looking up an unrecognized
// method simply finds nothing; rejecting such requests with a 405 is the
// server's job.
type RouteTable[State any] struct {
	routes map[HttpMethod]map[string]HandlerFn[State]
}

func NewRouteTable[State any]() *RouteTable[State] {
	routes := make(map[HttpMethod]map[string]HandlerFn[State], len(HttpMethods))
	for _, method := range HttpMethods {
		routes[method] = make(map[string]HandlerFn[State])
	}
	return &RouteTable[State]{
		routes: routes,
	}
}

// Register stores a handler under routes[method][path], overwriting any
// prior handler for that exact pair.
func (self *RouteTable[State]) Register(method HttpMethod, path string, fn HandlerFn[State]) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	self.routes[method][path] = fn
}

func (self *RouteTable[State]) Get(path string, fn HandlerFn[State]) {
	self.Register(Get, path, fn)
}

func (self *RouteTable[State]) Post(path string, fn HandlerFn[State]) {
	self.Register(Post, path, fn)
}

func (self *RouteTable[State]) Put(path string, fn HandlerFn[State]) {
	self.Register(Put, path, fn)
}

func (self *RouteTable[State]) Delete(path string, fn HandlerFn[State]) {
	self.Register(Delete, path, fn)
}

// Dispatch resolves the request against this table and produces a response.
// The effective path is the request path with the leading basePath removed,
// re-prefixed with "/" when the strip leaves it bare. A miss produces the
// router's 404. A handler panic is deliberately not recovered here; handlers
// own their failure behavior.
func (self *RouteTable[State]) Dispatch(req *HttpRequest, db *pgxpool.Conn, state *State, basePath string) *HttpResponse {
	path := strings.TrimPrefix(req.Path, basePath)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	handler, found := self.routes[req.Method][path]
	if !found {
		return RouteNotFoundResponse()
	}
	response := handler(req, db, state)
	if response == nil {
		response = StringResponse("500 Internal Server Error")
		response.SetStatus(StatusInternalServerError)
	}
	return response
}

// PrintRoutes outputs every registered route, grouped by path with the
// methods it answers, indented by the given level.
func (self *RouteTable[State]) PrintRoutes(level int) {
	methodsByPath := map[string][]string{}
	for _, method := range []HttpMethod{Get, Post, Put, Delete} {
		for path := range self.routes[method] {
			methodsByPath[path] = append(methodsByPath[path], string(method))
		}
	}
	paths := make([]string, 0, len(methodsByPath))
	for path := range methodsByPath {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		for i := 0; i < level; i++ {
			fmt.Print(" ")
		}
		fmt.Printf("%v [%v]\n", path, strings.Join(methodsByPath[path], ", "))
	}
}
