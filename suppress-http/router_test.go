package suppress_http

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

type testState struct{}

func markingHandler(hit *bool) HandlerFn[testState] {
	return func(req *HttpRequest, db *pgxpool.Conn, state *testState) *HttpResponse {
		*hit = true
		return StringResponse("ok")
	}
}

func testRequest(method HttpMethod, path string) *HttpRequest {
	return &HttpRequest{
		Method:  method,
		Path:    path,
		Headers: map[string]string{},
	}
}

func TestDispatchExactMatch(t *testing.T) {
	table := NewRouteTable[testState]()
	var profileHit, otherHit bool
	table.Get("/profile", markingHandler(&profileHit))
	table.Get("/other", markingHandler(&otherHit))

	res := table.Dispatch(testRequest(Get, "/profile"), nil, &testState{}, "/")
	if !profileHit {
		t.Error("registered handler was not invoked")
	}
	if otherHit {
		t.Error("unrelated handler was invoked")
	}
	if res.StatusCode != StatusOK {
		t.Errorf("status = %v, want 200", res.StatusCode)
	}
}

func TestDispatchMethodMiss(t *testing.T) {
	table := NewRouteTable[testState]()
	var hit bool
	table.Get("/profile", markingHandler(&hit))

	res := table.Dispatch(testRequest(Post, "/profile"), nil, &testState{}, "/")
	if hit {
		t.Error("GET handler was invoked for a POST request")
	}
	if res.StatusCode != StatusNotFound {
		t.Errorf("status = %v, want 404", res.StatusCode)
	}
}

func TestDispatchNotFoundBody(t *testing.T) {
	table := NewRouteTable[testState]()

	res := table.Dispatch(testRequest(Get, "/missing"), nil, &testState{}, "/")
	if res.StatusCode != StatusNotFound {
		t.Errorf("status = %v, want 404", res.StatusCode)
	}
	if string(res.Body) != `{"error":"Route not found"}` {
		t.Errorf("body = %v", string(res.Body))
	}
	if res.Headers["Content-Type"] != "application/json" {
		t.Errorf("content type = %v", res.Headers["Content-Type"])
	}
}

func TestDispatchPrefixStrip(t *testing.T) {
	table := NewRouteTable[testState]()
	var hit bool
	table.Get("/profile", markingHandler(&hit))

	// Mounted under /user, the table matches /user/profile once the base
	// path has been stripped.
	res := table.Dispatch(testRequest(Get, "/user/profile"), nil, &testState{}, "/user")
	if !hit {
		t.Error("handler was not invoked after prefix strip")
	}
	if res.StatusCode != StatusOK {
		t.Errorf("status = %v, want 200", res.StatusCode)
	}

	// Stripping the base path of the mount point itself leaves the root.
	res = table.Dispatch(testRequest(Get, "/user"), nil, &testState{}, "/user")
	if res.StatusCode != StatusNotFound {
		t.Errorf("bare mount path: status = %v, want 404", res.StatusCode)
	}
}

func TestRegisterOverwrites(t *testing.T) {
	table := NewRouteTable[testState]()
	var oldHit, newHit bool
	table.Get("/profile", markingHandler(&oldHit))
	table.Get("/profile", markingHandler(&newHit))

	table.Dispatch(testRequest(Get, "/profile"), nil, &testState{}, "/")
	if oldHit {
		t.Error("replaced handler was invoked")
	}
	if !newHit {
		t.Error("replacement handler was not invoked")
	}
}

func TestRegisterNormalizesLeadingSlash(t *testing.T) {
	table := NewRouteTable[testState]()
	var hit bool
	table.Get("profile", markingHandler(&hit))

	table.Dispatch(testRequest(Get, "/profile"), nil, &testState{}, "/")
	if !hit {
		t.Error("handler registered without leading slash was not matched")
	}
}

func TestDispatchNilHandlerResponse(t *testing.T) {
	table := NewRouteTable[testState]()
	table.Get("/broken", func(req *HttpRequest, db *pgxpool.Conn, state *testState) *HttpResponse {
		return nil
	})

	res := table.Dispatch(testRequest(Get, "/broken"), nil, &testState{}, "/")
	if res.StatusCode != StatusInternalServerError {
		t.Errorf("status = %v, want 500", res.StatusCode)
	}
}
