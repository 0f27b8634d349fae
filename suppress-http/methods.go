package suppress_http

// HttpMethod is the HTTP verb used as the first routing key. Routing only
// recognizes the four methods below; anything else is rejected by the server
// before a route table is ever consulted.
type HttpMethod string

const (
	Get    HttpMethod = "GET"
	Post   HttpMethod = "POST"
	Put    HttpMethod = "PUT"
	Delete HttpMethod = "DELETE"
)

// HttpMethods maps raw method tokens from the request line to their typed value.
var (
	HttpMethods = map[string]HttpMethod{
		"GET":    Get,
		"POST":   Post,
		"PUT":    Put,
		"DELETE": Delete,
	}
)

func (m HttpMethod) String() string {
	return string(m)
}

// Recognized reports whether the method is one of the four routable verbs.
func (m HttpMethod) Recognized() bool {
	_, ok := HttpMethods[string(m)]
	return ok
}
