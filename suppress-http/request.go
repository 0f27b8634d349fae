package suppress_http

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HttpRequest is a parsed HTTP/1.1 request. Method is kept exactly as it
// appeared on the request line, so unrecognized verbs survive parsing and can
// be rejected by the server.
type HttpRequest struct {
	Path        string
	QueryString string
	Method      HttpMethod
	Body        []byte
	Headers     map[string]string
	IpAddress   string
	queryValues map[string]string
}

// QueryMap parses the query string into a map of URL-decoded key-value pairs.
func (req *HttpRequest) QueryMap() map[string]string {
	res := make(map[string]string)
	for _, pair := range strings.Split(req.QueryString, "&") {
		eq := strings.Index(pair, "=")
		if eq < 0 {
			continue
		}
		key, _ := url.QueryUnescape(pair[:eq])
		value, _ := url.QueryUnescape(pair[eq+1:])
		res[key] = value
	}
	return res
}

func (req *HttpRequest) queryValue(key string) (string, bool) {
	if req.queryValues == nil {
		req.queryValues = req.QueryMap()
	}
	val, ok := req.queryValues[key]
	return val, ok
}

// QueryGetString extracts a query parameter as a URL-decoded string.
// Returns nil if the parameter is missing.
func (req *HttpRequest) QueryGetString(key string) *string {
	val, ok := req.queryValue(key)
	if !ok {
		return nil
	}
	return &val
}

// QueryGetInt32 extracts a query parameter as a 32-bit signed integer.
// Returns nil if the parameter is missing or not parseable.
func (req *HttpRequest) QueryGetInt32(key string) *int32 {
	val, ok := req.queryValue(key)
	if !ok {
		return nil
	}
	num, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return nil
	}
	v := int32(num)
	return &v
}

// QueryGetInt64 extracts a query parameter as a 64-bit signed integer.
// Returns nil if the parameter is missing or not parseable.
func (req *HttpRequest) QueryGetInt64(key string) *int64 {
	val, ok := req.queryValue(key)
	if !ok {
		return nil
	}
	num, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return nil
	}
	return &num
}

// QueryGetUUID extracts and validates a query parameter as a UUID.
// Returns nil if the parameter is missing or not a valid UUID.
func (req *HttpRequest) QueryGetUUID(key string) *uuid.UUID {
	val, ok := req.queryValue(key)
	if !ok {
		return nil
	}
	g, err := uuid.Parse(val)
	if err != nil {
		return nil
	}
	return &g
}

// Dump prints the parsed request to stdout for debugging.
func (req *HttpRequest) Dump() {
	fmt.Printf("Method: %v\n", req.Method)
	fmt.Printf("Path: %v\n", req.Path)
	fmt.Printf("QueryString: %v\n", req.QueryString)
	for k, v := range req.Headers {
		fmt.Printf("Header: '%v': '%v'\n", k, v)
	}
	if req.Body != nil {
		fmt.Printf("Body: %v\n", string(req.Body))
	}
}

// ParseRequest reads one HTTP/1.1 request from a TCP connection.
// Returns nil for malformed requests or connection errors.
func ParseRequest(incoming *net.Conn) *HttpRequest {
	(*incoming).SetReadDeadline(time.Now().Add(time.Second * 10))
	req := HttpRequest{
		Headers:   make(map[string]string),
		IpAddress: (*incoming).RemoteAddr().String(),
	}

	bufReader := bufio.NewReader(*incoming)
	bytes, err := bufReader.ReadBytes(' ')
	if err != nil {
		return nil
	}
	req.Method = HttpMethod(string(bytes[:len(bytes)-1]))
	bytes, err = bufReader.ReadBytes(' ')
	if err != nil {
		return nil
	}
	req.Path = string(bytes[:len(bytes)-1])
	// HTTP version, discarded.
	_, err = bufReader.ReadBytes('\n')
	if err != nil {
		return nil
	}
	qryIdx := strings.Index(req.Path, "?")
	if qryIdx > -1 {
		req.QueryString = req.Path[qryIdx+1:]
		req.Path = req.Path[0:qryIdx]
	}
	for {
		bytes, err = bufReader.ReadBytes('\n')
		if err != nil {
			return nil
		}
		if bytes[0] == '\r' {
			break
		}
		if bytes[0] == '\n' {
			continue
		}
		header := strings.TrimRight(string(bytes), "\r\n")
		split := strings.SplitN(header, ":", 2)
		if len(split) != 2 {
			continue
		}
		req.Headers[split[0]] = strings.TrimLeft(split[1], " ")
	}

	if req.Headers["Content-Length"] != "" {
		bodyLength, err := strconv.Atoi(req.Headers["Content-Length"])
		if err != nil {
			return nil
		}
		body := make([]byte, bodyLength)
		_, err = io.ReadFull(bufReader, body)
		if err != nil {
			return nil
		}
		req.Body = body
	}

	return &req
}
