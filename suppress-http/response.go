package suppress_http

import (
	"bufio"
	"encoding/json"
	"log"
	"net"
	"strconv"
	"strings"
)

// routeError is the JSON body shape for errors produced by the router itself.
// Everything else on the wire comes from handlers.
type routeError struct {
	Error string `json:"error"`
}

type genericResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// HttpResponse is a complete HTTP response. When Stream is set the body is
// copied from it instead of Body, with StreamSize used for Content-Length.
type HttpResponse struct {
	StatusCode StatusCode
	Headers    map[string]string
	Body       []byte
	Stream     *bufio.Reader
	StreamSize int64
}

func NewHttpResponse() *HttpResponse {
	return &HttpResponse{
		StatusCode: StatusOK,
		Headers:    make(map[string]string),
		Body:       []byte{},
	}
}

// StringResponse creates a 200 OK plain text response.
func StringResponse(body string) *HttpResponse {
	res := NewHttpResponse()
	res.Headers["Content-Type"] = "text/plain"
	res.Body = []byte(body)
	return res
}

// JsonResponse creates a 200 OK response from any JSON-serializable value.
func JsonResponse(body any) *HttpResponse {
	res := NewHttpResponse()
	res.Headers["Content-Type"] = "application/json"
	res.Body, _ = json.Marshal(body)
	return res
}

// BufferedResponse creates a streaming 200 OK response for large content.
func BufferedResponse(reader *bufio.Reader, length int64) *HttpResponse {
	res := NewHttpResponse()
	res.Stream = reader
	res.StreamSize = length
	return res
}

// ErrorResponse creates a 500 response from an error. The real error is
// logged; the client gets a generic message.
func ErrorResponse(body error) *HttpResponse {
	log.Printf("[ERROR]: %v", body.Error())
	return jsonStatusResponse(StatusInternalServerError, genericResponse{
		Status:  false,
		Message: "An error occurred and your request could not be completed.",
	})
}

// BadRequestResponse creates a 400 response with a custom message.
func BadRequestResponse(message string) *HttpResponse {
	return jsonStatusResponse(StatusBadRequest, genericResponse{
		Status:  false,
		Message: message,
	})
}

// ForbiddenResponse creates a 403 response with a custom message.
func ForbiddenResponse(message string) *HttpResponse {
	return jsonStatusResponse(StatusForbidden, genericResponse{
		Status:  false,
		Message: message,
	})
}

// NotFoundResponse creates a 404 response with a custom message.
func NotFoundResponse(message string) *HttpResponse {
	return jsonStatusResponse(StatusNotFound, genericResponse{
		Status:  false,
		Message: message,
	})
}

// SuccessStringResponse creates a standardized 200 JSON success response.
func SuccessStringResponse(message string) *HttpResponse {
	return jsonStatusResponse(StatusOK, genericResponse{
		Status:  true,
		Message: message,
	})
}

// RouteNotFoundResponse is the response a route table produces when no
// handler is registered for the requested method and path.
func RouteNotFoundResponse() *HttpResponse {
	return jsonStatusResponse(StatusNotFound, routeError{Error: "Route not found"})
}

// MethodNotAllowedResponse is the response the server produces for any
// request whose method is not one of the four routable verbs.
func MethodNotAllowedResponse() *HttpResponse {
	return jsonStatusResponse(StatusMethodNotAllowed, routeError{Error: "Method not allowed"})
}

func jsonStatusResponse(status StatusCode, body any) *HttpResponse {
	res := JsonResponse(body)
	res.StatusCode = status
	return res
}

func (self *HttpResponse) SetHeader(key string, value string) {
	self.Headers[key] = value
}

func (self *HttpResponse) SetStatus(status StatusCode) {
	self.StatusCode = status
}

// Write sends the response over the TCP connection: status line, headers,
// Content-Length, then the body (or stream).
func (self *HttpResponse) Write(stream net.Conn) {
	var output strings.Builder
	output.WriteString("HTTP/1.1 ")
	output.WriteString(strconv.Itoa(int(self.StatusCode)))
	output.WriteString(" ")
	output.WriteString(StatusCodeDescriptions[self.StatusCode])
	output.WriteString("\r\n")
	for key, value := range self.Headers {
		output.WriteString(key)
		output.WriteString(": ")
		output.WriteString(value)
		output.WriteString("\r\n")
	}
	output.WriteString("Content-Length: ")
	if self.Stream != nil {
		output.WriteString(strconv.Itoa(int(self.StreamSize)))
	} else {
		output.WriteString(strconv.Itoa(len(self.Body)))
	}
	output.WriteString("\r\n\r\n")

	head := output.String()
	written := 0
	for written < len(head) {
		n, err := stream.Write([]byte(head[written:]))
		if err != nil {
			return
		}
		written += n
	}
	if self.Stream != nil {
		self.Stream.WriteTo(stream)
		return
	}
	written = 0
	for written < len(self.Body) {
		n, err := stream.Write(self.Body[written:])
		if err != nil {
			return
		}
		written += n
	}
}
