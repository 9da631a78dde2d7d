package api

import (
	"fmt"
	"net/http"
	"strings"
)

// HTTPError возвращается на любой не-2xx ответ, который не был поглощён
// обработчиком 401. Тело ответа уже прочитано и доступно в Body,
// Response.Body можно перечитать повторно.
type HTTPError struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
	Response   *http.Response
}

func (e *HTTPError) Error() string {
	msg := strings.TrimSpace(string(e.Body))
	if msg == "" {
		return fmt.Sprintf("http status %d", e.StatusCode)
	}
	return fmt.Sprintf("http status %d: %s", e.StatusCode, msg)
}

// ParseError - успешный ответ с телом, которое не является JSON
// (или не ложится в тип назначения).
type ParseError struct {
	Body []byte
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse response body: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// TransportError wraps a failure of the underlying http.Client: connection
// refused, DNS, TLS, context cancellation.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
