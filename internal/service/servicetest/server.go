// Package servicetest provides a recording API server for adapter tests.
package servicetest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"storefront/internal/client"
	"storefront/pkg/lib/logger/slogdiscard"
)

type Call struct {
	Method        string
	Path          string
	Authorization string
	HasAuth       bool
	ContentType   string
	Body          string
}

// Server answers every request with the configured response and records it.
type Server struct {
	mu     sync.Mutex
	status int
	body   string
	calls  []Call
	srv    *httptest.Server
}

func NewServer(t *testing.T, status int, body string) *Server {
	t.Helper()

	s := &Server{status: status, body: body}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.srv.Close)

	return s
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	_, hasAuth := r.Header["Authorization"]

	s.mu.Lock()
	s.calls = append(s.calls, Call{
		Method:        r.Method,
		Path:          r.URL.Path,
		Authorization: r.Header.Get("Authorization"),
		HasAuth:       hasAuth,
		ContentType:   r.Header.Get("Content-Type"),
		Body:          string(body),
	})
	status, respBody := s.status, s.body
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, respBody)
}

// Respond changes the response for subsequent requests.
func (s *Server) Respond(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = status
	s.body = body
}

// Client returns a transport pointed at the server.
func (s *Server) Client() *client.Client {
	return client.New(slogdiscard.NewDiscardLogger(), s.srv.URL, 2*time.Second)
}

func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// Last returns the most recent call, or a zero Call if none was made.
func (s *Server) Last() Call {
	calls := s.Calls()
	if len(calls) == 0 {
		return Call{}
	}
	return calls[len(calls)-1]
}
