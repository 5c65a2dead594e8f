package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/stackmoxie/looksy-cog/internal/ports"
)

type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
	StateClosed          State = "closed"
)

var ErrSessionClosed = errors.New("session closed")

// Session scopes one authenticated client to one connection. The client is
// built on first use and reused for the rest of the connection; credentials
// are captured once, when the connection opens.
type Session struct {
	mu     sync.Mutex
	auth   *Authenticator
	creds  Credentials
	state  State
	client ports.Client
}

func (a *Authenticator) NewSession(creds Credentials) *Session {
	return &Session{auth: a, creds: creds, state: StateUnauthenticated}
}

// Client returns the connection's client, authenticating on the first call.
// A failed authentication closes the session.
func (s *Session) Client(ctx context.Context) (ports.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateAuthenticated:
		return s.client, nil
	case StateClosed:
		return nil, ErrSessionClosed
	}

	client, err := s.auth.Authenticate(ctx, s.creds)
	if err != nil {
		s.state = StateClosed
		return nil, err
	}
	s.client = client
	s.state = StateAuthenticated
	return client, nil
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Close releases the cached client. Further calls to Client fail.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateClosed
	s.client = nil
}
