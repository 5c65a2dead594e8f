package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/stackmoxie/looksy-cog/internal/domain"
	"github.com/stackmoxie/looksy-cog/internal/ports"
)

var (
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidCredential = errors.New("invalid credential")
)

// Credentials is the per-connection metadata a client is built from.
// grpc's metadata.MD satisfies it.
type Credentials interface {
	Get(key string) []string
}

// AuthenticationError reports the auth field that stopped a client from
// being built.
type AuthenticationError struct {
	Field string
	Err   error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authenticating: %v: %s", e.Err, e.Field)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

type Authenticator struct {
	fields  []domain.FieldDefinition
	factory ports.ClientFactory
}

func NewAuthenticator(fields []domain.FieldDefinition, factory ports.ClientFactory) *Authenticator {
	return &Authenticator{fields: fields, factory: factory}
}

// Fields returns a copy of the declared auth fields.
func (a *Authenticator) Fields() []domain.FieldDefinition {
	return append([]domain.FieldDefinition(nil), a.fields...)
}

// Authenticate extracts the declared fields from creds and builds a client.
func (a *Authenticator) Authenticate(ctx context.Context, creds Credentials) (ports.Client, error) {
	values, err := a.extract(creds)
	if err != nil {
		return nil, err
	}
	client, err := a.factory(ctx, values)
	if err != nil {
		return nil, fmt.Errorf("constructing client: %w", err)
	}
	return client, nil
}

func (a *Authenticator) extract(creds Credentials) (map[string]string, error) {
	values := make(map[string]string, len(a.fields))
	for _, f := range a.fields {
		v := first(creds, f.Key)
		if v == "" {
			if f.IsRequired() {
				return nil, &AuthenticationError{Field: f.Key, Err: ErrMissingCredential}
			}
			continue
		}
		if f.Type == domain.FieldURL && !validURL(v) {
			return nil, &AuthenticationError{Field: f.Key, Err: ErrInvalidCredential}
		}
		values[f.Key] = v
	}
	return values, nil
}

func first(creds Credentials, key string) string {
	if creds == nil {
		return ""
	}
	for _, v := range creds.Get(key) {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
