package auth_test

import (
	"context"
	"testing"

	"github.com/stackmoxie/looksy-cog/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"
)

func TestSession_AuthenticatesOnce(t *testing.T) {
	factory := &countingFactory{}
	a := auth.NewAuthenticator(authFields, factory.build)

	md := metadata.Pairs("endpoint", "https://api.example.com")
	s := a.NewSession(md)
	assert.Equal(t, auth.StateUnauthenticated, s.State())

	first, err := s.Client(context.Background())
	require.NoError(t, err)
	assert.Equal(t, auth.StateAuthenticated, s.State())

	// Metadata changes after the first message are not re-read.
	md.Set("endpoint", "https://elsewhere.example.com")
	for i := 0; i < 5; i++ {
		c, err := s.Client(context.Background())
		require.NoError(t, err)
		assert.Same(t, first, c)
	}
	assert.Equal(t, 1, factory.calls)
}

func TestSession_FailureCloses(t *testing.T) {
	factory := &countingFactory{}
	a := auth.NewAuthenticator(authFields, factory.build)

	s := a.NewSession(metadata.MD{})
	_, err := s.Client(context.Background())
	assert.ErrorIs(t, err, auth.ErrMissingCredential)
	assert.Equal(t, auth.StateClosed, s.State())

	_, err = s.Client(context.Background())
	assert.ErrorIs(t, err, auth.ErrSessionClosed)
	assert.Zero(t, factory.calls)
}

func TestSession_Close(t *testing.T) {
	a := auth.NewAuthenticator(authFields, (&countingFactory{}).build)
	s := a.NewSession(metadata.Pairs("endpoint", "https://api.example.com"))

	_, err := s.Client(context.Background())
	require.NoError(t, err)

	s.Close()
	assert.Equal(t, auth.StateClosed, s.State())
	_, err = s.Client(context.Background())
	assert.ErrorIs(t, err, auth.ErrSessionClosed)
}
