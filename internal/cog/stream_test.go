package cog_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stackmoxie/looksy-cog/internal/auth"
	"github.com/stackmoxie/looksy-cog/internal/domain"
	"github.com/stackmoxie/looksy-cog/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"
)

type fakeStream struct {
	ctx     context.Context
	in      []*domain.StepMessage
	recvErr error
	sent    []*domain.Response
	sendErr error
	sends   int
}

func newFakeStream(msgs ...*domain.StepMessage) *fakeStream {
	return &fakeStream{ctx: context.Background(), in: msgs}
}

func (s *fakeStream) Context() context.Context {
	return s.ctx
}

func (s *fakeStream) Recv() (*domain.StepMessage, error) {
	if len(s.in) == 0 {
		if s.recvErr != nil {
			return nil, s.recvErr
		}
		return nil, io.EOF
	}
	msg := s.in[0]
	s.in = s.in[1:]
	return msg, nil
}

func (s *fakeStream) Send(resp *domain.Response) error {
	s.sends++
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, resp)
	return nil
}

func TestRunSteps_EchoThenBogus(t *testing.T) {
	h := newHarness(t, map[string]stepFunc{"Echo": echo})
	stream := newFakeStream(
		&domain.StepMessage{StepID: "Echo"},
		&domain.StepMessage{StepID: "Bogus"},
	)

	require.NoError(t, h.cog.RunSteps(validCreds(), stream))
	require.Len(t, stream.sent, 2)

	assert.Same(t, okResponse, stream.sent[0])

	assert.Equal(t, domain.OutcomeError, stream.sent[1].Outcome)
	assert.Equal(t, "Unknown step %s", stream.sent[1].MessageFormat)
	require.Len(t, stream.sent[1].MessageArgs, 1)
	assert.Equal(t, "Bogus", stream.sent[1].MessageArgs[0].GetStringValue())

	assert.Equal(t, 1, h.authCalls)
}

func TestRunSteps_AuthenticatesOnce(t *testing.T) {
	h := newHarness(t, map[string]stepFunc{"Echo": echo})

	var msgs []*domain.StepMessage
	for i := 0; i < 25; i++ {
		msgs = append(msgs, &domain.StepMessage{StepID: "Echo"})
	}
	stream := newFakeStream(msgs...)

	require.NoError(t, h.cog.RunSteps(validCreds(), stream))
	assert.Len(t, stream.sent, 25)
	assert.Equal(t, 1, h.authCalls)
	assert.Equal(t, 25, h.built["Echo"])
}

func TestRunSteps_NoMessagesNoAuthentication(t *testing.T) {
	h := newHarness(t, map[string]stepFunc{"Echo": echo})
	stream := newFakeStream()

	require.NoError(t, h.cog.RunSteps(validCreds(), stream))
	assert.Zero(t, h.authCalls)
	assert.Empty(t, stream.sent)
}

func TestRunSteps_InOrder(t *testing.T) {
	h := newHarness(t, map[string]stepFunc{
		"Echo": func(_ context.Context, msg *domain.StepMessage) (*domain.Response, error) {
			return domain.Pass("%s", []any{msg.Fields()["n"]}), nil
		},
	})

	var msgs []*domain.StepMessage
	for i := 0; i < 10; i++ {
		msgs = append(msgs, stepWith(t, "Echo", map[string]any{"n": float64(i)}))
	}
	stream := newFakeStream(msgs...)

	require.NoError(t, h.cog.RunSteps(validCreds(), stream))
	require.Len(t, stream.sent, 10)
	for i, resp := range stream.sent {
		assert.Equal(t, float64(i), resp.MessageArgs[0].GetNumberValue())
	}
}

func TestRunSteps_FailureDoesNotTearDown(t *testing.T) {
	h := newHarness(t, map[string]stepFunc{
		"Echo": echo,
		"Broken": func(context.Context, *domain.StepMessage) (*domain.Response, error) {
			return nil, errors.New("boom")
		},
		"Panics": func(context.Context, *domain.StepMessage) (*domain.Response, error) {
			panic("kaboom")
		},
	})
	stream := newFakeStream(
		&domain.StepMessage{StepID: "Broken"},
		&domain.StepMessage{StepID: "Echo"},
		&domain.StepMessage{StepID: "Panics"},
		&domain.StepMessage{StepID: "Echo"},
	)

	require.NoError(t, h.cog.RunSteps(validCreds(), stream))
	require.Len(t, stream.sent, 4)
	assert.Equal(t, domain.OutcomeError, stream.sent[0].Outcome)
	assert.Same(t, okResponse, stream.sent[1])
	assert.Equal(t, domain.OutcomeError, stream.sent[2].Outcome)
	assert.Same(t, okResponse, stream.sent[3])
}

func TestRunSteps_AuthenticationFailureClosesChannel(t *testing.T) {
	h := newHarness(t, map[string]stepFunc{"Echo": echo})
	stream := newFakeStream(
		&domain.StepMessage{StepID: "Echo"},
		&domain.StepMessage{StepID: "Echo"},
	)

	err := h.cog.RunSteps(metadata.MD{}, stream)
	var authErr *auth.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Zero(t, stream.sends)
	assert.Zero(t, h.built["Echo"])
	assert.Len(t, stream.in, 1)
}

func TestRunSteps_SendFailureStopsWrites(t *testing.T) {
	h := newHarness(t, map[string]stepFunc{"Echo": echo})
	stream := newFakeStream(
		&domain.StepMessage{StepID: "Echo"},
		&domain.StepMessage{StepID: "Echo"},
	)
	stream.sendErr = errors.New("transport is closing")

	err := h.cog.RunSteps(validCreds(), stream)
	assert.ErrorIs(t, err, stream.sendErr)
	assert.Equal(t, 1, stream.sends)
}

func TestRunSteps_PeerCancelled(t *testing.T) {
	h := newHarness(t, map[string]stepFunc{"Echo": echo})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stream := newFakeStream()
	stream.ctx = ctx
	stream.recvErr = context.Canceled

	assert.NoError(t, h.cog.RunSteps(validCreds(), stream))
	assert.Zero(t, stream.sends)
}

func TestRunSteps_PeerGoneDuringStep(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := newHarness(t, map[string]stepFunc{
		"Slow": func(context.Context, *domain.StepMessage) (*domain.Response, error) {
			cancel()
			return okResponse, nil
		},
	})
	stream := newFakeStream(
		&domain.StepMessage{StepID: "Slow"},
		&domain.StepMessage{StepID: "Slow"},
	)
	stream.ctx = ctx
	stream.sendErr = errors.New("transport is closing")

	assert.NoError(t, h.cog.RunSteps(validCreds(), stream))
	assert.Equal(t, 1, stream.sends)
}

func TestRunSteps_StepLogsCarryStreamAttrs(t *testing.T) {
	h := newHarness(t, map[string]stepFunc{
		"Chatty": func(ctx context.Context, _ *domain.StepMessage) (*domain.Response, error) {
			log.FromContext(ctx).InfoContext(ctx, "inside step")
			return okResponse, nil
		},
	})
	stream := newFakeStream(&domain.StepMessage{StepID: "Chatty"})

	require.NoError(t, h.cog.RunSteps(validCreds(), stream))

	var line map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(h.logs.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &entry))
		if entry["msg"] == "inside step" {
			line = entry
		}
	}
	require.NotNil(t, line)
	assert.Equal(t, "Chatty", line["step_id"])
	assert.NotEmpty(t, line["conn_id"])
}

func TestRunSteps_RecvError(t *testing.T) {
	h := newHarness(t, map[string]stepFunc{"Echo": echo})
	stream := newFakeStream(&domain.StepMessage{StepID: "Echo"})
	stream.recvErr = errors.New("malformed frame")

	err := h.cog.RunSteps(validCreds(), stream)
	assert.ErrorIs(t, err, stream.recvErr)
	assert.Len(t, stream.sent, 1)
}
