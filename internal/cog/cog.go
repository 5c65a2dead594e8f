package cog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/stackmoxie/looksy-cog/internal/auth"
	"github.com/stackmoxie/looksy-cog/internal/domain"
	"github.com/stackmoxie/looksy-cog/internal/log"
	"github.com/stackmoxie/looksy-cog/internal/manifest"
	"github.com/stackmoxie/looksy-cog/internal/ports"
	"github.com/stackmoxie/looksy-cog/internal/registry"
)

// StepStream is one bidirectional channel of step requests and responses.
// Recv returns io.EOF once the peer has closed its side.
type StepStream interface {
	Context() context.Context
	Recv() (*domain.StepMessage, error)
	Send(*domain.Response) error
}

type Cog struct {
	identity manifest.Identity
	registry *registry.Registry
	auth     *auth.Authenticator
	logger   *slog.Logger
}

func New(
	id manifest.Identity, reg *registry.Registry, authn *auth.Authenticator, logger *slog.Logger,
) *Cog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cog{identity: id, registry: reg, auth: authn, logger: logger}
}

func (c *Cog) Manifest() *domain.Manifest {
	return manifest.Build(c.registry, c.auth.Fields(), c.identity)
}

// RunStep authenticates with creds and runs a single step. Only an
// authentication failure is returned as an error; every step outcome,
// including unknown steps and step failures, is a response.
func (c *Cog) RunStep(
	ctx context.Context, creds auth.Credentials, msg *domain.StepMessage,
) (*domain.Response, error) {
	client, err := c.auth.Authenticate(ctx, creds)
	if err != nil {
		c.logger.Warn("Authentication failed", log.StepID(msg.StepID), log.Error(err))
		return nil, err
	}
	return c.dispatch(ctx, c.logger, client, msg), nil
}

// RunSteps serves one stream until the peer closes its side. The client is
// built when the first message arrives and reused for every later message.
// Responses are sent in the order their requests arrived.
func (c *Cog) RunSteps(creds auth.Credentials, stream StepStream) error {
	ctx := stream.Context()
	session := c.auth.NewSession(creds)
	defer session.Close()

	logger := c.logger.With(log.ConnID(uuid.NewString()))
	logger.Debug("Stream opened")

	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			logger.Debug("Stream closed by peer")
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				logger.Debug("Stream cancelled", log.Error(ctx.Err()))
				return nil
			}
			return fmt.Errorf("receiving step: %w", err)
		}

		client, err := session.Client(ctx)
		if err != nil {
			logger.Warn("Authentication failed", log.StepID(msg.StepID), log.Error(err))
			return err
		}

		resp := c.dispatch(ctx, logger, client, msg)
		if err := stream.Send(resp); err != nil {
			if ctx.Err() != nil {
				logger.Debug("Stream cancelled", log.StepID(msg.StepID), log.Error(ctx.Err()))
				return nil
			}
			logger.Debug("Stream send failed", log.StepID(msg.StepID), log.Error(err))
			return fmt.Errorf("sending response: %w", err)
		}
	}
}

// dispatch runs msg and always yields a response. The step sees a logger
// carrying the step ID through log.FromContext.
func (c *Cog) dispatch(
	ctx context.Context, logger *slog.Logger, client ports.Client, msg *domain.StepMessage,
) *domain.Response {
	logger = logger.With(log.StepID(msg.StepID))

	factory, ok := c.registry.Resolve(msg.StepID)
	if !ok {
		logger.Warn("Unknown step")
		return errorResponse(&UnknownStepError{StepID: msg.StepID})
	}

	resp, err := execute(log.WithLogger(ctx, logger), factory, client, msg)
	if err != nil {
		logger.Error("Step execution failed", log.Error(err))
		return errorResponse(err)
	}

	logger.Info("Step executed", log.Outcome(resp.Outcome))
	return resp
}

func execute(
	ctx context.Context, factory ports.StepFactory, client ports.Client, msg *domain.StepMessage,
) (resp *domain.Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = &StepExecutionError{StepID: msg.StepID, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	resp, err = factory.New(client).Execute(ctx, msg)
	if err != nil {
		return nil, &StepExecutionError{StepID: msg.StepID, Err: err}
	}
	if resp == nil {
		return nil, &StepExecutionError{StepID: msg.StepID, Err: ErrNilResponse}
	}
	return resp, nil
}
