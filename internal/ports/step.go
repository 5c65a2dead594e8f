package ports

import (
	"context"

	"github.com/stackmoxie/looksy-cog/internal/domain"
)

// Step executes one step request against the target system. A returned
// error means the step could not run; semantic failures are reported as a
// FAILED response instead.
type Step interface {
	Execute(ctx context.Context, msg *domain.StepMessage) (*domain.Response, error)
}

// StepFactory describes a step and builds instances bound to a client.
type StepFactory interface {
	Definition() domain.StepDefinition
	New(client Client) Step
}
