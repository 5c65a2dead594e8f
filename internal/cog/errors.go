package cog

import (
	"errors"
	"fmt"

	"github.com/stackmoxie/looksy-cog/internal/domain"
)

const (
	UnknownStepFormat = "Unknown step %s"
	StepErrorFormat   = "Error running step: %s"
)

var ErrNilResponse = errors.New("step returned no response")

// UnknownStepError reports a step ID that is not in the registry.
type UnknownStepError struct {
	StepID string
}

func (e *UnknownStepError) Error() string {
	return fmt.Sprintf("unknown step %q", e.StepID)
}

// StepExecutionError wraps anything a step raised while executing.
type StepExecutionError struct {
	StepID string
	Err    error
}

func (e *StepExecutionError) Error() string {
	return fmt.Sprintf("step %q: %v", e.StepID, e.Err)
}

func (e *StepExecutionError) Unwrap() error {
	return e.Err
}

// errorResponse turns a dispatch failure into the ERROR response sent back
// to the orchestrator.
func errorResponse(err error) *domain.Response {
	var unknown *UnknownStepError
	if errors.As(err, &unknown) {
		return domain.Error(UnknownStepFormat, []any{unknown.StepID})
	}
	var exec *StepExecutionError
	if errors.As(err, &exec) {
		return domain.Error(StepErrorFormat, []any{exec.Err.Error()})
	}
	return domain.Error(StepErrorFormat, []any{err.Error()})
}
