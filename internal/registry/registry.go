package registry

import (
	"errors"
	"fmt"

	"github.com/stackmoxie/looksy-cog/internal/domain"
	"github.com/stackmoxie/looksy-cog/internal/ports"
)

var ErrDuplicateStep = errors.New("step registered twice")

// Registry maps step IDs to the factories that build them. It is the single
// source for both dispatch and the manifest.
type Registry struct {
	order     []string
	factories map[string]ports.StepFactory
}

func New(factories ...ports.StepFactory) (*Registry, error) {
	r := &Registry{factories: make(map[string]ports.StepFactory, len(factories))}
	for _, f := range factories {
		def := f.Definition()
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("registering step: %w", err)
		}
		if _, ok := r.factories[def.StepID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateStep, def.StepID)
		}
		r.factories[def.StepID] = f
		r.order = append(r.order, def.StepID)
	}
	return r, nil
}

// Resolve reports whether stepID is registered and returns its factory.
func (r *Registry) Resolve(stepID string) (ports.StepFactory, bool) {
	f, ok := r.factories[stepID]
	return f, ok
}

// Definitions returns every registered step definition in registration order.
func (r *Registry) Definitions() []domain.StepDefinition {
	defs := make([]domain.StepDefinition, 0, len(r.order))
	for _, id := range r.order {
		defs = append(defs, r.factories[id].Definition())
	}
	return defs
}

func (r *Registry) Len() int {
	return len(r.order)
}
