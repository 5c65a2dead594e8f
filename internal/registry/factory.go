package registry

import (
	"github.com/stackmoxie/looksy-cog/internal/domain"
	"github.com/stackmoxie/looksy-cog/internal/ports"
)

type factory struct {
	def domain.StepDefinition
	fn  func(ports.Client) ports.Step
}

// Factory adapts a static definition and a constructor to ports.StepFactory.
func Factory(def domain.StepDefinition, fn func(ports.Client) ports.Step) ports.StepFactory {
	return &factory{def: def, fn: fn}
}

func (f *factory) Definition() domain.StepDefinition {
	return f.def
}

func (f *factory) New(client ports.Client) ports.Step {
	return f.fn(client)
}
