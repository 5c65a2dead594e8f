package manifest

import (
	"github.com/stackmoxie/looksy-cog/internal/domain"
	"github.com/stackmoxie/looksy-cog/internal/registry"
)

// Identity is the externally configured name of the cog.
type Identity struct {
	Name     string
	Label    string
	Version  string
	Homepage string
	AuthHelp string
}

// Build assembles a manifest from the registry and the declared auth fields.
// Nothing is cached; every call reflects the current inputs.
func Build(reg *registry.Registry, authFields []domain.FieldDefinition, id Identity) *domain.Manifest {
	m := &domain.Manifest{
		Name:            id.Name,
		Label:           id.Label,
		Version:         id.Version,
		Homepage:        id.Homepage,
		AuthHelp:        id.AuthHelp,
		AuthFields:      append([]domain.FieldDefinition(nil), authFields...),
		StepDefinitions: reg.Definitions(),
	}
	return m
}
