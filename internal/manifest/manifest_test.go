package manifest_test

import (
	"testing"

	"github.com/stackmoxie/looksy-cog/internal/domain"
	"github.com/stackmoxie/looksy-cog/internal/manifest"
	"github.com/stackmoxie/looksy-cog/internal/ports"
	"github.com/stackmoxie/looksy-cog/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validationDef = domain.StepDefinition{
	StepID:     "CheckThing",
	Name:       "Check Thing",
	Expression: "check (?<thing>.+)",
	Type:       domain.StepTypeValidation,
	ExpectedFields: []domain.FieldDefinition{
		{Key: "thing", Type: domain.FieldString, Description: "Thing", Help: "Help", Optionality: domain.Required},
	},
	ExpectedRecords: []domain.ExpectedRecord{{
		ID:                "thingRecord",
		Type:              domain.RecordKeyValue,
		GuaranteedFields:  []domain.FieldDefinition{domain.RequiredField("thing", domain.FieldString, "Thing")},
		MayHaveMoreFields: true,
	}},
	Help: "Checks a thing",
}

func factoryFor(def domain.StepDefinition) ports.StepFactory {
	return registry.Factory(def, func(ports.Client) ports.Step { return nil })
}

func TestBuild_Identity(t *testing.T) {
	reg, err := registry.New()
	require.NoError(t, err)

	m := manifest.Build(reg, []domain.FieldDefinition{
		domain.RequiredField("endpoint", domain.FieldURL, "Endpoint"),
	}, manifest.Identity{Name: "acme/demo", Label: "Demo", Version: "1.2.3"})

	assert.Equal(t, "acme/demo", m.Name)
	assert.Equal(t, "Demo", m.Label)
	assert.Equal(t, "1.2.3", m.Version)
	require.Len(t, m.AuthFields, 1)
	assert.Equal(t, "endpoint", m.AuthFields[0].Key)
	assert.Equal(t, domain.FieldURL, m.AuthFields[0].Type)
	assert.Equal(t, domain.Required, m.AuthFields[0].Optionality)
	assert.Empty(t, m.StepDefinitions)
}

func TestBuild_OneDefinitionPerStep(t *testing.T) {
	other := domain.StepDefinition{StepID: "DoThing", Name: "Do Thing", Type: domain.StepTypeAction}
	reg, err := registry.New(factoryFor(validationDef), factoryFor(other))
	require.NoError(t, err)

	m := manifest.Build(reg, nil, manifest.Identity{Name: "acme/demo"})

	counts := map[string]int{}
	for _, def := range m.StepDefinitions {
		counts[def.StepID]++
	}
	assert.Equal(t, map[string]int{"CheckThing": 1, "DoThing": 1}, counts)

	for _, def := range m.StepDefinitions {
		f, ok := reg.Resolve(def.StepID)
		require.True(t, ok)
		assert.Equal(t, f.Definition(), def)
	}
}

func TestBuild_MirrorsDeclaredMetadata(t *testing.T) {
	reg, err := registry.New(factoryFor(validationDef))
	require.NoError(t, err)

	m := manifest.Build(reg, nil, manifest.Identity{})
	require.Len(t, m.StepDefinitions, 1)
	assert.Equal(t, validationDef, m.StepDefinitions[0])
}

func TestBuild_AuthFieldsAreCopied(t *testing.T) {
	reg, err := registry.New()
	require.NoError(t, err)

	fields := []domain.FieldDefinition{domain.RequiredField("endpoint", domain.FieldURL, "Endpoint")}
	m := manifest.Build(reg, fields, manifest.Identity{})
	m.AuthFields[0].Key = "changed"

	assert.Equal(t, "endpoint", fields[0].Key)
}
