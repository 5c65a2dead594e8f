package domain_test

import (
	"testing"

	"github.com/stackmoxie/looksy-cog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestStepDefinition_Validate(t *testing.T) {
	def := domain.StepDefinition{
		StepID: "Echo",
		ExpectedFields: []domain.FieldDefinition{
			domain.RequiredField("a", domain.FieldString, "a"),
			domain.OptionalField("b", domain.FieldNumeric, "b"),
		},
	}
	assert.NoError(t, def.Validate())
}

func TestStepDefinition_ValidateMissingID(t *testing.T) {
	def := domain.StepDefinition{Name: "Nameless"}
	err := def.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no step id")
}

func TestStepDefinition_ValidateDuplicateField(t *testing.T) {
	def := domain.StepDefinition{
		StepID: "Echo",
		ExpectedFields: []domain.FieldDefinition{
			domain.RequiredField("a", domain.FieldString, "a"),
			domain.RequiredField("a", domain.FieldString, "again"),
		},
	}
	err := def.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `field "a" declared twice`)
}

func TestStepDefinition_ValidateDuplicateRecordField(t *testing.T) {
	def := domain.StepDefinition{
		StepID: "Echo",
		ExpectedRecords: []domain.ExpectedRecord{{
			ID:   "rec",
			Type: domain.RecordKeyValue,
			GuaranteedFields: []domain.FieldDefinition{
				domain.RequiredField("x", domain.FieldString, "x"),
				domain.RequiredField("x", domain.FieldString, "x"),
			},
		}},
	}
	err := def.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `record "rec"`)
}

func TestFieldDefinition_IsRequired(t *testing.T) {
	assert.True(t, domain.RequiredField("a", domain.FieldString, "").IsRequired())
	assert.False(t, domain.OptionalField("a", domain.FieldString, "").IsRequired())
	assert.True(t, domain.FieldDefinition{Key: "a"}.IsRequired())
}

func TestStepMessage_Fields(t *testing.T) {
	data, err := structpb.NewStruct(map[string]any{"image1": "abc", "rmse": 0.5})
	require.NoError(t, err)

	msg := &domain.StepMessage{StepID: "Echo", Data: data}
	assert.Equal(t, map[string]any{"image1": "abc", "rmse": 0.5}, msg.Fields())

	empty := &domain.StepMessage{StepID: "Echo"}
	assert.Empty(t, empty.Fields())
}
