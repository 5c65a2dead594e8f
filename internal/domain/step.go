package domain

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

type FieldType string

const (
	FieldAnyScalar    FieldType = "anyscalar"
	FieldString       FieldType = "string"
	FieldBoolean      FieldType = "boolean"
	FieldNumeric      FieldType = "numeric"
	FieldDate         FieldType = "date"
	FieldDatetime     FieldType = "datetime"
	FieldEmail        FieldType = "email"
	FieldPhone        FieldType = "phone"
	FieldURL          FieldType = "url"
	FieldAnyNonScalar FieldType = "anynonscalar"
	FieldMap          FieldType = "map"
)

type Optionality string

const (
	Required Optionality = "required"
	Optional Optionality = "optional"
)

type StepType string

const (
	StepTypeAction     StepType = "action"
	StepTypeValidation StepType = "validation"
)

type RecordType string

const (
	RecordKeyValue RecordType = "keyvalue"
	RecordTable    RecordType = "table"
	RecordBinary   RecordType = "binary"
)

type FieldDefinition struct {
	Key         string
	Type        FieldType
	Description string
	Help        string
	Optionality Optionality
}

// RequiredField declares a field the caller must always supply.
func RequiredField(key string, typ FieldType, description string) FieldDefinition {
	return FieldDefinition{Key: key, Type: typ, Description: description, Optionality: Required}
}

func OptionalField(key string, typ FieldType, description string) FieldDefinition {
	return FieldDefinition{Key: key, Type: typ, Description: description, Optionality: Optional}
}

// IsRequired treats an undeclared optionality as required.
func (f FieldDefinition) IsRequired() bool {
	return f.Optionality != Optional
}

type ExpectedRecord struct {
	ID                string
	Type              RecordType
	GuaranteedFields  []FieldDefinition
	MayHaveMoreFields bool
}

type StepDefinition struct {
	StepID          string
	Name            string
	Expression      string
	Type            StepType
	ExpectedFields  []FieldDefinition
	ExpectedRecords []ExpectedRecord
	Help            string
}

func (d *StepDefinition) Validate() error {
	if d.StepID == "" {
		return fmt.Errorf("step %q: no step id defined", d.Name)
	}
	if err := uniqueKeys(d.ExpectedFields); err != nil {
		return fmt.Errorf("step %q: %w", d.StepID, err)
	}
	for _, rec := range d.ExpectedRecords {
		if err := uniqueKeys(rec.GuaranteedFields); err != nil {
			return fmt.Errorf("step %q record %q: %w", d.StepID, rec.ID, err)
		}
	}
	return nil
}

func uniqueKeys(fields []FieldDefinition) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.Key] {
			return fmt.Errorf("field %q declared twice", f.Key)
		}
		seen[f.Key] = true
	}
	return nil
}

type Manifest struct {
	Name            string
	Label           string
	Version         string
	Homepage        string
	AuthHelp        string
	AuthFields      []FieldDefinition
	StepDefinitions []StepDefinition
}

// StepMessage is a single request to run the step identified by StepID.
type StepMessage struct {
	StepID string
	Data   *structpb.Struct
}

// Fields returns the step data as plain Go values. A message without data
// yields an empty map.
func (m *StepMessage) Fields() map[string]any {
	return m.Data.AsMap()
}
