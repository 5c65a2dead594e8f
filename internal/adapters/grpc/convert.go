package grpc

import (
	pb "github.com/stackmoxie/looksy-cog/api/cogpb"
	"github.com/stackmoxie/looksy-cog/internal/domain"
)

var (
	fieldTypes = map[domain.FieldType]pb.FieldDefinition_Type{
		domain.FieldAnyScalar:    pb.FieldDefinition_ANYSCALAR,
		domain.FieldString:       pb.FieldDefinition_STRING,
		domain.FieldBoolean:      pb.FieldDefinition_BOOLEAN,
		domain.FieldNumeric:      pb.FieldDefinition_NUMERIC,
		domain.FieldDate:         pb.FieldDefinition_DATE,
		domain.FieldDatetime:     pb.FieldDefinition_DATETIME,
		domain.FieldEmail:        pb.FieldDefinition_EMAIL,
		domain.FieldPhone:        pb.FieldDefinition_PHONE,
		domain.FieldURL:          pb.FieldDefinition_URL,
		domain.FieldAnyNonScalar: pb.FieldDefinition_ANYNONSCALAR,
		domain.FieldMap:          pb.FieldDefinition_MAP,
	}

	recordTypes = map[domain.RecordType]pb.RecordDefinition_Type{
		domain.RecordKeyValue: pb.RecordDefinition_KEYVALUE,
		domain.RecordTable:    pb.RecordDefinition_TABLE,
		domain.RecordBinary:   pb.RecordDefinition_BINARY,
	}

	outcomes = map[domain.Outcome]pb.RunStepResponse_Outcome{
		domain.OutcomePassed: pb.RunStepResponse_PASSED,
		domain.OutcomeFailed: pb.RunStepResponse_FAILED,
		domain.OutcomeError:  pb.RunStepResponse_ERROR,
	}
)

func manifestToPB(m *domain.Manifest) *pb.CogManifest {
	out := &pb.CogManifest{
		Name:       m.Name,
		Label:      m.Label,
		Version:    m.Version,
		Homepage:   m.Homepage,
		AuthHelp:   m.AuthHelp,
		AuthFields: fieldsToPB(m.AuthFields),
	}
	for _, def := range m.StepDefinitions {
		out.StepDefinitions = append(out.StepDefinitions, stepDefinitionToPB(def))
	}
	return out
}

func stepDefinitionToPB(def domain.StepDefinition) *pb.StepDefinition {
	out := &pb.StepDefinition{
		StepId:         def.StepID,
		Name:           def.Name,
		Help:           def.Help,
		Type:           pb.StepDefinition_ACTION,
		Expression:     def.Expression,
		ExpectedFields: fieldsToPB(def.ExpectedFields),
	}
	if def.Type == domain.StepTypeValidation {
		out.Type = pb.StepDefinition_VALIDATION
	}
	for _, rec := range def.ExpectedRecords {
		out.ExpectedRecords = append(out.ExpectedRecords, &pb.RecordDefinition{
			Id:                rec.ID,
			Type:              recordTypes[rec.Type],
			GuaranteedFields:  fieldsToPB(rec.GuaranteedFields),
			MayHaveMoreFields: rec.MayHaveMoreFields,
		})
	}
	return out
}

func fieldsToPB(fields []domain.FieldDefinition) []*pb.FieldDefinition {
	out := make([]*pb.FieldDefinition, 0, len(fields))
	for _, f := range fields {
		opt := pb.FieldDefinition_OPTIONAL
		if f.IsRequired() {
			opt = pb.FieldDefinition_REQUIRED
		}
		out = append(out, &pb.FieldDefinition{
			Key:         f.Key,
			Optionality: opt,
			Type:        fieldTypes[f.Type],
			Description: f.Description,
			Help:        f.Help,
		})
	}
	return out
}

func stepFromPB(step *pb.Step) *domain.StepMessage {
	return &domain.StepMessage{StepID: step.GetStepId(), Data: step.GetData()}
}

func responseToPB(resp *domain.Response) *pb.RunStepResponse {
	out := &pb.RunStepResponse{
		Outcome:       outcomes[resp.Outcome],
		MessageFormat: resp.MessageFormat,
		MessageArgs:   resp.MessageArgs,
	}
	for _, rec := range resp.Records {
		out.Records = append(out.Records, recordToPB(rec))
	}
	return out
}

func recordToPB(rec *domain.Record) *pb.StepRecord {
	out := &pb.StepRecord{Id: rec.ID, Name: rec.Name}
	switch {
	case rec.KeyValue != nil:
		out.Value = &pb.StepRecord_KeyValue{KeyValue: rec.KeyValue}
	case rec.Table != nil:
		out.Value = &pb.StepRecord_Table{Table: &pb.TableRecord{
			Headers: rec.Table.Headers,
			Rows:    rec.Table.Rows,
		}}
	case rec.Binary != nil:
		out.Value = &pb.StepRecord_Binary{Binary: &pb.BinaryRecord{
			MimeType: rec.Binary.MimeType,
			Data:     rec.Binary.Data,
		}}
	}
	return out
}
