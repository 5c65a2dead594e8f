package domain

import (
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

type Outcome string

const (
	OutcomePassed Outcome = "passed"
	OutcomeFailed Outcome = "failed"
	OutcomeError  Outcome = "error"
)

type Response struct {
	Outcome       Outcome
	MessageFormat string
	MessageArgs   []*structpb.Value
	Records       []*Record
}

// Record holds exactly one of KeyValue, Table or Binary.
type Record struct {
	ID       string
	Name     string
	KeyValue *structpb.Struct
	Table    *TableRecord
	Binary   *BinaryRecord
}

type TableRecord struct {
	Headers *structpb.Struct
	Rows    []*structpb.Struct
}

type BinaryRecord struct {
	MimeType string
	Data     []byte
}

func Pass(format string, args []any, records ...*Record) *Response {
	return newResponse(OutcomePassed, format, args, records)
}

func Fail(format string, args []any, records ...*Record) *Response {
	return newResponse(OutcomeFailed, format, args, records)
}

func Error(format string, args []any, records ...*Record) *Response {
	return newResponse(OutcomeError, format, args, records)
}

func newResponse(outcome Outcome, format string, args []any, records []*Record) *Response {
	return &Response{
		Outcome:       outcome,
		MessageFormat: format,
		MessageArgs:   MessageArgs(args...),
		Records:       records,
	}
}

// MessageArgs converts args into structured values. Values structpb cannot
// represent are carried as their fmt.Sprint form.
func MessageArgs(args ...any) []*structpb.Value {
	values := make([]*structpb.Value, 0, len(args))
	for _, arg := range args {
		v, err := structpb.NewValue(arg)
		if err != nil {
			v = structpb.NewStringValue(fmt.Sprint(arg))
		}
		values = append(values, v)
	}
	return values
}

func KeyValue(id, name string, data map[string]any) (*Record, error) {
	s, err := structpb.NewStruct(data)
	if err != nil {
		return nil, fmt.Errorf("record %q: %w", id, err)
	}
	return &Record{ID: id, Name: name, KeyValue: s}, nil
}

func Table(id, name string, headers map[string]any, rows []map[string]any) (*Record, error) {
	h, err := structpb.NewStruct(headers)
	if err != nil {
		return nil, fmt.Errorf("record %q headers: %w", id, err)
	}
	table := &TableRecord{Headers: h}
	for i, row := range rows {
		r, err := structpb.NewStruct(row)
		if err != nil {
			return nil, fmt.Errorf("record %q row %d: %w", id, i, err)
		}
		table.Rows = append(table.Rows, r)
	}
	return &Record{ID: id, Name: name, Table: table}, nil
}

func Binary(id, name, mimeType string, data []byte) *Record {
	return &Record{
		ID:     id,
		Name:   name,
		Binary: &BinaryRecord{MimeType: mimeType, Data: data},
	}
}
