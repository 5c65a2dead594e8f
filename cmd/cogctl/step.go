package main

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	pb "github.com/stackmoxie/looksy-cog/api/cogpb"
	"google.golang.org/protobuf/types/known/structpb"
)

// parseStep builds a step from "<step-id> key=value..." arguments. Values
// that parse as booleans or numbers are sent as such.
func parseStep(args []string) (*pb.Step, error) {
	if len(args) == 0 || strings.Contains(args[0], "=") {
		return nil, fmt.Errorf("missing step id")
	}

	data := make(map[string]any, len(args)-1)
	for _, arg := range args[1:] {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q, expected key=value", arg)
		}
		data[key] = parseValue(value)
	}

	s, err := structpb.NewStruct(data)
	if err != nil {
		return nil, err
	}
	return &pb.Step{StepId: args[0], Data: s}, nil
}

func parseValue(v string) any {
	if v == "true" || v == "false" {
		return v == "true"
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}

func formatResponse(resp *pb.RunStepResponse) string {
	var args []any
	for _, v := range resp.GetMessageArgs() {
		args = append(args, v.AsInterface())
	}
	msg := resp.MessageFormat
	if len(args) > 0 {
		msg = fmt.Sprintf(strings.ReplaceAll(resp.MessageFormat, "%d", "%v"), args...)
	}
	out := fmt.Sprintf("%-7s %s", resp.GetOutcome(), msg)
	for _, rec := range resp.GetRecords() {
		out += fmt.Sprintf("\n  record %s (%s)", rec.GetId(), rec.GetName())
		if kv := rec.GetKeyValue(); kv != nil {
			fields := kv.AsMap()
			for _, k := range slices.Sorted(maps.Keys(fields)) {
				out += fmt.Sprintf("\n    %s: %v", k, fields[k])
			}
		}
	}
	return out
}
