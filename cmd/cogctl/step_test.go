package main

import (
	"testing"

	pb "github.com/stackmoxie/looksy-cog/api/cogpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestParseStep(t *testing.T) {
	step, err := parseStep([]string{"CompareImagesUsingRMSE", "image1=abc", "image2=def=", "rmse=0.5", "strict=true"})
	require.NoError(t, err)
	assert.Equal(t, "CompareImagesUsingRMSE", step.GetStepId())
	assert.Equal(t, map[string]any{
		"image1": "abc",
		"image2": "def=",
		"rmse":   0.5,
		"strict": true,
	}, step.GetData().AsMap())
}

func TestParseStep_Errors(t *testing.T) {
	_, err := parseStep(nil)
	assert.Error(t, err)

	_, err = parseStep([]string{"image1=abc"})
	assert.Error(t, err)

	_, err = parseStep([]string{"Echo", "novalue"})
	assert.Error(t, err)

	_, err = parseStep([]string{"Echo", "=x"})
	assert.Error(t, err)
}

func TestFormatResponse(t *testing.T) {
	rec, err := structpb.NewStruct(map[string]any{"b": "2", "a": 1.0})
	require.NoError(t, err)

	resp := &pb.RunStepResponse{
		Outcome:       pb.RunStepResponse_FAILED,
		MessageFormat: "RMSE of %d exceeds %d",
		MessageArgs:   []*structpb.Value{structpb.NewNumberValue(0.3), structpb.NewNumberValue(0.1)},
		Records: []*pb.StepRecord{{
			Id:    "r",
			Name:  "Result",
			Value: &pb.StepRecord_KeyValue{KeyValue: rec},
		}},
	}

	assert.Equal(t, "FAILED  RMSE of 0.3 exceeds 0.1\n  record r (Result)\n    a: 1\n    b: 2", formatResponse(resp))
}
