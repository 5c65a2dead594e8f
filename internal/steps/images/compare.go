package images

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/stackmoxie/looksy-cog/internal/domain"
	"github.com/stackmoxie/looksy-cog/internal/log"
	"github.com/stackmoxie/looksy-cog/internal/ports"
	"github.com/stackmoxie/looksy-cog/internal/registry"
)

const (
	CompareStepID = "CompareImagesUsingRMSE"
	ResultRecord  = "imageComparisonResult"
)

var compareDefinition = domain.StepDefinition{
	StepID:     CompareStepID,
	Name:       "Compare Images",
	Expression: `compare (?<image1>.+) and (?<image2>.+) using looksy with allowed rmse (?<rmse>[\d.]+)`,
	Type:       domain.StepTypeValidation,
	ExpectedFields: []domain.FieldDefinition{
		domain.RequiredField("image1", domain.FieldString, "The first image to compare"),
		domain.RequiredField("image2", domain.FieldString, "The second image to compare"),
		domain.RequiredField("rmse", domain.FieldNumeric, "The allowed RMSE value"),
	},
	ExpectedRecords: []domain.ExpectedRecord{{
		ID:   ResultRecord,
		Type: domain.RecordKeyValue,
		GuaranteedFields: []domain.FieldDefinition{
			domain.RequiredField("rmse", domain.FieldNumeric, "The RMSE value"),
			domain.RequiredField("success", domain.FieldString, "Whether the comparison was successful"),
		},
		MayHaveMoreFields: true,
	}},
}

// CompareImages validates that two images differ by no more than an
// allowed root mean square error.
type CompareImages struct {
	client ports.ImageComparer
}

func NewCompareImages(client ports.ImageComparer) *CompareImages {
	return &CompareImages{client: client}
}

func CompareImagesFactory() ports.StepFactory {
	return registry.Factory(compareDefinition, func(c ports.Client) ports.Step {
		return NewCompareImages(c)
	})
}

func (s *CompareImages) Execute(ctx context.Context, msg *domain.StepMessage) (*domain.Response, error) {
	data := msg.Fields()
	image1, err := stringField(data, "image1")
	if err != nil {
		return nil, err
	}
	image2, err := stringField(data, "image2")
	if err != nil {
		return nil, err
	}
	threshold, err := numberField(data, "rmse")
	if err != nil {
		return nil, err
	}

	log.FromContext(ctx).DebugContext(ctx, "Comparing images",
		log.Preview("image1", image1, 50),
		log.Preview("image2", image2, 50),
		slog.Float64("allowed_rmse", threshold))

	resp, err := s.client.CompareImages(ctx, image1, image2)
	if err != nil {
		return domain.Error("Error calling Looksy API: %s", []any{err.Error()}), nil
	}
	if resp.StatusCode != http.StatusOK {
		return domain.Error("Looksy could not compare the images",
			[]any{strconv.Itoa(resp.StatusCode), string(resp.Body)}), nil
	}
	if len(resp.Body) == 0 || !gjson.ValidBytes(resp.Body) {
		return domain.Error("Received an invalid response from the Looksy API", nil), nil
	}

	body := gjson.ParseBytes(resp.Body)
	rmse := body.Get("rmse")
	if !rmse.Exists() || rmse.Type == gjson.Null {
		return domain.Error("Response from Looksy API does not contain RMSE value", nil), nil
	}
	actual := rmse.Float()
	exceeded, err := domain.Assert(domain.OperatorGreaterThan, actual, threshold, "rmse")
	if err != nil {
		return nil, err
	}
	passed := !exceeded.Valid

	record, err := domain.KeyValue(ResultRecord, "Image Comparison Result", map[string]any{
		"rmse":            actual,
		"success":         strconv.FormatBool(passed),
		"status":          body.Get("status").String(),
		"diffImageUrl":    body.Get("diffImageUrl").String(),
		"sourceImage1Url": body.Get("images.source1.url").String(),
		"sourceImage2Url": body.Get("images.source2.url").String(),
		"timestamp":       body.Get("timestamp").String(),
	})
	if err != nil {
		return nil, err
	}

	if passed {
		return domain.Pass("Images compared successfully with RMSE of %d (threshold: %d)",
			[]any{actual, threshold}, record), nil
	}
	return domain.Fail("Image comparison failed with RMSE of %d, which exceeds the threshold of %d",
		[]any{actual, threshold}, record), nil
}

func stringField(data map[string]any, key string) (string, error) {
	v, ok := data[key]
	if !ok {
		return "", fmt.Errorf("missing field %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %q: expected string, got %T", key, v)
	}
	return s, nil
}

// numberField accepts numbers and numeric strings; expression captures
// arrive as strings.
func numberField(data map[string]any, key string) (float64, error) {
	v, ok := data[key]
	if !ok {
		return 0, fmt.Errorf("missing field %q", key)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("field %q: %w", key, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("field %q: expected number, got %T", key, v)
	}
}
