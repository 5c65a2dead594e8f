package looksy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/stackmoxie/looksy-cog/internal/ports"
)

const CompareImagesPath = "/upload_compare_images"

type compareRequest struct {
	Image1 string `json:"image1_base64"`
	Image2 string `json:"image2_base64"`
}

// Client talks to the Looksy image comparison REST API.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// CompareImages posts both images and returns the raw response. Non-2xx
// statuses are not errors here; callers decide what a status means.
func (c *Client) CompareImages(ctx context.Context, image1, image2 string) (*ports.ComparisonResponse, error) {
	body, err := json.Marshal(compareRequest{Image1: image1, Image2: image2})
	if err != nil {
		return nil, fmt.Errorf("error comparing images: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+CompareImagesPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error comparing images: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error comparing images: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error comparing images: reading body: %w", err)
	}
	return &ports.ComparisonResponse{StatusCode: resp.StatusCode, Body: respBody}, nil
}
