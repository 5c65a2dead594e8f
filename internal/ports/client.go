package ports

import "context"

type ComparisonResponse struct {
	StatusCode int
	Body       []byte
}

// ImageComparer compares two base64 encoded images.
type ImageComparer interface {
	CompareImages(ctx context.Context, image1, image2 string) (*ComparisonResponse, error)
}

// Client is the authenticated client handed to every step on a connection.
type Client interface {
	ImageComparer
}

// ClientFactory builds a Client from credentials keyed by auth field.
type ClientFactory func(ctx context.Context, creds map[string]string) (Client, error)
