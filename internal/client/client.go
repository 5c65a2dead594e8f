// Package client holds the authenticated client every step is bound to.
package client

import (
	"context"
	"net/http"
	"time"

	"github.com/stackmoxie/looksy-cog/internal/adapters/looksy"
	"github.com/stackmoxie/looksy-cog/internal/domain"
	"github.com/stackmoxie/looksy-cog/internal/ports"
)

const EndpointField = "endpoint"

// AuthFields lists the credentials the wrapped API client needs.
var AuthFields = []domain.FieldDefinition{
	domain.RequiredField(EndpointField, domain.FieldURL,
		"REST API endpoint, e.g. https://image-compare-service.example.com"),
}

// API is the subset of the Looksy client the wrapper depends on.
type API interface {
	CompareImages(ctx context.Context, image1, image2 string) (*ports.ComparisonResponse, error)
}

type Wrapper struct {
	api API
}

var _ ports.Client = (*Wrapper)(nil)

func New(api API) *Wrapper {
	return &Wrapper{api: api}
}

func (w *Wrapper) CompareImages(ctx context.Context, image1, image2 string) (*ports.ComparisonResponse, error) {
	return w.api.CompareImages(ctx, image1, image2)
}

// NewFactory returns a ClientFactory that builds a Looksy backed Wrapper
// for the endpoint supplied in the credentials.
func NewFactory(timeout time.Duration) ports.ClientFactory {
	httpClient := &http.Client{Timeout: timeout}
	return func(_ context.Context, creds map[string]string) (ports.Client, error) {
		return New(looksy.NewClient(creds[EndpointField], httpClient)), nil
	}
}
