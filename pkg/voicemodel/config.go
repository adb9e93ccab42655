package voicemodel

import "net/http"

// config holds shared configuration for extractor implementations.
type config struct {
	model      string
	dim        int
	httpClient *http.Client
}

// Option configures an extractor.
type Option func(*config)

// WithModel sets the remote model identifier.
func WithModel(model string) Option {
	return func(c *config) { c.model = model }
}

// WithDimension sets the expected embedding dimensionality. Responses with
// a different length are rejected.
func WithDimension(dim int) Option {
	return func(c *config) { c.dim = dim }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) { c.httpClient = client }
}
