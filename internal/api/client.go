// Package api implements the client for the Gemini generation API.
package api

import (
	"fmt"
	"sync"

	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	apierrors "github.com/ktesfay/selam/internal/errors"
	"github.com/ktesfay/selam/internal/models"
)

// GeminiClient is the main client for the Gemini generation API. It holds
// the static credential and the fixed session configuration; conversation
// state lives in ChatSession handles created from it.
type GeminiClient struct {
	httpClient        tls_client.HttpClient
	apiKey            string
	mu                sync.RWMutex // Protects model, closed
	model             models.Model
	systemInstruction string
	closed            bool
}

// ClientOption is a function that configures the client.
type ClientOption func(*GeminiClient)

// WithModel sets the default model for the client.
func WithModel(model models.Model) ClientOption {
	return func(c *GeminiClient) {
		c.model = model
	}
}

// WithSystemInstruction overrides the persona instruction sent with every
// conversation.
func WithSystemInstruction(instruction string) ClientOption {
	return func(c *GeminiClient) {
		c.systemInstruction = instruction
	}
}

// WithHTTPClient replaces the underlying HTTP client. Used by tests.
func WithHTTPClient(httpClient tls_client.HttpClient) ClientOption {
	return func(c *GeminiClient) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new GeminiClient. The API key is required; it is the
// only credential the client ever uses.
func NewClient(apiKey string, opts ...ClientOption) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, apierrors.ErrNoAPIKey
	}

	client := &GeminiClient{
		apiKey:            apiKey,
		model:             models.DefaultModel,
		systemInstruction: models.SystemInstruction,
	}

	// Apply options
	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(300),
			tls_client.WithClientProfile(profiles.Chrome_120),
			tls_client.WithNotFollowRedirects(),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// Close shuts down the client. Further generate calls fail.
func (c *GeminiClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// IsClosed returns whether the client is closed.
func (c *GeminiClient) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// GetModel returns the default model.
func (c *GeminiClient) GetModel() models.Model {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.model
}

// SetModel sets the default model.
func (c *GeminiClient) SetModel(model models.Model) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model = model
}

// SystemInstruction returns the persona instruction conversations are
// created with.
func (c *GeminiClient) SystemInstruction() string {
	return c.systemInstruction
}

// StartChat creates a new chat session. The returned handle starts with no
// turn memory; replacing an old handle with a new one is how a conversation
// is reset.
func (c *GeminiClient) StartChat() *ChatSession {
	return &ChatSession{client: c}
}
