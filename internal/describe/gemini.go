package describe

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"sanaa-nights/internal/config"
	"sanaa-nights/internal/logging"
)

// Gemini generates text with the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a client for model. An empty key yields ErrNoCredentials.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrNoCredentials
	}
	if model == "" {
		model = config.DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// GenerateText sends prompt as a single user turn and returns the joined text parts.
func (g *Gemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content with %s: %w", g.model, err)
	}
	return resp.Text(), nil
}

// FromCredentials builds a Service backed by Gemini when a key is present.
// Without a key, or if the client cannot be created, the service still works
// and answers with the unavailable fallback.
func FromCredentials(ctx context.Context, creds config.Credentials, log logging.Logger) *Service {
	opts := []Option{WithTimeout(creds.Timeout), WithLogger(log)}
	if !creds.HasAPIKey() {
		log.Warnf("no API_KEY set; descriptions will use the fallback text")
		return NewService(nil, opts...)
	}
	gen, err := NewGemini(ctx, creds.APIKey, creds.Model)
	if err != nil {
		log.Warnf("gemini unavailable: %v", err)
		return NewService(nil, opts...)
	}
	log.Infof("descriptions via %s", gen.model)
	return NewService(gen, opts...)
}
