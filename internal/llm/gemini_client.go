package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type geminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient initializes a client for the hosted Gemini API.
func NewGeminiClient(ctx context.Context, apiKey, model string) (Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &geminiClient{client: client, model: model}, nil
}

func (g *geminiClient) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(temperature)),
	})
	if err != nil {
		return "", fmt.Errorf("gemini completion failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}
