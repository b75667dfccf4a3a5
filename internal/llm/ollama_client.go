package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// OllamaClient targets a local Ollama instance, mostly useful for
// development without a hosted API key.
type OllamaClient struct {
	ollamaURL string
	model     string
	client    *http.Client
}

func NewOllamaClient(url, model string) *OllamaClient {
	return &OllamaClient{
		ollamaURL: url,
		model:     model,
		client: &http.Client{
			Timeout: 600 * time.Second, // generation on CPU can be very slow
		},
	}
}

func (o *OllamaClient) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	requestBody, err := json.Marshal(map[string]interface{}{
		"model":  o.model,
		"prompt": prompt,
		"stream": false,
		"options": map[string]interface{}{
			"temperature": temperature,
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.ollamaURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("invalid response from ollama: %w", err)
	}
	if result.Response == "" {
		return "", fmt.Errorf("ollama returned an empty response")
	}
	return result.Response, nil
}
