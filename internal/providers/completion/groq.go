// Package completion talks to the hosted chat-completion endpoint used for
// every text generation task.
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client is the contract the brand workflow depends on. Implementations
// return the raw completion text; callers degrade gracefully on error and
// never see a panic.
type Client interface {
	Complete(ctx context.Context, prompt, languageCode string) (string, error)
}

// Options configures the Groq client. APIKey is required; everything else
// has a default.
type Options struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

const (
	groqDefaultTimeout = 60 * time.Second
	defaultGroqModel   = "llama-3.3-70b-versatile"
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"

	// Fixed generation parameters for branding copy.
	completionTemperature = 0.9
	completionMaxTokens   = 2000
)

// GroqClient calls Groq's OpenAI-compatible chat completions API.
type GroqClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewGroqClient validates the options and builds a client.
func NewGroqClient(opts Options) (*GroqClient, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("groq api key is required")
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = defaultGroqModel
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultGroqBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: groqDefaultTimeout}
	}
	return &GroqClient{
		apiKey:  strings.TrimSpace(opts.APIKey),
		model:   model,
		baseURL: baseURL,
		client:  client,
	}, nil
}

// Complete sends one prompt with a branding-expert system instruction and
// returns the completion text. A non-default languageCode adds an explicit
// response-language directive to the system message.
func (c *GroqClient) Complete(ctx context.Context, prompt, languageCode string) (string, error) {
	system := "You are a creative branding expert."
	if languageCode != "" && languageCode != "en" {
		system = fmt.Sprintf("You are a creative branding expert. Respond in %s language.", languageCode)
	}
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return "", fmt.Errorf("completion: encode request: %w", err)
	}
	endpoint := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("completion: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion: http request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("completion: groq status %d", resp.StatusCode)
	}
	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("completion: decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("completion: no choices in response")
	}
	text := out.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return "", errors.New("completion: empty response")
	}
	return text, nil
}

var _ Client = (*GroqClient)(nil)
