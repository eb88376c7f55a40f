package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client calls the Gemini API through the official SDK.
type Client struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewClient initialises a live Gemini client for the given model.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	c, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("init gemini client: %w", err)
	}
	return &Client{client: c, model: model, temperature: 0.2}, nil
}

// Generate sends the prompt to Gemini and returns the produced text.
// A response without any text content is an error.
func (c *Client) Generate(ctx context.Context, prompt string) (*Response, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(c.temperature)
	model.SetTopP(0.95)
	model.SetTopK(32)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := candidateText(resp)
	if text == "" {
		return nil, errors.New("gemini returned no text content")
	}
	return &Response{Text: text}, nil
}

// candidateText collects the text parts of the first candidate that has any.
func candidateText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
		if sb.Len() > 0 {
			break
		}
	}
	return sb.String()
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.client.Close()
}
