package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/iterator"

	"portfolio-backend/internal/llm"
)

// Client implements llm.Provider using Vertex AI Gemini. Responses stream in
// token chunks that are accumulated into a single string.
type Client struct {
	model      *genai.GenerativeModel
	baseClient *genai.Client
}

// NewClient constructs a Gemini client for the given project and region.
func NewClient(ctx context.Context, projectID, region, modelName string) (*Client, error) {
	if projectID == "" || region == "" {
		return nil, fmt.Errorf("gemini: projectID and region are required")
	}
	if strings.TrimSpace(modelName) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required for Gemini")
	}

	baseClient, err := genai.NewClient(ctx, projectID, region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	model := baseClient.GenerativeModel(modelName)
	model.GenerationConfig = genai.GenerationConfig{
		Temperature: genai.Ptr[float32](0.7),
	}

	return &Client{model: model, baseClient: baseClient}, nil
}

// GenerateText streams the model response and returns the accumulated text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	iter := c.model.GenerateContentStream(ctx, genai.Text(prompt))

	var b strings.Builder
	for {
		resp, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("gemini stream: %w", err)
		}
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if text, ok := part.(genai.Text); ok {
					b.WriteString(string(text))
				}
			}
		}
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("gemini response empty content")
	}
	return out, nil
}

// Name identifies the backend.
func (c *Client) Name() string { return "gemini" }

// Close releases the underlying client.
func (c *Client) Close() error {
	if c.baseClient != nil {
		return c.baseClient.Close()
	}
	return nil
}

var _ llm.Provider = (*Client)(nil)
