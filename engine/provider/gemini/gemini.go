// Package gemini adapts Google's Gemini API as a chat provider. It serves
// as the fallback rung under the Anthropic provider.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/nutrichat/nutrichat-go/core"
	"github.com/nutrichat/nutrichat-go/engine"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

// Provider streams responses from the Gemini API.
type Provider struct {
	client *genai.Client
	model  string
}

// New creates a provider with the given API key. An empty model selects
// DefaultModel.
func New(ctx context.Context, apiKey, model string) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Provider{client: client, model: model}, nil
}

// Name identifies the provider in fallback logs.
func (p *Provider) Name() string {
	return "gemini"
}

// Stream sends the conversation and forwards text chunks to onChunk as they
// arrive, returning the accumulated response text.
func (p *Provider) Stream(ctx context.Context, req engine.Request, onChunk func(string)) (string, error) {
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := genai.Role(genai.RoleUser)
		if m.Role == core.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}

	var text string
	for resp, err := range p.client.Models.GenerateContentStream(ctx, p.model, contents, config) {
		if err != nil {
			return "", fmt.Errorf("gemini stream: %w", err)
		}
		chunk := resp.Text()
		if chunk == "" {
			continue
		}
		text += chunk
		if onChunk != nil {
			onChunk(chunk)
		}
	}
	return text, nil
}
