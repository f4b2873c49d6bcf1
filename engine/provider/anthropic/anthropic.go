// Package anthropic adapts the Anthropic Messages API as a chat provider.
package anthropic

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/nutrichat/nutrichat-go/core"
	"github.com/nutrichat/nutrichat-go/engine"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-sonnet-4-20250514"

// Provider streams responses from the Anthropic Messages API.
type Provider struct {
	client anthropic.Client
	model  anthropic.Model
}

// New creates a provider with the given API key. An empty model selects
// DefaultModel.
func New(apiKey, model string) *Provider {
	if model == "" {
		model = DefaultModel
	}
	return &Provider{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.Model(model),
	}
}

// Name identifies the provider in fallback logs.
func (p *Provider) Name() string {
	return "anthropic"
}

// Stream sends the conversation and forwards text deltas to onChunk as they
// arrive, returning the accumulated response text.
func (p *Provider) Stream(ctx context.Context, req engine.Request, onChunk func(string)) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     p.model,
		MaxTokens: req.MaxTokens,
		Messages:  toMessageParams(req.Messages),
		System: []anthropic.TextBlockParam{
			{Text: req.System},
		},
	}

	stream := p.client.Messages.NewStreaming(ctx, params)
	defer stream.Close()

	message := anthropic.Message{}
	for stream.Next() {
		event := stream.Current()
		if err := message.Accumulate(event); err != nil {
			continue
		}

		switch evt := event.AsAny().(type) {
		case anthropic.ContentBlockDeltaEvent:
			switch delta := evt.Delta.AsAny().(type) {
			case anthropic.TextDelta:
				if onChunk != nil {
					onChunk(delta.Text)
				}
			}
		}
	}
	if err := stream.Err(); err != nil {
		return "", fmt.Errorf("anthropic stream: %w", err)
	}

	var text string
	for _, block := range message.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	return text, nil
}

func toMessageParams(messages []core.ConversationMessage) []anthropic.MessageParam {
	out := make([]anthropic.MessageParam, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case core.RoleAssistant:
			out = append(out, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	return out
}
