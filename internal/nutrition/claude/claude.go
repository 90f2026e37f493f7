package claude

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"

	"github.com/vbonduro/foodlog/internal/nutrition"
)

// The reply is three small integers in a JSON object; 256 tokens leaves room
// for a model that adds a code fence or a sentence around it.
const maxTokens = 256

type ClaudeAnalyzer struct {
	model  string
	client *anthropic.Client
}

func NewClaudeAnalyzer(apiKey, model string, opts ...anthropic.ClientOption) *ClaudeAnalyzer {
	return &ClaudeAnalyzer{
		model:  model,
		client: anthropic.NewClient(apiKey, opts...),
	}
}

func (a *ClaudeAnalyzer) Analyze(ctx context.Context, description string) (*nutrition.Result, error) {
	resp, err := a.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(a.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(nutrition.BuildPrompt(description)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call claude: %w", err)
	}

	var responseText string
	for _, blk := range resp.Content {
		if blk.Type == anthropic.MessagesContentTypeText {
			responseText = blk.GetText()
			break
		}
	}

	estimate, err := nutrition.ParseResponse(responseText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse claude response: %w", err)
	}

	return &nutrition.Result{
		Estimate:    estimate,
		RawResponse: responseText,
	}, nil
}
