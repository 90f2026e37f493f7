package nutrition

import (
	"context"
	"fmt"

	"github.com/vbonduro/foodlog/internal/domain"
)

// promptTemplate is the shared prompt used by all inference adapters.
const promptTemplate = `Analyze the food description and provide a nutritional estimate.
For each value (calories, protein, fiber), provide a single, average integer. Do not use ranges.
Return only a JSON object with keys "calories", "protein", and "fiber".

Food Description: "%s"`

// BuildPrompt embeds a meal description into the estimation prompt.
func BuildPrompt(description string) string {
	return fmt.Sprintf(promptTemplate, description)
}

type Analyzer interface {
	Analyze(ctx context.Context, description string) (*Result, error)
}

type Result struct {
	Estimate    domain.Estimate
	RawResponse string
}
