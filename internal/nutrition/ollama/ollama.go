package ollama

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/vbonduro/foodlog/internal/nutrition"
)

type OllamaAnalyzer struct {
	model  string
	client *resty.Client
}

func NewOllamaAnalyzer(host, model string) *OllamaAnalyzer {
	return &OllamaAnalyzer{
		model:  model,
		client: resty.New().SetBaseURL(host),
	}
}

func (a *OllamaAnalyzer) Analyze(ctx context.Context, description string) (*nutrition.Result, error) {
	reqBody := map[string]interface{}{
		"model":  a.model,
		"prompt": nutrition.BuildPrompt(description),
		"format": "json",
		"stream": false,
	}

	var respBody struct {
		Response string `json:"response"`
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(&respBody).
		Post("/api/generate")
	if err != nil {
		return nil, fmt.Errorf("failed to call ollama: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("ollama returned status %d", resp.StatusCode())
	}

	estimate, err := nutrition.ParseResponse(respBody.Response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ollama response: %w", err)
	}

	return &nutrition.Result{
		Estimate:    estimate,
		RawResponse: respBody.Response,
	}, nil
}
