package gemini

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/vbonduro/foodlog/internal/nutrition"
)

const defaultAPIURL = "https://generativelanguage.googleapis.com"

// request types mirror the generateContent REST structure.
type request struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType"`
}

type response struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type GeminiAnalyzer struct {
	model  string
	client *resty.Client
}

func NewGeminiAnalyzer(apiKey, model string) *GeminiAnalyzer {
	client := resty.New().
		SetBaseURL(defaultAPIURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", apiKey)

	return &GeminiAnalyzer{
		model:  model,
		client: client,
	}
}

func (a *GeminiAnalyzer) Analyze(ctx context.Context, description string) (*nutrition.Result, error) {
	body := request{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: nutrition.BuildPrompt(description)}},
		}},
		// JSON mode keeps the reply machine-parseable.
		GenerationConfig: generationConfig{ResponseMIMEType: "application/json"},
	}

	var respBody response
	resp, err := a.client.R().
		SetContext(ctx).
		SetPathParam("model", a.model).
		SetBody(body).
		SetResult(&respBody).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		return nil, fmt.Errorf("failed to call gemini: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("gemini returned status %d: %s", resp.StatusCode(), resp.String())
	}

	var responseText string
	for _, c := range respBody.Candidates {
		for _, p := range c.Content.Parts {
			responseText += p.Text
		}
		if responseText != "" {
			break
		}
	}
	if responseText == "" {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	estimate, err := nutrition.ParseResponse(responseText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gemini response: %w", err)
	}

	return &nutrition.Result{
		Estimate:    estimate,
		RawResponse: responseText,
	}, nil
}
