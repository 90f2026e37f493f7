package notion

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/vbonduro/foodlog/internal/domain"
)

const defaultAPIURL = "https://api.notion.com"

// notionVersion is the Notion-Version header value.
const notionVersion = "2022-06-28"

// Property names of the target database.
const (
	propName     = "Name"
	propCalories = "Calories"
	propProtein  = "Protein (g)"
	propFiber    = "Fiber (g)"
	propDate     = "Date"
)

type pageRequest struct {
	Parent     parent                 `json:"parent"`
	Properties map[string]interface{} `json:"properties"`
}

type parent struct {
	DatabaseID string `json:"database_id"`
}

type titleProperty struct {
	Title []richText `json:"title"`
}

type richText struct {
	Text textContent `json:"text"`
}

type textContent struct {
	Content string `json:"content"`
}

type numberProperty struct {
	Number int `json:"number"`
}

type dateProperty struct {
	Date dateValue `json:"date"`
}

type dateValue struct {
	Start string `json:"start"`
}

type pageResponse struct {
	ID string `json:"id"`
}

// APIError is the error object Notion returns for failed requests, e.g.
// code "unauthorized", "validation_error", "object_not_found" or "rate_limited".
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion returned status %d (%s): %s", e.Status, e.Code, e.Message)
}

type NotionStore struct {
	databaseID string
	client     *resty.Client
}

func NewNotionStore(token, databaseID string) *NotionStore {
	client := resty.New().
		SetBaseURL(defaultAPIURL).
		SetAuthToken(token).
		SetHeader("Notion-Version", notionVersion).
		SetHeader("Content-Type", "application/json")

	return &NotionStore{
		databaseID: databaseID,
		client:     client,
	}
}

// buildPage maps a meal onto the database's property schema.
func (s *NotionStore) buildPage(meal *domain.Meal) pageRequest {
	return pageRequest{
		Parent: parent{DatabaseID: s.databaseID},
		Properties: map[string]interface{}{
			propName:     titleProperty{Title: []richText{{Text: textContent{Content: meal.Name}}}},
			propCalories: numberProperty{Number: meal.Calories},
			propProtein:  numberProperty{Number: meal.Protein},
			propFiber:    numberProperty{Number: meal.Fiber},
			propDate:     dateProperty{Date: dateValue{Start: meal.Date}},
		},
	}
}

// Create adds the meal as a new page in the database and returns the page ID.
func (s *NotionStore) Create(ctx context.Context, meal *domain.Meal) (string, error) {
	var page pageResponse
	var apiErr APIError

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(s.buildPage(meal)).
		SetResult(&page).
		SetError(&apiErr).
		Post("/v1/pages")
	if err != nil {
		return "", fmt.Errorf("failed to call notion: %w", err)
	}
	if resp.IsError() {
		if apiErr.Code == "" {
			return "", fmt.Errorf("notion returned status %d: %s", resp.StatusCode(), resp.String())
		}
		if apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode()
		}
		return "", &apiErr
	}

	return page.ID, nil
}
