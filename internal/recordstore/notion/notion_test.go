package notion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/foodlog/internal/domain"
)

var testMeal = &domain.Meal{
	Name:     "Chicken Burrito",
	Calories: 550,
	Protein:  25,
	Fiber:    0,
	Date:     "2026-10-15",
}

func TestNotionCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/pages", r.URL.Path)
		assert.Equal(t, "Bearer secret_test", r.Header.Get("Authorization"))
		assert.Equal(t, notionVersion, r.Header.Get("Notion-Version"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{"database_id": "db-123"}, body["parent"])

		props, _ := body["properties"].(map[string]interface{})
		assert.Equal(t, map[string]interface{}{"number": float64(550)}, props["Calories"])
		assert.Equal(t, map[string]interface{}{"number": float64(25)}, props["Protein (g)"])
		assert.Equal(t, map[string]interface{}{"number": float64(0)}, props["Fiber (g)"])
		assert.Equal(t, map[string]interface{}{"date": map[string]interface{}{"start": "2026-10-15"}}, props["Date"])
		assert.Equal(t, map[string]interface{}{
			"title": []interface{}{
				map[string]interface{}{"text": map[string]interface{}{"content": "Chicken Burrito"}},
			},
		}, props["Name"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object": "page", "id": "page-abc"}`))
	}))
	defer server.Close()

	store := NewNotionStore("secret_test", "db-123")
	store.client.SetBaseURL(server.URL)

	id, err := store.Create(context.Background(), testMeal)
	require.NoError(t, err)
	assert.Equal(t, "page-abc", id)
}

func TestNotionCreateAPIError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, code: "unauthorized"},
		{name: "schema mismatch", status: http.StatusBadRequest, code: "validation_error"},
		{name: "rate limited", status: http.StatusTooManyRequests, code: "rate_limited"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"object":  "error",
					"status":  tt.status,
					"code":    tt.code,
					"message": "request failed",
				})
			}))
			defer server.Close()

			store := NewNotionStore("secret_test", "db-123")
			store.client.SetBaseURL(server.URL)

			_, err := store.Create(context.Background(), testMeal)
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.code, apiErr.Code)
		})
	}
}

func TestNotionCreateNonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	store := NewNotionStore("secret_test", "db-123")
	store.client.SetBaseURL(server.URL)

	_, err := store.Create(context.Background(), testMeal)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNotionCreateNetworkError(t *testing.T) {
	store := NewNotionStore("secret_test", "db-123")
	store.client.SetBaseURL("http://localhost:99999")

	_, err := store.Create(context.Background(), testMeal)
	assert.Error(t, err)
}
