package nutrition

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vbonduro/foodlog/internal/domain"
)

// ParseResponse reads a model reply of the form
// {"calories": ..., "protein": ..., "fiber": ...} and normalizes each field.
// Missing keys count as 0. The reply must be a JSON object, optionally wrapped
// in a Markdown code fence.
func ParseResponse(raw string) (domain.Estimate, error) {
	body := stripCodeFence(raw)
	if !gjson.Valid(body) {
		return domain.Estimate{}, fmt.Errorf("response is not valid JSON: %q", truncate(raw, 120))
	}

	parsed := gjson.Parse(body)
	if !parsed.IsObject() {
		return domain.Estimate{}, fmt.Errorf("expected a JSON object, got %s", parsed.Type)
	}

	return domain.Estimate{
		Calories: Normalize(FieldValue(parsed.Get("calories"))),
		Protein:  Normalize(FieldValue(parsed.Get("protein"))),
		Fiber:    Normalize(FieldValue(parsed.Get("fiber"))),
	}, nil
}

// FieldValue converts one decoded JSON value into a RawValue.
func FieldValue(r gjson.Result) RawValue {
	if !r.Exists() {
		return IntValue(0)
	}

	switch r.Type {
	case gjson.Number:
		if isIntegerLiteral(r.Raw) {
			return IntValue(int(r.Int()))
		}
		return TextValue(strconv.FormatFloat(r.Num, 'f', -1, 64))
	case gjson.True:
		return IntValue(1)
	case gjson.False:
		return IntValue(0)
	case gjson.String:
		return TextValue(r.Str)
	default:
		return TextValue(r.Raw)
	}
}

func isIntegerLiteral(raw string) bool {
	return raw != "" && !strings.ContainsAny(raw, ".eE")
}

// stripCodeFence removes a surrounding ```json ... ``` block, which some models
// emit even when asked for bare JSON.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
