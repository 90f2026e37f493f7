package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ErrMissing is returned when a credential or identifier required by the
// selected backends is not set.
var ErrMissing = errors.New("missing required configuration")

// Config is loaded from the environment. The env tag names the variable and is
// also used to report validation failures.
type Config struct {
	InferenceBackend string `env:"INFERENCE_BACKEND" validate:"oneof=gemini claude ollama"`
	GeminiAPIKey     string `env:"GEMINI_API_KEY" validate:"required_if=InferenceBackend gemini"`
	GeminiModel      string `env:"GEMINI_MODEL"`
	ClaudeAPIKey     string `env:"CLAUDE_API_KEY" validate:"required_if=InferenceBackend claude"`
	ClaudeModel      string `env:"CLAUDE_MODEL"`
	OllamaHost       string `env:"OLLAMA_HOST" validate:"required_if=InferenceBackend ollama"`
	OllamaModel      string `env:"OLLAMA_MODEL"`

	StoreBackend     string `env:"STORE_BACKEND" validate:"oneof=notion sqlite"`
	NotionToken      string `env:"NOTION_TOKEN" validate:"required_if=StoreBackend notion"`
	NotionDatabaseID string `env:"NOTION_DATABASE_ID" validate:"required_if=StoreBackend notion"`
	DBPath           string `env:"DB_PATH" validate:"required_if=StoreBackend sqlite"`

	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT" validate:"oneof=text json"`
	LogFile   string `env:"LOG_FILE"`
}

// Load reads an optional .env file from the working directory, then the
// environment, and validates the result. Variables already set in the
// environment win over the .env file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := &Config{
		InferenceBackend: getEnv("INFERENCE_BACKEND", "gemini"),
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		ClaudeAPIKey:     getEnv("CLAUDE_API_KEY", ""),
		ClaudeModel:      getEnv("CLAUDE_MODEL", "claude-opus-4-6"),
		OllamaHost:       getEnv("OLLAMA_HOST", "http://localhost:11434"),
		OllamaModel:      getEnv("OLLAMA_MODEL", "llama3.1"),
		StoreBackend:     getEnv("STORE_BACKEND", "notion"),
		NotionToken:      getEnv("NOTION_TOKEN", ""),
		NotionDatabaseID: getEnv("NOTION_DATABASE_ID", ""),
		DBPath:           getEnv("DB_PATH", "foodlog.db"),
		LogLevel:         getEnv("LOG_LEVEL", "warn"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		LogFile:          getEnv("LOG_FILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks backend names and the credentials each selected backend
// needs. Missing values are reported together, wrapped in ErrMissing.
func (c *Config) Validate() error {
	err := newValidator().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate config: %w", err)
	}

	var missing, invalid []string
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required_if", "required":
			missing = append(missing, fe.Field())
		default:
			invalid = append(invalid, fmt.Sprintf("%s=%q (want one of: %s)", fe.Field(), fe.Value(), fe.Param()))
		}
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(invalid, ", "))
	}
	return fmt.Errorf("%w: %s", ErrMissing, strings.Join(missing, ", "))
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("env"); name != "" {
			return name
		}
		return fld.Name
	})
	return v
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
