package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// APIKeys holds all API keys loaded from environment
type APIKeys struct {
	YouTube string
	Gemini  string
	OpenAI  string
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; system-wide environment variables may
// already carry the keys.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// GetAPIKeys retrieves and validates API keys from environment variables.
// Keys are optional at this point; format problems fail immediately.
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		YouTube: strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY")),
		Gemini:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		OpenAI:  strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
	}

	// Google Cloud API keys share the AIza prefix
	if apiKeys.YouTube != "" {
		if !strings.HasPrefix(apiKeys.YouTube, "AIza") {
			return nil, fmt.Errorf("invalid YOUTUBE_API_KEY format: must start with 'AIza'")
		}
		if len(apiKeys.YouTube) < 30 {
			return nil, fmt.Errorf("invalid YOUTUBE_API_KEY format: too short")
		}
	}

	if apiKeys.Gemini != "" {
		if !strings.HasPrefix(apiKeys.Gemini, "AIza") {
			return nil, fmt.Errorf("invalid GEMINI_API_KEY format: must start with 'AIza'")
		}
		if len(apiKeys.Gemini) < 30 {
			return nil, fmt.Errorf("invalid GEMINI_API_KEY format: too short")
		}
	}

	if apiKeys.OpenAI != "" {
		if !strings.HasPrefix(apiKeys.OpenAI, "sk-") {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
		}
		if len(apiKeys.OpenAI) < 20 {
			return nil, fmt.Errorf("invalid OPENAI_API_KEY format: too short")
		}
	}

	return apiKeys, nil
}

// RequireFindKeys validates that the keys needed by the find workflow are
// present. Fail-fast for operations that cannot run without them.
func RequireFindKeys(apiKeys *APIKeys) error {
	if apiKeys.YouTube == "" {
		return fmt.Errorf("video search requires YOUTUBE_API_KEY - set it in environment or .env file")
	}
	if apiKeys.Gemini == "" {
		return fmt.Errorf("best-pick selection requires GEMINI_API_KEY - set it in environment or .env file")
	}
	return nil
}

// RequireVoiceKey validates that the key needed for voice transcription is
// present. Voice mode degrades to text input without it, so callers decide
// whether this is fatal.
func RequireVoiceKey(apiKeys *APIKeys) error {
	if apiKeys.OpenAI == "" {
		return fmt.Errorf("voice transcription requires OPENAI_API_KEY - set it in environment or .env file")
	}
	return nil
}

// InitializeConfig loads environment and validates configuration.
// This is the main entry point for configuration loading.
func InitializeConfig() (*APIKeys, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	apiKeys, err := GetAPIKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to get API keys: %w", err)
	}

	return apiKeys, nil
}
