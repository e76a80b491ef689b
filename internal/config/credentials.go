package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultModel is the text-generation model asked for scene descriptions.
const DefaultModel = "gemini-2.5-flash"

// Credentials carries what the description collaborator needs from the environment.
type Credentials struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// HasAPIKey reports whether a key was configured at all.
func (c Credentials) HasAPIKey() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// CredentialsFromEnv reads API_KEY (or GEMINI_API_KEY) and GEMINI_MODEL.
func CredentialsFromEnv() Credentials {
	return credentialsFrom(os.Getenv)
}

func credentialsFrom(getenv func(string) string) Credentials {
	c := Credentials{
		APIKey:  getenv("API_KEY"),
		Model:   getenv("GEMINI_MODEL"),
		Timeout: 30 * time.Second,
	}
	if c.APIKey == "" {
		c.APIKey = getenv("GEMINI_API_KEY")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	return c
}

// DebugFromEnv reports whether DEBUG is set.
func DebugFromEnv() bool {
	return os.Getenv("DEBUG") != ""
}

// ApplyEnv applies optional overrides such as FPS_LIMIT to the render settings.
func ApplyEnv() {
	if v := os.Getenv("FPS_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			SetFPSLimit(n)
		}
	}
}
