package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Config holds application configuration. All values are resolved once at
// startup from environment variables and an optional .env file.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	// BackendURL is the base URL of the SuperButton REST API, including the
	// /v1 prefix.
	BackendURL string

	AppURL           string
	DashboardURL     string
	DocumentationURL string
	GithubURL        string
	CDNURL           string

	// TokenSecret signs sandbox ID tokens. Only the sandbox server uses it.
	TokenSecret string

	ServerPort string

	HTTPTimeoutSeconds int

	// BackendRequestsPerSecond throttles outbound API calls. Zero disables
	// client-side throttling.
	BackendRequestsPerSecond float64
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:            getenv("APP_NAME", "superbutton"),
		AppVersion:         getenv("APP_VERSION", "0.1.0"),
		Environment:        getenv("APP_ENV", "development"),
		BackendURL:         getenv("BACKEND_URL", "http://localhost:8000/v1"),
		AppURL:             getenv("APP_URL", "https://superbutton.app"),
		DashboardURL:       getenv("DASHBOARD_URL", "https://dashboard.superbutton.app"),
		DocumentationURL:   getenv("DOCUMENTATION_URL", "https://docs.superbutton.app"),
		GithubURL:          getenv("GITHUB_URL", "https://github.com/superbutton/superbutton-go"),
		CDNURL:             getenv("CDN_URL", "https://cdn.superbutton.app"),
		TokenSecret:        strings.TrimSpace(getenv("TOKEN_SECRET", "sandbox-secret")),
		ServerPort:         getenv("PORT", "8000"),
		HTTPTimeoutSeconds: getenvInt("HTTP_TIMEOUT_SECONDS", 30),

		BackendRequestsPerSecond: getenvFloat("BACKEND_REQUESTS_PER_SECOND", 10),
	}
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func getenvFloat(key string, def float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return def
	}
	return parsed
}

// Module wires application configuration.
var Module = fx.Module("config",
	fx.Provide(Load),
)
