package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok && val != "" {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

func GetBool(config map[string]string, key string, defaultValue bool) bool {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asBool, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return defaultValue
	}

	return asBool
}

// GetList splits a comma-separated value and drops empty entries.
func GetList(config map[string]string, key string) []string {
	raw := GetString(config, key, "")
	if raw == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// LoadEnv loads the first .env file found in the usual locations.
// A missing file is not an error; the process environment is used as is.
func LoadEnv() {
	possiblePaths := []string{
		".env",
		filepath.Join("..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded .env file")
			return
		}
	}

	log.Debug().Msg("No .env file found, using system environment variables")
}

// Client holds everything the data-synchronization core needs at startup.
type Client struct {
	APIBaseURL   string
	SessionStore string
	SessionPath  string
	HTTPTimeout  time.Duration
	LogLevel     string
}

// LoadClient reads the client configuration from an env map produced by New.
func LoadClient(c map[string]string) Client {
	return Client{
		APIBaseURL:   strings.TrimSuffix(GetString(c, "API_BASE_URL", "http://localhost:5000/api"), "/"),
		SessionStore: strings.ToLower(GetString(c, "SESSION_STORE", "sqlite")),
		SessionPath:  GetString(c, "SESSION_PATH", "portfolio-session.db"),
		HTTPTimeout:  time.Duration(GetInt(c, "HTTP_TIMEOUT_SECONDS", 0)) * time.Second,
		LogLevel:     strings.ToLower(GetString(c, "LOG_LEVEL", "info")),
	}
}

// MockServer holds the settings of the local mock REST backend.
type MockServer struct {
	Port            string
	AcceptedOrigins []string
	JWTSecret       string
	TokenTTL        time.Duration
	AdminEmail      string
	AdminPassword   string
	AuthRateLimit   int
	AuthRatePeriod  time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
}

func LoadMockServer(c map[string]string) MockServer {
	origins := GetList(c, "ACCEPTED_ORIGINS")
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	return MockServer{
		Port:            GetString(c, "PORT", "8080"),
		AcceptedOrigins: origins,
		JWTSecret:       GetString(c, "JWT_SECRET", "portfolio-mock-secret"),
		TokenTTL:        time.Duration(GetInt(c, "TOKEN_TTL_HOURS", 24)) * time.Hour,
		AdminEmail:      GetString(c, "ADMIN_EMAIL", ""),
		AdminPassword:   GetString(c, "ADMIN_PASSWORD", ""),
		AuthRateLimit:   GetInt(c, "AUTH_RATE_LIMIT", 20),
		AuthRatePeriod:  time.Duration(GetInt(c, "AUTH_RATE_PERIOD_SECONDS", 60)) * time.Second,
		ReadTimeout:     time.Duration(GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second,
		WriteTimeout:    time.Duration(GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second,
		IdleTimeout:     time.Duration(GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second,
	}
}
