package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Profile is the configuration to start the main server.
type Profile struct {
	// Mode can be "prod" or "dev" or "demo"
	Mode string
	// Addr is the binding address for server
	Addr string
	// Port is the binding port for server
	Port int
	// Data is the data directory
	Data string
	// DSN points to where codementor stores its own data
	DSN string
	// Driver is the database driver (sqlite)
	Driver string
	// Version is the current version of server
	Version string
	// Secret signs session tokens
	Secret string

	// AI configuration
	AIBaseURL     string  // CODEMENTOR_AI_BASE_URL (default: https://openrouter.ai/api/v1)
	AIAPIKey      string  // CODEMENTOR_AI_API_KEY
	AIModel       string  // CODEMENTOR_AI_MODEL (default: google/gemini-2.0-flash-exp:free)
	AIMaxTokens   int     // CODEMENTOR_AI_MAX_TOKENS (default: 2000)
	AITemperature float32 // CODEMENTOR_AI_TEMPERATURE (default: 0.7)
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// IsAIEnabled returns true when an API key is configured. Without a key the
// completion gateway still runs but every call degrades to the fallback
// message.
func (p *Profile) IsAIEnabled() bool {
	return p.AIAPIKey != ""
}

// getEnvOrDefault returns the environment variable value or the default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FromEnv loads the AI and secret configuration from CODEMENTOR_* environment
// variables. Server flags (mode, addr, port, data, driver, dsn) are bound by
// the command layer instead.
func (p *Profile) FromEnv() {
	p.AIBaseURL = getEnvOrDefault("CODEMENTOR_AI_BASE_URL", "https://openrouter.ai/api/v1")
	p.AIAPIKey = os.Getenv("CODEMENTOR_AI_API_KEY")
	p.AIModel = getEnvOrDefault("CODEMENTOR_AI_MODEL", "google/gemini-2.0-flash-exp:free")

	p.AIMaxTokens = 2000
	if v := os.Getenv("CODEMENTOR_AI_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			p.AIMaxTokens = n
		}
	}

	p.AITemperature = 0.7
	if v := os.Getenv("CODEMENTOR_AI_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 {
			p.AITemperature = float32(f)
		}
	}

	if v := os.Getenv("CODEMENTOR_SECRET"); v != "" {
		p.Secret = v
	}
}

func checkDataDir(dataDir string) (string, error) {
	// Convert to absolute path if relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		relativeDir := filepath.Join(filepath.Dir(os.Args[0]), dataDir)
		absDir, err := filepath.Abs(relativeDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case user supplies
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err != nil {
		return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
	}
	return dataDir, nil
}

func (p *Profile) Validate() error {
	if p.Mode != "demo" && p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "demo"
	}

	if p.Driver == "" {
		p.Driver = "sqlite"
	}

	if p.Data == "" {
		p.Data = "."
	}
	dataDir, err := checkDataDir(p.Data)
	if err != nil {
		return errors.Wrap(err, "failed to check data directory")
	}
	p.Data = dataDir

	if p.Driver == "sqlite" && p.DSN == "" {
		dbFile := fmt.Sprintf("codementor_%s.db", p.Mode)
		p.DSN = filepath.Join(dataDir, dbFile)
	}

	if p.Secret == "" {
		if p.Mode == "prod" {
			return errors.New("a signing secret is required in prod mode, set CODEMENTOR_SECRET")
		}
		p.Secret = "codementor-dev-secret"
	}

	return nil
}
