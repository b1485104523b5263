package cpanel

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names for the cPanel connection settings.
const (
	EnvUsername = "CPANEL_USERNAME"
	EnvHostname = "CPANEL_HOSTNAME"
	EnvAPIToken = "CPANEL_API_TOKEN"
	EnvPort     = "CPANEL_PORT"
	EnvSSL      = "CPANEL_SSL"
	EnvWHMPort  = "CPANEL_WHM_PORT"
)

// DefaultPort is the standard cPanel port for the per-account API.
const DefaultPort = 2083

// Config holds the connection settings for one cPanel account. It is built
// once at startup and treated as immutable afterwards.
type Config struct {
	// Username is the cPanel account name the token is bound to
	Username string

	// Hostname is the cPanel server hostname
	Hostname string

	// APIToken is the long-lived API token used for every request
	APIToken string

	// Port is the cPanel port (default 2083)
	Port int

	// WHMPort is the WHM API port. Zero selects the conventional port
	// next to the account port: 2087 with SSL, 2086 without.
	WHMPort int

	// SSL selects https for outbound calls (default true)
	SSL bool
}

// Validate checks that all required fields are present and well-formed.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if strings.TrimSpace(c.Hostname) == "" {
		return fmt.Errorf("hostname cannot be empty")
	}
	if strings.TrimSpace(c.APIToken) == "" {
		return fmt.Errorf("API token cannot be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.WHMPort < 0 || c.WHMPort > 65535 {
		return fmt.Errorf("WHM port must be between 0 and 65535, got %d", c.WHMPort)
	}
	return nil
}

// LoadConfig reads the connection settings from the process environment,
// loading a .env file first if one is present. Every missing required
// variable is reported in one error so operators can fix them all at once.
func LoadConfig() (*Config, error) {
	// A missing .env file is not an error; environment variables alone
	// are a fully supported configuration.
	_ = godotenv.Load()

	config := &Config{
		Username: strings.TrimSpace(os.Getenv(EnvUsername)),
		Hostname: strings.TrimSpace(os.Getenv(EnvHostname)),
		APIToken: strings.TrimSpace(os.Getenv(EnvAPIToken)),
		Port:     DefaultPort,
		SSL:      true,
	}

	var missing []string
	if config.Username == "" {
		missing = append(missing, EnvUsername)
	}
	if config.Hostname == "" {
		missing = append(missing, EnvHostname)
	}
	if config.APIToken == "" {
		missing = append(missing, EnvAPIToken)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if portStr := os.Getenv(EnvPort); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", EnvPort, portStr, err)
		}
		config.Port = port
	}

	if whmPortStr := os.Getenv(EnvWHMPort); whmPortStr != "" {
		whmPort, err := strconv.Atoi(whmPortStr)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q: %w", EnvWHMPort, whmPortStr, err)
		}
		config.WHMPort = whmPort
	}

	if sslStr := os.Getenv(EnvSSL); sslStr != "" {
		config.SSL = parseBoolSetting(sslStr)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// parseBoolSetting accepts the truthy spellings cPanel operators commonly
// use; anything else is false.
func parseBoolSetting(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}
