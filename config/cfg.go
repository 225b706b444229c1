package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	apiclient "github.com/jekabolt/helpdesk/internal/api/client"
	httpapi "github.com/jekabolt/helpdesk/internal/api/http"
	"github.com/jekabolt/helpdesk/internal/dashboard"
	"github.com/jekabolt/helpdesk/internal/debounce"
	"github.com/jekabolt/helpdesk/internal/ratelimit"
	"github.com/jekabolt/helpdesk/internal/telemetry"
	"github.com/jekabolt/helpdesk/log"
)

// Config represents the global configuration of the helpdesk client.
type Config struct {
	API       apiclient.Config `mapstructure:"api"`
	Logger    log.Config       `mapstructure:"logger"`
	Dashboard dashboard.Config `mapstructure:"dashboard"`
	HTTP      httpapi.Config   `mapstructure:"http"`
	Telemetry telemetry.Config `mapstructure:"telemetry"`
	RateLimit ratelimit.Config `mapstructure:"rate_limit"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g., API__BASE_URL for api.base_url,
// and the common keys also have flat aliases such as HELPDESK_API_URL.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.AutomaticEnv()
	// e.g., api.base_url -> API__BASE_URL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults(v)
	bindEnvVars(v)

	// Try to read config file (optional - can work with env vars only)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.config/helpdesk")
		v.AddConfigPath("/etc/helpdesk")
		// Try to read config, but don't fail if it doesn't exist
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://localhost:5000")
	v.SetDefault("api.http_timeout", "10s")
	v.SetDefault("api.session_cookie_name", "session")
	v.SetDefault("api.user_agent", "helpdesk-client")

	v.SetDefault("logger.level", 0)
	v.SetDefault("logger.add_source", false)

	v.SetDefault("dashboard.search_debounce", debounce.DefaultDelay)

	v.SetDefault("http.address", "")
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.request_timeout", "30s")

	v.SetDefault("telemetry.service_name", "helpdesk")

	rl := ratelimit.DefaultConfig()
	v.SetDefault("rate_limit.window", rl.Window)
	v.SetDefault("rate_limit.tickets_per_ip", rl.TicketsPerIP)
	v.SetDefault("rate_limit.tickets_per_email", rl.TicketsPerMail)
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (API__BASE_URL) and flat keys (HELPDESK_API_URL)
func bindEnvVars(v *viper.Viper) {
	// API
	_ = v.BindEnv("api.base_url", "HELPDESK_API_URL")
	_ = v.BindEnv("api.http_timeout", "HELPDESK_API_TIMEOUT")
	_ = v.BindEnv("api.session_cookie", "HELPDESK_SESSION")
	_ = v.BindEnv("api.session_cookie_name", "HELPDESK_SESSION_COOKIE_NAME")

	// Logger
	_ = v.BindEnv("logger.level", "LOG_LEVEL")
	_ = v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")
	_ = v.BindEnv("logger.file", "LOG_FILE")

	// Dashboard
	_ = v.BindEnv("dashboard.search_debounce", "DASHBOARD_SEARCH_DEBOUNCE")

	// HTTP
	_ = v.BindEnv("http.port", "HTTP_PORT")
	_ = v.BindEnv("http.address", "HTTP_ADDRESS")
	_ = v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")

	// Telemetry
	_ = v.BindEnv("telemetry.endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT")
	_ = v.BindEnv("telemetry.insecure", "OTEL_EXPORTER_OTLP_INSECURE")
	_ = v.BindEnv("telemetry.service_name", "OTEL_SERVICE_NAME")

	// Rate limit
	_ = v.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	_ = v.BindEnv("rate_limit.tickets_per_ip", "RATE_LIMIT_TICKETS_PER_IP")
	_ = v.BindEnv("rate_limit.tickets_per_email", "RATE_LIMIT_TICKETS_PER_EMAIL")
}
