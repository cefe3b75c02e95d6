package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	BackendURL       string `mapstructure:"backend_url"`
	RequestTimeoutMs int    `mapstructure:"request_timeout_ms"`
	RevealIntervalMs int    `mapstructure:"reveal_interval_ms"`
	HealthIntervalMs int    `mapstructure:"health_interval_ms"`
	ColorHeader      string `mapstructure:"color_header"`
	ColorLink        string `mapstructure:"color_link"`
	ColorUser        string `mapstructure:"color_user"`
	ColorDim         string `mapstructure:"color_dim"`
	ColorError       string `mapstructure:"color_error"`
}

// C is the global config instance
var C Config

// Init initializes configuration with viper
func Init() error {
	viper.SetDefault("backend_url", "http://localhost:5000")
	viper.SetDefault("request_timeout_ms", 30000)
	viper.SetDefault("reveal_interval_ms", 15)   // per revealed character
	viper.SetDefault("health_interval_ms", 5000) // backend status poll
	viper.SetDefault("color_header", "36")       // Cyan
	viper.SetDefault("color_link", "34")         // Blue
	viper.SetDefault("color_user", "32")         // Green
	viper.SetDefault("color_dim", "90")          // Gray
	viper.SetDefault("color_error", "31")        // Red

	viper.SetConfigName("financewatcher")
	viper.SetConfigType("yaml")

	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "financewatcher"))
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("FINANCEWATCHER")
	viper.AutomaticEnv()

	// Try to read config, but don't fail if not found or malformed
	_ = viper.ReadInConfig()

	return viper.Unmarshal(&C)
}

// GetBackendURL returns the chat backend base URL
func GetBackendURL() string {
	return viper.GetString("backend_url")
}

// GetRequestTimeout returns the per-request timeout for backend calls
func GetRequestTimeout() time.Duration {
	return time.Duration(viper.GetInt("request_timeout_ms")) * time.Millisecond
}

// GetRevealInterval returns the delay between reveal ticks
func GetRevealInterval() time.Duration {
	return time.Duration(viper.GetInt("reveal_interval_ms")) * time.Millisecond
}

// GetHealthInterval returns the backend health poll interval
func GetHealthInterval() time.Duration {
	return time.Duration(viper.GetInt("health_interval_ms")) * time.Millisecond
}

// GetColorHeader returns ANSI color code for section headers
func GetColorHeader() string {
	return viper.GetString("color_header")
}

// GetColorLink returns ANSI color code for link labels
func GetColorLink() string {
	return viper.GetString("color_link")
}

// GetColorUser returns ANSI color code for user messages
func GetColorUser() string {
	return viper.GetString("color_user")
}

// GetColorDim returns ANSI color code for secondary text
func GetColorDim() string {
	return viper.GetString("color_dim")
}

// GetColorError returns ANSI color code for error text
func GetColorError() string {
	return viper.GetString("color_error")
}

// SetBackendURL sets the backend URL at runtime
func SetBackendURL(url string) {
	viper.Set("backend_url", url)
	C.BackendURL = url
}

// SetRevealInterval sets the reveal tick interval at runtime
func SetRevealInterval(ms int) {
	viper.Set("reveal_interval_ms", ms)
	C.RevealIntervalMs = ms
}
