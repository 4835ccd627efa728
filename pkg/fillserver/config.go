package fillserver

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// ServiceName is reported by the liveness endpoint.
	ServiceName = "PDF Field Filler API"
	// Version is reported by the liveness endpoint.
	Version = "1.0.1"

	DefaultHost   = "0.0.0.0"
	DefaultPort   = 8000
	DefaultBucket = "finishpdf"
)

// Config holds the service configuration. Supabase credentials come from
// the SUPABASE_URL and SUPABASE_KEY environment variables; the service
// starts without them but rejects fill requests until both are set.
type Config struct {
	Host        string
	Port        int
	SupabaseURL string
	SupabaseKey string
	Bucket      string
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Host:   DefaultHost,
		Port:   DefaultPort,
		Bucket: DefaultBucket,
	}
}

// LoadFromFlags parses command line flags and environment variables and
// returns a validated configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	viper.AutomaticEnv()
	viper.SetDefault("host", cfg.Host)
	viper.SetDefault("port", cfg.Port)
	viper.SetDefault("bucket", cfg.Bucket)

	pflag.String("host", cfg.Host, "Address to listen on")
	pflag.Int("port", cfg.Port, "Port to listen on")
	pflag.String("bucket", cfg.Bucket, "Default storage bucket for filled documents")

	_ = viper.BindPFlag("host", pflag.Lookup("host"))
	_ = viper.BindPFlag("port", pflag.Lookup("port"))
	_ = viper.BindPFlag("bucket", pflag.Lookup("bucket"))

	pflag.Parse()

	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.Bucket = viper.GetString("bucket")
	cfg.SupabaseURL = viper.GetString("supabase_url")
	cfg.SupabaseKey = viper.GetString("supabase_key")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	if c.Bucket == "" {
		return errors.New("bucket cannot be empty")
	}
	return nil
}

// SupabaseConfigured reports whether both storage credentials are present.
func (c *Config) SupabaseConfigured() bool {
	return c.SupabaseURL != "" && c.SupabaseKey != ""
}

// Address returns the listen address as host:port
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
