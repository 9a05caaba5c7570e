package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Database    DatabaseConfig    `toml:"database"`
	Server      ServerConfig      `toml:"server"`
}

// CredentialsConfig contains the two secrets the bot needs at runtime.
type CredentialsConfig struct {
	DiscordToken string `toml:"discord_token"`
	BooksAPIKey  string `toml:"books_api_key"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// ServerConfig contains settings for the optional metrics HTTP server.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Secrets may also be supplied through the environment (DISCORD_TOKEN,
// BOOKS_API_KEY), optionally via a token.env dotenv file; environment values
// take precedence over the TOML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.loadEnvCredentials()
	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	config.loadEnvCredentials()
	return &config
}

// loadEnvCredentials overlays credentials from the environment, reading a
// token.env dotenv file first when one exists.
func (c *Config) loadEnvCredentials() {
	_ = godotenv.Load("token.env")

	if token := os.Getenv("DISCORD_TOKEN"); token != "" {
		c.Credentials.DiscordToken = token
	}
	if key := os.Getenv("BOOKS_API_KEY"); key != "" {
		c.Credentials.BooksAPIKey = key
	}
}

// ValidateCredentials checks that both runtime secrets are present.
// The bot cannot start without them.
func (c *Config) ValidateCredentials() error {
	if c.Credentials.DiscordToken == "" {
		return fmt.Errorf("%w: discord_token", ErrMissingCredentials)
	}
	if c.Credentials.BooksAPIKey == "" {
		return fmt.Errorf("%w: books_api_key", ErrMissingCredentials)
	}
	return nil
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
