package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/hooky/internal/bot"
)

// ServerConfig represents the complete server configuration
type ServerConfig struct {
	Server ServerSettings `hcl:"server,block"`
	Bots   []BotConfig    `hcl:"bot,block"`
}

// ServerSettings contains server-level configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// BotConfig defines one stock opponent available to single-player games.
// Roster order matters: single-player games seat bots from the top.
type BotConfig struct {
	Name       string `hcl:"name,label"`
	Difficulty string `hcl:"difficulty,optional"`
}

// DefaultServerConfig returns default server configuration
func DefaultServerConfig() *ServerConfig {
	config := &ServerConfig{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
			LogFile:  "hooky-server.log",
		},
	}
	for _, p := range bot.DefaultRoster() {
		config.Bots = append(config.Bots, BotConfig{
			Name:       p.Name,
			Difficulty: p.Difficulty.String(),
		})
	}
	return config
}

// LoadServerConfig loads server configuration from HCL file
func LoadServerConfig(filename string) (*ServerConfig, error) {
	// Check if file exists
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultServerConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config ServerConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Server.Address == "" {
		config.Server.Address = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = "info"
	}
	if config.Server.LogFile == "" {
		config.Server.LogFile = "hooky-server.log"
	}

	// Apply defaults to bots
	for i := range config.Bots {
		if config.Bots[i].Difficulty == "" {
			config.Bots[i].Difficulty = "medium"
		}
	}
	if len(config.Bots) == 0 {
		config.Bots = DefaultServerConfig().Bots
	}

	return &config, nil
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	if len(c.Bots) < singlePlayerBots {
		return fmt.Errorf("at least %d bots must be configured", singlePlayerBots)
	}

	seen := make(map[string]bool)
	for _, b := range c.Bots {
		if b.Name == "" {
			return fmt.Errorf("bot name must not be empty")
		}
		if seen[b.Name] {
			return fmt.Errorf("bot %s: duplicate name", b.Name)
		}
		seen[b.Name] = true
		if _, err := bot.ParseDifficulty(b.Difficulty); err != nil {
			return fmt.Errorf("bot %s: %w", b.Name, err)
		}
	}

	return nil
}

// GetServerAddress returns the full server address
func (c *ServerConfig) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// Roster converts the configured bots into seating profiles.
func (c *ServerConfig) Roster() ([]bot.Profile, error) {
	var roster []bot.Profile
	for _, b := range c.Bots {
		d, err := bot.ParseDifficulty(b.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("bot %s: %w", b.Name, err)
		}
		roster = append(roster, bot.Profile{Name: b.Name, Difficulty: d})
	}
	return roster, nil
}
