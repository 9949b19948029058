package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/hooky/internal/bot"
)

func TestLoadServerConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadServerConfig(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.GetServerAddress())
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Len(t, cfg.Bots, 4)
	assert.NoError(t, cfg.Validate())
}

func TestLoadServerConfigParsesHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.hcl")
	content := `
server {
  address   = "0.0.0.0"
  port      = 9000
  log_level = "debug"
}

bot "Alpha" {
  difficulty = "hard"
}

bot "Beta" {}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.GetServerAddress())
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	require.Len(t, cfg.Bots, 2)
	assert.Equal(t, "Alpha", cfg.Bots[0].Name)
	assert.Equal(t, "hard", cfg.Bots[0].Difficulty)
	assert.Equal(t, "medium", cfg.Bots[1].Difficulty, "difficulty defaults to medium")
	assert.NoError(t, cfg.Validate())
}

func TestLoadServerConfigRejectsBadHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.hcl")
	require.NoError(t, os.WriteFile(path, []byte("server {"), 0o644))

	_, err := LoadServerConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultServerConfig()
	require.NoError(t, cfg.Validate())

	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())
	cfg.Server.Port = 8080

	cfg.Bots = cfg.Bots[:1]
	assert.Error(t, cfg.Validate(), "fewer bots than a single-player game seats")

	cfg = DefaultServerConfig()
	cfg.Bots[1].Name = cfg.Bots[0].Name
	assert.Error(t, cfg.Validate(), "duplicate bot names")

	cfg = DefaultServerConfig()
	cfg.Bots[0].Difficulty = "brutal"
	assert.Error(t, cfg.Validate())
}

func TestConfigRoster(t *testing.T) {
	roster, err := DefaultServerConfig().Roster()
	require.NoError(t, err)
	require.Len(t, roster, 4)
	assert.Equal(t, bot.Profile{Name: "Dr. Wordsworth", Difficulty: bot.Hard}, roster[0])
}
