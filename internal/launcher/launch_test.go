package launcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/projboard/internal/config"
	"github.com/thenoetrevino/projboard/internal/config/colors"
	"github.com/thenoetrevino/projboard/internal/models"
)

func TestLoadConfig_ExplicitPath(t *testing.T) {
	t.Setenv(config.ThemeFileEnv, "")
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("key_mappings:\n  quit: \"x\"\n"), 0o644))

	cfg, err := loadConfig(Options{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, "x", cfg.KeyMappings.Quit)
}

func TestLoadConfig_ThemeOverride(t *testing.T) {
	t.Setenv(config.ThemeFileEnv, "")
	path := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := loadConfig(Options{ConfigPath: path, Theme: "monochrome"})
	require.NoError(t, err)

	assert.Equal(t, config.MonochromeColorScheme(), cfg.ColorScheme)
}

func TestLoadConfig_UnknownTheme(t *testing.T) {
	t.Setenv(config.ThemeFileEnv, "")
	path := filepath.Join(t.TempDir(), "absent.yaml")

	_, err := loadConfig(Options{ConfigPath: path, Theme: "neon"})

	assert.True(t, errors.Is(err, colors.ErrUnknownPreset))
}

func TestLoadConfig_BrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules: [oops"), 0o644))

	_, err := loadConfig(Options{ConfigPath: path})

	assert.Error(t, err)
}

func TestLoadConfig_FocusOverride(t *testing.T) {
	t.Setenv(config.ThemeFileEnv, "")
	path := filepath.Join(t.TempDir(), "absent.yaml")

	cfg, err := loadConfig(Options{ConfigPath: path, Focus: "finished"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinished, cfg.Board.FocusList)

	_, err = loadConfig(Options{ConfigPath: path, Focus: "archived"})
	assert.ErrorIs(t, err, models.ErrUnknownStatus)
}
