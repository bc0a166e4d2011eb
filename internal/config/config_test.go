package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jthomassen/roadline/internal/domain"
	"github.com/jthomassen/roadline/internal/layout"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roadline.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, layout.DefaultWeekWidth, cfg.WeekWidth)
	assert.Equal(t, 10, cfg.RecentLimit)
	assert.Equal(t, domain.DefaultTopicColors, cfg.Palette())
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := writeConfig(t, "default_year: 2027\nweek_width: 32\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2027, cfg.DefaultYear)
	assert.Equal(t, 32.0, cfg.WeekWidth)
	assert.Equal(t, layout.LabelWidth, cfg.LabelWidth)
}

func TestLoadPaletteOverride(t *testing.T) {
	path := writeConfig(t, "topic_palette:\n  - \"#112233\"\n  - \"#445566\"\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"#112233", "#445566"}, cfg.Palette())
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative week width", "week_width: -4\n"},
		{"bad palette entry", "topic_palette: [\"blue\"]\n"},
		{"zero recent limit", "recent_limit: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "week_width: [unclosed\n")
	_, err := Load(path)
	assert.Error(t, err)
}
