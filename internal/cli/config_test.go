package cli

import (
	"os"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/goals/internal/domain"
	"github.com/runoshun/goals/internal/testutil"
)

func TestConfigCommand_NoSubcommand_ShowsHelp(t *testing.T) {
	s := newTestSession(newTestContainer(t, testutil.NewMockGoalRepository()))

	out, err := execute(newConfigCommand(s))
	require.NoError(t, err)
	assert.Contains(t, out, "show")
	assert.Contains(t, out, "init")
	assert.Contains(t, out, "template")
}

func TestConfigShowCommand(t *testing.T) {
	c := newTestContainer(t, testutil.NewMockGoalRepository())
	c.AppConfig.Warnings = []string{"unknown section: theme"}
	s := newTestSession(c)

	out, err := execute(newConfigCommand(s), "show")
	require.NoError(t, err)
	assert.Contains(t, out, c.Config.ConfigPath+" (not found)")
	assert.Contains(t, out, "[Data directory]\n- /data")
	assert.Contains(t, out, "- unknown section: theme")
	assert.Contains(t, out, "[Effective Config]")
	assert.Contains(t, out, "default_category")
	assert.Contains(t, out, "[[categories]]")
	assert.Contains(t, out, "Relationships")
}

func TestFormatEffectiveConfig_RoundTrips(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, formatEffectiveConfig(&sb, domain.NewDefaultConfig()))

	var decoded struct {
		DefaultCategory string `toml:"default_category"`
		Store           struct {
			Backend string `toml:"backend"`
		} `toml:"store"`
		TUI struct {
			Watch bool `toml:"watch"`
		} `toml:"tui"`
		Categories []struct {
			Name string `toml:"name"`
		} `toml:"categories"`
	}
	require.NoError(t, toml.Unmarshal([]byte(sb.String()), &decoded))
	assert.Equal(t, "Personal", decoded.DefaultCategory)
	assert.Equal(t, "file", decoded.Store.Backend)
	assert.True(t, decoded.TUI.Watch)
	assert.Len(t, decoded.Categories, 6)
}

func TestConfigInitCommand(t *testing.T) {
	c := newTestContainer(t, testutil.NewMockGoalRepository())
	s := newTestSession(c)

	out, err := execute(newConfigCommand(s), "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created config file: "+c.Config.ConfigPath)

	content, err := os.ReadFile(c.Config.ConfigPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[[categories]]")

	_, err = execute(newConfigCommand(s), "init")
	assert.ErrorIs(t, err, domain.ErrConfigExists)

	_, err = execute(newConfigCommand(s), "init", "--force")
	assert.NoError(t, err)
}

func TestConfigTemplateCommand(t *testing.T) {
	out, err := execute(newConfigTemplateCommand())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, toml.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, out, "[[categories]]")
}
