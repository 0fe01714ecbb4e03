//go:build linux

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinuxAutostart(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	service := NewService()

	enabled, err := service.AutostartEnabled("WorkRest")
	require.NoError(t, err)
	assert.False(t, enabled)

	require.NoError(t, service.EnableAutostart("WorkRest", "/opt/work rest/workrest"))

	entry, err := os.ReadFile(filepath.Join(configHome, "autostart", "workrest.desktop"))
	require.NoError(t, err)
	assert.Contains(t, string(entry), "Name=WorkRest\n")
	assert.Contains(t, string(entry), `Exec="/opt/work rest/workrest"`)

	enabled, err = service.AutostartEnabled("WorkRest")
	require.NoError(t, err)
	assert.True(t, enabled)

	require.NoError(t, service.DisableAutostart("WorkRest"))
	require.NoError(t, service.DisableAutostart("WorkRest"))
	assert.NoFileExists(t, filepath.Join(configHome, "autostart", "workrest.desktop"))

	assert.Error(t, service.EnableAutostart("", "/bin/true"))
	assert.Error(t, service.EnableAutostart("WorkRest", ""))
}
