package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/textindent/internal/config"
)

func TestConfigInit_WritesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.yaml")
	var out bytes.Buffer
	configInitCmd.SetOut(&out)

	require.NoError(t, configInitCmd.RunE(configInitCmd, []string{path}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfigTemplate(), string(data))
	require.Equal(t, "wrote "+path+"\n", out.String())
}

func TestConfigShow_PrintsEffectiveConfig(t *testing.T) {
	prev := cfg
	t.Cleanup(func() { cfg = prev })
	cfg = config.Defaults()
	cfg.Indent.Style = config.StyleTabs

	var out bytes.Buffer
	configShowCmd.SetOut(&out)

	require.NoError(t, configShowCmd.RunE(configShowCmd, nil))
	require.Contains(t, out.String(), "style: tabs")
	require.Contains(t, out.String(), "color: auto")
}
