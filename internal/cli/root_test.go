package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "objschema", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	for _, flag := range []string{"config", "log-level", "log-backend", "slow-threshold", "table-prefix", "pluralize", "snake-case", "output", "timezone"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, name := range []string{"version", "validate", "inspect", "dict", "gen", "watch"} {
		assert.True(t, names[name], "command %q should be registered", name)
	}
}

func TestRootAppliesConfig(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- name: Dog
  properties:
    name: string
`), 0o644))

	cmd := NewRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"inspect", path, "-o", "json", "--table-prefix", "t_", "--pluralize"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), `"table": "t_Dogs"`)
}

func TestRootRejectsInvalidConfig(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"version", "--log-backend", "syslog"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log.backend")
}

func TestShouldUseColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("CLICOLOR_FORCE", "1")
	assert.False(t, ShouldUseColor())

	t.Setenv("NO_COLOR", "")
	assert.True(t, ShouldUseColor())

	t.Setenv("CLICOLOR_FORCE", "")
	t.Setenv("CLICOLOR", "0")
	assert.False(t, ShouldUseColor())
}
