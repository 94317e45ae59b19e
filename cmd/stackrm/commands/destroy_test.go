package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestroy(t *testing.T) {
	cmd := Destroy()

	require.NotNil(t, cmd)
	assert.Equal(t, "destroy", cmd.Use)
	assert.Contains(t, cmd.Long, "WARNING")
	assert.NotNil(t, cmd.RunE)
}

func TestDestroy_Flags(t *testing.T) {
	cmd := Destroy()

	tests := []struct {
		name      string
		shorthand string
		def       string
	}{
		{"config", "c", ""},
		{"app", "", ""},
		{"production", "", "false"},
		{"force", "f", "false"},
		{"name", "", ""},
		{"now", "", "false"},
		{"no-timeout", "", "false"},
		{"quiet", "q", "false"},
		{"verbose", "v", "false"},
		{"tui", "", "false"},
		{"region", "", ""},
		{"profile", "", ""},
		{"endpoint-url", "", ""},
		{"access-key-id", "", ""},
		{"secret-access-key", "", ""},
		{"session-token", "", ""},
		{"metrics-textfile", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag, "flag %s should exist", tt.name)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, tt.def, flag.DefValue)
		})
	}
}

func TestDestroy_RejectsQuietWithVerbose(t *testing.T) {
	root := Root()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"destroy", "--quiet", "--verbose"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

func TestDestroy_RejectsPositionalArgs(t *testing.T) {
	root := Root()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"destroy", "my-app"})

	assert.Error(t, root.Execute())
}
