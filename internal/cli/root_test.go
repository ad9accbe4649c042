package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "daybook", cmd.Use)
	assert.Contains(t, cmd.Long, "1775")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"scaffold", "seed-intake", "promote", "audit", "migrate-schema", "status"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "curator.yaml", configFlag.DefValue)
}

func TestPromoteCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	promoteCmd, _, err := cmd.Find([]string{"promote"})
	require.NoError(t, err)

	for _, name := range []string{"soldiers", "command", "congress", "voices", "list", "overwrite", "dry-run", "next-missing"} {
		assert.NotNil(t, promoteCmd.Flags().Lookup(name), "promote should have --%s", name)
	}
}

func TestSeedIntakeCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	seedCmd, _, err := cmd.Find([]string{"seed-intake"})
	require.NoError(t, err)

	for _, name := range []string{"publish", "backfill", "overwrite", "from-data", "print"} {
		assert.NotNil(t, seedCmd.Flags().Lookup(name), "seed-intake should have --%s", name)
	}
}

func TestInvalidFormatRejected(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"--format", "xml", "status"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
