package main

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/samiksha22122/ConfigManager/internal/iotesting"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findCommand returns a direct subcommand by name.
func findCommand(t *testing.T, root *cobra.Command, name string) *cobra.Command {
	t.Helper()

	for _, c := range root.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// captureStdout runs fn while collecting everything written to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	err = w.Close()
	require.NoError(t, err)
	os.Stdout = orig

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

// TestRootCommand_HasSubcommands verifies root command structure
func TestRootCommand_HasSubcommands(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd, "Root command should exist")

	for _, name := range []string{"validate", "show", "domains", "init"} {
		assert.NotNil(t, findCommand(t, cmd, name),
			"%s subcommand should exist", name)
	}
}

// TestRootCommand_PersistentFlags verifies config-dir and env flags
func TestRootCommand_PersistentFlags(t *testing.T) {
	cmd := getRootCmd()

	dirFlag := cmd.PersistentFlags().Lookup("config-dir")
	require.NotNil(t, dirFlag, "--config-dir flag should exist")
	assert.Equal(t, "string", dirFlag.Value.Type())

	envFlag := cmd.PersistentFlags().Lookup("env")
	require.NotNil(t, envFlag, "--env flag should exist")
	assert.Equal(t, "string", envFlag.Value.Type())

	// Subcommands inherit the persistent flags.
	validateCmd := findCommand(t, cmd, "validate")
	require.NotNil(t, validateCmd)
	assert.NotNil(t, validateCmd.InheritedFlags().Lookup("config-dir"),
		"validate should inherit --config-dir flag")
	assert.NotNil(t, validateCmd.InheritedFlags().Lookup("env"),
		"validate should inherit --env flag")
}

// TestRootCommand_Help verifies help text includes usage
func TestRootCommand_Help(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})
	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "confmgr")
	assert.Contains(t, helpText, "cloud.yaml")
	assert.Contains(t, helpText, "Available Commands")
	assert.Contains(t, helpText, "CONFMGR_ENV")
}

// TestRootCommand_VersionFlag verifies --version flag
func TestRootCommand_VersionFlag(t *testing.T) {
	cmd := getRootCmd()
	cmd.Version = "test-version"

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--version"})
	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "test-version")
}

// TestRootCommand_UnknownCommand verifies invalid subcommands are rejected
func TestRootCommand_UnknownCommand(t *testing.T) {
	iotesting.SetupTempConfigDir(t)

	cmd := getRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"no-such-command"})

	err := cmd.Execute()
	assert.Error(t, err, "Root command should reject unknown subcommands")
}

// TestValidateCommand_Flags verifies the validate command surface
func TestValidateCommand_Flags(t *testing.T) {
	cmd := getRootCmd()

	validateCmd := findCommand(t, cmd, "validate")
	require.NotNil(t, validateCmd, "validate subcommand should exist")
	assert.Contains(t, validateCmd.Use, "<domain>")

	allFlag := validateCmd.Flags().Lookup("all")
	require.NotNil(t, allFlag, "--all flag should exist on validate command")
	assert.Equal(t, "bool", allFlag.Value.Type())
}

// TestShowCommand_Flags verifies the show command surface
func TestShowCommand_Flags(t *testing.T) {
	cmd := getRootCmd()

	showCmd := findCommand(t, cmd, "show")
	require.NotNil(t, showCmd, "show subcommand should exist")

	domainFlag := showCmd.Flags().Lookup("domain")
	require.NotNil(t, domainFlag, "--domain flag should exist on show command")

	formatFlag := showCmd.Flags().Lookup("format")
	require.NotNil(t, formatFlag, "--format flag should exist on show command")
	assert.Equal(t, "text", formatFlag.DefValue)
}

// TestInitCommand_Flags verifies the init command surface
func TestInitCommand_Flags(t *testing.T) {
	cmd := getRootCmd()

	initCmd := findCommand(t, cmd, "init")
	require.NotNil(t, initCmd, "init subcommand should exist")

	forceFlag := initCmd.Flags().Lookup("force")
	require.NotNil(t, forceFlag, "--force flag should exist on init command")
	assert.Equal(t, "bool", forceFlag.Value.Type())
}
