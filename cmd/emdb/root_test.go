package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCommand_HasSubcommands verifies root command structure
func TestRootCommand_HasSubcommands(t *testing.T) {
	cmd := getRootCmd()

	require.NotNil(t, cmd, "Root command should exist")

	found := make(map[string]bool)
	for _, c := range cmd.Commands() {
		found[c.Name()] = true
	}
	assert.True(t, found["create"], "create subcommand should exist")
	assert.True(t, found["version"], "version subcommand should exist")
	assert.True(t, found["schemas"], "schemas subcommand should exist")
}

// TestRootCommand_ConfigFlag verifies --config flag exists
func TestRootCommand_ConfigFlag(t *testing.T) {
	cmd := getRootCmd()

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag, "--config flag should exist")
	assert.Equal(t, "string", configFlag.Value.Type(), "--config should be string type")
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

	assert.Contains(t, helpText, "emdb", "Help should mention emdb")
	assert.Contains(t, helpText, "annotation", "Help should mention annotations")
	assert.Contains(t, helpText, "Available Commands", "Help should list commands")
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

	output := buf.String()
	assert.Contains(t, output, "test-version", "Version output should contain version string")
}

// TestCreateCommand_Flags verifies create command flags
func TestCreateCommand_Flags(t *testing.T) {
	cmd := getRootCmd()

	var createCmd *cobra.Command
	for _, c := range cmd.Commands() {
		if c.Name() == "create" {
			createCmd = c
			break
		}
	}
	require.NotNil(t, createCmd, "create subcommand should exist")

	datasetFlag := createCmd.Flags().Lookup("dataset")
	require.NotNil(t, datasetFlag, "--dataset flag should exist on create command")
	assert.Equal(t, "stringArray", datasetFlag.Value.Type())

	tableFlag := createCmd.Flags().Lookup("table")
	require.NotNil(t, tableFlag, "--table flag should exist on create command")
	assert.Equal(t, "stringArray", tableFlag.Value.Type())

	versionFlag := createCmd.Flags().Lookup("version")
	require.NotNil(t, versionFlag, "--version flag should exist on create command")
	assert.Equal(t, "int", versionFlag.Value.Type())

	contactsFlag := createCmd.Flags().Lookup("contacts")
	require.NotNil(t, contactsFlag, "--contacts flag should exist on create command")
	assert.Equal(t, "bool", contactsFlag.Value.Type())

	forceFlag := createCmd.Flags().Lookup("force")
	require.NotNil(t, forceFlag, "--force flag should exist on create command")
	assert.Equal(t, "bool", forceFlag.Value.Type())
}

// TestVersionCommand_Flags verifies version command flags
func TestVersionCommand_Flags(t *testing.T) {
	cmd := getRootCmd()

	var versionCmd *cobra.Command
	for _, c := range cmd.Commands() {
		if c.Name() == "version" {
			versionCmd = c
			break
		}
	}
	require.NotNil(t, versionCmd, "version subcommand should exist")

	datasetFlag := versionCmd.Flags().Lookup("dataset")
	require.NotNil(t, datasetFlag, "--dataset flag should exist on version command")
}

// TestCreateCommand_Help verifies create command help
func TestCreateCommand_Help(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"create", "--help"})
	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "create", "Help should mention create")
	assert.Contains(t, helpText, "schema=table", "Help should document the table binding format")
}

// TestRootCommand_PersistentFlags verifies persistent flags work across subcommands
func TestRootCommand_PersistentFlags(t *testing.T) {
	cmd := getRootCmd()

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag, "Persistent --config flag should exist")

	var createCmd *cobra.Command
	for _, c := range cmd.Commands() {
		if c.Name() == "create" {
			createCmd = c
			break
		}
	}
	require.NotNil(t, createCmd)

	inheritedConfig := createCmd.InheritedFlags().Lookup("config")
	assert.NotNil(t, inheritedConfig, "create should inherit --config flag")
}
