package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the command with args, capturing combined output.
func executeCommand(root *cobra.Command, args ...string) (string, error) {
	// Cobra's auto-added help flag keeps its value across Execute calls on
	// the shared rootCmd; reset it so a prior --help run cannot short-circuit
	// this invocation into printing help.
	for _, name := range []string{"help", "version"} {
		if f := root.Flags().Lookup(name); f != nil {
			_ = f.Value.Set("false")
			f.Changed = false
		}
	}
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestHelpFlag(t *testing.T) {
	out, err := executeCommand(rootCmd, "--help")
	require.NoError(t, err)
	for _, flag := range []string{"--json", "--full", "--simple", "--sort", "--protocol"} {
		assert.Contains(t, out, flag)
	}
}

func TestUnknownFlagFails(t *testing.T) {
	_, err := executeCommand(rootCmd, "--bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestVersionFlag(t *testing.T) {
	out, err := executeCommand(rootCmd, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

// Runs last: cobra keeps flag Changed state across Execute calls, so the
// conflicting flags would poison any later invocation of rootCmd.
func TestFullAndSimpleAreMutuallyExclusive(t *testing.T) {
	_, err := executeCommand(rootCmd, "--full", "--simple")
	require.Error(t, err)
	assert.Contains(t, strings.ToLower(err.Error()), "none of the others can be")
}
