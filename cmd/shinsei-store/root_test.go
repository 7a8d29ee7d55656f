package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, dataDir string, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--data-dir", dataDir}, args...))

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCLI_PutGetRoundTrip(t *testing.T) {
	dataDir := t.TempDir()

	_, _, err := runCmd(t, dataDir, "put", "notes", "draft", "hello world")
	require.NoError(t, err)

	out, _, err := runCmd(t, dataDir, "get", "notes", "draft")
	require.NoError(t, err)
	assert.Equal(t, "hello world", out)
}

func TestCLI_GetAbsent(t *testing.T) {
	dataDir := t.TempDir()

	out, errOut, err := runCmd(t, dataDir, "get", "notes", "missing")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "(absent)")
}

func TestCLI_ListAndExists(t *testing.T) {
	dataDir := t.TempDir()

	_, _, err := runCmd(t, dataDir, "put", "notes", "a", "one")
	require.NoError(t, err)
	_, _, err = runCmd(t, dataDir, "put", "notes", "b", "two")
	require.NoError(t, err)

	out, _, err := runCmd(t, dataDir, "list", "notes")
	require.NoError(t, err)
	keys := strings.Fields(out)
	assert.ElementsMatch(t, []string{"a", "b"}, keys)

	out, _, err = runCmd(t, dataDir, "exists", "notes", "a")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, _, err = runCmd(t, dataDir, "exists", "notes", "zzz")
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestCLI_DeleteIsIdempotent(t *testing.T) {
	dataDir := t.TempDir()

	_, _, err := runCmd(t, dataDir, "delete", "notes", "never-written")
	require.NoError(t, err)

	_, _, err = runCmd(t, dataDir, "put", "notes", "draft", "x")
	require.NoError(t, err)
	_, _, err = runCmd(t, dataDir, "delete", "notes", "draft")
	require.NoError(t, err)
	_, _, err = runCmd(t, dataDir, "delete", "notes", "draft")
	require.NoError(t, err)
}

func TestCLI_InvalidNameFails(t *testing.T) {
	dataDir := t.TempDir()

	_, errOut, err := runCmd(t, dataDir, "put", "Not Valid", "key", "x")
	require.Error(t, err)
	assert.Contains(t, errOut, "INVALID_NAME")
}

func TestCLI_EmptyDatastoreList(t *testing.T) {
	dataDir := t.TempDir()

	out, _, err := runCmd(t, dataDir, "list", "never-used")
	require.NoError(t, err)
	assert.Contains(t, out, "(empty)")
}

func TestCLI_Version(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "shinsei-store version")
}
