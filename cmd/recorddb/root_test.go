package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRootCommandDemo(t *testing.T) {
	// WHEN
	stdout, stderr, err := execute(t)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, ""+
		"|                       Charvel|       Wayne Charvel| 1974|\n"+
		"|     Gibson Guitar Corporation|     Orvillie Gibson| 1902|\n"+
		"|                     Music Man|          Leo Fender| 1974|\n"+
		"|                        Peavey|      Hartley Peavey| 1965|\n"+
		"\n"+
		"|     Gibson Guitar Corporation|     Orvillie Gibson| 1902|\n"+
		"|                     Music Man|          Leo Fender| 1974|\n"+
		"|                        Peavey|      Hartley Peavey| 1965|\n",
		stdout)
	assert.Contains(t, stderr, "Record removed")
}

func TestRootCommandSearchMiss(t *testing.T) {
	// WHEN
	stdout, stderr, err := execute(t, "--search", "Gretsch")

	// THEN
	require.NoError(t, err)

	listings := strings.Split(stdout, "\n\n")
	require.Len(t, listings, 2)
	assert.Equal(t, listings[0]+"\n", listings[1])
	assert.Contains(t, stderr, "Record not found")
}

func TestRootCommandWithConfigFile(t *testing.T) {
	// GIVEN
	file := filepath.Join(t.TempDir(), "recorddb.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
output: json
search: Fender
records:
  - brand: Gretsch
    founder: Friedrich Gretsch
    year: 1883
  - brand: Fender
    founder: Leo Fender
    year: 1946
  - brand: Gretsch
    founder: Duplicate
    year: 1900
`), 0o600))

	// WHEN
	stdout, stderr, err := execute(t, "-c", file)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, ""+
		`{"brand":"Fender","founder":"Leo Fender","year":1946}`+"\n"+
		`{"brand":"Gretsch","founder":"Friedrich Gretsch","year":1883}`+"\n"+
		"\n"+
		`{"brand":"Gretsch","founder":"Friedrich Gretsch","year":1883}`+"\n",
		stdout)
	assert.Contains(t, stderr, "Skipping record")
	assert.Contains(t, stderr, "duplicate record")
}

func TestRootCommandInvalidConfiguration(t *testing.T) {
	_, _, err := execute(t, "--output", "csv")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration error")
}

func TestRootCommandRejectsArguments(t *testing.T) {
	_, _, err := execute(t, "unexpected")

	require.Error(t, err)
}
