package note

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeNote(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "text.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadParsesDayMarker(t *testing.T) {
	path := writeNote(t, "Day 5: learned about SQL indexes today\nthey speed up lookups\n")

	n, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, n.Day)
	assert.Equal(t, "Day 5: learned about SQL indexes today\nthey speed up lookups", n.Text)
}

func TestLoadWithoutMarker(t *testing.T) {
	path := writeNote(t, "just some notes about goroutines")

	n, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, n.Day)
	assert.Equal(t, "just some notes about goroutines", n.Text)
}

func TestLoadMarkerNeedsSpace(t *testing.T) {
	path := writeNote(t, "Day5: crammed together")

	n, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, n.Day, "marker without a space should not parse")
}

func TestLoadMarkerOnlyAtStart(t *testing.T) {
	path := writeNote(t, "today was Day 3: of the challenge")

	n, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, n.Day)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.True(t, os.IsNotExist(inputErr.Err))
	assert.Contains(t, err.Error(), "nope.txt")
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeNote(t, "   \n\t\n")

	_, err := Load(path)
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.True(t, errors.Is(err, ErrEmpty))
}
