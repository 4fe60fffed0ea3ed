package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAnswer(t *testing.T) {
	base := t.TempDir()
	s := NewStore(base, nil)

	path, err := s.SaveAnswer("int_1_abcd1234", 3, strings.NewReader("fake webm bytes"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "int_1_abcd1234"), filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "q3_"))
	assert.True(t, strings.HasSuffix(path, ".webm"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fake webm bytes", string(data))
}

func TestSaveAnswer_SeparateFilesPerQuestion(t *testing.T) {
	base := t.TempDir()
	s := NewStore(base, nil)

	first, err := s.SaveAnswer("int_1_abcd1234", 1, strings.NewReader("take one"))
	require.NoError(t, err)
	second, err := s.SaveAnswer("int_1_abcd1234", 2, strings.NewReader("take two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	entries, err := os.ReadDir(filepath.Join(base, "int_1_abcd1234"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSaveAnswer_BadBaseDir(t *testing.T) {
	// A base dir path that collides with an existing file cannot be created.
	base := t.TempDir()
	blocker := filepath.Join(base, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	s := NewStore(blocker, nil)
	_, err := s.SaveAnswer("int_1_abcd1234", 1, strings.NewReader("data"))
	assert.Error(t, err)
}
