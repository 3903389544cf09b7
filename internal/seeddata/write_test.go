package seeddata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export.yaml")
	want := MustDefaults()

	require.NoError(t, want.WriteFile(path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	small := &Set{Menus: []Menu{{Name: "Only", Order: 1}}}
	require.NoError(t, small.WriteFile(path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, small.Menus, got.Menus)
	assert.Empty(t, got.Cards)
}

func TestWriteFileMissingDir(t *testing.T) {
	s := &Set{}
	err := s.WriteFile(filepath.Join(t.TempDir(), "nope", "export.yaml"))
	assert.Error(t, err)
}

func TestMarshalOmitsEmptyFields(t *testing.T) {
	s := &Set{Cards: []Card{{Menu: "Home", Title: "Go", URL: "https://go.dev"}}}
	data, err := s.Marshal()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "sub_menu")
	assert.NotContains(t, string(data), "logo_url")
}
