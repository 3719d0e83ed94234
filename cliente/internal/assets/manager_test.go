package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModels(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "models.json"), []byte(body), 0o644))
}

func TestMissingCatalogIsEmpty(t *testing.T) {
	m, err := NewManager(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, m.Names())
	assert.Empty(t, m.PreloadList())

	_, err = m.Resolve("city")
	assert.ErrorIs(t, err, ErrUnknownModel)
	assert.False(t, m.Available("city"))
}

func TestResolveAndAvailable(t *testing.T) {
	dir := t.TempDir()
	writeModels(t, dir, `{"named_models": {"city": "models/city.glb", "tower": "models/tower.glb"}}`)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "models"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models", "city.glb"), []byte("glTF"), 0o644))

	m, err := NewManager(dir)
	require.NoError(t, err)

	path, err := m.Resolve("city")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "models", "city.glb"), path)

	assert.True(t, m.Available("city"))
	assert.False(t, m.Available("tower"), "arquivo ausente")
	assert.Equal(t, []string{"city", "tower"}, m.PreloadList())
}

func TestAbsolutePathIsKept(t *testing.T) {
	m, err := NewManager(t.TempDir())
	require.NoError(t, err)

	abs := filepath.Join(t.TempDir(), "x.obj")
	m.Register("x", abs)
	path, err := m.Resolve("x")
	require.NoError(t, err)
	assert.Equal(t, abs, path)
}

func TestExplicitPreload(t *testing.T) {
	dir := t.TempDir()
	writeModels(t, dir, `{"named_models": {"a": "a.glb", "b": "b.glb"}, "preload": ["b"]}`)
	m, err := NewManager(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, m.PreloadList())
}

func TestCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"json quebrado", `{"named_models": `},
		{"preload desconhecido", `{"named_models": {"a": "a.glb"}, "preload": ["z"]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeModels(t, dir, tt.body)
			m, err := NewManager(dir)
			assert.Nil(t, m)
			assert.Error(t, err)
		})
	}
}
