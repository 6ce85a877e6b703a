package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/nginx-host-manager/internal/domain"
)

func TestScaffold_CreatesLayout(t *testing.T) {
	cfg := testConfig(t)

	written, err := Scaffold(cfg, false)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Dockerfile", "template.conf", "includes/proxy_params.conf"}, written)

	for _, dir := range []string{"sites", "certs", "includes"} {
		info, err := os.Stat(filepath.Join(cfg.Paths.Root, dir))
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}

	tmpl, err := os.ReadFile(filepath.Join(cfg.Paths.Root, "template.conf"))
	require.NoError(t, err)
	assert.Contains(t, string(tmpl), domain.PlaceholderHost)
	assert.Contains(t, string(tmpl), domain.PlaceholderPort)
}

func TestScaffold_KeepsExistingFiles(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(cfg.Paths.Root, 0o755))
	custom := filepath.Join(cfg.Paths.Root, "template.conf")
	require.NoError(t, os.WriteFile(custom, []byte("custom %HOST%"), 0o644))

	written, err := Scaffold(cfg, false)

	require.NoError(t, err)
	assert.NotContains(t, written, "template.conf")
	data, err := os.ReadFile(custom)
	require.NoError(t, err)
	assert.Equal(t, "custom %HOST%", string(data))

	written, err = Scaffold(cfg, true)

	require.NoError(t, err)
	assert.Contains(t, written, "template.conf")
	data, err = os.ReadFile(custom)
	require.NoError(t, err)
	assert.NotEqual(t, "custom %HOST%", string(data))
}

func TestScaffold_DirectoriesOutsideRoot(t *testing.T) {
	cfg := testConfig(t)
	certs := filepath.Join(t.TempDir(), "shared-certs")
	cfg.Paths.Certs = certs

	_, err := Scaffold(cfg, false)

	require.NoError(t, err)
	info, err := os.Stat(certs)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
