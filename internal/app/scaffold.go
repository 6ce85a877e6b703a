package app

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/nginx-host-manager/internal/adapters/out/filesystem"
	"github.com/bnema/nginx-host-manager/internal/config"
	"github.com/bnema/nginx-host-manager/pkg/logger"
)

//go:embed assets
var assets embed.FS

// Scaffold creates the proxy directory layout under the configured root:
// the sites, certs and includes directories, a Dockerfile, the host template
// and the shared proxy include. Existing files are kept unless force is set.
// It returns the files it wrote, relative to the root.
func Scaffold(cfg *config.Config, force bool) ([]string, error) {
	if err := os.MkdirAll(cfg.Paths.Root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", cfg.Paths.Root, err)
	}

	store, err := filesystem.NewOSStore(cfg.Paths.Root)
	if err != nil {
		return nil, err
	}

	for _, dir := range []string{cfg.Paths.Sites, cfg.Paths.Certs, cfg.Paths.Includes} {
		if err := ensureDir(store, cfg, dir); err != nil {
			return nil, err
		}
	}

	files := []struct {
		asset  string
		target string
	}{
		{asset: "assets/Dockerfile", target: "Dockerfile"},
		{asset: "assets/template.conf", target: cfg.Paths.Template},
		{asset: "assets/includes/proxy_params.conf", target: filepath.Join(cfg.Paths.Includes, "proxy_params.conf")},
	}

	var written []string
	for _, f := range files {
		target, err := cfg.StorePath(f.target)
		if err != nil {
			logger.Warn("Skipping file outside the proxy root", "file", f.target)
			continue
		}

		exists, err := store.Exists(target)
		if err != nil {
			return written, err
		}
		if exists && !force {
			logger.Debug("Keeping existing file", "file", target)
			continue
		}

		data, err := assets.ReadFile(f.asset)
		if err != nil {
			return written, fmt.Errorf("missing embedded asset %s: %w", f.asset, err)
		}
		if err := store.Write(target, data); err != nil {
			return written, err
		}
		written = append(written, target)
	}

	return written, nil
}

// ensureDir creates dir through the store when it lives under the root and
// directly on the host otherwise.
func ensureDir(store *filesystem.Store, cfg *config.Config, dir string) error {
	if p, err := cfg.StorePath(dir); err == nil {
		return store.MkdirAll(p)
	}
	if err := os.MkdirAll(cfg.HostPath(dir), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return nil
}
