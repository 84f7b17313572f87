package extension

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

// The prebuilt language server. Produced by scripts/bundle.sh, which runs
// esbuild over the arturo-lsp sources so no npm install is needed at runtime.
//
//go:embed bundle/bundle.js
var serverBundle []byte

// BundledLocator writes the embedded bundle to Dir on every resolve so the
// file on disk always matches this build. It ignores the cached path and can
// only fail on a write error.
type BundledLocator struct {
	Dir string
}

func NewBundledLocator() (*BundledLocator, error) {
	dir, err := os.Getwd()

	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return &BundledLocator{Dir: dir}, nil
}

func (loc *BundledLocator) BundlePath(cached string) (string, error) {
	path := filepath.Join(loc.Dir, EmbeddedBundleName)

	err := os.WriteFile(path, serverBundle, 0644)

	if err != nil {
		return "", fmt.Errorf("failed to write language server bundle: %w", err)
	}

	return path, nil
}
