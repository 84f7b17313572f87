package extension

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Locator resolves the path of the language server bundle. The cached
// argument is the previous result, empty on the first call; implementations
// decide whether to honor it.
type Locator interface {
	BundlePath(cached string) (string, error)
}

// SearchLocator probes a fixed list of candidate locations and returns the
// first bundle that exists. A cached path that is still on disk short-circuits
// the search.
type SearchLocator struct {
	Dir    string
	ExeDir string
}

func NewSearchLocator() (*SearchLocator, error) {
	dir, err := os.Getwd()

	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	loc := &SearchLocator{Dir: dir}

	if exe, err := os.Executable(); err == nil {
		loc.ExeDir = filepath.Dir(exe)
	}

	return loc, nil
}

func (loc *SearchLocator) Candidates() []string {
	paths := []string{
		filepath.Join(loc.Dir, BundleName),
		filepath.Join(loc.Dir, LegacyServerDir, BundleName),
	}

	if loc.ExeDir != "" {
		paths = append(paths, filepath.Join(loc.ExeDir, BundleName))
	}

	return paths
}

func (loc *SearchLocator) BundlePath(cached string) (string, error) {
	if cached != "" && exists(cached) {
		return cached, nil
	}

	paths := loc.Candidates()

	for _, path := range paths {
		if exists(path) {
			return path, nil
		}
	}

	return "", fmt.Errorf(
		"language server bundle not found, searched: %s",
		strings.Join(paths, ", "),
	)
}

func exists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
