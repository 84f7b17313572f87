package extension

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Worktree is the project the host opened the server for.
type Worktree struct {
	Root string
}

// LspSettings reads the per-project server settings. Returns nil when the
// worktree has none.
func (wt *Worktree) LspSettings() (any, error) {
	path := filepath.Join(wt.Root, SettingsName)
	data, err := os.ReadFile(path)

	if os.IsNotExist(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var settings any

	if err = json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}

	return settings, nil
}
