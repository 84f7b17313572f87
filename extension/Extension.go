package extension

import (
	"fmt"
	"os/exec"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("arturo.extension")

// Extension resolves the Arturo language server bundle and describes how
// to run it. The only mutable state is the last known good bundle path.
type Extension struct {
	Node    string
	Locator Locator

	cachedBundlePath string
}

func New(node string, locator Locator) (*Extension, error) {
	if node == "" {
		path, err := exec.LookPath("node")

		if err != nil {
			return nil, fmt.Errorf("node binary not found in PATH: %w", err)
		}

		node = path
	}

	return &Extension{
		Node:    node,
		Locator: locator,
	}, nil
}

// BundlePath resolves the on-disk path of the language server bundle and
// remembers it for the next call.
func (ext *Extension) BundlePath() (string, error) {
	log.Debug("checking for language server bundle")

	path, err := ext.Locator.BundlePath(ext.cachedBundlePath)

	if err != nil {
		return "", err
	}

	ext.cachedBundlePath = path
	log.Debugf("language server bundle: %s", path)

	return path, nil
}

// ServerCommand returns a fresh launch descriptor for the language server.
func (ext *Extension) ServerCommand() (*Command, error) {
	path, err := ext.BundlePath()

	if err != nil {
		return nil, err
	}

	return &Command{
		Command: ext.Node,
		Args:    []string{path, StdioFlag},
		Env:     map[string]string{},
	}, nil
}
