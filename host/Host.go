package host

import (
	"context"
	"fmt"
	"os"

	"github.com/DaZhi-the-Revelator/zed-arturo/extension"
	. "github.com/DaZhi-the-Revelator/zed-arturo/utils"
	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("arturo.host")

// Start reads the command line flags, builds the extension and either
// proxies stdio to the spawned server or runs the handshake check.
func Start() error {
	flags := pflag.CommandLine

	node, err := flags.GetString("node")

	if err != nil {
		return err
	}

	mode, err := flags.GetString("locate")

	if err != nil {
		return err
	}

	check, err := flags.GetBool("check")

	if err != nil {
		return err
	}

	watch, err := flags.GetBool("watch")

	if err != nil {
		return err
	}

	root, err := flags.GetString("worktree")

	if err != nil {
		return err
	}

	locator, err := NewLocator(mode)

	if err != nil {
		return err
	}

	ext, err := extension.New(node, locator)

	if err != nil {
		return err
	}

	if root == "" {
		root, err = os.Getwd()
	} else {
		// editors hand out worktree roots as file:// uris
		root, err = UriToPath(root)
	}

	if err != nil {
		return err
	}

	worktree := &extension.Worktree{Root: root}
	ctx := context.Background()

	if !check {
		return Proxy(ctx, ext)
	}

	if !watch {
		return Check(ctx, ext, worktree)
	}

	// resolve once and reuse the command: re-resolving in the bundled mode
	// rewrites the watched file, retriggering the watcher forever
	cmd, err := ext.ServerCommand()

	if err != nil {
		return err
	}

	options, err := ext.InitializationOptions(worktree)

	if err != nil {
		return err
	}

	recheck := func() {
		if err := CheckCommand(ctx, cmd, options, worktree.Root); err != nil {
			log.Errorf("check: %s", err.Error())
		}
	}

	recheck()

	return WatchBundle(ctx, cmd.Args[0], recheck)
}

func NewLocator(mode string) (extension.Locator, error) {
	switch mode {
	case "bundled", "":
		return extension.NewBundledLocator()
	case "search":
		return extension.NewSearchLocator()
	}

	return nil, fmt.Errorf("unknown locate mode: %s", mode)
}
