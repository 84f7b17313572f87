package host

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/DaZhi-the-Revelator/zed-arturo/extension"
)

// Proxy spawns the language server and connects it straight to the
// harness's own stdio, so any LSP client can run this binary in place of
// the server. Returns when the server exits.
func Proxy(ctx context.Context, ext *extension.Extension) error {
	cmd, err := ext.ServerCommand()

	if err != nil {
		return err
	}

	log.Infof("starting %s %s", cmd.Command, strings.Join(cmd.Args, " "))

	proc := exec.CommandContext(ctx, cmd.Command, cmd.Args...)
	proc.Env = append(os.Environ(), envList(cmd.Env)...)
	proc.Stdin = os.Stdin
	proc.Stdout = os.Stdout
	proc.Stderr = os.Stderr

	return proc.Run()
}

func envList(env map[string]string) []string {
	list := make([]string, 0, len(env))

	for name, value := range env {
		list = append(list, name+"="+value)
	}

	return list
}
