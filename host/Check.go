package host

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/DaZhi-the-Revelator/zed-arturo/extension"
	. "github.com/DaZhi-the-Revelator/zed-arturo/types"
	. "github.com/DaZhi-the-Revelator/zed-arturo/utils"
	"github.com/sourcegraph/jsonrpc2"
	proto "github.com/tliron/glsp/protocol_3_16"
)

// Check spawns the language server and runs a full initialize/shutdown
// cycle against it, logging what the server reports. Used to verify a
// bundle without attaching an editor.
func Check(ctx context.Context, ext *extension.Extension, worktree *extension.Worktree) error {
	cmd, err := ext.ServerCommand()

	if err != nil {
		return err
	}

	options, err := ext.InitializationOptions(worktree)

	if err != nil {
		return err
	}

	return CheckCommand(ctx, cmd, options, worktree.Root)
}

// CheckCommand runs the handshake against an already resolved command.
// Watch mode reuses the command so a re-check never rewrites the bundle
// it is watching.
func CheckCommand(ctx context.Context, cmd *extension.Command, options map[string]any, root string) error {
	proc := exec.CommandContext(ctx, cmd.Command, cmd.Args...)
	proc.Env = append(os.Environ(), envList(cmd.Env)...)
	proc.Stderr = os.Stderr

	stream, err := ServerStream(proc)

	if err != nil {
		return err
	}

	if err = proc.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", cmd.Command, err)
	}

	res, err := Handshake(ctx, stream, root, options)

	if err != nil {
		_ = proc.Process.Kill()
		_ = proc.Wait()

		return err
	}

	name := "server"

	if res.ServerInfo != nil {
		name = res.ServerInfo.Name
	}

	log.Infof("%s initialized, %s", name, describeCapabilities(res.Capabilities))

	return proc.Wait()
}

func describeCapabilities(caps ServerCapabilities) string {
	return fmt.Sprintf("hover=%v definitions=%v",
		caps.HoverProvider != nil,
		caps.DefinitionProvider != nil,
	)
}

// Handshake runs initialize/initialized and then shutdown/exit over the
// given stream, forwarding options as initializationOptions.
func Handshake(ctx context.Context, stream io.ReadWriteCloser, root string, options any) (*InitializeResult, error) {
	conn := jsonrpc2.NewConn(
		ctx,
		jsonrpc2.NewBufferedStream(stream, jsonrpc2.VSCodeObjectCodec{}),
		jsonrpc2.HandlerWithError(clientHandle),
	)

	defer conn.Close()

	params := &InitializeParams{
		ProcessID:             P(proto.Integer(os.Getpid())),
		RootURI:               P(ToUri(root)),
		InitializationOptions: options,
		WorkspaceFolders: []proto.WorkspaceFolder{
			{
				URI:  ToUri(root),
				Name: filepath.Base(root),
			},
		},
	}

	var res InitializeResult

	if err := conn.Call(ctx, "initialize", params, &res); err != nil {
		return nil, fmt.Errorf("initialize: %w", err)
	}

	if err := conn.Notify(ctx, "initialized", &proto.InitializedParams{}); err != nil {
		return nil, err
	}

	if err := conn.Call(ctx, "shutdown", nil, nil); err != nil {
		return nil, fmt.Errorf("shutdown: %w", err)
	}

	_ = conn.Notify(ctx, "exit", nil)

	return &res, nil
}

func clientHandle(ctx context.Context, conn *jsonrpc2.Conn, r *jsonrpc2.Request) (any, error) {
	switch r.Method {
	case "window/logMessage", "window/showMessage":
		var params proto.LogMessageParams

		if r.Params != nil {
			if err := json.Unmarshal(*r.Params, &params); err != nil {
				return nil, err
			}
		}

		log.Infof("server: %s", params.Message)

		return nil, nil
	}

	if r.Notif {
		return nil, nil
	}

	return nil, &jsonrpc2.Error{
		Code:    jsonrpc2.CodeMethodNotFound,
		Message: fmt.Sprintf("Method not found: %s", r.Method),
	}
}
