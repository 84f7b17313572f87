package host

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	. "github.com/DaZhi-the-Revelator/zed-arturo/types"
	. "github.com/DaZhi-the-Revelator/zed-arturo/utils"
	"github.com/sourcegraph/jsonrpc2"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func TestDescribeCapabilities(t *testing.T) {
	caps := ServerCapabilities{HoverProvider: true}

	if s := describeCapabilities(caps); s != "hover=true definitions=false" {
		t.Errorf("summary %q expected hover=true definitions=false", s)
	}

	if s := describeCapabilities(ServerCapabilities{}); s != "hover=false definitions=false" {
		t.Errorf("summary %q expected hover=false definitions=false", s)
	}
}

func TestHandshake(t *testing.T) {
	ctx := context.Background()

	clientReader, serverWriter := io.Pipe()
	serverReader, clientWriter := io.Pipe()

	clientStream := &Stream{Reader: clientReader, Writer: clientWriter}
	serverStream := &Stream{Reader: serverReader, Writer: serverWriter}

	options := make(chan any, 1)

	serverConn := jsonrpc2.NewConn(
		ctx,
		jsonrpc2.NewBufferedStream(serverStream, jsonrpc2.VSCodeObjectCodec{}),
		jsonrpc2.HandlerWithError(func(c context.Context, conn *jsonrpc2.Conn, r *jsonrpc2.Request) (any, error) {
			switch r.Method {
			case "initialize":
				var params InitializeParams

				if err := json.Unmarshal(*r.Params, &params); err != nil {
					return nil, err
				}

				options <- params.InitializationOptions

				return InitializeResult{
					ServerInfo: &proto.InitializeResultServerInfo{
						Name:    "arturo-lsp",
						Version: P("1.0.0"),
					},
				}, nil
			}

			return nil, nil
		}),
	)

	defer serverConn.Close()

	res, err := Handshake(ctx, clientStream, "/srv/project", map[string]any{"hover": true})

	if err != nil {
		t.Fatalf("Handshake: %v", err)
	}

	if res.ServerInfo == nil || res.ServerInfo.Name != "arturo-lsp" {
		t.Errorf("res %+v expected server info arturo-lsp", res)
	}

	sent, ok := (<-options).(map[string]any)

	if !ok {
		t.Fatalf("server should receive options map")
	}

	if sent["hover"] != true {
		t.Errorf("options %v expected hover true", sent)
	}
}
