package types

import (
	proto "github.com/tliron/glsp/protocol_3_16"
)

type Uri = proto.DocumentUri
type InitializeParams = proto.InitializeParams
type InitializeResult = proto.InitializeResult
type ServerCapabilities = proto.ServerCapabilities
