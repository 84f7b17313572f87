package extension

import (
	"github.com/mitchellh/mapstructure"
)

// Capabilities are the fixed feature flags sent to the server when the
// worktree has no settings of its own.
type Capabilities struct {
	TypeChecking bool `json:"typeChecking" mapstructure:"typeChecking"`
	Definitions  bool `json:"definitions" mapstructure:"definitions"`
	Hover        bool `json:"hover" mapstructure:"hover"`
}

func DefaultCapabilities() Capabilities {
	return Capabilities{
		TypeChecking: true,
		Definitions:  true,
		Hover:        true,
	}
}

func GetCapabilities(src any) (res Capabilities, err error) {
	err = mapstructure.Decode(src, &res)

	return
}

// InitializationOptions builds the payload for the initialize handshake.
// Worktree settings, when present, are forwarded untouched under "settings";
// the server interprets them, not us. Otherwise the default capability flags
// are sent.
func (ext *Extension) InitializationOptions(worktree *Worktree) (map[string]any, error) {
	if worktree != nil {
		settings, err := worktree.LspSettings()

		if err != nil {
			return nil, err
		}

		if settings != nil {
			return map[string]any{"settings": settings}, nil
		}
	}

	caps := DefaultCapabilities()

	return map[string]any{
		"typeChecking": caps.TypeChecking,
		"definitions":  caps.Definitions,
		"hover":        caps.Hover,
	}, nil
}
