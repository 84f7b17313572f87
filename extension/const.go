package extension

const (
	BundleName      = "bundle.js"
	LegacyServerDir = "language-server"

	// Target name for the embedded bundle, written to the host's working
	// directory on every resolve.
	EmbeddedBundleName = "arturo-lsp-bundle.js"

	// Per-project settings file at the worktree root. Its contents are
	// forwarded to the server untouched.
	SettingsName = "arturo-lsp.json"

	StdioFlag = "--stdio"
)
