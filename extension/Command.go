package extension

// Command describes how to launch the language server process. It is built
// fresh on every request and never reused.
type Command struct {
	Command string
	Args    []string
	Env     map[string]string
}
