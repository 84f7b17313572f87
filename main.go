package main

import (
	"github.com/DaZhi-the-Revelator/zed-arturo/host"
	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func init() {
	pflag.CommandLine.ParseErrorsWhitelist.UnknownFlags = true
	pflag.String("node", "", "Path to the node binary, found in PATH when empty")
	pflag.String("locate", "bundled", "Bundle location mode: bundled or search")
	pflag.String("worktree", "", "Worktree root, working directory when empty")
	pflag.Bool("check", false, "Run an initialize handshake against the server and exit")
	pflag.Bool("watch", false, "With --check, re-run the check when the bundle changes")
	pflag.CountP("verbose", "v", "Increase log verbosity")
	pflag.String("log-file", "", "Write logs to a file, keeping stdio clean for the protocol")
	pflag.Parse()
}

func main() {
	verbose, err := pflag.CommandLine.GetCount("verbose")

	if err != nil {
		panic(err)
	}

	logFile, err := pflag.CommandLine.GetString("log-file")

	if err != nil {
		panic(err)
	}

	var path *string

	if logFile != "" {
		path = &logFile
	}

	commonlog.Configure(verbose, path)

	err = host.Start()

	if err != nil {
		panic(err)
	}
}
