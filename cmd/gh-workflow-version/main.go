package main

import (
	"context"
	"fmt"
	"os"

	"github.com/github/gh-workflow-version/pkg/cli"
	"github.com/github/gh-workflow-version/pkg/console"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	rootCmd := cli.NewRootCommand(version)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		os.Exit(1)
	}
}
