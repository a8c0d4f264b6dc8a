package cli

import (
	"fmt"
	"os"

	"github.com/github/gh-workflow-version/pkg/logger"
)

var outputLog = logger.New("cli:output")

// WriteStepOutput appends a "key=value" line to the file named by
// GITHUB_OUTPUT, the mechanism GitHub Actions uses to export step outputs.
// Outside of Actions (GITHUB_OUTPUT unset) it does nothing.
func WriteStepOutput(key, value string) error {
	outputPath := os.Getenv("GITHUB_OUTPUT")
	if outputPath == "" {
		outputLog.Print("GITHUB_OUTPUT not set, skipping step output")
		return nil
	}

	outputLog.Printf("Appending step output %s to %s", key, outputPath)

	file, err := os.OpenFile(outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open GITHUB_OUTPUT file: %w", err)
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "%s=%s\n", key, value); err != nil {
		return fmt.Errorf("failed to write step output: %w", err)
	}
	return nil
}
