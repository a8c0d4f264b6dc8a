// Package cli wires the version resolver to its environment: argument
// parsing and validation, token discovery, stdout/step-output reporting.
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/github/gh-workflow-version/pkg/console"
	"github.com/github/gh-workflow-version/pkg/constants"
	"github.com/github/gh-workflow-version/pkg/envutil"
	"github.com/github/gh-workflow-version/pkg/logger"
	"github.com/github/gh-workflow-version/pkg/resolver"
)

var resolveCmdLog = logger.New("cli:resolve_command")

// ResolveOptions carries the validated command inputs.
type ResolveOptions struct {
	CallerRepository string
	CallerRunID      int64
	TargetRepository string
	TargetFileName   string
	APIBaseURL       string
	Verbose          bool
}

// NewRootCommand creates the root command for the tool.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gh-workflow-version CALLER_REPOSITORY CALLER_RUN_ID REUSABLE_WORKFLOW_REPOSITORY REUSABLE_WORKFLOW_FILE_NAME [GITHUB_API_URL]",
		Short: "Resolve the commit SHA a reusable workflow was called with",
		Long: `Resolve the commit SHA that a GitHub Actions reusable workflow was called with.

When a reusable workflow runs, the github context always describes the caller
workflow, so the reusable workflow cannot learn its own checked-out version
directly (https://github.com/actions/toolkit/issues/1264). This tool queries
the caller run's metadata, finds the referenced reusable workflow matching the
given repository and file name, and reports its commit SHA and ref.

On success the resolved version is printed to stdout and, when GITHUB_OUTPUT
is set, a "sha=<commit>" line is appended to that file so later steps can
consume it.

A token is read from GH_TOKEN, falling back to GITHUB_TOKEN and stored gh CLI
credentials. Private caller repositories require a token with actions: read.

Examples:
  ` + constants.CLIExtensionPrefix + ` octocat/Hello-World 8938022468 acme/infra build.yaml
  ` + constants.CLIExtensionPrefix + ` octocat/Hello-World 8938022468 acme/infra build.yaml https://github.example.com/api/v3`,
		Args:          cobra.RangeArgs(4, 5),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := parseResolveArgs(args)
			if err != nil {
				return err
			}
			opts.Verbose, _ = cmd.Flags().GetBool("verbose")
			return RunResolveVersion(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")

	return cmd
}

// parseResolveArgs validates the positional arguments and normalizes the API
// base URL before anything reaches the resolver.
func parseResolveArgs(args []string) (ResolveOptions, error) {
	var opts ResolveOptions

	if err := ValidateRepositorySlug(args[0]); err != nil {
		return opts, fmt.Errorf("invalid caller repository: %w", err)
	}
	opts.CallerRepository = args[0]

	runID, err := ParseRunID(args[1])
	if err != nil {
		return opts, err
	}
	opts.CallerRunID = runID

	if err := ValidateRepositorySlug(args[2]); err != nil {
		return opts, fmt.Errorf("invalid reusable workflow repository: %w", err)
	}
	opts.TargetRepository = args[2]

	if err := ValidateWorkflowFileName(args[3]); err != nil {
		return opts, err
	}
	opts.TargetFileName = args[3]

	explicitURL := ""
	if len(args) > 4 {
		explicitURL = args[4]
	}
	opts.APIBaseURL = ResolveAPIBaseURL(explicitURL)

	return opts, nil
}

// RunResolveVersion resolves the reusable workflow version and reports it.
func RunResolveVersion(ctx context.Context, opts ResolveOptions) error {
	resolveCmdLog.Printf("Resolving workflow version: caller=%s, run=%d, target=%s/%s, api=%s",
		opts.CallerRepository, opts.CallerRunID, opts.TargetRepository, opts.TargetFileName, opts.APIBaseURL)

	token := ResolveGitHubToken(opts.APIBaseURL)

	if opts.Verbose {
		fmt.Fprintln(os.Stderr, console.FormatVerboseMessage(
			fmt.Sprintf("Querying run %d in %s via %s", opts.CallerRunID, opts.CallerRepository, opts.APIBaseURL)))
	}

	timeoutSeconds := envutil.GetIntFromEnv(constants.HTTPTimeoutEnvVar,
		int(constants.DefaultHTTPTimeout/time.Second), 1, 600, resolveCmdLog)

	r := resolver.New(resolver.Config{
		CallerRepository: opts.CallerRepository,
		CallerRunID:      opts.CallerRunID,
		TargetRepository: opts.TargetRepository,
		TargetFileName:   opts.TargetFileName,
		APIBaseURL:       opts.APIBaseURL,
		Token:            token,
		HTTPClient:       &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
	})

	reference, err := r.Resolve(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Reusable workflow version: %s (ref: %s)\n", reference.CommitID, reference.Ref)

	if err := WriteStepOutput("sha", reference.CommitID); err != nil {
		return err
	}

	if opts.Verbose {
		fmt.Fprintln(os.Stderr, console.FormatSuccessMessage(
			fmt.Sprintf("Resolved %s/%s to %s", opts.TargetRepository, opts.TargetFileName, reference.CommitID)))
	}

	return nil
}
