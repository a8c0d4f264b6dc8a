// Package constants defines shared constant values used across the CLI.
package constants

import "time"

// CLIExtensionPrefix is the command prefix used in help text and examples.
const CLIExtensionPrefix = "gh workflow-version"

// DefaultGitHubAPIURL is the GitHub REST API endpoint used when no explicit
// API URL is supplied and GITHUB_API_URL is not set.
const DefaultGitHubAPIURL = "https://api.github.com"

// GitHubAPIAcceptHeader is the media type requested from the GitHub REST API.
const GitHubAPIAcceptHeader = "application/vnd.github+json"

// GitHubAPIVersion is the GitHub REST API version sent with every request.
const GitHubAPIVersion = "2022-11-28"

// WorkflowDir is the directory GitHub Actions reads workflow files from.
const WorkflowDir = ".github/workflows"

// DefaultHTTPTimeout is the timeout applied to GitHub API requests when the
// caller does not inject its own HTTP client.
const DefaultHTTPTimeout = 30 * time.Second

// HTTPTimeoutEnvVar overrides the GitHub API request timeout (in seconds).
const HTTPTimeoutEnvVar = "GH_WORKFLOW_VERSION_HTTP_TIMEOUT"
