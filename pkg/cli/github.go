package cli

import (
	"net/url"
	"os"
	"strings"

	"github.com/cli/go-gh/v2/pkg/auth"

	"github.com/github/gh-workflow-version/pkg/constants"
	"github.com/github/gh-workflow-version/pkg/logger"
)

var githubLog = logger.New("cli:github")

// ResolveAPIBaseURL returns the GitHub REST API base URL to query.
// An explicit value wins; otherwise GITHUB_API_URL is used (set on Actions
// runners, including GHES), falling back to https://api.github.com.
// A trailing slash is always stripped.
func ResolveAPIBaseURL(explicit string) string {
	apiURL := explicit
	if apiURL == "" {
		apiURL = os.Getenv("GITHUB_API_URL")
	}
	if apiURL == "" {
		apiURL = constants.DefaultGitHubAPIURL
		githubLog.Print("Using default GitHub API URL: " + constants.DefaultGitHubAPIURL)
	} else {
		githubLog.Printf("Resolved GitHub API URL: %s", apiURL)
	}

	return strings.TrimSuffix(apiURL, "/")
}

// ResolveGitHubToken returns the token to authenticate GitHub API calls with,
// or an empty string when none is available. GH_TOKEN takes precedence;
// otherwise the gh CLI credential chain is consulted (GITHUB_TOKEN, stored
// gh auth login credentials). The token value itself is never logged.
func ResolveGitHubToken(apiBaseURL string) string {
	if token := os.Getenv("GH_TOKEN"); token != "" {
		githubLog.Print("Using token from GH_TOKEN")
		return token
	}

	host := apiHostname(apiBaseURL)
	token, source := auth.TokenForHost(host)
	if token != "" {
		githubLog.Printf("Using token from %s for host %s", source, host)
	} else {
		githubLog.Printf("No token available for host %s", host)
	}
	return token
}

// apiHostname maps a REST API base URL to the hostname the gh CLI stores
// credentials under. api.github.com credentials live under github.com; GHES
// API URLs (https://ghe.example.com/api/v3) share the instance hostname.
func apiHostname(apiBaseURL string) string {
	parsed, err := url.Parse(apiBaseURL)
	if err != nil || parsed.Hostname() == "" {
		return "github.com"
	}
	host := parsed.Hostname()
	if host == "api.github.com" {
		return "github.com"
	}
	return host
}
