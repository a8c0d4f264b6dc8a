package resolver

import (
	"fmt"
	"strings"

	"github.com/github/gh-workflow-version/pkg/workflowref"
)

// PermissionError indicates the run-metadata request was rejected with HTTP
// 403. The invoking credential lacks read access to Actions run metadata.
type PermissionError struct {
	Repository string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("GitHub API call 403 forbidden for %s. Ensure the GitHub job has `permissions: actions: read`\n"+
		"https://docs.github.com/en/actions/security-guides/automatic-token-authentication#modifying-the-permissions-for-the-github_token", e.Repository)
}

// RepositoryNotFoundError indicates the caller repository itself could not be
// found: both the run-metadata request and the repository probe returned 404.
type RepositoryNotFoundError struct {
	Repository string
	// TokenSupplied records whether a token was sent, which changes the
	// advice given to the user.
	TokenSupplied bool
}

func (e *RepositoryNotFoundError) Error() string {
	if e.TokenSupplied {
		return fmt.Sprintf("repository %s not found. Check if the supplied token has correct permissions", e.Repository)
	}
	return fmt.Sprintf("repository %s not found. If the repository is private, supply a token to authenticate to GitHub", e.Repository)
}

// RunNotFoundError indicates the repository exists but has no workflow run
// with the given ID.
type RunNotFoundError struct {
	Repository string
	RunID      int64
}

func (e *RunNotFoundError) Error() string {
	return fmt.Sprintf("workflow run not found in %s. Check if run ID %d is valid", e.Repository, e.RunID)
}

// APIError carries any other non-success GitHub API response.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API returned status %d: %s", e.StatusCode, e.Body)
}

// NoVersionFoundError indicates no referenced workflow in the run matched the
// target repository and file name.
type NoVersionFoundError struct {
	Repository string
	FileName   string
}

func (e *NoVersionFoundError) Error() string {
	return fmt.Sprintf("no reference found for workflow %s in repository %s. Check that the reusable workflow is actually invoked by the caller run", e.FileName, e.Repository)
}

// AmbiguousVersionError indicates the run referenced the target workflow at
// more than one distinct version. Candidates holds every distinct
// (ref, commit) pair found.
type AmbiguousVersionError struct {
	Repository string
	FileName   string
	Candidates []workflowref.ReusableWorkflowReference
}

func (e *AmbiguousVersionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cannot resolve: multiple versions found for workflow %s in repository %s:", e.FileName, e.Repository)
	for _, candidate := range e.Candidates {
		fmt.Fprintf(&b, "\n• %s", candidate.Describe())
	}
	return b.String()
}
