// Package resolver queries the GitHub Actions run API for a caller workflow
// run and resolves which version of a target reusable workflow that run
// referenced.
package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/github/gh-workflow-version/pkg/constants"
	"github.com/github/gh-workflow-version/pkg/logger"
	"github.com/github/gh-workflow-version/pkg/workflowref"
)

var resolveLog = logger.New("resolver:resolver")

// Config is the explicit configuration for a Resolver. All inputs arrive
// pre-validated from the CLI layer; the resolver performs no environment
// lookups of its own.
type Config struct {
	// CallerRepository is the repository of the caller workflow run, in
	// "owner/name" form.
	CallerRepository string
	// CallerRunID is the workflow run ID to inspect.
	CallerRunID int64
	// TargetRepository is the repository of the reusable workflow to
	// resolve, in "owner/name" form.
	TargetRepository string
	// TargetFileName is the reusable workflow file name, without any path.
	TargetFileName string
	// APIBaseURL is the GitHub REST API endpoint, without a trailing slash.
	APIBaseURL string
	// Token is an optional bearer token. It is sent in the Authorization
	// header and never logged or included in error messages.
	Token string
	// HTTPClient optionally overrides the HTTP client, mainly for tests.
	HTTPClient *http.Client
}

// Resolver resolves the referenced version of a reusable workflow from a
// single caller run. It is stateless across calls.
type Resolver struct {
	cfg    Config
	client *http.Client
}

// New creates a Resolver from the given configuration.
func New(cfg Config) *Resolver {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: constants.DefaultHTTPTimeout}
	}
	return &Resolver{cfg: cfg, client: client}
}

// workflowRunResponse is the subset of the run API response we consume.
// Unrecognized fields are ignored by the JSON decoder.
type workflowRunResponse struct {
	ReferencedWorkflows []referencedWorkflow `json:"referenced_workflows"`
}

type referencedWorkflow struct {
	Path string `json:"path"`
	SHA  string `json:"sha"`
}

// Resolve issues the run-metadata request, classifies failures, and filters
// the run's referenced workflows down to the single version of the target
// workflow. Zero matches or more than one distinct match is an error.
func (r *Resolver) Resolve(ctx context.Context) (*workflowref.ReusableWorkflowReference, error) {
	runURL := fmt.Sprintf("%s/repos/%s/actions/runs/%d", r.cfg.APIBaseURL, r.cfg.CallerRepository, r.cfg.CallerRunID)
	resolveLog.Printf("Fetching workflow run metadata: %s", runURL)

	status, body, err := r.get(ctx, runURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workflow run metadata: %w", err)
	}

	if status < 200 || status >= 300 {
		return nil, r.classifyFailure(ctx, status, body)
	}

	var run workflowRunResponse
	if err := json.Unmarshal(body, &run); err != nil {
		return nil, fmt.Errorf("failed to parse workflow run response: %w", err)
	}

	resolveLog.Printf("Run references %d workflows", len(run.ReferencedWorkflows))

	// Matches are collected in a set so duplicate entries from the API
	// collapse into one candidate; only genuinely distinct versions count
	// toward ambiguity.
	matches := make(map[workflowref.ReusableWorkflowReference]struct{})
	for _, referenced := range run.ReferencedWorkflows {
		reference, err := workflowref.Parse(referenced.Path, referenced.SHA)
		if err != nil {
			return nil, fmt.Errorf("malformed referenced workflow entry: %w", err)
		}
		if reference.SameWorkflow(r.cfg.TargetRepository, r.cfg.TargetFileName) {
			resolveLog.Printf("Matched referenced workflow: ref=%s, sha=%s", reference.Ref, reference.CommitID)
			matches[*reference] = struct{}{}
		}
	}

	candidates := make([]workflowref.ReusableWorkflowReference, 0, len(matches))
	for reference := range matches {
		candidates = append(candidates, reference)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Ref != candidates[j].Ref {
			return candidates[i].Ref < candidates[j].Ref
		}
		return candidates[i].CommitID < candidates[j].CommitID
	})

	switch len(candidates) {
	case 0:
		return nil, &NoVersionFoundError{
			Repository: r.cfg.TargetRepository,
			FileName:   r.cfg.TargetFileName,
		}
	case 1:
		return &candidates[0], nil
	default:
		return nil, &AmbiguousVersionError{
			Repository: r.cfg.TargetRepository,
			FileName:   r.cfg.TargetFileName,
			Candidates: candidates,
		}
	}
}

// classifyFailure turns a non-2xx run-metadata response into one of the typed
// errors. A 404 is disambiguated with a second request probing whether the
// caller repository exists at all.
func (r *Resolver) classifyFailure(ctx context.Context, status int, body []byte) error {
	resolveLog.Printf("Run metadata request failed: status=%d", status)

	switch status {
	case http.StatusForbidden:
		return &PermissionError{Repository: r.cfg.CallerRepository}
	case http.StatusNotFound:
		repoURL := fmt.Sprintf("%s/repos/%s", r.cfg.APIBaseURL, r.cfg.CallerRepository)
		resolveLog.Printf("Probing repository existence: %s", repoURL)
		repoStatus, _, err := r.get(ctx, repoURL)
		if err != nil {
			return fmt.Errorf("failed to check repository existence: %w", err)
		}
		if repoStatus == http.StatusNotFound {
			return &RepositoryNotFoundError{
				Repository:    r.cfg.CallerRepository,
				TokenSupplied: r.cfg.Token != "",
			}
		}
		return &RunNotFoundError{
			Repository: r.cfg.CallerRepository,
			RunID:      r.cfg.CallerRunID,
		}
	default:
		return &APIError{StatusCode: status, Body: string(body)}
	}
}

// get issues a GET request with the GitHub REST API headers and returns the
// status code and body. Non-2xx statuses are returned, not treated as errors.
func (r *Resolver) get(ctx context.Context, url string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, err
	}

	req.Header.Set("Accept", constants.GitHubAPIAcceptHeader)
	req.Header.Set("X-GitHub-Api-Version", constants.GitHubAPIVersion)
	if r.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.cfg.Token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, body, nil
}
