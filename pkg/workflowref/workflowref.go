// Package workflowref parses the referenced-workflow records returned by the
// GitHub Actions run API into structured reusable workflow references.
package workflowref

import (
	"fmt"
	"regexp"

	"github.com/github/gh-workflow-version/pkg/constants"
	"github.com/github/gh-workflow-version/pkg/logger"
)

var parseLog = logger.New("workflowref:parse")

// workflowPathPattern matches paths of the form
// "<repository>/.github/workflows/<fileName>@<ref>". The repository segment
// is matched non-greedily so the first "/.github/workflows/" marker governs
// the split; the file name contains no slash.
var workflowPathPattern = regexp.MustCompile(`^(?P<repository>.+?)/\.github/workflows/(?P<fileName>[^/]+?)@(?P<ref>.+)$`)

// ReusableWorkflowReference is one reusable workflow referenced by a workflow
// run, pinned to the exact commit it was called with. Values are never
// mutated after construction.
type ReusableWorkflowReference struct {
	// CommitID is the commit SHA the workflow was resolved to.
	CommitID string
	// Repository is the workflow's repository in "owner/name" form.
	Repository string
	// FileName is the workflow file name without any path.
	FileName string
	// Ref is the tag, branch, or SHA the caller pinned the workflow with.
	Ref string
}

// Parse builds a ReusableWorkflowReference from the "path" and "sha" fields
// of a referenced_workflows entry. The path must match
// "<repository>/.github/workflows/<fileName>@<ref>"; anything else means the
// API returned data in an unexpected shape and is reported as an error.
func Parse(path, commitID string) (*ReusableWorkflowReference, error) {
	parseLog.Printf("Parsing referenced workflow path: %s", path)

	if commitID == "" {
		return nil, fmt.Errorf("referenced workflow %q has no commit SHA", path)
	}

	match := workflowPathPattern.FindStringSubmatch(path)
	if match == nil {
		parseLog.Printf("Path did not match expected shape: %s", path)
		return nil, fmt.Errorf("referenced workflow path %q does not match '<repository>/%s/<file>@<ref>'", path, constants.WorkflowDir)
	}

	return &ReusableWorkflowReference{
		CommitID:   commitID,
		Repository: match[workflowPathPattern.SubexpIndex("repository")],
		FileName:   match[workflowPathPattern.SubexpIndex("fileName")],
		Ref:        match[workflowPathPattern.SubexpIndex("ref")],
	}, nil
}

// SameWorkflow reports whether the reference points at the given workflow,
// regardless of version. Two references to the same repository and file name
// are versions of the same workflow; Ref and CommitID differentiate them.
func (r *ReusableWorkflowReference) SameWorkflow(repository, fileName string) bool {
	return r.Repository == repository && r.FileName == fileName
}

// Describe returns the "<ref> (<sha>)" form used when listing candidate
// versions to the user.
func (r *ReusableWorkflowReference) Describe() string {
	return fmt.Sprintf("%s (%s)", r.Ref, r.CommitID)
}
