package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/github/gh-workflow-version/pkg/logger"
)

var validatorsLog = logger.New("cli:validators")

// repositorySlugRegex validates "owner/name" repository identifiers.
var repositorySlugRegex = regexp.MustCompile(`^[a-zA-Z0-9-]+/[a-zA-Z0-9._-]+$`)

// ValidateRepositorySlug checks that the provided value is a GitHub
// repository identifier in "owner/name" form.
func ValidateRepositorySlug(s string) error {
	validatorsLog.Printf("Validating repository slug: %s", s)
	if s == "" {
		return errors.New("repository cannot be empty")
	}
	if !repositorySlugRegex.MatchString(s) {
		validatorsLog.Printf("Repository slug validation failed: %s", s)
		return fmt.Errorf("'%s' is not a valid GitHub repository name (expected owner/name)", s)
	}
	return nil
}

// ValidateWorkflowFileName checks that the provided value is a bare workflow
// file name without any path component.
func ValidateWorkflowFileName(s string) error {
	validatorsLog.Printf("Validating workflow file name: %s", s)
	if s == "" {
		return errors.New("workflow file name cannot be empty")
	}
	if strings.Contains(s, "/") {
		return fmt.Errorf("'%s' must be a workflow file name without a path", s)
	}
	return nil
}

// ParseRunID parses a workflow run ID argument into a positive integer.
func ParseRunID(s string) (int64, error) {
	runID, err := strconv.ParseInt(s, 10, 64)
	if err != nil || runID <= 0 {
		validatorsLog.Printf("Run ID validation failed: %s", s)
		return 0, fmt.Errorf("'%s' is not a valid workflow run ID", s)
	}
	return runID, nil
}
