//go:build !integration

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAPIBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		envURL   string
		expected string
	}{
		{
			name:     "explicit value wins",
			explicit: "https://github.example.com/api/v3",
			envURL:   "https://env.example.com",
			expected: "https://github.example.com/api/v3",
		},
		{
			name:     "trailing slash stripped",
			explicit: "https://api.github.com/",
			expected: "https://api.github.com",
		},
		{
			name:     "falls back to GITHUB_API_URL",
			envURL:   "https://github.example.com/api/v3",
			expected: "https://github.example.com/api/v3",
		},
		{
			name:     "defaults to api.github.com",
			expected: "https://api.github.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GITHUB_API_URL", tt.envURL)
			assert.Equal(t, tt.expected, ResolveAPIBaseURL(tt.explicit))
		})
	}
}

func TestAPIHostname(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{name: "github.com API", url: "https://api.github.com", expected: "github.com"},
		{name: "GHES API", url: "https://github.example.com/api/v3", expected: "github.example.com"},
		{name: "unparseable falls back", url: "://not-a-url", expected: "github.com"},
		{name: "empty falls back", url: "", expected: "github.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, apiHostname(tt.url))
		})
	}
}

func TestResolveGitHubTokenPrefersGHToken(t *testing.T) {
	t.Setenv("GH_TOKEN", "ghp_fromenv")
	t.Setenv("GITHUB_TOKEN", "ghp_other")

	assert.Equal(t, "ghp_fromenv", ResolveGitHubToken("https://api.github.com"))
}
