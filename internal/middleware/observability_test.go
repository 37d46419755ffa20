package middleware

import (
	"testing"
)

func TestNormalizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "organization detail",
			input:    "/api/0/organizations/acme/",
			expected: "/api/0/organizations/:organization/",
		},
		{
			name:     "organization teams",
			input:    "/api/0/organizations/acme/teams/",
			expected: "/api/0/organizations/:organization/teams/",
		},
		{
			name:     "issue events under organization",
			input:    "/api/0/organizations/acme/issues/92751/events/",
			expected: "/api/0/organizations/:organization/issues/:issue/events/",
		},
		{
			name:     "project-scoped issues",
			input:    "/api/0/projects/acme/backend/issues/",
			expected: "/api/0/projects/:organization/:project/issues/",
		},
		{
			name:     "project stats",
			input:    "/api/0/projects/acme/backend/stats/",
			expected: "/api/0/projects/:organization/:project/stats/",
		},
		{
			name:     "team detail",
			input:    "/api/0/teams/acme/platform/",
			expected: "/api/0/teams/:organization/:team/",
		},
		{
			name:     "team projects",
			input:    "/api/0/teams/acme/platform/projects/",
			expected: "/api/0/teams/:organization/:team/projects/",
		},
		{
			name:     "bare projects list untouched",
			input:    "/api/0/projects/",
			expected: "/api/0/projects/",
		},
		{
			name:     "bare organizations list untouched",
			input:    "/api/0/organizations/",
			expected: "/api/0/organizations/",
		},
		{
			name:     "empty path",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := normalizePath(tt.input); got != tt.expected {
				t.Errorf("normalizePath(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func BenchmarkNormalizePath(b *testing.B) {
	path := "/api/0/projects/acme/backend/issues/"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		normalizePath(path)
	}
}
