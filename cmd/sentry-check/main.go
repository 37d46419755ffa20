package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	sentry "github.com/crowdstack/go-sentry"
)

// Live smoke test against a real Sentry installation. It exercises the
// read-only endpoints with the given token and reports what decoded.

var (
	authToken = flag.String("auth-token", os.Getenv("SENTRY_AUTH_TOKEN"), "Sentry auth token (or use SENTRY_AUTH_TOKEN env)")
	baseURL   = flag.String("base-url", "", "API root for self-hosted installations (default sentry.io)")
	org       = flag.String("org", "", "Organization slug to check (default: first visible organization)")
	verbose   = flag.Bool("verbose", false, "Verbose output with full JSON responses")
)

type checkResult struct {
	Endpoint   string
	Success    bool
	Error      string
	Duration   time.Duration
	Count      int
	JSONSample string
}

func main() {
	flag.Parse()

	if *authToken == "" {
		log.Fatal("Auth token is required. Use -auth-token flag or SENTRY_AUTH_TOKEN environment variable")
	}

	client, err := sentry.NewWithConfig(&sentry.ClientConfig{
		Token:   *authToken,
		BaseURL: *baseURL,
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx := context.Background()

	fmt.Println("Checking go-sentry against a live API...")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	orgSlug, results := resolveOrganization(ctx, client)

	if orgSlug != "" {
		projectSlug, projectResults := checkProjects(ctx, client, orgSlug)
		results = append(results, projectResults...)

		results = append(results, checkTeams(ctx, client, orgSlug))
		results = append(results, checkIntegrations(ctx, client, orgSlug))

		if projectSlug != "" {
			results = append(results, checkIssues(ctx, client, orgSlug, projectSlug))
			results = append(results, checkStats(ctx, client, orgSlug, projectSlug))
		}
	}

	fmt.Println()
	fmt.Println("Summary")
	fmt.Println(strings.Repeat("=", 60))

	failed := 0
	for _, result := range results {
		status := "ok  "
		if !result.Success {
			status = "FAIL"
			failed++
		}

		fmt.Printf("[%s] %-40s %3d item(s) in %v\n", status, result.Endpoint, result.Count, result.Duration.Round(time.Millisecond))
		if result.Error != "" {
			fmt.Printf("       %s\n", result.Error)
		}
		if *verbose && result.JSONSample != "" {
			fmt.Println(indent(result.JSONSample, "       "))
		}
	}

	fmt.Println(strings.Repeat("=", 60))
	if failed == 0 {
		fmt.Println("All checks passed.")
		return
	}
	fmt.Printf("%d check(s) failed\n", failed)
	os.Exit(1)
}

func resolveOrganization(ctx context.Context, client *sentry.Client) (string, []checkResult) {
	start := time.Now()
	result := checkResult{Endpoint: "ListOrganizations"}

	orgs, _, err := client.ListOrganizations(ctx, nil)
	result.Duration = time.Since(start)

	if err != nil {
		result.Error = err.Error()
		return "", []checkResult{result}
	}

	result.Success = true
	result.Count = len(orgs)
	result.JSONSample = sample(orgs)

	slug := *org
	if slug == "" && len(orgs) > 0 {
		slug = orgs[0].Slug
	}
	if slug == "" {
		result.Error = "no organization visible to this token; pass -org"
		result.Success = false
	} else {
		fmt.Printf("Organization: %s\n\n", slug)
	}

	return slug, []checkResult{result}
}

func checkProjects(ctx context.Context, client *sentry.Client, orgSlug string) (string, []checkResult) {
	start := time.Now()
	result := checkResult{Endpoint: "ListOrganizationProjects"}

	projects, _, err := client.ListOrganizationProjects(ctx, orgSlug, nil)
	result.Duration = time.Since(start)

	if err != nil {
		result.Error = err.Error()
		return "", []checkResult{result}
	}

	result.Success = true
	result.Count = len(projects)
	result.JSONSample = sample(projects)

	projectSlug := ""
	if len(projects) > 0 {
		projectSlug = projects[0].Slug
	}
	return projectSlug, []checkResult{result}
}

func checkTeams(ctx context.Context, client *sentry.Client, orgSlug string) checkResult {
	start := time.Now()
	result := checkResult{Endpoint: "ListTeams"}

	teams, _, err := client.ListTeams(ctx, orgSlug, nil)
	result.Duration = time.Since(start)

	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.Count = len(teams)
	result.JSONSample = sample(teams)
	return result
}

func checkIntegrations(ctx context.Context, client *sentry.Client, orgSlug string) checkResult {
	start := time.Now()
	result := checkResult{Endpoint: "ListOrganizationIntegrations"}

	integrations, _, err := client.ListOrganizationIntegrations(ctx, orgSlug, nil)
	result.Duration = time.Since(start)

	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.Count = len(integrations)
	result.JSONSample = sample(integrations)
	return result
}

func checkIssues(ctx context.Context, client *sentry.Client, orgSlug, projectSlug string) checkResult {
	start := time.Now()
	result := checkResult{Endpoint: "ListProjectIssues (" + projectSlug + ")"}

	issues, _, err := client.ListProjectIssues(ctx, orgSlug, projectSlug, &sentry.IssueListOptions{
		StatsPeriod: "24h",
	})
	result.Duration = time.Since(start)

	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.Count = len(issues)
	result.JSONSample = sample(issues)
	return result
}

func checkStats(ctx context.Context, client *sentry.Client, orgSlug, projectSlug string) checkResult {
	start := time.Now()
	result := checkResult{Endpoint: "ProjectEventCounts (" + projectSlug + ")"}

	counts, err := client.ProjectEventCounts(ctx, orgSlug, projectSlug, &sentry.EventCountOptions{
		Resolution: sentry.EventResolutionHour,
		Since:      time.Now().Add(-24 * time.Hour),
	})
	result.Duration = time.Since(start)

	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.Count = len(counts)
	result.JSONSample = sample(counts)
	return result
}

// sample renders the first element of a list as indented JSON, or "" for
// an empty list.
func sample[T any](items []T) string {
	if len(items) == 0 {
		return ""
	}
	data, err := json.MarshalIndent(items[0], "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
