package sentry

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"net/url"

	"github.com/cockroachdb/errors"
)

// IssueListOptions narrow an issue listing.
type IssueListOptions struct {
	ListOptions

	// Query is a Sentry search query, e.g. "is:unresolved release:1.2".
	Query string `url:"query,omitempty"`

	// StatsPeriod selects the timespan for the embedded stats:
	// "24h" or "14d".
	StatsPeriod string `url:"statsPeriod,omitempty"`

	// ShortIDLookup lets Query match issue short IDs like "ACME-42".
	ShortIDLookup bool `url:"shortIdLookup,omitempty"`
}

// UpdateIssueParams are the mutable attributes of an issue. Nil and
// zero-valued fields are left unchanged.
type UpdateIssueParams struct {
	Status IssueStatus `json:"status,omitempty"`

	// AssignedTo is the username or actor ID to assign the issue to.
	AssignedTo   string `json:"assignedTo,omitempty"`
	HasSeen      *bool  `json:"hasSeen,omitempty"`
	IsBookmarked *bool  `json:"isBookmarked,omitempty"`
	IsSubscribed *bool  `json:"isSubscribed,omitempty"`
	IsPublic     *bool  `json:"isPublic,omitempty"`
}

// BulkUpdateResult is the mutation the API applied to a set of issues.
type BulkUpdateResult struct {
	Status        IssueStatus    `json:"status,omitempty"`
	StatusDetails map[string]any `json:"statusDetails,omitempty"`
	IsPublic      *bool          `json:"isPublic,omitempty"`
}

// ListProjectIssues retrieves one page of a project's issues.
func (c *Client) ListProjectIssues(ctx context.Context, organizationSlug, projectSlug string, opts *IssueListOptions) ([]Issue, *Cursor, error) {
	q, err := listQuery(opts)
	if err != nil {
		return nil, nil, err
	}

	var issues []Issue
	next, err := c.get(ctx, fmt.Sprintf("projects/%s/%s/issues/", organizationSlug, projectSlug), q, &issues)
	if err != nil {
		return nil, nil, err
	}
	return issues, next, nil
}

// ProjectIssues iterates over a project's issues, fetching pages lazily.
// The options apply to every page; the cursor advances automatically
// starting from opts.Cursor.
func (c *Client) ProjectIssues(ctx context.Context, organizationSlug, projectSlug string, opts *IssueListOptions) iter.Seq2[Issue, error] {
	var base IssueListOptions
	if opts != nil {
		base = *opts
	}

	return paginate(base.Cursor, func(cursor Cursor) ([]Issue, *Cursor, error) {
		pageOpts := base
		pageOpts.Cursor = cursor
		return c.ListProjectIssues(ctx, organizationSlug, projectSlug, &pageOpts)
	})
}

// GetIssue retrieves an issue by ID.
func (c *Client) GetIssue(ctx context.Context, organizationSlug, issueID string) (*Issue, error) {
	var issue Issue
	_, err := c.get(ctx, fmt.Sprintf("organizations/%s/issues/%s/", organizationSlug, issueID), nil, &issue)
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// UpdateIssue mutates a single issue and returns its updated state.
func (c *Client) UpdateIssue(ctx context.Context, organizationSlug, issueID string, params *UpdateIssueParams) (*Issue, error) {
	if params == nil {
		return nil, errors.New("update params are required")
	}

	var issue Issue
	err := c.put(ctx, fmt.Sprintf("organizations/%s/issues/%s/", organizationSlug, issueID), nil, params, &issue)
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// DeleteIssue schedules an issue for deletion. The API acknowledges with
// 202 Accepted; deletion happens asynchronously.
func (c *Client) DeleteIssue(ctx context.Context, organizationSlug, issueID string) error {
	return c.delete(ctx, fmt.Sprintf("organizations/%s/issues/%s/", organizationSlug, issueID), nil,
		http.StatusAccepted, http.StatusNoContent)
}

// BulkUpdateIssues applies the same mutation to the listed issues of a
// project.
//
// The ids list must be non-empty: the bare endpoint mutates every issue
// matching the default query, and no caller of a bulk helper should
// trip into that by passing an empty slice.
func (c *Client) BulkUpdateIssues(ctx context.Context, organizationSlug, projectSlug string, ids []string, params *UpdateIssueParams) (*BulkUpdateResult, error) {
	if len(ids) == 0 {
		return nil, errors.New("at least one issue id is required")
	}
	if params == nil {
		return nil, errors.New("update params are required")
	}

	var result BulkUpdateResult
	err := c.put(ctx, fmt.Sprintf("projects/%s/%s/issues/", organizationSlug, projectSlug), issueIDQuery(ids), params, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// BulkDeleteIssues schedules the listed issues of a project for
// deletion. The same non-empty ids guard applies as for
// BulkUpdateIssues.
func (c *Client) BulkDeleteIssues(ctx context.Context, organizationSlug, projectSlug string, ids []string) error {
	if len(ids) == 0 {
		return errors.New("at least one issue id is required")
	}

	return c.delete(ctx, fmt.Sprintf("projects/%s/%s/issues/", organizationSlug, projectSlug), issueIDQuery(ids),
		http.StatusAccepted, http.StatusNoContent)
}

// ListIssueEvents retrieves one page of an issue's events.
func (c *Client) ListIssueEvents(ctx context.Context, organizationSlug, issueID string, opts *ListOptions) ([]Event, *Cursor, error) {
	q, err := listQuery(opts)
	if err != nil {
		return nil, nil, err
	}

	var events []Event
	next, err := c.get(ctx, fmt.Sprintf("organizations/%s/issues/%s/events/", organizationSlug, issueID), q, &events)
	if err != nil {
		return nil, nil, err
	}
	return events, next, nil
}

// IssueEvents iterates over all events of an issue.
func (c *Client) IssueEvents(ctx context.Context, organizationSlug, issueID string) iter.Seq2[Event, error] {
	return paginate("", func(cursor Cursor) ([]Event, *Cursor, error) {
		return c.ListIssueEvents(ctx, organizationSlug, issueID, &ListOptions{Cursor: cursor})
	})
}

func issueIDQuery(ids []string) url.Values {
	q := make(url.Values, 1)
	for _, id := range ids {
		q.Add("id", id)
	}
	return q
}
