package sentry

import (
	"context"
	"fmt"
	"iter"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
)

// UpdateProjectParams are the mutable attributes of a project.
// Zero-valued fields are left unchanged.
type UpdateProjectParams struct {
	Name         string         `json:"name,omitempty"`
	Slug         string         `json:"slug,omitempty"`
	Platform     string         `json:"platform,omitempty"`
	IsBookmarked *bool          `json:"isBookmarked,omitempty"`
	Options      map[string]any `json:"options,omitempty"`
}

// EventCountOptions narrow the project stats query. Since and Until are
// sent as Unix timestamps; zero values are omitted.
type EventCountOptions struct {
	// Resolution aggregates counts into 10s, 1h, or 1d buckets.
	Resolution EventResolution `url:"resolution,omitempty"`
	// Stat selects the counter: "received", "rejected", or "blacklisted".
	Stat  string    `url:"stat,omitempty"`
	Since time.Time `url:"since,omitempty,unix"`
	Until time.Time `url:"until,omitempty,unix"`
}

// GetProject retrieves a project by organization and project slug.
func (c *Client) GetProject(ctx context.Context, organizationSlug, projectSlug string) (*Project, error) {
	var project Project
	_, err := c.get(ctx, fmt.Sprintf("projects/%s/%s/", organizationSlug, projectSlug), nil, &project)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ListProjects retrieves one page of the projects visible to the token,
// across organizations.
func (c *Client) ListProjects(ctx context.Context, opts *ListOptions) ([]Project, *Cursor, error) {
	q, err := listQuery(opts)
	if err != nil {
		return nil, nil, err
	}

	var projects []Project
	next, err := c.get(ctx, "projects/", q, &projects)
	if err != nil {
		return nil, nil, err
	}
	return projects, next, nil
}

// Projects iterates over all projects visible to the token.
func (c *Client) Projects(ctx context.Context) iter.Seq2[Project, error] {
	return paginate("", func(cursor Cursor) ([]Project, *Cursor, error) {
		return c.ListProjects(ctx, &ListOptions{Cursor: cursor})
	})
}

// UpdateProject updates a project's attributes and returns the updated
// project.
func (c *Client) UpdateProject(ctx context.Context, organizationSlug, projectSlug string, params *UpdateProjectParams) (*Project, error) {
	if params == nil {
		return nil, errors.New("update params are required")
	}

	var project Project
	err := c.put(ctx, fmt.Sprintf("projects/%s/%s/", organizationSlug, projectSlug), nil, params, &project)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject schedules a project for deletion.
func (c *Client) DeleteProject(ctx context.Context, organizationSlug, projectSlug string) error {
	return c.delete(ctx, fmt.Sprintf("projects/%s/%s/", organizationSlug, projectSlug), nil, http.StatusNoContent)
}

// ProjectEventCounts retrieves the event count series for a project.
// Pass options to pick the aggregation resolution, counter, and time
// range; nil means the API defaults.
func (c *Client) ProjectEventCounts(ctx context.Context, organizationSlug, projectSlug string, opts *EventCountOptions) ([]EventCount, error) {
	q, err := listQuery(opts)
	if err != nil {
		return nil, err
	}

	var counts []EventCount
	_, err = c.get(ctx, fmt.Sprintf("projects/%s/%s/stats/", organizationSlug, projectSlug), q, &counts)
	if err != nil {
		return nil, err
	}
	return counts, nil
}
