package sentry

import (
	"context"
	"fmt"
	"iter"
	"net/http"

	"github.com/cockroachdb/errors"
)

// CreateTeamParams are the attributes for a new team. At least one of
// Name and Slug is required; the API derives the other.
type CreateTeamParams struct {
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// UpdateTeamParams are the mutable attributes of a team. Zero-valued
// fields are left unchanged.
type UpdateTeamParams struct {
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// CreateProjectParams are the attributes for a new project created under
// a team.
type CreateProjectParams struct {
	Name     string `json:"name,omitempty"`
	Slug     string `json:"slug,omitempty"`
	Platform string `json:"platform,omitempty"`
}

// ListTeams retrieves one page of an organization's teams.
func (c *Client) ListTeams(ctx context.Context, organizationSlug string, opts *ListOptions) ([]Team, *Cursor, error) {
	q, err := listQuery(opts)
	if err != nil {
		return nil, nil, err
	}

	var teams []Team
	next, err := c.get(ctx, fmt.Sprintf("organizations/%s/teams/", organizationSlug), q, &teams)
	if err != nil {
		return nil, nil, err
	}
	return teams, next, nil
}

// Teams iterates over all teams of an organization.
func (c *Client) Teams(ctx context.Context, organizationSlug string) iter.Seq2[Team, error] {
	return paginate("", func(cursor Cursor) ([]Team, *Cursor, error) {
		return c.ListTeams(ctx, organizationSlug, &ListOptions{Cursor: cursor})
	})
}

// CreateTeam creates a team in the organization.
func (c *Client) CreateTeam(ctx context.Context, organizationSlug string, params *CreateTeamParams) (*Team, error) {
	if params == nil || (params.Name == "" && params.Slug == "") {
		return nil, errors.New("team name or slug is required")
	}

	var team Team
	err := c.post(ctx, fmt.Sprintf("organizations/%s/teams/", organizationSlug), params, &team, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetTeam retrieves a team by organization and team slug.
func (c *Client) GetTeam(ctx context.Context, organizationSlug, teamSlug string) (*Team, error) {
	var team Team
	_, err := c.get(ctx, fmt.Sprintf("teams/%s/%s/", organizationSlug, teamSlug), nil, &team)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// UpdateTeam updates a team's attributes and returns the updated team.
// Note that changing the slug invalidates the slug used to address it.
func (c *Client) UpdateTeam(ctx context.Context, organizationSlug, teamSlug string, params *UpdateTeamParams) (*Team, error) {
	if params == nil {
		return nil, errors.New("update params are required")
	}

	var team Team
	err := c.put(ctx, fmt.Sprintf("teams/%s/%s/", organizationSlug, teamSlug), nil, params, &team)
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// DeleteTeam schedules a team for deletion.
func (c *Client) DeleteTeam(ctx context.Context, organizationSlug, teamSlug string) error {
	return c.delete(ctx, fmt.Sprintf("teams/%s/%s/", organizationSlug, teamSlug), nil, http.StatusNoContent)
}

// ListTeamProjects retrieves one page of a team's projects.
func (c *Client) ListTeamProjects(ctx context.Context, organizationSlug, teamSlug string, opts *ListOptions) ([]Project, *Cursor, error) {
	q, err := listQuery(opts)
	if err != nil {
		return nil, nil, err
	}

	var projects []Project
	next, err := c.get(ctx, fmt.Sprintf("teams/%s/%s/projects/", organizationSlug, teamSlug), q, &projects)
	if err != nil {
		return nil, nil, err
	}
	return projects, next, nil
}

// CreateTeamProject creates a new project owned by the team.
func (c *Client) CreateTeamProject(ctx context.Context, organizationSlug, teamSlug string, params *CreateProjectParams) (*Project, error) {
	if params == nil || (params.Name == "" && params.Slug == "") {
		return nil, errors.New("project name or slug is required")
	}

	var project Project
	err := c.post(ctx, fmt.Sprintf("teams/%s/%s/projects/", organizationSlug, teamSlug), params, &project, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &project, nil
}
