package sentry

import (
	"context"
	"fmt"
	"iter"
)

// GetOrganization retrieves an organization by slug.
func (c *Client) GetOrganization(ctx context.Context, organizationSlug string) (*Organization, error) {
	var org Organization
	_, err := c.get(ctx, fmt.Sprintf("organizations/%s/", organizationSlug), nil, &org)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// ListOrganizations retrieves one page of the organizations visible to
// the token. The returned cursor is nil on the last page.
func (c *Client) ListOrganizations(ctx context.Context, opts *ListOptions) ([]Organization, *Cursor, error) {
	q, err := listQuery(opts)
	if err != nil {
		return nil, nil, err
	}

	var orgs []Organization
	next, err := c.get(ctx, "organizations/", q, &orgs)
	if err != nil {
		return nil, nil, err
	}
	return orgs, next, nil
}

// Organizations iterates over all organizations visible to the token,
// fetching pages lazily.
func (c *Client) Organizations(ctx context.Context) iter.Seq2[Organization, error] {
	return paginate("", func(cursor Cursor) ([]Organization, *Cursor, error) {
		return c.ListOrganizations(ctx, &ListOptions{Cursor: cursor})
	})
}

// ListOrganizationProjects retrieves one page of an organization's
// projects.
func (c *Client) ListOrganizationProjects(ctx context.Context, organizationSlug string, opts *ListOptions) ([]Project, *Cursor, error) {
	q, err := listQuery(opts)
	if err != nil {
		return nil, nil, err
	}

	var projects []Project
	next, err := c.get(ctx, fmt.Sprintf("organizations/%s/projects/", organizationSlug), q, &projects)
	if err != nil {
		return nil, nil, err
	}
	return projects, next, nil
}

// OrganizationProjects iterates over all projects of an organization.
func (c *Client) OrganizationProjects(ctx context.Context, organizationSlug string) iter.Seq2[Project, error] {
	return paginate("", func(cursor Cursor) ([]Project, *Cursor, error) {
		return c.ListOrganizationProjects(ctx, organizationSlug, &ListOptions{Cursor: cursor})
	})
}
