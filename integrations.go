package sentry

import (
	"context"
	"fmt"
	"iter"
)

// IntegrationListOptions narrow an integration listing.
type IntegrationListOptions struct {
	ListOptions

	// ProviderKey filters to one provider, e.g. "github" or "slack".
	ProviderKey string `url:"provider_key,omitempty"`
}

// ListOrganizationIntegrations retrieves one page of an organization's
// installed integrations.
func (c *Client) ListOrganizationIntegrations(ctx context.Context, organizationSlug string, opts *IntegrationListOptions) ([]Integration, *Cursor, error) {
	q, err := listQuery(opts)
	if err != nil {
		return nil, nil, err
	}

	var integrations []Integration
	next, err := c.get(ctx, fmt.Sprintf("organizations/%s/integrations/", organizationSlug), q, &integrations)
	if err != nil {
		return nil, nil, err
	}
	return integrations, next, nil
}

// OrganizationIntegrations iterates over an organization's installed
// integrations, optionally filtered to one provider (empty means all).
func (c *Client) OrganizationIntegrations(ctx context.Context, organizationSlug, providerKey string) iter.Seq2[Integration, error] {
	return paginate("", func(cursor Cursor) ([]Integration, *Cursor, error) {
		opts := &IntegrationListOptions{
			ListOptions: ListOptions{Cursor: cursor},
			ProviderKey: providerKey,
		}
		return c.ListOrganizationIntegrations(ctx, organizationSlug, opts)
	})
}
