package sentry

import (
	"context"
	"iter"
)

// API is the full operation surface of the client, for consumers who
// want to mock it in tests.
//
// Example with testify/mock:
//
//	type MockAPI struct {
//	    mock.Mock
//	}
//
//	func (m *MockAPI) GetOrganization(ctx context.Context, slug string) (*sentry.Organization, error) {
//	    args := m.Called(ctx, slug)
//	    return args.Get(0).(*sentry.Organization), args.Error(1)
//	}
type API interface {
	// Organizations

	// GetOrganization retrieves an organization by slug.
	GetOrganization(ctx context.Context, organizationSlug string) (*Organization, error)

	// ListOrganizations retrieves one page of visible organizations.
	ListOrganizations(ctx context.Context, opts *ListOptions) ([]Organization, *Cursor, error)

	// Organizations iterates over all visible organizations.
	Organizations(ctx context.Context) iter.Seq2[Organization, error]

	// ListOrganizationProjects retrieves one page of an organization's projects.
	ListOrganizationProjects(ctx context.Context, organizationSlug string, opts *ListOptions) ([]Project, *Cursor, error)

	// OrganizationProjects iterates over all projects of an organization.
	OrganizationProjects(ctx context.Context, organizationSlug string) iter.Seq2[Project, error]

	// Teams

	// ListTeams retrieves one page of an organization's teams.
	ListTeams(ctx context.Context, organizationSlug string, opts *ListOptions) ([]Team, *Cursor, error)

	// Teams iterates over all teams of an organization.
	Teams(ctx context.Context, organizationSlug string) iter.Seq2[Team, error]

	// CreateTeam creates a team in the organization.
	CreateTeam(ctx context.Context, organizationSlug string, params *CreateTeamParams) (*Team, error)

	// GetTeam retrieves a team by slug.
	GetTeam(ctx context.Context, organizationSlug, teamSlug string) (*Team, error)

	// UpdateTeam updates a team's attributes.
	UpdateTeam(ctx context.Context, organizationSlug, teamSlug string, params *UpdateTeamParams) (*Team, error)

	// DeleteTeam schedules a team for deletion.
	DeleteTeam(ctx context.Context, organizationSlug, teamSlug string) error

	// ListTeamProjects retrieves one page of a team's projects.
	ListTeamProjects(ctx context.Context, organizationSlug, teamSlug string, opts *ListOptions) ([]Project, *Cursor, error)

	// CreateTeamProject creates a new project owned by the team.
	CreateTeamProject(ctx context.Context, organizationSlug, teamSlug string, params *CreateProjectParams) (*Project, error)

	// Projects

	// GetProject retrieves a project by slug.
	GetProject(ctx context.Context, organizationSlug, projectSlug string) (*Project, error)

	// ListProjects retrieves one page of all visible projects.
	ListProjects(ctx context.Context, opts *ListOptions) ([]Project, *Cursor, error)

	// Projects iterates over all visible projects.
	Projects(ctx context.Context) iter.Seq2[Project, error]

	// UpdateProject updates a project's attributes.
	UpdateProject(ctx context.Context, organizationSlug, projectSlug string, params *UpdateProjectParams) (*Project, error)

	// DeleteProject schedules a project for deletion.
	DeleteProject(ctx context.Context, organizationSlug, projectSlug string) error

	// ProjectEventCounts retrieves the event count series for a project.
	ProjectEventCounts(ctx context.Context, organizationSlug, projectSlug string, opts *EventCountOptions) ([]EventCount, error)

	// Issues

	// ListProjectIssues retrieves one page of a project's issues.
	ListProjectIssues(ctx context.Context, organizationSlug, projectSlug string, opts *IssueListOptions) ([]Issue, *Cursor, error)

	// ProjectIssues iterates over a project's issues.
	ProjectIssues(ctx context.Context, organizationSlug, projectSlug string, opts *IssueListOptions) iter.Seq2[Issue, error]

	// GetIssue retrieves an issue by ID.
	GetIssue(ctx context.Context, organizationSlug, issueID string) (*Issue, error)

	// UpdateIssue mutates a single issue.
	UpdateIssue(ctx context.Context, organizationSlug, issueID string, params *UpdateIssueParams) (*Issue, error)

	// DeleteIssue schedules an issue for deletion.
	DeleteIssue(ctx context.Context, organizationSlug, issueID string) error

	// BulkUpdateIssues applies the same mutation to the listed issues.
	BulkUpdateIssues(ctx context.Context, organizationSlug, projectSlug string, ids []string, params *UpdateIssueParams) (*BulkUpdateResult, error)

	// BulkDeleteIssues schedules the listed issues for deletion.
	BulkDeleteIssues(ctx context.Context, organizationSlug, projectSlug string, ids []string) error

	// ListIssueEvents retrieves one page of an issue's events.
	ListIssueEvents(ctx context.Context, organizationSlug, issueID string, opts *ListOptions) ([]Event, *Cursor, error)

	// IssueEvents iterates over all events of an issue.
	IssueEvents(ctx context.Context, organizationSlug, issueID string) iter.Seq2[Event, error]

	// Integrations

	// ListOrganizationIntegrations retrieves one page of installed integrations.
	ListOrganizationIntegrations(ctx context.Context, organizationSlug string, opts *IntegrationListOptions) ([]Integration, *Cursor, error)

	// OrganizationIntegrations iterates over installed integrations.
	OrganizationIntegrations(ctx context.Context, organizationSlug, providerKey string) iter.Seq2[Integration, error]
}
