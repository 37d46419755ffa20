// Package sentry provides a Go client for the Sentry Web API (api/0).
//
// The client covers organizations, teams, projects, issues, events, and
// integrations, mapping each operation onto the corresponding REST
// endpoint and decoding responses into typed models.
//
// # Creating a client
//
//	client, err := sentry.New(os.Getenv("SENTRY_TOKEN"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	org, err := client.GetOrganization(context.Background(), "acme")
//
// Authentication uses a Sentry auth token sent as a bearer header. For
// rotating credentials, pass an oauth2.TokenSource via NewWithConfig
// instead of a static token.
//
// # Pagination
//
// Sentry paginates list endpoints with cursors carried in the Link
// response header. Page-level methods return the next cursor alongside
// the items:
//
//	projects, next, err := client.ListProjects(ctx, nil)
//	for next != nil {
//	    var more []sentry.Project
//	    more, next, err = client.ListProjects(ctx, &sentry.ListOptions{Cursor: *next})
//	    ...
//	}
//
// Every list operation also has an iterator form that fetches pages
// lazily:
//
//	for project, err := range client.Projects(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(project.Slug)
//	}
//
// # Retries and rate limiting
//
// The transport retries 5xx responses and 429s (honoring Retry-After)
// with exponential backoff, and paces requests through a client-side
// token bucket. Both are configurable through ClientConfig.
//
// # Errors
//
// Non-2xx responses surface as *APIError carrying the HTTP status code
// and the detail message from the response body:
//
//	_, err := client.GetProject(ctx, "acme", "nope")
//	if apiErr, ok := sentry.AsAPIError(err); ok && apiErr.NotFound() {
//	    // handle missing project
//	}
package sentry
