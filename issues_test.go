package sentry_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sentry "github.com/crowdstack/go-sentry"
	"github.com/crowdstack/go-sentry/internal/testutil"
)

const issueSuccess = `{
  "id": "1",
  "shortId": "PUMP-STATION-1",
  "title": "TypeError: Cannot read property 'length' of undefined",
  "culprit": "poll(../../sentry/scripts/views.js)",
  "permalink": "https://sentry.io/the-interstellar-jurisdiction/pump-station/issues/1/",
  "logger": null,
  "level": "error",
  "status": "unresolved",
  "statusDetails": {},
  "isPublic": false,
  "platform": "javascript",
  "project": {"id": "2", "slug": "pump-station", "name": "Pump Station"},
  "type": "error",
  "numComments": 0,
  "assignedTo": null,
  "isBookmarked": false,
  "isSubscribed": true,
  "hasSeen": false,
  "count": "1",
  "userCount": 0,
  "firstSeen": "2018-11-06T21:19:55.000Z",
  "lastSeen": "2018-11-06T21:19:55.000Z"
}`

func issuesPage(ids ...int) string {
	items := ""
	for i, id := range ids {
		if i > 0 {
			items += ","
		}
		items += fmt.Sprintf(`{
  "id": "%d",
  "shortId": "PUMP-STATION-%d",
  "title": "Issue %d",
  "permalink": "https://sentry.io/the-interstellar-jurisdiction/pump-station/issues/%d/",
  "logger": null,
  "level": "error",
  "status": "unresolved",
  "isPublic": false,
  "project": {"id": "2", "slug": "pump-station", "name": "Pump Station"},
  "numComments": 0,
  "assignedTo": null,
  "isBookmarked": false,
  "isSubscribed": true,
  "hasSeen": false,
  "count": "1",
  "userCount": 0,
  "firstSeen": "2018-11-06T21:19:55.000Z",
  "lastSeen": "2018-11-06T21:19:55.000Z"
}`, id, id, id, id)
	}
	return "[" + items + "]"
}

func TestListProjectIssues(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServerWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/0/projects/the-interstellar-jurisdiction/pump-station/issues/", r.URL.Path)
		assert.Equal(t, "is:unresolved", r.URL.Query().Get("query"))
		assert.Equal(t, "24h", r.URL.Query().Get("statsPeriod"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(issuesPage(1, 2)))
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	issues, next, err := client.ListProjectIssues(context.Background(), "the-interstellar-jurisdiction", "pump-station", &sentry.IssueListOptions{
		Query:       "is:unresolved",
		StatsPeriod: "24h",
	})
	require.NoError(t, err)

	assert.Nil(t, next)
	require.Len(t, issues, 2)
	assert.Equal(t, "PUMP-STATION-1", issues[0].ShortID)
	assert.Equal(t, sentry.IssueStatusUnresolved, issues[0].Status)
}

func TestProjectIssuesIterator(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServerSequence(t, []testutil.Response{
		{
			Body:       issuesPage(1, 2),
			StatusCode: http.StatusOK,
			Header: http.Header{
				"Link": []string{`<https://sentry.io/api/0/projects/a/b/issues/?cursor=0:0:1>; rel="previous"; results="false", <https://sentry.io/api/0/projects/a/b/issues/?cursor=0:100:0>; rel="next"; results="true"; cursor="0:100:0"`},
			},
		},
		{
			Body:       issuesPage(3),
			StatusCode: http.StatusOK,
			Header: http.Header{
				"Link": []string{`<https://sentry.io/api/0/projects/a/b/issues/?cursor=0:200:0>; rel="next"; results="false"; cursor="0:200:0"`},
			},
		},
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	var ids []string
	for issue, err := range client.ProjectIssues(context.Background(), "the-interstellar-jurisdiction", "pump-station", nil) {
		require.NoError(t, err)
		ids = append(ids, issue.ID)
	}

	assert.Equal(t, []string{"1", "2", "3"}, ids)
}

func TestGetIssue(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, "/api/0/organizations/the-interstellar-jurisdiction/issues/1/", testToken, issueSuccess, http.StatusOK)
	defer server.Close()

	client := newTestClient(t, server.URL)

	issue, err := client.GetIssue(context.Background(), "the-interstellar-jurisdiction", "1")
	require.NoError(t, err)

	assert.Equal(t, "PUMP-STATION-1", issue.ShortID)
	assert.Equal(t, "pump-station", issue.Project.Slug)
	assert.Nil(t, issue.Logger)
	assert.Nil(t, issue.AssignedTo)
	assert.Equal(t, "1", issue.Count)
}

func TestUpdateIssue(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServerWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/0/organizations/the-interstellar-jurisdiction/issues/1/", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"status": "resolved", "assignedTo": "jane"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(issueSuccess))
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.UpdateIssue(context.Background(), "the-interstellar-jurisdiction", "1", &sentry.UpdateIssueParams{
		Status:     sentry.IssueStatusResolved,
		AssignedTo: "jane",
	})
	require.NoError(t, err)
}

func TestDeleteIssue(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServerWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/0/organizations/the-interstellar-jurisdiction/issues/1/", r.URL.Path)
		w.WriteHeader(http.StatusAccepted)
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.DeleteIssue(context.Background(), "the-interstellar-jurisdiction", "1")
	require.NoError(t, err)
}

func TestBulkUpdateIssues(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServerWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/0/projects/the-interstellar-jurisdiction/pump-station/issues/", r.URL.Path)
		assert.Equal(t, []string{"1", "2"}, r.URL.Query()["id"])

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"status": "resolved"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "resolved", "statusDetails": {}}`))
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	result, err := client.BulkUpdateIssues(context.Background(), "the-interstellar-jurisdiction", "pump-station", []string{"1", "2"}, &sentry.UpdateIssueParams{
		Status: sentry.IssueStatusResolved,
	})
	require.NoError(t, err)
	assert.Equal(t, sentry.IssueStatusResolved, result.Status)
}

func TestBulkUpdateIssuesRequiresIDs(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://localhost:0")

	_, err := client.BulkUpdateIssues(context.Background(), "acme", "api", nil, &sentry.UpdateIssueParams{
		Status: sentry.IssueStatusResolved,
	})
	require.Error(t, err)
}

func TestBulkDeleteIssues(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServerWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/0/projects/the-interstellar-jurisdiction/pump-station/issues/", r.URL.Path)
		assert.Equal(t, []string{"3"}, r.URL.Query()["id"])
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.BulkDeleteIssues(context.Background(), "the-interstellar-jurisdiction", "pump-station", []string{"3"})
	require.NoError(t, err)
}

func TestBulkDeleteIssuesRequiresIDs(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://localhost:0")

	err := client.BulkDeleteIssues(context.Background(), "acme", "api", nil)
	require.Error(t, err)
}

func TestListIssueEvents(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, "/api/0/organizations/the-interstellar-jurisdiction/issues/1/events/", testToken, `[
  {
    "id": "100",
    "eventID": "9999aaafcc8149b3bc7a9ba86bc20d22",
    "groupID": "1",
    "title": "TypeError: Cannot read property 'length' of undefined",
    "message": "",
    "platform": "javascript",
    "dateCreated": "2018-11-06T21:19:55.000Z",
    "tags": [
      {"key": "browser", "value": "Chrome 70.0"},
      {"key": "release", "value": "1.2.0"}
    ],
    "user": {"id": "1", "username": "jane", "email": "jane@example.com"}
  }
]`, http.StatusOK)
	defer server.Close()

	client := newTestClient(t, server.URL)

	events, next, err := client.ListIssueEvents(context.Background(), "the-interstellar-jurisdiction", "1", nil)
	require.NoError(t, err)

	assert.Nil(t, next)
	require.Len(t, events, 1)
	assert.Equal(t, "9999aaafcc8149b3bc7a9ba86bc20d22", events[0].EventID)
	assert.Equal(t, "Chrome 70.0", events[0].TagMap()["browser"])
	require.NotNil(t, events[0].User)
	assert.Equal(t, "jane", events[0].User.Username)
}
