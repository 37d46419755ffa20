package sentry_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sentry "github.com/crowdstack/go-sentry"
	"github.com/crowdstack/go-sentry/internal/testutil"
)

const projectSuccess = `{
  "id": "2",
  "slug": "pump-station",
  "name": "Pump Station",
  "platform": "javascript",
  "dateCreated": "2018-11-06T21:19:55.121Z",
  "firstEvent": "2018-11-06T21:20:05.121Z",
  "isBookmarked": false,
  "isMember": true,
  "isInternal": false,
  "isPublic": false,
  "hasAccess": true,
  "color": "#3fbf7f",
  "status": "active",
  "features": ["releases"],
  "avatar": {"avatarType": "letter_avatar", "avatarUuid": null},
  "organization": {
    "id": "2",
    "slug": "the-interstellar-jurisdiction",
    "name": "The Interstellar Jurisdiction",
    "dateCreated": "2018-11-06T21:19:55.101Z",
    "isEarlyAdopter": false,
    "require2FA": false,
    "status": {"id": "active", "name": "active"},
    "avatar": {"avatarType": "letter_avatar", "avatarUuid": null}
  }
}`

const projectsPage = `[
  {
    "id": "2",
    "slug": "pump-station",
    "name": "Pump Station",
    "dateCreated": "2018-11-06T21:19:55.121Z",
    "firstEvent": null,
    "isBookmarked": false,
    "isMember": true,
    "isInternal": false,
    "isPublic": false,
    "hasAccess": true,
    "status": "active",
    "avatar": {"avatarType": "letter_avatar", "avatarUuid": null}
  },
  {
    "id": "3",
    "slug": "prime-mover",
    "name": "Prime Mover",
    "dateCreated": "2018-11-06T21:19:58.660Z",
    "firstEvent": null,
    "isBookmarked": false,
    "isMember": true,
    "isInternal": false,
    "isPublic": false,
    "hasAccess": true,
    "status": "active",
    "avatar": {"avatarType": "letter_avatar", "avatarUuid": null}
  }
]`

func TestGetProject(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, "/api/0/projects/the-interstellar-jurisdiction/pump-station/", testToken, projectSuccess, http.StatusOK)
	defer server.Close()

	client := newTestClient(t, server.URL)

	project, err := client.GetProject(context.Background(), "the-interstellar-jurisdiction", "pump-station")
	require.NoError(t, err)

	assert.Equal(t, "pump-station", project.Slug)
	assert.Equal(t, "javascript", project.Platform)
	require.NotNil(t, project.FirstEvent)
	require.NotNil(t, project.Organization)
	assert.Equal(t, "the-interstellar-jurisdiction", project.Organization.Slug)
}

func TestListProjects(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServer(t, "/api/0/projects/", testToken, projectsPage, http.StatusOK)
	defer server.Close()

	client := newTestClient(t, server.URL)

	projects, next, err := client.ListProjects(context.Background(), nil)
	require.NoError(t, err)

	assert.Nil(t, next)
	require.Len(t, projects, 2)
	assert.Equal(t, "pump-station", projects[0].Slug)
	assert.Equal(t, "prime-mover", projects[1].Slug)
}

func TestUpdateProject(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServerWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/0/projects/the-interstellar-jurisdiction/pump-station/", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name": "Plain Proxy", "isBookmarked": true}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(projectSuccess))
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	bookmarked := true
	_, err := client.UpdateProject(context.Background(), "the-interstellar-jurisdiction", "pump-station", &sentry.UpdateProjectParams{
		Name:         "Plain Proxy",
		IsBookmarked: &bookmarked,
	})
	require.NoError(t, err)
}

func TestUpdateProjectRequiresParams(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, "http://localhost:0")

	_, err := client.UpdateProject(context.Background(), "acme", "api", nil)
	require.Error(t, err)
}

func TestDeleteProject(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServerWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/0/projects/the-interstellar-jurisdiction/pump-station/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.DeleteProject(context.Background(), "the-interstellar-jurisdiction", "pump-station")
	require.NoError(t, err)
}

func TestProjectEventCounts(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServerWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/0/projects/the-interstellar-jurisdiction/pump-station/stats/", r.URL.Path)
		assert.Equal(t, "1h", r.URL.Query().Get("resolution"))
		assert.Equal(t, "received", r.URL.Query().Get("stat"))
		assert.Equal(t, "1541538000", r.URL.Query().Get("since"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[[1541541600, 1184], [1541545200, 0], [1541548800, 37]]`))
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	counts, err := client.ProjectEventCounts(context.Background(), "the-interstellar-jurisdiction", "pump-station", &sentry.EventCountOptions{
		Resolution: sentry.EventResolutionHour,
		Stat:       "received",
		Since:      time.Unix(1541538000, 0),
	})
	require.NoError(t, err)

	require.Len(t, counts, 3)
	assert.Equal(t, time.Unix(1541541600, 0).UTC(), counts[0].Time)
	assert.Equal(t, int64(1184), counts[0].Count)
	assert.Equal(t, int64(0), counts[1].Count)
}

func TestProjectEventCountsDefaults(t *testing.T) {
	t.Parallel()

	server := testutil.NewMockServerWithHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/0/projects/the-interstellar-jurisdiction/pump-station/stats/", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	counts, err := client.ProjectEventCounts(context.Background(), "the-interstellar-jurisdiction", "pump-station", nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}
