package sentry

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
)

// Avatar describes the avatar attached to organizations, teams, and
// projects.
type Avatar struct {
	AvatarType string  `json:"avatarType"`
	AvatarUUID *string `json:"avatarUuid"`
}

// OrganizationStatus is the lifecycle state of an organization.
type OrganizationStatus struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Organization is a Sentry organization.
type Organization struct {
	ID             string             `json:"id"`
	Slug           string             `json:"slug"`
	Name           string             `json:"name"`
	DateCreated    time.Time          `json:"dateCreated"`
	IsEarlyAdopter bool               `json:"isEarlyAdopter"`
	Require2FA     bool               `json:"require2FA"`
	Status         OrganizationStatus `json:"status"`
	Avatar         Avatar             `json:"avatar"`
	Features       []string           `json:"features,omitempty"`
}

// Team is a Sentry team within an organization.
type Team struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	DateCreated time.Time `json:"dateCreated"`
	IsMember    bool      `json:"isMember"`
	HasAccess   bool      `json:"hasAccess"`
	IsPending   bool      `json:"isPending"`
	MemberCount int       `json:"memberCount"`
	Avatar      Avatar    `json:"avatar"`
}

// Project is a Sentry project. Organization is populated by the project
// detail endpoint and by list endpoints that embed the owning
// organization.
type Project struct {
	ID           string        `json:"id"`
	Slug         string        `json:"slug"`
	Name         string        `json:"name"`
	Platform     string        `json:"platform,omitempty"`
	DateCreated  time.Time     `json:"dateCreated"`
	FirstEvent   *time.Time    `json:"firstEvent"`
	IsBookmarked bool          `json:"isBookmarked"`
	IsMember     bool          `json:"isMember"`
	IsInternal   bool          `json:"isInternal"`
	IsPublic     bool          `json:"isPublic"`
	HasAccess    bool          `json:"hasAccess"`
	Color        string        `json:"color,omitempty"`
	Status       string        `json:"status,omitempty"`
	Features     []string      `json:"features,omitempty"`
	Avatar       Avatar        `json:"avatar"`
	Organization *Organization `json:"organization,omitempty"`
}

// IssueStatus is the triage state of an issue. Values are fixed by the
// issue endpoints.
type IssueStatus string

const (
	IssueStatusResolved              IssueStatus = "resolved"
	IssueStatusResolvedInNextRelease IssueStatus = "resolvedInNextRelease"
	IssueStatusUnresolved            IssueStatus = "unresolved"
	IssueStatusIgnored               IssueStatus = "ignored"
)

// Actor is a user or team reference, as found in issue assignments.
type Actor struct {
	Type  string `json:"type,omitempty"`
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// IssueProject is the abbreviated project record embedded in issues.
type IssueProject struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Issue is a Sentry issue: a group of similar events.
//
// Count is a string because the API serializes it as one.
type Issue struct {
	ID            string         `json:"id"`
	ShortID       string         `json:"shortId"`
	Title         string         `json:"title"`
	Culprit       string         `json:"culprit,omitempty"`
	Permalink     string         `json:"permalink"`
	Logger        *string        `json:"logger"`
	Level         string         `json:"level"`
	Status        IssueStatus    `json:"status"`
	StatusDetails map[string]any `json:"statusDetails,omitempty"`
	IsPublic      bool           `json:"isPublic"`
	Platform      string         `json:"platform,omitempty"`
	Project       IssueProject   `json:"project"`
	Type          string         `json:"type,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	NumComments   int            `json:"numComments"`
	AssignedTo    *Actor         `json:"assignedTo"`
	IsBookmarked  bool           `json:"isBookmarked"`
	IsSubscribed  bool           `json:"isSubscribed"`
	HasSeen       bool           `json:"hasSeen"`
	Annotations   []string       `json:"annotations,omitempty"`
	Count         string         `json:"count"`
	UserCount     int            `json:"userCount"`
	FirstSeen     time.Time      `json:"firstSeen"`
	LastSeen      time.Time      `json:"lastSeen"`
}

// EventTag is a single key-value tag on an event.
type EventTag struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// EventUser is the user context attached to an event.
type EventUser struct {
	ID        string `json:"id,omitempty"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	IPAddress string `json:"ipAddress,omitempty"`
}

// Event is a single error event within an issue. Deeply nested payload
// sections (entries, contexts) are kept as raw JSON; decode them as
// needed.
type Event struct {
	ID           string                     `json:"id"`
	EventID      string                     `json:"eventID"`
	GroupID      string                     `json:"groupID,omitempty"`
	Title        string                     `json:"title"`
	Message      string                     `json:"message,omitempty"`
	Culprit      string                     `json:"culprit,omitempty"`
	Platform     string                     `json:"platform,omitempty"`
	Type         string                     `json:"type,omitempty"`
	DateCreated  time.Time                  `json:"dateCreated"`
	DateReceived *time.Time                 `json:"dateReceived,omitempty"`
	Tags         []EventTag                 `json:"tags,omitempty"`
	User         *EventUser                 `json:"user,omitempty"`
	Size         int                        `json:"size,omitempty"`
	Fingerprints []string                   `json:"fingerprints,omitempty"`
	Contexts     map[string]json.RawMessage `json:"contexts,omitempty"`
	Entries      json.RawMessage            `json:"entries,omitempty"`
}

// TagMap returns the event tags as a map. Later duplicates of a key win,
// matching the API's ordering.
func (e *Event) TagMap() map[string]string {
	tags := make(map[string]string, len(e.Tags))
	for _, tag := range e.Tags {
		tags[tag.Key] = tag.Value
	}
	return tags
}

// IntegrationProvider describes the provider behind an integration
// (GitHub, Slack, Jira, ...).
type IntegrationProvider struct {
	Key        string   `json:"key"`
	Slug       string   `json:"slug"`
	Name       string   `json:"name"`
	CanAdd     bool     `json:"canAdd"`
	CanDisable bool     `json:"canDisable"`
	Features   []string `json:"features,omitempty"`
}

// Integration is an installed organization integration.
type Integration struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Icon        string              `json:"icon,omitempty"`
	DomainName  string              `json:"domainName,omitempty"`
	AccountType string              `json:"accountType,omitempty"`
	Status      string              `json:"status"`
	Provider    IntegrationProvider `json:"provider"`
}

// EventResolution is the aggregation window for project event counts.
// Allowed values are fixed by the stats endpoint.
type EventResolution string

const (
	EventResolution10s  EventResolution = "10s"
	EventResolutionHour EventResolution = "1h"
	EventResolutionDay  EventResolution = "1d"
)

// EventCount is one bucket of the project stats series. The API encodes
// each bucket as a [timestamp, count] pair.
type EventCount struct {
	Time  time.Time
	Count int64
}

// UnmarshalJSON decodes the [timestamp, count] pair form.
func (ec *EventCount) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return errors.Wrap(err, "event count must be a [timestamp, count] pair")
	}

	ec.Time = time.Unix(int64(pair[0]), 0).UTC()
	ec.Count = int64(pair[1])
	return nil
}

// MarshalJSON encodes back to the [timestamp, count] pair form.
func (ec EventCount) MarshalJSON() ([]byte, error) {
	payload, err := json.Marshal([2]int64{ec.Time.Unix(), ec.Count})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode event count")
	}
	return payload, nil
}
