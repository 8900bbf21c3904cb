package domain

// Story is the normalised, fixed-shape projection of a RawIssue.
// Every optional remote field maps to a concrete default, null or an
// empty slice - the serialised form has no missing keys. A Story is
// immutable once built.
type Story struct {
	// Key is the issue identifier, unique within a fetch batch.
	Key string `json:"key"`

	// Summary is the one-line title.
	Summary string `json:"summary"`

	// Description is plain text, derived from the rich-text body when
	// present, else the legacy string field, else a placeholder.
	Description string `json:"description"`

	// Status is the workflow state; always present.
	Status Status `json:"status"`

	// Priority defaults to {Name: "None", ID: null} when the remote
	// omits it.
	Priority Priority `json:"priority"`

	// Assignee and Reporter are null when unset on the remote. A null
	// here means "field absent", which is distinct from a present but
	// empty account.
	Assignee *Person `json:"assignee"`
	Reporter *Person `json:"reporter"`

	// Created and Updated are ISO-8601 timestamps copied verbatim.
	Created string `json:"created"`
	Updated string `json:"updated"`

	// Components, Labels and FixVersions are never null; absence on the
	// remote becomes an empty slice.
	Components  []string `json:"components"`
	Labels      []string `json:"labels"`
	FixVersions []string `json:"fixVersions"`

	// StoryPoints is null when no estimate is set.
	StoryPoints *float64 `json:"storyPoints"`

	// IssueLinks is never null; absence becomes an empty slice.
	IssueLinks []IssueLink `json:"issueLinks"`

	// URL is derived from the base address and Key, not copied from the
	// remote.
	URL string `json:"url"`
}

// Status is a workflow state name plus its category.
type Status struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Priority is the issue priority. ID is null for the "None" default.
type Priority struct {
	Name string  `json:"name"`
	ID   *string `json:"id"`
}

// Person is the three-field projection of a tracker account.
type Person struct {
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
	AccountID    string `json:"accountId"`
}

// IssueLink is a directional relation to another issue. Direction is the
// inward label when this issue is the inward side, else the outward label.
type IssueLink struct {
	Type        string `json:"type"`
	Direction   string `json:"direction"`
	LinkedIssue string `json:"linkedIssue"`
}
