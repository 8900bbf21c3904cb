package domain

import "encoding/json"

// RawIssue is one issue exactly as the tracker's search API returns it.
// Only key, summary and status are guaranteed by the remote; every other
// field may be absent. RawIssue is consumed read-only and lives only for
// the duration of one normalise call.
type RawIssue struct {
	// Key is the issue identifier (e.g. "PROJ-42").
	Key string `json:"key"`

	// Fields holds the requested field projection.
	Fields RawFields `json:"fields"`
}

// RawFields is the field projection requested per search.
// Pointer and slice fields are nil when the remote omits them.
type RawFields struct {
	Summary string `json:"summary"`

	// Description is either a rich-text (ADF) document or a legacy plain
	// string, depending on the instance. Kept raw and decoded during
	// normalisation.
	Description json.RawMessage `json:"description"`

	Status   RawStatus    `json:"status"`
	Priority *RawPriority `json:"priority"`
	Assignee *RawUser     `json:"assignee"`
	Reporter *RawUser     `json:"reporter"`

	// Created and Updated are ISO-8601 timestamps.
	Created string `json:"created"`
	Updated string `json:"updated"`

	Components  []RawNamed `json:"components"`
	Labels      []string   `json:"labels"`
	FixVersions []RawNamed `json:"fixVersions"`

	// StoryPoints lives in the instance's estimate custom field.
	StoryPoints *float64 `json:"customfield_10016"`

	IssueLinks []RawIssueLink `json:"issuelinks"`
}

// RawStatus is the issue workflow state. The remote guarantees its presence.
type RawStatus struct {
	Name           string            `json:"name"`
	StatusCategory RawStatusCategory `json:"statusCategory"`
}

// RawStatusCategory groups statuses (e.g. "To Do", "In Progress", "Done").
type RawStatusCategory struct {
	Name string `json:"name"`
}

// RawPriority is the issue priority as named on the remote instance.
type RawPriority struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// RawUser is a tracker account reference (assignee, reporter).
type RawUser struct {
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
	AccountID    string `json:"accountId"`
}

// RawNamed is any remote object of which only the name matters
// (components, fix versions).
type RawNamed struct {
	Name string `json:"name"`
}

// RawIssueLink relates two issues. Exactly one of InwardIssue or
// OutwardIssue is set, depending on which side this issue is on.
type RawIssueLink struct {
	Type         RawLinkType     `json:"type"`
	InwardIssue  *RawLinkedIssue `json:"inwardIssue"`
	OutwardIssue *RawLinkedIssue `json:"outwardIssue"`
}

// RawLinkType names a link relation and its two directional labels.
type RawLinkType struct {
	Name    string `json:"name"`
	Inward  string `json:"inward"`
	Outward string `json:"outward"`
}

// RawLinkedIssue is the far side of an issue link.
type RawLinkedIssue struct {
	Key string `json:"key"`
}

// SearchResult is the body of a search response: the overall match count
// and the returned page of issues.
type SearchResult struct {
	Total  int        `json:"total"`
	Issues []RawIssue `json:"issues"`
}

// Truncated reports whether more issues matched than the page contains.
func (r *SearchResult) Truncated() bool {
	return r.Total > len(r.Issues)
}
