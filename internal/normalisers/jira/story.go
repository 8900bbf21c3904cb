package jira

import (
	"strings"

	"github.com/clearlake-labs/storysync-cli/internal/core/domain"
	"github.com/clearlake-labs/storysync-cli/internal/core/ports/driven"
)

// defaultPriorityName is used when the remote omits the priority field.
const defaultPriorityName = "None"

// Ensure StoryNormaliser implements the interface.
var _ driven.StoryNormaliser = (*StoryNormaliser)(nil)

// StoryNormaliser maps raw tracker issues to Stories. The base URL is
// only used to derive each story's browse URL.
type StoryNormaliser struct {
	baseURL string
}

// New creates a story normaliser for the instance at baseURL.
func New(baseURL string) *StoryNormaliser {
	return &StoryNormaliser{baseURL: strings.TrimRight(baseURL, "/")}
}

// Normalise converts one raw issue to a Story. It never fails: every
// optional field maps to a concrete default, nil or an empty slice.
func (n *StoryNormaliser) Normalise(raw domain.RawIssue) domain.Story {
	f := raw.Fields

	return domain.Story{
		Key:         raw.Key,
		Summary:     f.Summary,
		Description: DescriptionText(f.Description),
		Status: domain.Status{
			Name:     f.Status.Name,
			Category: f.Status.StatusCategory.Name,
		},
		Priority:    normalisePriority(f.Priority),
		Assignee:    normalisePerson(f.Assignee),
		Reporter:    normalisePerson(f.Reporter),
		Created:     f.Created,
		Updated:     f.Updated,
		Components:  names(f.Components),
		Labels:      labels(f.Labels),
		FixVersions: names(f.FixVersions),
		StoryPoints: f.StoryPoints,
		IssueLinks:  links(f.IssueLinks),
		URL:         n.baseURL + "/browse/" + raw.Key,
	}
}

// normalisePriority defaults to {None, null} when the field is absent.
func normalisePriority(p *domain.RawPriority) domain.Priority {
	if p == nil {
		return domain.Priority{Name: defaultPriorityName, ID: nil}
	}
	id := p.ID
	return domain.Priority{Name: p.Name, ID: &id}
}

// normalisePerson projects an account to its three fields, or nil when
// the remote field is absent. Nil deliberately distinguishes "absent"
// from "present but empty".
func normalisePerson(u *domain.RawUser) *domain.Person {
	if u == nil {
		return nil
	}
	return &domain.Person{
		DisplayName:  u.DisplayName,
		EmailAddress: u.EmailAddress,
		AccountID:    u.AccountID,
	}
}

// names maps named objects to their names. Absent arrays become empty
// slices, never nil: callers must not have to branch on nil vs empty.
func names(in []domain.RawNamed) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		out = append(out, item.Name)
	}
	return out
}

// labels copies the label list, mapping absence to an empty slice.
func labels(in []string) []string {
	out := make([]string, 0, len(in))
	out = append(out, in...)
	return out
}

// links projects issue links. Direction is the inward label when this
// issue is the inward side, else the outward label; the linked key is
// whichever side is present.
func links(in []domain.RawIssueLink) []domain.IssueLink {
	out := make([]domain.IssueLink, 0, len(in))
	for _, l := range in {
		link := domain.IssueLink{Type: l.Type.Name}
		switch {
		case l.InwardIssue != nil:
			link.Direction = l.Type.Inward
			link.LinkedIssue = l.InwardIssue.Key
		case l.OutwardIssue != nil:
			link.Direction = l.Type.Outward
			link.LinkedIssue = l.OutwardIssue.Key
		}
		out = append(out, link)
	}
	return out
}
