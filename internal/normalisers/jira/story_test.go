package jira

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearlake-labs/storysync-cli/internal/core/domain"
)

const testBaseURL = "https://example.atlassian.net"

// minimalIssue satisfies only the remote's structural guarantee:
// key, summary and status present, everything else absent.
func minimalIssue() domain.RawIssue {
	return domain.RawIssue{
		Key: "PROJ-1",
		Fields: domain.RawFields{
			Summary: "Minimal story",
			Status: domain.RawStatus{
				Name:           "Open",
				StatusCategory: domain.RawStatusCategory{Name: "To Do"},
			},
			Created: "2026-01-02T03:04:05.000+0000",
			Updated: "2026-01-03T03:04:05.000+0000",
		},
	}
}

func TestNormalise_MinimalIssueHasNoMissingFields(t *testing.T) {
	n := New(testBaseURL)
	story := n.Normalise(minimalIssue())

	assert.Equal(t, "PROJ-1", story.Key)
	assert.Equal(t, "Minimal story", story.Summary)
	assert.Equal(t, DescriptionPlaceholder, story.Description)
	assert.Equal(t, domain.Status{Name: "Open", Category: "To Do"}, story.Status)
	assert.Equal(t, "None", story.Priority.Name)
	assert.Nil(t, story.Priority.ID)
	assert.Nil(t, story.Assignee)
	assert.Nil(t, story.Reporter)
	assert.Equal(t, "2026-01-02T03:04:05.000+0000", story.Created)
	assert.Equal(t, "2026-01-03T03:04:05.000+0000", story.Updated)
	assert.NotNil(t, story.Components)
	assert.Empty(t, story.Components)
	assert.NotNil(t, story.Labels)
	assert.Empty(t, story.Labels)
	assert.NotNil(t, story.FixVersions)
	assert.Empty(t, story.FixVersions)
	assert.Nil(t, story.StoryPoints)
	assert.NotNil(t, story.IssueLinks)
	assert.Empty(t, story.IssueLinks)
	assert.Equal(t, "https://example.atlassian.net/browse/PROJ-1", story.URL)
}

func TestNormalise_SerialisedFormHasNoNullArrays(t *testing.T) {
	n := New(testBaseURL)
	story := n.Normalise(minimalIssue())

	data, err := json.Marshal(story)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, field := range []string{"components", "labels", "fixVersions", "issueLinks"} {
		value, ok := decoded[field]
		require.True(t, ok, "field %s missing from serialised story", field)
		assert.NotNil(t, value, "field %s serialised as null", field)
	}

	// Person fields and story points serialise as explicit null, not as
	// missing keys.
	for _, field := range []string{"assignee", "reporter", "storyPoints"} {
		_, ok := decoded[field]
		assert.True(t, ok, "field %s missing from serialised story", field)
	}
}

func TestNormalise_Idempotent(t *testing.T) {
	n := New(testBaseURL)
	raw := minimalIssue()

	first := n.Normalise(raw)
	second := n.Normalise(raw)
	assert.Equal(t, first, second)
}

func TestNormalise_FullIssue(t *testing.T) {
	points := 5.0
	raw := domain.RawIssue{
		Key: "PROJ-7",
		Fields: domain.RawFields{
			Summary:     "Full story",
			Description: json.RawMessage(`"plain description"`),
			Status: domain.RawStatus{
				Name:           "In Progress",
				StatusCategory: domain.RawStatusCategory{Name: "In Progress"},
			},
			Priority: &domain.RawPriority{Name: "High", ID: "2"},
			Assignee: &domain.RawUser{
				DisplayName:  "Ada Lovelace",
				EmailAddress: "ada@example.com",
				AccountID:    "acc-1",
			},
			Reporter: &domain.RawUser{
				DisplayName: "Grace Hopper",
				AccountID:   "acc-2",
			},
			Created:     "2026-02-01T00:00:00.000+0000",
			Updated:     "2026-02-02T00:00:00.000+0000",
			Components:  []domain.RawNamed{{Name: "backend"}, {Name: "api"}},
			Labels:      []string{"urgent", "q3"},
			FixVersions: []domain.RawNamed{{Name: "1.2.0"}},
			StoryPoints: &points,
		},
	}

	n := New(testBaseURL)
	story := n.Normalise(raw)

	assert.Equal(t, "plain description", story.Description)
	require.NotNil(t, story.Priority.ID)
	assert.Equal(t, "High", story.Priority.Name)
	assert.Equal(t, "2", *story.Priority.ID)

	require.NotNil(t, story.Assignee)
	assert.Equal(t, domain.Person{
		DisplayName:  "Ada Lovelace",
		EmailAddress: "ada@example.com",
		AccountID:    "acc-1",
	}, *story.Assignee)

	require.NotNil(t, story.Reporter)
	assert.Equal(t, "Grace Hopper", story.Reporter.DisplayName)
	assert.Empty(t, story.Reporter.EmailAddress)

	assert.Equal(t, []string{"backend", "api"}, story.Components)
	assert.Equal(t, []string{"urgent", "q3"}, story.Labels)
	assert.Equal(t, []string{"1.2.0"}, story.FixVersions)
	require.NotNil(t, story.StoryPoints)
	assert.Equal(t, 5.0, *story.StoryPoints)
}

func TestNormalise_IssueLinks(t *testing.T) {
	blocks := domain.RawLinkType{Name: "Blocks", Inward: "is blocked by", Outward: "blocks"}

	tests := []struct {
		name     string
		link     domain.RawIssueLink
		expected domain.IssueLink
	}{
		{
			name: "inward side uses inward label and inward key",
			link: domain.RawIssueLink{
				Type:        blocks,
				InwardIssue: &domain.RawLinkedIssue{Key: "PROJ-2"},
			},
			expected: domain.IssueLink{Type: "Blocks", Direction: "is blocked by", LinkedIssue: "PROJ-2"},
		},
		{
			name: "outward side uses outward label and outward key",
			link: domain.RawIssueLink{
				Type:         blocks,
				OutwardIssue: &domain.RawLinkedIssue{Key: "PROJ-3"},
			},
			expected: domain.IssueLink{Type: "Blocks", Direction: "blocks", LinkedIssue: "PROJ-3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := minimalIssue()
			raw.Fields.IssueLinks = []domain.RawIssueLink{tt.link}

			story := New(testBaseURL).Normalise(raw)
			require.Len(t, story.IssueLinks, 1)
			assert.Equal(t, tt.expected, story.IssueLinks[0])
		})
	}
}

func TestNormalise_BaseURLTrailingSlash(t *testing.T) {
	n := New(testBaseURL + "/")
	story := n.Normalise(minimalIssue())
	assert.Equal(t, "https://example.atlassian.net/browse/PROJ-1", story.URL)
}

func TestNormalise_RawJSONRoundTrip(t *testing.T) {
	// A raw issue as the search API actually serialises it, including a
	// rich-text description.
	payload := `{
		"key": "PROJ-9",
		"fields": {
			"summary": "Wire the importer",
			"description": {"type":"doc","version":1,"content":[{"type":"paragraph","content":[{"type":"text","text":"Import records nightly."}]}]},
			"status": {"name": "Done", "statusCategory": {"name": "Done"}},
			"priority": {"name": "Low", "id": "4"},
			"assignee": null,
			"labels": ["importer"],
			"customfield_10016": 3,
			"created": "2026-03-01T10:00:00.000+0000",
			"updated": "2026-03-04T10:00:00.000+0000"
		}
	}`

	var raw domain.RawIssue
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))

	story := New(testBaseURL).Normalise(raw)
	assert.Equal(t, "Import records nightly.", story.Description)
	assert.Equal(t, "Done", story.Status.Name)
	assert.Nil(t, story.Assignee)
	assert.Equal(t, []string{"importer"}, story.Labels)
	require.NotNil(t, story.StoryPoints)
	assert.Equal(t, 3.0, *story.StoryPoints)
}
