package jira

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildJQL(t *testing.T) {
	jql := BuildJQL("PROJ")
	assert.Equal(t, `project = "PROJ" AND issuetype = Story ORDER BY created DESC`, jql)
}

func TestFieldProjection_FixedList(t *testing.T) {
	// The projection is fixed and reproduced exactly; the output
	// document shape depends on it.
	expected := "summary,description,status,priority,assignee,reporter," +
		"created,updated,components,labels,fixVersions,customfield_10016,issuelinks"
	assert.Equal(t, expected, FieldProjection())
}

func TestFieldProjection_ContainsStoryPointsField(t *testing.T) {
	assert.True(t, strings.Contains(FieldProjection(), storyPointsField))
}
