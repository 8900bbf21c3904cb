package jira

import (
	"fmt"
	"strings"
)

// storyPointsField is the estimate custom field on the instance.
const storyPointsField = "customfield_10016"

// storyFields is the fixed field projection requested per search. The
// list is reproduced exactly on every request; the output document shape
// depends on it.
var storyFields = []string{
	"summary",
	"description",
	"status",
	"priority",
	"assignee",
	"reporter",
	"created",
	"updated",
	"components",
	"labels",
	"fixVersions",
	storyPointsField,
	"issuelinks",
}

// BuildJQL returns the filter expression selecting a project's stories,
// most recent first. The ordering is a hard requirement of the output,
// not incidental.
func BuildJQL(project string) string {
	return fmt.Sprintf("project = %q AND issuetype = Story ORDER BY created DESC", project)
}

// FieldProjection returns the comma-joined field list for the search
// request's fields parameter.
func FieldProjection() string {
	return strings.Join(storyFields, ",")
}
