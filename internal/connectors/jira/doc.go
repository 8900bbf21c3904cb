// Package jira implements the remote query client for Jira-style
// trackers: JQL construction, the fixed field projection and the single
// bounded search request.
package jira
