package domain

// ExportMetadata describes one fetch run. FetchedAt is captured at write
// time, not fetch time.
type ExportMetadata struct {
	// Project is the source project key the stories were fetched from.
	Project string `json:"project"`

	// TotalStories is the number of stories in the export.
	TotalStories int `json:"totalStories"`

	// FetchedAt is the ISO-8601 write timestamp.
	FetchedAt string `json:"fetchedAt"`

	// BaseURL is the source instance address.
	BaseURL string `json:"baseUrl"`

	// RunID uniquely identifies this run.
	RunID string `json:"runId"`

	// ToolVersion is the storysync version that produced the export.
	ToolVersion string `json:"toolVersion"`
}

// StoryExport is the output document: run metadata plus the normalised
// stories. Created once per run, written once, never mutated after write.
type StoryExport struct {
	Metadata ExportMetadata `json:"metadata"`
	Stories  []Story        `json:"stories"`
}
