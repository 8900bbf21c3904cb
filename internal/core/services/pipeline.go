// Package services contains the pipeline orchestrator sequencing
// fetch, normalise and write.
package services

import (
	"context"
	"fmt"

	"github.com/clearlake-labs/storysync-cli/internal/core/domain"
	"github.com/clearlake-labs/storysync-cli/internal/core/ports/driven"
	"github.com/clearlake-labs/storysync-cli/internal/logger"
)

// Summary is the terminal report of a successful run.
type Summary struct {
	// TotalStories is the number of stories fetched and written.
	TotalStories int

	// ByStatus counts stories per status name.
	ByStatus map[string]int

	// Truncated reports that more stories matched the filter than the
	// fetched page contains.
	Truncated bool

	// OutputPath is where the export was written.
	OutputPath string
}

// PipelineOrchestrator runs the three stages strictly in order: fetch,
// normalise the full batch, write. No stage is skipped or retried; the
// first failure aborts the run and no partial document is written.
type PipelineOrchestrator struct {
	searcher   driven.StorySearcher
	normaliser driven.StoryNormaliser
	writer     driven.ExportWriter
	reporter   driven.ProgressReporter
	project    string
	maxResults int
}

// NewPipelineOrchestrator creates the orchestrator. reporter may be nil,
// in which case checkpoints are dropped.
func NewPipelineOrchestrator(
	searcher driven.StorySearcher,
	normaliser driven.StoryNormaliser,
	writer driven.ExportWriter,
	reporter driven.ProgressReporter,
	project string,
	maxResults int,
) *PipelineOrchestrator {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &PipelineOrchestrator{
		searcher:   searcher,
		normaliser: normaliser,
		writer:     writer,
		reporter:   reporter,
		project:    project,
		maxResults: maxResults,
	}
}

// Run executes the pipeline and returns the run summary. On error the
// summary is nil and nothing has been written.
func (o *PipelineOrchestrator) Run(ctx context.Context) (*Summary, error) {
	// 1. FETCH
	o.reporter.FetchStarted(o.project)
	result, err := o.searcher.Search(ctx, o.project, o.maxResults)
	if err != nil {
		return nil, fmt.Errorf("fetch stories: %w", err)
	}
	o.reporter.FetchCompleted(len(result.Issues), result.Total)

	if result.Truncated() {
		logger.Warn("Result page truncated: %d of %d matching stories fetched", len(result.Issues), result.Total)
	}

	// 2. NORMALISE the full batch before anything is written.
	stories := make([]domain.Story, 0, len(result.Issues))
	for _, raw := range result.Issues {
		stories = append(stories, o.normaliser.Normalise(raw))
	}
	o.reporter.NormaliseCompleted(len(stories))

	// 3. WRITE
	path, err := o.writer.Write(ctx, stories)
	if err != nil {
		return nil, fmt.Errorf("write export: %w", err)
	}
	o.reporter.WriteCompleted(path)

	summary := &Summary{
		TotalStories: len(stories),
		ByStatus:     statusHistogram(stories),
		Truncated:    result.Truncated(),
		OutputPath:   path,
	}

	logger.Info("Pipeline complete: %d stories written to %s", summary.TotalStories, path)
	return summary, nil
}

// statusHistogram counts stories per status name.
func statusHistogram(stories []domain.Story) map[string]int {
	hist := make(map[string]int, len(stories))
	for _, s := range stories {
		hist[s.Status.Name]++
	}
	return hist
}

// nopReporter drops all checkpoints.
type nopReporter struct{}

func (nopReporter) FetchStarted(string)     {}
func (nopReporter) FetchCompleted(int, int) {}
func (nopReporter) NormaliseCompleted(int)  {}
func (nopReporter) WriteCompleted(string)   {}
