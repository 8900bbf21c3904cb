// Package jsonfile persists story exports as pretty-printed JSON files.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"

	"github.com/clearlake-labs/storysync-cli/internal/core/domain"
	"github.com/clearlake-labs/storysync-cli/internal/core/ports/driven"
	"github.com/clearlake-labs/storysync-cli/internal/logger"
)

// FileName is the fixed export file name inside the output directory.
const FileName = "stories.json"

// Ensure Writer implements the interface.
var _ driven.ExportWriter = (*Writer)(nil)

// Writer writes one export document per run to <dir>/stories.json.
type Writer struct {
	dir         string
	project     string
	baseURL     string
	toolVersion string
}

// New creates a writer targeting dir. The project and base URL are
// stamped into the export metadata.
func New(dir, project, baseURL, toolVersion string) *Writer {
	return &Writer{
		dir:         dir,
		project:     project,
		baseURL:     baseURL,
		toolVersion: toolVersion,
	}
}

// Write wraps the stories with run metadata and writes the document.
// The file is replaced atomically: a successful write always contains
// the full document, and an interrupted one never leaves a torn file.
func (w *Writer) Write(ctx context.Context, stories []domain.Story) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Idempotent create; no error if the directory already exists.
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", &WriteError{Path: w.dir, Op: "create directory", Err: err}
	}

	export := domain.StoryExport{
		Metadata: domain.ExportMetadata{
			Project:      w.project,
			TotalStories: len(stories),
			FetchedAt:    time.Now().UTC().Format(time.RFC3339),
			BaseURL:      w.baseURL,
			RunID:        uuid.NewString(),
			ToolVersion:  w.toolVersion,
		},
		Stories: stories,
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal export: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(w.dir, FileName)
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return "", &WriteError{Path: path, Op: "write", Err: err}
	}

	logger.Debug("Wrote %d stories to %s", len(stories), path)
	return path, nil
}
