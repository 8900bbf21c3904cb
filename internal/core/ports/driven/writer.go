package driven

import (
	"context"

	"github.com/clearlake-labs/storysync-cli/internal/core/domain"
)

// ExportWriter persists a batch of normalised stories as one export
// document. The writer owns the run metadata (count, write timestamp,
// run ID) and the output location.
type ExportWriter interface {
	// Write wraps the stories with metadata and writes the complete
	// document, creating the target directory if needed. It returns the
	// path of the written file.
	Write(ctx context.Context, stories []domain.Story) (string, error)
}
