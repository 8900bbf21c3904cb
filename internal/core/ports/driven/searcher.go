package driven

import (
	"context"

	"github.com/clearlake-labs/storysync-cli/internal/core/domain"
)

// StorySearcher fetches raw story issues from the remote tracker.
type StorySearcher interface {
	// Search runs the story filter for a project and returns one bounded
	// page of up to maxResults issues, most recent first, together with
	// the overall match count. It does not paginate beyond one page.
	Search(ctx context.Context, project string, maxResults int) (*domain.SearchResult, error)
}
