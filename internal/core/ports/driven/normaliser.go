package driven

import "github.com/clearlake-labs/storysync-cli/internal/core/domain"

// StoryNormaliser maps one raw issue to a normalised story.
type StoryNormaliser interface {
	// Normalise is pure and total: it never fails for a raw issue that
	// satisfies the remote's structural guarantee (key, summary and
	// status present). Every other field's absence is handled by
	// defensive defaulting.
	Normalise(raw domain.RawIssue) domain.Story
}
