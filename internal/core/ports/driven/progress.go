package driven

// ProgressReporter receives pipeline checkpoints. It is decoupled from the
// pipeline's control flow so it can be swapped or disabled in tests.
type ProgressReporter interface {
	// FetchStarted fires before the remote search request.
	FetchStarted(project string)

	// FetchCompleted fires after the search returns. fetched is the page
	// size actually returned; total is the overall match count, which may
	// be larger.
	FetchCompleted(fetched, total int)

	// NormaliseCompleted fires once the whole batch is normalised.
	NormaliseCompleted(count int)

	// WriteCompleted fires after the export file is written.
	WriteCompleted(path string)
}
