// Package driven defines the interfaces the pipeline depends on: the
// remote search client, the story normaliser, the export writer and the
// progress reporter. Adapters implement them; the orchestrator only sees
// these contracts.
package driven
