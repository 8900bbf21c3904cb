// Package domain contains the core entities of storysync: the raw issue
// shapes returned by the tracker's search API, the normalised Story the
// tool owns, and the export document written to disk.
package domain
