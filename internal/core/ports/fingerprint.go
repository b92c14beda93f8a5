package ports

// Fingerprinter derives a cheap comparable staleness token for a source path.
//
//go:generate mockgen -source=fingerprint.go -destination=mocks/mock_fingerprint.go -package=mocks
type Fingerprinter interface {
	// Fingerprint returns the file's modification time in unix seconds.
	// ok is false when the path does not exist or cannot be inspected;
	// callers must treat that as always stale. Implementations re-stat on
	// every call and keep no state of their own.
	Fingerprint(path string) (token int64, ok bool)
}
