package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// IndexLister checks that the search module answers.
type IndexLister interface {
	ListIndexes(ctx context.Context) ([]string, error)
}
