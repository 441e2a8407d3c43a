// search/client.go
package search

import "context"

// Document is one stored search-engine document.
type Document map[string]any

// Response is the outcome of a query. A Status other than zero means the
// backend rejected or failed the request.
type Response struct {
	Status   int
	QTime    int
	NumFound int64
	Start    int
	Docs     []Document
}

// Client executes translated queries against a search engine.
type Client interface {
	Query(ctx context.Context, query *Query) (*Response, error)
}

// Indexer stores documents so later queries can find them.
type Indexer interface {
	Index(ctx context.Context, id string, doc Document) error
}
