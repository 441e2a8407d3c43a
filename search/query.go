// search/query.go
package search

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/dev-mohitbeniwal/echo-xaudit/model"
)

// MatchAllQuery selects every document before filters apply.
const MatchAllQuery = "*:*"

// SortClause orders results by one field.
type SortClause struct {
	Field string
	Order model.SortOrder
}

// Query is a backend-neutral search request: a main query, conjunctive
// filter clauses, sort and pagination.
type Query struct {
	Query         string
	FilterQueries []string
	Sorts         []SortClause
	Start         int
	Rows          int

	// Unsupported lists the fields whose criteria could not be expressed
	// as a filter and were left out of the request.
	Unsupported []string
}

func NewQuery() *Query {
	return &Query{Query: MatchAllQuery}
}

func (q *Query) AddFilterQuery(fq string) {
	q.FilterQueries = append(q.FilterQueries, fq)
}

func (q *Query) AddSort(field string, order model.SortOrder) {
	q.Sorts = append(q.Sorts, SortClause{Field: field, Order: order})
}

// String renders the query in Solr request-parameter form, for logs.
func (q *Query) String() string {
	values := url.Values{}
	values.Set("q", q.Query)
	for _, fq := range q.FilterQueries {
		values.Add("fq", fq)
	}
	for _, s := range q.Sorts {
		values.Add("sort", fmt.Sprintf("%s %s", s.Field, s.Order))
	}
	values.Set("start", strconv.Itoa(q.Start))
	values.Set("rows", strconv.Itoa(q.Rows))
	return values.Encode()
}
