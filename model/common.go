// model/common.go
package model

// ListMeta describes the page a list response holds.
type ListMeta struct {
	StartIndex int    `json:"start_index"`
	PageSize   int    `json:"page_size"`
	TotalCount int64  `json:"total_count"`
	ResultSize int    `json:"result_size"`
	SortBy     string `json:"sort_by,omitempty"`
	SortType   string `json:"sort_type,omitempty"`
}

// NewListMeta copies paging and sort state from the criteria that produced a page.
func NewListMeta(criteria *SearchCriteria, total int64, resultSize int) ListMeta {
	return ListMeta{
		StartIndex: criteria.StartIndex,
		PageSize:   criteria.MaxRows,
		TotalCount: total,
		ResultSize: resultSize,
		SortBy:     criteria.SortBy,
		SortType:   criteria.SortType,
	}
}

// Count wraps the result of a search-count operation.
type Count struct {
	Value int64 `json:"value"`
}
