// model/search.go
package model

import "strings"

// DataType is the value type of a searchable field.
type DataType int

const (
	DataTypeString DataType = iota
	DataTypeInteger
	DataTypeDate
)

// SearchType is how a criteria value is compared against a field.
type SearchType int

const (
	SearchTypeFull SearchType = iota
	SearchTypePartial
	SearchTypeGreaterThan
	SearchTypeGreaterEqualThan
	SearchTypeLessThan
	SearchTypeLessEqualThan
)

// IsLowerBound reports whether the search type bounds a range from below.
func (t SearchType) IsLowerBound() bool {
	return t == SearchTypeGreaterThan || t == SearchTypeGreaterEqualThan
}

// IsUpperBound reports whether the search type bounds a range from above.
func (t SearchType) IsUpperBound() bool {
	return t == SearchTypeLessThan || t == SearchTypeLessEqualThan
}

// IsRange reports whether the search type is any range comparison.
func (t SearchType) IsRange() bool {
	return t.IsLowerBound() || t.IsUpperBound()
}

// SortOrder is the direction of a sort clause.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SearchField maps a request parameter onto a backend field.
type SearchField struct {
	ClientFieldName string
	FieldName       string
	DataType        DataType
	SearchType      SearchType
}

// SortField maps a sortBy parameter onto a backend field.
type SortField struct {
	ParamName    string
	FieldName    string
	IsDefault    bool
	DefaultOrder SortOrder
}

// SearchCriteria is a paginated, sortable search request. It is built per
// request and may be rewritten while the query is translated.
type SearchCriteria struct {
	Params     map[string]any `json:"params"`
	StartIndex int            `json:"start_index"`
	MaxRows    int            `json:"max_rows"`
	SortBy     string         `json:"sort_by"`
	SortType   string         `json:"sort_type"`
}

func NewSearchCriteria() *SearchCriteria {
	return &SearchCriteria{Params: make(map[string]any)}
}

// Param returns the value stored under name, or nil.
func (c *SearchCriteria) Param(name string) any {
	if c == nil || c.Params == nil {
		return nil
	}
	return c.Params[name]
}

func (c *SearchCriteria) AddParam(name string, value any) {
	if c.Params == nil {
		c.Params = make(map[string]any)
	}
	c.Params[name] = value
}

// IsSortDesc reports whether SortType asks for descending order.
func (c *SearchCriteria) IsSortDesc() bool {
	return strings.EqualFold(c.SortType, string(SortDesc))
}

// Clone returns a copy that shares param values but not the map.
func (c *SearchCriteria) Clone() *SearchCriteria {
	clone := *c
	clone.Params = make(map[string]any, len(c.Params))
	for k, v := range c.Params {
		clone.Params[k] = v
	}
	return &clone
}
