package helper_util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	xaudit_errors "github.com/dev-mohitbeniwal/echo-xaudit/errors"
	"github.com/dev-mohitbeniwal/echo-xaudit/model"
)

const DefaultPageSize = 25

func GetPaginationParams(c *gin.Context) (startIndex int, pageSize int, err error) {
	startIndex, err = strconv.Atoi(c.DefaultQuery("startIndex", "0"))
	if err != nil || startIndex < 0 {
		return 0, 0, fmt.Errorf("%w: startIndex must be a non-negative integer", xaudit_errors.ErrInvalidPagination)
	}
	pageSize, err = strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(DefaultPageSize)))
	if err != nil || pageSize < 0 {
		return 0, 0, fmt.Errorf("%w: pageSize must be a non-negative integer", xaudit_errors.ErrInvalidPagination)
	}
	return startIndex, pageSize, nil
}

// GetSearchCriteria builds search criteria from the query string. Only
// parameters named by fields are kept; repeated parameters become slices.
func GetSearchCriteria(c *gin.Context, fields []model.SearchField) (*model.SearchCriteria, error) {
	startIndex, pageSize, err := GetPaginationParams(c)
	if err != nil {
		return nil, err
	}

	criteria := model.NewSearchCriteria()
	criteria.StartIndex = startIndex
	criteria.MaxRows = pageSize
	criteria.SortBy = c.Query("sortBy")
	criteria.SortType = c.Query("sortType")

	for _, field := range fields {
		if _, seen := criteria.Params[field.ClientFieldName]; seen {
			continue
		}
		raw := nonBlank(c.QueryArray(field.ClientFieldName))
		if len(raw) == 0 {
			continue
		}

		value, err := parseParam(field, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", xaudit_errors.ErrInvalidSearchCriteria, field.ClientFieldName, err)
		}
		criteria.AddParam(field.ClientFieldName, value)
	}
	return criteria, nil
}

func parseParam(field model.SearchField, raw []string) (any, error) {
	switch field.DataType {
	case model.DataTypeDate:
		return ParseTime(raw[0])
	case model.DataTypeInteger:
		values := make([]int64, len(raw))
		for i, s := range raw {
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%q is not an integer", s)
			}
			values[i] = n
		}
		if len(values) == 1 {
			return values[0], nil
		}
		return values, nil
	default:
		if len(raw) == 1 {
			return raw[0], nil
		}
		return raw, nil
	}
}

func nonBlank(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
