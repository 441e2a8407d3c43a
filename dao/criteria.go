// dao/criteria.go
package dao

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dev-mohitbeniwal/echo-xaudit/model"
)

// likeEscaper makes LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// sqlQuery accumulates WHERE clauses and their positional arguments.
type sqlQuery struct {
	where []string
	args  []any
}

func (q *sqlQuery) nextArg(value any) string {
	q.args = append(q.args, value)
	return fmt.Sprintf("$%d", len(q.args))
}

func (q *sqlQuery) whereSQL() string {
	if len(q.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.where, " AND ")
}

// buildWhere translates criteria params into SQL predicates on the
// descriptors' columns. Unlike the search-engine path, ranges apply to any
// data type.
func buildWhere(criteria *model.SearchCriteria, fields []model.SearchField) *sqlQuery {
	q := &sqlQuery{}
	for _, field := range fields {
		value := criteria.Param(field.ClientFieldName)
		if value == nil {
			continue
		}

		if values, ok := sliceValues(value); ok {
			if len(values) == 0 {
				continue
			}
			placeholders := make([]string, len(values))
			for i, v := range values {
				placeholders[i] = q.nextArg(v)
			}
			q.where = append(q.where, field.FieldName+" IN ("+strings.Join(placeholders, ", ")+")")
			continue
		}

		if s, ok := value.(string); ok {
			value = strings.TrimSpace(s)
			if value == "" {
				continue
			}
		}

		switch field.SearchType {
		case model.SearchTypePartial:
			if s, ok := value.(string); ok {
				value = likeEscaper.Replace(s)
			}
			q.where = append(q.where, fmt.Sprintf(`%s ILIKE '%%' || %s || '%%' ESCAPE '\'`, field.FieldName, q.nextArg(value)))
		case model.SearchTypeGreaterThan:
			q.where = append(q.where, field.FieldName+" > "+q.nextArg(value))
		case model.SearchTypeGreaterEqualThan:
			q.where = append(q.where, field.FieldName+" >= "+q.nextArg(value))
		case model.SearchTypeLessThan:
			q.where = append(q.where, field.FieldName+" < "+q.nextArg(value))
		case model.SearchTypeLessEqualThan:
			q.where = append(q.where, field.FieldName+" <= "+q.nextArg(value))
		default:
			q.where = append(q.where, field.FieldName+" = "+q.nextArg(value))
		}
	}
	return q
}

// buildOrderBy resolves the sort the same way the search-engine path does:
// a case-insensitive match on the parameter name, else the default
// descriptor. Column names only ever come from the descriptors.
func buildOrderBy(criteria *model.SearchCriteria, sortFields []model.SortField) string {
	sortBy := strings.TrimSpace(criteria.SortBy)
	column := ""

	if sortBy != "" {
		for _, sf := range sortFields {
			if strings.EqualFold(sortBy, sf.ParamName) {
				column = sf.FieldName
				criteria.SortBy = sf.ParamName
				break
			}
		}
	}
	if column == "" {
		for _, sf := range sortFields {
			if sf.IsDefault {
				column = sf.FieldName
				criteria.SortBy = sf.ParamName
				criteria.SortType = string(sf.DefaultOrder)
				break
			}
		}
	}
	if column == "" {
		return " ORDER BY id ASC"
	}

	direction := "ASC"
	if criteria.IsSortDesc() {
		direction = "DESC"
	}
	return " ORDER BY " + column + " " + direction + ", id " + direction
}

func (q *sqlQuery) pageSQL(criteria *model.SearchCriteria) string {
	page := ""
	if criteria.MaxRows > 0 {
		page += " LIMIT " + q.nextArg(criteria.MaxRows)
	}
	if criteria.StartIndex > 0 {
		page += " OFFSET " + q.nextArg(criteria.StartIndex)
	}
	return page
}

func sliceValues(value any) ([]any, bool) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	values := make([]any, rv.Len())
	for i := range values {
		values[i] = rv.Index(i).Interface()
	}
	return values, true
}
