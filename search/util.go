// search/util.go
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	xaudit_errors "github.com/dev-mohitbeniwal/echo-xaudit/errors"
	logger "github.com/dev-mohitbeniwal/echo-xaudit/logging"
	"github.com/dev-mohitbeniwal/echo-xaudit/model"
)

const (
	// DateLayout is the timestamp layout of date range literals.
	DateLayout = "2006-01-02T15:04:05Z"
	// DefaultNowToken stands in for a missing upper date bound.
	DefaultNowToken = "NOW"

	openLowerBound = "*"
)

// UtilConfig configures how a Util renders date literals.
type UtilConfig struct {
	// TimeZone is an IANA zone name; empty or unknown names use the local zone.
	TimeZone string
	// NowToken replaces a missing upper date bound. Defaults to DefaultNowToken.
	NowToken string
}

// Util translates SearchCriteria into search-engine queries.
type Util struct {
	location *time.Location
	nowToken string
}

func NewUtil(cfg UtilConfig) *Util {
	u := &Util{location: time.Local, nowToken: cfg.NowToken}
	if u.nowToken == "" {
		u.nowToken = DefaultNowToken
	}
	if cfg.TimeZone != "" {
		logger.Info("Setting search timezone", zap.String("timeZone", cfg.TimeZone))
		loc, err := time.LoadLocation(cfg.TimeZone)
		if err != nil {
			logger.Error("Error setting timezone", zap.String("timeZone", cfg.TimeZone), zap.Error(err))
		} else {
			u.location = loc
		}
	}
	return u
}

// ClauseKind tags the outcome of translating one search field.
type ClauseKind int

const (
	ClauseSkipped ClauseKind = iota
	ClauseFilter
	ClauseDateFrom
	ClauseDateTo
	// ClauseUnsupported marks a range comparison on a non-date field, or a
	// date field that is not a range bound.
	ClauseUnsupported
)

type fieldClause struct {
	kind   ClauseKind
	filter string
	date   time.Time
}

// SearchResources translates criteria against the given descriptors, runs the
// query and returns the response. Failures of the backend surface as a
// system error; nothing is retried.
//
// Only one date range is tracked per call. A second date-typed descriptor
// overwrites the bound and field name recorded by the first.
func (u *Util) SearchResources(ctx context.Context, client Client, criteria *model.SearchCriteria,
	searchFields []model.SearchField, sortFields []model.SortField) (*Response, error) {
	query := NewQuery()

	if criteria.Params != nil {
		var (
			fromDate, toDate *time.Time
			dateFieldName    string
		)

		for _, field := range searchFields {
			clause := u.translateField(field, criteria.Param(field.ClientFieldName))
			switch clause.kind {
			case ClauseFilter:
				query.AddFilterQuery(clause.filter)
			case ClauseDateFrom:
				d := clause.date
				fromDate = &d
				dateFieldName = field.FieldName
			case ClauseDateTo:
				d := clause.date
				toDate = &d
				dateFieldName = field.FieldName
			case ClauseUnsupported:
				logger.Warn("Search type is not supported for field",
					zap.String("field", field.FieldName),
					zap.String("param", field.ClientFieldName))
				query.Unsupported = append(query.Unsupported, field.FieldName)
			}
		}

		if fromDate != nil || toDate != nil {
			query.AddFilterQuery(u.SetDateRange(dateFieldName, fromDate, toDate))
		}
	}

	u.SetSortClause(criteria, sortFields, query)
	query.Start = criteria.StartIndex
	query.Rows = criteria.MaxRows

	if logger.DebugEnabled() {
		logger.Debug("Search query", zap.String("query", query.String()))
	}

	response, err := client.Query(ctx, query)
	if err != nil {
		logger.Error("Error from search server", zap.String("query", query.String()), zap.Error(err))
		return nil, xaudit_errors.NewSystemError("Error running query", err)
	}
	if response == nil || response.Status != 0 {
		status := -1
		if response != nil {
			status = response.Status
		}
		logger.Error("Error running query", zap.String("query", query.String()), zap.Int("status", status))
		return nil, xaudit_errors.NewSystemError("Error running query", fmt.Errorf("search status %d", status))
	}
	return response, nil
}

func (u *Util) translateField(field model.SearchField, value any) fieldClause {
	if isBlank(value) {
		return fieldClause{kind: ClauseSkipped}
	}

	if values, ok := multiValues(value); ok {
		fq := u.OrList(field.FieldName, values)
		if fq == "" {
			return fieldClause{kind: ClauseSkipped}
		}
		return fieldClause{kind: ClauseFilter, filter: fq}
	}

	if field.DataType == model.DataTypeDate {
		date, ok := asTime(value)
		if !ok {
			logger.Error("Search value for date field is not a time",
				zap.String("field", field.FieldName),
				zap.String("type", fmt.Sprintf("%T", value)))
			return fieldClause{kind: ClauseSkipped}
		}
		switch {
		case field.SearchType.IsLowerBound():
			return fieldClause{kind: ClauseDateFrom, date: date}
		case field.SearchType.IsUpperBound():
			return fieldClause{kind: ClauseDateTo, date: date}
		}
		// Dates are only searchable as range bounds.
		return fieldClause{kind: ClauseUnsupported}
	} else if field.SearchType.IsRange() {
		return fieldClause{kind: ClauseUnsupported}
	}

	fq := u.SetField(field.FieldName, value)
	if fq == "" {
		return fieldClause{kind: ClauseSkipped}
	}
	return fieldClause{kind: ClauseFilter, filter: fq}
}

// SetField returns the equality clause for value, or "" if value is blank.
func (u *Util) SetField(fieldName string, value any) string {
	if isBlank(value) {
		return ""
	}
	return fieldName + ":" + EscapeQueryChars(strings.ToLower(strings.TrimSpace(toString(value))))
}

// SetDateRange returns an inclusive range clause. A nil from is open, a nil
// to ends at the now token. Date literals are not lowercased or escaped.
func (u *Util) SetDateRange(fieldName string, from, to *time.Time) string {
	fromStr := openLowerBound
	toStr := u.nowToken
	if from != nil {
		fromStr = u.FormatDate(*from)
	}
	if to != nil {
		toStr = u.FormatDate(*to)
	}
	return fieldName + ":[" + fromStr + " TO " + toStr + "]"
}

// FormatDate renders t in the configured zone using DateLayout.
func (u *Util) FormatDate(t time.Time) string {
	return t.In(u.location).Format(DateLayout)
}

// OrList returns a parenthesized disjunction over values, or "" if empty.
func (u *Util) OrList(fieldName string, values []any) string {
	return joinClauses(fieldName, values, " OR ")
}

// AndList returns a parenthesized conjunction over values, or "" if empty.
func (u *Util) AndList(fieldName string, values []any) string {
	return joinClauses(fieldName, values, " AND ")
}

func joinClauses(fieldName string, values []any, op string) string {
	if len(values) == 0 {
		return ""
	}
	clauses := make([]string, len(values))
	for i, v := range values {
		clauses[i] = fieldName + ":" + EscapeQueryChars(strings.ToLower(toString(v)))
	}
	return "(" + strings.Join(clauses, op) + ")"
}

// SetSortClause resolves the criteria's sortBy against sortFields and adds
// the sort to query. The criteria is rewritten with the canonical parameter
// name, and with the default order when the default descriptor is used.
func (u *Util) SetSortClause(criteria *model.SearchCriteria, sortFields []model.SortField, query *Query) {
	sortBy := strings.TrimSpace(criteria.SortBy)
	querySortBy := ""

	if sortBy != "" {
		for _, sf := range sortFields {
			if strings.EqualFold(sortBy, sf.ParamName) {
				querySortBy = sf.FieldName
				criteria.SortBy = sf.ParamName
				break
			}
		}
	}

	if querySortBy == "" {
		for _, sf := range sortFields {
			if sf.IsDefault {
				querySortBy = sf.FieldName
				criteria.SortBy = sf.ParamName
				criteria.SortType = string(sf.DefaultOrder)
				break
			}
		}
	}

	if querySortBy != "" {
		order := model.SortAsc
		if criteria.IsSortDesc() {
			order = model.SortDesc
		}
		query.AddSort(querySortBy, order)
	}
}

// ToInt converts a document value to int; it returns 0 when the value is
// missing or cannot be parsed.
func (u *Util) ToInt(value any) int {
	switch v := value.(type) {
	case nil:
		return 0
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	s := toString(value)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		logger.Error("Error converting value to integer", zap.String("value", s), zap.Error(err))
		return 0
	}
	return n
}

// ToLong converts a document value to int64; it returns 0 when the value is
// missing or cannot be parsed.
func (u *Util) ToLong(value any) int64 {
	switch v := value.(type) {
	case nil:
		return 0
	case int64:
		return v
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case float64:
		return int64(v)
	}
	s := toString(value)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		logger.Error("Error converting value to long", zap.String("value", s), zap.Error(err))
		return 0
	}
	return n
}

var dateLayouts = []string{time.RFC3339Nano, DateLayout, "2006-01-02 15:04:05", "2006-01-02"}

// ToDate converts a document value to a time; it returns nil when the value
// is missing or cannot be parsed.
func (u *Util) ToDate(value any) *time.Time {
	if t, ok := asTime(value); ok {
		return &t
	}
	if value == nil {
		return nil
	}
	s := toString(value)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, u.location); err == nil {
			return &t
		}
	}
	logger.Error("Error converting value to date", zap.String("value", s))
	return nil
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(value)
	}
}

func isBlank(value any) bool {
	if value == nil {
		return true
	}
	if _, ok := multiValues(value); ok {
		return false
	}
	return strings.TrimSpace(toString(value)) == ""
}

// multiValues reports whether value is a slice and returns its elements.
// Byte slices are treated as scalars.
func multiValues(value any) ([]any, bool) {
	if values, ok := value.([]any); ok {
		return values, true
	}
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

func asTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v != nil {
			return *v, true
		}
	}
	return time.Time{}, false
}
