package helper_util

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xaudit_errors "github.com/dev-mohitbeniwal/echo-xaudit/errors"
	"github.com/dev-mohitbeniwal/echo-xaudit/model"
)

var fields = []model.SearchField{
	{ClientFieldName: "repoName", FieldName: "repo", DataType: model.DataTypeString},
	{ClientFieldName: "policyId", FieldName: "policy", DataType: model.DataTypeInteger},
	{ClientFieldName: "startDate", FieldName: "evtTime", DataType: model.DataTypeDate, SearchType: model.SearchTypeGreaterEqualThan},
}

func contextFor(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/xaudit/access_audit?"+rawQuery, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	start, size, err := GetPaginationParams(contextFor(""))
	require.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, DefaultPageSize, size)

	start, size, err = GetPaginationParams(contextFor("startIndex=50&pageSize=10"))
	require.NoError(t, err)
	assert.Equal(t, 50, start)
	assert.Equal(t, 10, size)

	for _, q := range []string{"startIndex=abc", "startIndex=-1", "pageSize=-5", "pageSize=x"} {
		_, _, err = GetPaginationParams(contextFor(q))
		assert.ErrorIs(t, err, xaudit_errors.ErrInvalidPagination, q)
	}
}

func TestGetSearchCriteria(t *testing.T) {
	c := contextFor("repoName=hdfs&repoName=hive&policyId=7&startDate=2024-05-01&sortBy=eventTime&sortType=ASC&ignored=1&pageSize=5")

	criteria, err := GetSearchCriteria(c, fields)
	require.NoError(t, err)

	assert.Equal(t, []string{"hdfs", "hive"}, criteria.Param("repoName"))
	assert.Equal(t, int64(7), criteria.Param("policyId"))
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), criteria.Param("startDate"))
	assert.Nil(t, criteria.Param("ignored"))
	assert.Equal(t, "eventTime", criteria.SortBy)
	assert.Equal(t, "ASC", criteria.SortType)
	assert.Equal(t, 5, criteria.MaxRows)
}

func TestGetSearchCriteriaSkipsBlankAndParsesRFC3339(t *testing.T) {
	c := contextFor("repoName=%20%20&policyId=1&policyId=2&startDate=2024-05-01T10:00:00%2B02:00")

	criteria, err := GetSearchCriteria(c, fields)
	require.NoError(t, err)

	assert.Nil(t, criteria.Param("repoName"))
	assert.Equal(t, []int64{1, 2}, criteria.Param("policyId"))
	start, ok := criteria.Param("startDate").(time.Time)
	require.True(t, ok)
	assert.True(t, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC).Equal(start))
}

func TestGetSearchCriteriaRejectsMalformedValues(t *testing.T) {
	for _, q := range []string{"policyId=seven", "startDate=yesterday"} {
		_, err := GetSearchCriteria(contextFor(q), fields)
		assert.ErrorIs(t, err, xaudit_errors.ErrInvalidSearchCriteria, q)
	}
}
