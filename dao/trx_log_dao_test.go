package dao

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	xaudit_errors "github.com/dev-mohitbeniwal/echo-xaudit/errors"
	"github.com/dev-mohitbeniwal/echo-xaudit/model"
	"github.com/dev-mohitbeniwal/echo-xaudit/util"
)

// newMockDB creates a sqlmock database with automatic cleanup and expectation checking.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

var trxLogRowColumns = []string{
	"id", "create_time", "update_time", "added_by", "upd_by", "class_type", "object_id",
	"parent_object_id", "parent_object_class_type", "parent_object_name", "object_name", "attr_name",
	"prev_val", "new_val", "trx_id", "action", "sess_id", "req_id", "sess_type",
}

func addTrxLogRow(rows *sqlmock.Rows, id int64, action string, now time.Time) *sqlmock.Rows {
	return rows.AddRow(
		id, now, now, "admin", "admin", 1000, 12,
		0, 0, "", "hdfs_prod", "Policy Name",
		"old", "new", "trx-1", action, "sess-1", "req-1", "web",
	)
}

func validTrxLog() model.TrxLog {
	return model.TrxLog{
		ObjectClassType: 1000,
		ObjectID:        12,
		ObjectName:      "hdfs_prod",
		AttributeName:   "Policy Name",
		TransactionID:   "trx-1",
		Action:          "update",
	}
}

func TestGetTrxLog(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewTrxLogDAO(db, util.NewValidationUtil())
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM x_trx_log WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(addTrxLogRow(sqlmock.NewRows(trxLogRowColumns), 7, "update", now))

	trxLog, err := dao.GetTrxLog(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), trxLog.ID)
	assert.Equal(t, "update", trxLog.Action)
	assert.Equal(t, 1000, trxLog.ObjectClassType)
	assert.Equal(t, "trx-1", trxLog.TransactionID)
	assert.True(t, now.Equal(trxLog.CreateDate))
}

func TestGetTrxLogNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewTrxLogDAO(db, util.NewValidationUtil())

	mock.ExpectQuery(regexp.QuoteMeta("FROM x_trx_log WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(trxLogRowColumns))

	_, err := dao.GetTrxLog(context.Background(), 99)
	assert.ErrorIs(t, err, xaudit_errors.ErrTrxLogNotFound)
}

func TestGetTrxLogDatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewTrxLogDAO(db, util.NewValidationUtil())

	mock.ExpectQuery(regexp.QuoteMeta("FROM x_trx_log WHERE id = $1")).
		WillReturnError(errors.New("connection reset"))

	_, err := dao.GetTrxLog(context.Background(), 1)
	assert.ErrorIs(t, err, xaudit_errors.ErrDatabaseOperation)
}

func TestCreateTrxLog(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewTrxLogDAO(db, util.NewValidationUtil())

	mock.ExpectQuery("INSERT INTO x_trx_log").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	created, err := dao.CreateTrxLog(context.Background(), validTrxLog())
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.False(t, created.CreateDate.IsZero())
	assert.Equal(t, created.CreateDate, created.UpdateDate)
}

func TestCreateTrxLogValidation(t *testing.T) {
	db, _ := newMockDB(t)
	dao := NewTrxLogDAO(db, util.NewValidationUtil())

	invalid := validTrxLog()
	invalid.Action = ""
	_, err := dao.CreateTrxLog(context.Background(), invalid)
	assert.ErrorIs(t, err, xaudit_errors.ErrInvalidTrxLogData)
}

func TestUpdateTrxLogNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewTrxLogDAO(db, util.NewValidationUtil())

	trxLog := validTrxLog()
	trxLog.ID = 5
	mock.ExpectQuery("UPDATE x_trx_log SET").
		WillReturnRows(sqlmock.NewRows([]string{"create_time", "added_by"}))

	_, err := dao.UpdateTrxLog(context.Background(), trxLog)
	assert.ErrorIs(t, err, xaudit_errors.ErrTrxLogNotFound)
}

func TestUpdateTrxLogKeepsOwner(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewTrxLogDAO(db, util.NewValidationUtil())
	created := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)

	trxLog := validTrxLog()
	trxLog.ID = 5
	trxLog.Owner = "someone-else"
	mock.ExpectQuery("UPDATE x_trx_log SET").
		WillReturnRows(sqlmock.NewRows([]string{"create_time", "added_by"}).AddRow(created, "admin"))

	updated, err := dao.UpdateTrxLog(context.Background(), trxLog)
	require.NoError(t, err)
	assert.Equal(t, "admin", updated.Owner)
	assert.True(t, created.Equal(updated.CreateDate))
}

func TestDeleteTrxLog(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		force    bool
		wantErr  error
	}{
		{"deleted", 1, false, nil},
		{"missing", 0, false, xaudit_errors.ErrTrxLogNotFound},
		{"missing forced", 0, true, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			dao := NewTrxLogDAO(db, util.NewValidationUtil())

			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM x_trx_log WHERE id = $1")).
				WithArgs(int64(9)).
				WillReturnResult(sqlmock.NewResult(0, tc.affected))

			err := dao.DeleteTrxLog(context.Background(), 9, tc.force)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestSearchTrxLogs(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewTrxLogDAO(db, util.NewValidationUtil())
	now := time.Now().UTC()

	criteria := model.NewSearchCriteria()
	criteria.AddParam("action", "update")
	criteria.StartIndex = 1
	criteria.MaxRows = 2

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM x_trx_log WHERE action = $1")).
		WithArgs("update").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	rows := sqlmock.NewRows(trxLogRowColumns)
	addTrxLogRow(rows, 2, "update", now)
	addTrxLogRow(rows, 3, "update", now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM x_trx_log WHERE action = $1 ORDER BY create_time DESC, id DESC LIMIT $2 OFFSET $3")).
		WithArgs("update", int64(2), int64(1)).
		WillReturnRows(rows)

	list, err := dao.SearchTrxLogs(context.Background(), criteria)
	require.NoError(t, err)
	assert.Equal(t, int64(3), list.TotalCount)
	assert.Equal(t, 2, list.ResultSize)
	assert.Equal(t, 1, list.StartIndex)
	assert.Equal(t, 2, list.PageSize)
	assert.Equal(t, "createDate", list.SortBy)
	assert.Equal(t, "desc", list.SortType)
	require.Len(t, list.TrxLogs, 2)
	assert.Equal(t, int64(2), list.TrxLogs[0].ID)
}

func TestSearchTrxLogsPastLastPage(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewTrxLogDAO(db, util.NewValidationUtil())

	criteria := &model.SearchCriteria{StartIndex: 100, MaxRows: 25, SortBy: "id", SortType: "asc"}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM x_trx_log")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id ASC, id ASC LIMIT $1 OFFSET $2")).
		WithArgs(int64(25), int64(100)).
		WillReturnRows(sqlmock.NewRows(trxLogRowColumns))

	list, err := dao.SearchTrxLogs(context.Background(), criteria)
	require.NoError(t, err)
	assert.Equal(t, int64(4), list.TotalCount)
	assert.Equal(t, 0, list.ResultSize)
	assert.NotNil(t, list.TrxLogs)
}

func TestGetTrxLogSearchCount(t *testing.T) {
	db, mock := newMockDB(t)
	dao := NewTrxLogDAO(db, util.NewValidationUtil())

	criteria := model.NewSearchCriteria()
	criteria.AddParam("objectName", "prod")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM x_trx_log WHERE object_name ILIKE '%' || $1 || '%' ESCAPE '\'`)).
		WithArgs("prod").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

	count, err := dao.GetTrxLogSearchCount(context.Background(), criteria)
	require.NoError(t, err)
	assert.Equal(t, int64(11), count.Value)
}
