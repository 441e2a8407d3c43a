// dao/trx_log_dao.go
package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	xaudit_errors "github.com/dev-mohitbeniwal/echo-xaudit/errors"
	logger "github.com/dev-mohitbeniwal/echo-xaudit/logging"
	"github.com/dev-mohitbeniwal/echo-xaudit/model"
	"github.com/dev-mohitbeniwal/echo-xaudit/util"
)

// ITrxLogDAO persists transaction logs.
type ITrxLogDAO interface {
	GetTrxLog(ctx context.Context, id int64) (*model.TrxLog, error)
	CreateTrxLog(ctx context.Context, trxLog model.TrxLog) (*model.TrxLog, error)
	UpdateTrxLog(ctx context.Context, trxLog model.TrxLog) (*model.TrxLog, error)
	DeleteTrxLog(ctx context.Context, id int64, force bool) error
	SearchTrxLogs(ctx context.Context, criteria *model.SearchCriteria) (*model.TrxLogList, error)
	GetTrxLogSearchCount(ctx context.Context, criteria *model.SearchCriteria) (*model.Count, error)
}

// TrxLogSearchFields maps request parameters onto x_trx_log columns.
var TrxLogSearchFields = []model.SearchField{
	{ClientFieldName: "attributeName", FieldName: "attr_name", DataType: model.DataTypeString, SearchType: model.SearchTypePartial},
	{ClientFieldName: "action", FieldName: "action", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "sessionId", FieldName: "sess_id", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "transactionId", FieldName: "trx_id", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "owner", FieldName: "added_by", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "objectClassType", FieldName: "class_type", DataType: model.DataTypeInteger, SearchType: model.SearchTypeFull},
	{ClientFieldName: "objectId", FieldName: "object_id", DataType: model.DataTypeInteger, SearchType: model.SearchTypeFull},
	{ClientFieldName: "objectName", FieldName: "object_name", DataType: model.DataTypeString, SearchType: model.SearchTypePartial},
	{ClientFieldName: "startDate", FieldName: "create_time", DataType: model.DataTypeDate, SearchType: model.SearchTypeGreaterEqualThan},
	{ClientFieldName: "endDate", FieldName: "create_time", DataType: model.DataTypeDate, SearchType: model.SearchTypeLessEqualThan},
}

// TrxLogSortFields maps sortBy values onto x_trx_log columns.
var TrxLogSortFields = []model.SortField{
	{ParamName: "createDate", FieldName: "create_time", IsDefault: true, DefaultOrder: model.SortDesc},
	{ParamName: "id", FieldName: "id"},
	{ParamName: "action", FieldName: "action"},
	{ParamName: "objectClassType", FieldName: "class_type"},
}

const trxLogColumns = `id, create_time, update_time, added_by, upd_by, class_type, object_id,
	parent_object_id, parent_object_class_type, parent_object_name, object_name, attr_name,
	prev_val, new_val, trx_id, action, sess_id, req_id, sess_type`

type TrxLogDAO struct {
	DB             *sql.DB
	ValidationUtil *util.ValidationUtil
}

var _ ITrxLogDAO = (*TrxLogDAO)(nil)

func NewTrxLogDAO(db *sql.DB, validationUtil *util.ValidationUtil) *TrxLogDAO {
	return &TrxLogDAO{DB: db, ValidationUtil: validationUtil}
}

func scanTrxLog(row interface{ Scan(dest ...any) error }) (*model.TrxLog, error) {
	var t model.TrxLog
	err := row.Scan(
		&t.ID, &t.CreateDate, &t.UpdateDate, &t.Owner, &t.UpdatedBy, &t.ObjectClassType, &t.ObjectID,
		&t.ParentObjectID, &t.ParentObjectClassType, &t.ParentObjectName, &t.ObjectName, &t.AttributeName,
		&t.PreviousValue, &t.NewValue, &t.TransactionID, &t.Action, &t.SessionID, &t.RequestID, &t.SessionType,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (dao *TrxLogDAO) GetTrxLog(ctx context.Context, id int64) (*model.TrxLog, error) {
	row := dao.DB.QueryRowContext(ctx, "SELECT "+trxLogColumns+" FROM x_trx_log WHERE id = $1", id)
	trxLog, err := scanTrxLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, xaudit_errors.ErrTrxLogNotFound
	}
	if err != nil {
		logger.Error("Failed to get transaction log", zap.Error(err), zap.Int64("trxLogID", id))
		return nil, fmt.Errorf("%w: %v", xaudit_errors.ErrDatabaseOperation, err)
	}
	return trxLog, nil
}

func (dao *TrxLogDAO) CreateTrxLog(ctx context.Context, trxLog model.TrxLog) (*model.TrxLog, error) {
	if err := dao.ValidationUtil.ValidateTrxLog(trxLog); err != nil {
		return nil, fmt.Errorf("%w: %v", xaudit_errors.ErrInvalidTrxLogData, err)
	}

	now := time.Now().UTC()
	trxLog.CreateDate = now
	trxLog.UpdateDate = now

	err := dao.DB.QueryRowContext(ctx, `
		INSERT INTO x_trx_log (create_time, update_time, added_by, upd_by, class_type, object_id,
			parent_object_id, parent_object_class_type, parent_object_name, object_name, attr_name,
			prev_val, new_val, trx_id, action, sess_id, req_id, sess_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id`,
		trxLog.CreateDate, trxLog.UpdateDate, trxLog.Owner, trxLog.UpdatedBy, trxLog.ObjectClassType, trxLog.ObjectID,
		trxLog.ParentObjectID, trxLog.ParentObjectClassType, trxLog.ParentObjectName, trxLog.ObjectName, trxLog.AttributeName,
		trxLog.PreviousValue, trxLog.NewValue, trxLog.TransactionID, trxLog.Action, trxLog.SessionID, trxLog.RequestID, trxLog.SessionType,
	).Scan(&trxLog.ID)
	if err != nil {
		logger.Error("Failed to create transaction log", zap.Error(err), zap.String("trxID", trxLog.TransactionID))
		return nil, fmt.Errorf("%w: %v", xaudit_errors.ErrDatabaseOperation, err)
	}

	logger.Info("Transaction log created", zap.Int64("trxLogID", trxLog.ID))
	return &trxLog, nil
}

func (dao *TrxLogDAO) UpdateTrxLog(ctx context.Context, trxLog model.TrxLog) (*model.TrxLog, error) {
	if err := dao.ValidationUtil.ValidateTrxLog(trxLog); err != nil {
		return nil, fmt.Errorf("%w: %v", xaudit_errors.ErrInvalidTrxLogData, err)
	}

	trxLog.UpdateDate = time.Now().UTC()
	err := dao.DB.QueryRowContext(ctx, `
		UPDATE x_trx_log SET update_time = $2, upd_by = $3, class_type = $4, object_id = $5,
			parent_object_id = $6, parent_object_class_type = $7, parent_object_name = $8, object_name = $9,
			attr_name = $10, prev_val = $11, new_val = $12, trx_id = $13, action = $14, sess_id = $15,
			req_id = $16, sess_type = $17
		WHERE id = $1
		RETURNING create_time, added_by`,
		trxLog.ID, trxLog.UpdateDate, trxLog.UpdatedBy, trxLog.ObjectClassType, trxLog.ObjectID,
		trxLog.ParentObjectID, trxLog.ParentObjectClassType, trxLog.ParentObjectName, trxLog.ObjectName,
		trxLog.AttributeName, trxLog.PreviousValue, trxLog.NewValue, trxLog.TransactionID, trxLog.Action, trxLog.SessionID,
		trxLog.RequestID, trxLog.SessionType,
	).Scan(&trxLog.CreateDate, &trxLog.Owner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, xaudit_errors.ErrTrxLogNotFound
	}
	if err != nil {
		logger.Error("Failed to update transaction log", zap.Error(err), zap.Int64("trxLogID", trxLog.ID))
		return nil, fmt.Errorf("%w: %v", xaudit_errors.ErrDatabaseOperation, err)
	}
	return &trxLog, nil
}

// DeleteTrxLog removes a transaction log. Without force a missing row is
// reported as not found.
func (dao *TrxLogDAO) DeleteTrxLog(ctx context.Context, id int64, force bool) error {
	res, err := dao.DB.ExecContext(ctx, "DELETE FROM x_trx_log WHERE id = $1", id)
	if err != nil {
		logger.Error("Failed to delete transaction log", zap.Error(err), zap.Int64("trxLogID", id))
		return fmt.Errorf("%w: %v", xaudit_errors.ErrDatabaseOperation, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", xaudit_errors.ErrDatabaseOperation, err)
	}
	if n == 0 && !force {
		return xaudit_errors.ErrTrxLogNotFound
	}
	return nil
}

func (dao *TrxLogDAO) SearchTrxLogs(ctx context.Context, criteria *model.SearchCriteria) (*model.TrxLogList, error) {
	total, err := dao.count(ctx, criteria)
	if err != nil {
		return nil, err
	}

	q := buildWhere(criteria, TrxLogSearchFields)
	query := "SELECT " + trxLogColumns + " FROM x_trx_log" + q.whereSQL() +
		buildOrderBy(criteria, TrxLogSortFields) + q.pageSQL(criteria)

	logger.Debug("Search transaction logs query", zap.String("query", query), zap.Any("args", q.args))
	rows, err := dao.DB.QueryContext(ctx, query, q.args...)
	if err != nil {
		logger.Error("Failed to search transaction logs", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", xaudit_errors.ErrDatabaseOperation, err)
	}
	defer rows.Close()

	trxLogs := make([]*model.TrxLog, 0)
	for rows.Next() {
		trxLog, err := scanTrxLog(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", xaudit_errors.ErrDatabaseOperation, err)
		}
		trxLogs = append(trxLogs, trxLog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", xaudit_errors.ErrDatabaseOperation, err)
	}

	return &model.TrxLogList{
		ListMeta: model.NewListMeta(criteria, total, len(trxLogs)),
		TrxLogs:  trxLogs,
	}, nil
}

func (dao *TrxLogDAO) GetTrxLogSearchCount(ctx context.Context, criteria *model.SearchCriteria) (*model.Count, error) {
	total, err := dao.count(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return &model.Count{Value: total}, nil
}

func (dao *TrxLogDAO) count(ctx context.Context, criteria *model.SearchCriteria) (int64, error) {
	q := buildWhere(criteria, TrxLogSearchFields)
	var total int64
	if err := dao.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM x_trx_log"+q.whereSQL(), q.args...).Scan(&total); err != nil {
		logger.Error("Failed to count transaction logs", zap.Error(err))
		return 0, fmt.Errorf("%w: %v", xaudit_errors.ErrDatabaseOperation, err)
	}
	return total, nil
}
