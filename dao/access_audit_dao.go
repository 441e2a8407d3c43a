// dao/access_audit_dao.go
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

// IAccessAuditDAO persists access audits in the relational store.
type IAccessAuditDAO interface {
	GetAccessAudit(ctx context.Context, id int64) (*model.AccessAudit, error)
	CreateAccessAudit(ctx context.Context, audit model.AccessAudit) (*model.AccessAudit, error)
	UpdateAccessAudit(ctx context.Context, audit model.AccessAudit) (*model.AccessAudit, error)
	DeleteAccessAudit(ctx context.Context, id int64, force bool) error
	SearchAccessAudits(ctx context.Context, criteria *model.SearchCriteria) (*model.AccessAuditList, error)
	GetAccessAuditSearchCount(ctx context.Context, criteria *model.SearchCriteria) (*model.Count, error)
}

// AccessAuditSearchFields maps request parameters onto x_access_audit
// columns. Parameter names match the search-engine descriptors.
var AccessAuditSearchFields = []model.SearchField{
	{ClientFieldName: "accessType", FieldName: "access_type", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "aclEnforcer", FieldName: "acl_enforcer", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "agentId", FieldName: "agent_id", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "repoName", FieldName: "repo_name", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "sessionId", FieldName: "session_id", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "requestUser", FieldName: "request_user", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "requestData", FieldName: "request_data", DataType: model.DataTypeString, SearchType: model.SearchTypePartial},
	{ClientFieldName: "resourcePath", FieldName: "resource_path", DataType: model.DataTypeString, SearchType: model.SearchTypePartial},
	{ClientFieldName: "clientIP", FieldName: "client_ip", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "auditType", FieldName: "audit_type", DataType: model.DataTypeInteger, SearchType: model.SearchTypeFull},
	{ClientFieldName: "accessResult", FieldName: "access_result", DataType: model.DataTypeInteger, SearchType: model.SearchTypeFull},
	{ClientFieldName: "policyId", FieldName: "policy_id", DataType: model.DataTypeInteger, SearchType: model.SearchTypeFull},
	{ClientFieldName: "repoType", FieldName: "repo_type", DataType: model.DataTypeInteger, SearchType: model.SearchTypeFull},
	{ClientFieldName: "resourceType", FieldName: "resource_type", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "reason", FieldName: "result_reason", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "action", FieldName: "action", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "tags", FieldName: "tags", DataType: model.DataTypeString, SearchType: model.SearchTypePartial},
	{ClientFieldName: "startDate", FieldName: "event_time", DataType: model.DataTypeDate, SearchType: model.SearchTypeGreaterEqualThan},
	{ClientFieldName: "endDate", FieldName: "event_time", DataType: model.DataTypeDate, SearchType: model.SearchTypeLessEqualThan},
}

// AccessAuditSortFields maps sortBy values onto x_access_audit columns.
var AccessAuditSortFields = []model.SortField{
	{ParamName: "eventTime", FieldName: "event_time", IsDefault: true, DefaultOrder: model.SortDesc},
	{ParamName: "id", FieldName: "id"},
	{ParamName: "sequenceNumber", FieldName: "seq_num"},
	{ParamName: "policyId", FieldName: "policy_id"},
	{ParamName: "requestUser", FieldName: "request_user"},
	{ParamName: "resourceType", FieldName: "resource_type"},
	{ParamName: "accessType", FieldName: "access_type"},
	{ParamName: "action", FieldName: "action"},
	{ParamName: "aclEnforcer", FieldName: "acl_enforcer"},
}

const accessAuditColumns = `id, create_time, update_time, audit_type, access_result, access_type,
	acl_enforcer, agent_id, client_ip, client_type, policy_id, repo_name, repo_type, result_reason,
	session_id, event_time, request_user, action, request_data, resource_path, resource_type,
	seq_num, event_id, event_count, event_dur_ms, tags`

type AccessAuditDAO struct {
	DB             *sql.DB
	ValidationUtil *util.ValidationUtil
}

var _ IAccessAuditDAO = (*AccessAuditDAO)(nil)

func NewAccessAuditDAO(db *sql.DB, validationUtil *util.ValidationUtil) *AccessAuditDAO {
	return &AccessAuditDAO{DB: db, ValidationUtil: validationUtil}
}

func scanAccessAudit(row interface{ Scan(dest ...any) error }) (*model.AccessAudit, error) {
	var a model.AccessAudit
	err := row.Scan(
		&a.ID, &a.CreateDate, &a.UpdateDate, &a.AuditType, &a.AccessResult, &a.AccessType,
		&a.AclEnforcer, &a.AgentID, &a.ClientIP, &a.ClientType, &a.PolicyID, &a.RepoName, &a.RepoType, &a.ResultReason,
		&a.SessionID, &a.EventTime, &a.RequestUser, &a.Action, &a.RequestData, &a.ResourcePath, &a.ResourceType,
		&a.SequenceNumber, &a.EventID, &a.EventCount, &a.EventDuration, &a.Tags,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (dao *AccessAuditDAO) GetAccessAudit(ctx context.Context, id int64) (*model.AccessAudit, error) {
	row := dao.DB.QueryRowContext(ctx, "SELECT "+accessAuditColumns+" FROM x_access_audit WHERE id = $1", id)
	audit, err := scanAccessAudit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, xaudit_errors.ErrAccessAuditNotFound
	}
	if err != nil {
		logger.Error("Failed to get access audit", zap.Error(err), zap.Int64("accessAuditID", id))
		return nil, fmt.Errorf("%w: %v", xaudit_errors.ErrDatabaseOperation, err)
	}
	return audit, nil
}

func (dao *AccessAuditDAO) CreateAccessAudit(ctx context.Context, audit model.AccessAudit) (*model.AccessAudit, error) {
	if err := dao.ValidationUtil.ValidateAccessAudit(audit); err != nil {
		return nil, fmt.Errorf("%w: %v", xaudit_errors.ErrInvalidAccessAuditData, err)
	}

	now := time.Now().UTC()
	audit.CreateDate = now
	audit.UpdateDate = now

	err := dao.DB.QueryRowContext(ctx, `
		INSERT INTO x_access_audit (create_time, update_time, audit_type, access_result, access_type,
			acl_enforcer, agent_id, client_ip, client_type, policy_id, repo_name, repo_type, result_reason,
			session_id, event_time, request_user, action, request_data, resource_path, resource_type,
			seq_num, event_id, event_count, event_dur_ms, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25)
		RETURNING id`,
		audit.CreateDate, audit.UpdateDate, audit.AuditType, audit.AccessResult, audit.AccessType,
		audit.AclEnforcer, audit.AgentID, audit.ClientIP, audit.ClientType, audit.PolicyID, audit.RepoName, audit.RepoType, audit.ResultReason,
		audit.SessionID, audit.EventTime, audit.RequestUser, audit.Action, audit.RequestData, audit.ResourcePath, audit.ResourceType,
		audit.SequenceNumber, audit.EventID, audit.EventCount, audit.EventDuration, audit.Tags,
	).Scan(&audit.ID)
	if err != nil {
		logger.Error("Failed to create access audit", zap.Error(err), zap.String("eventID", audit.EventID))
		return nil, fmt.Errorf("%w: %v", xaudit_errors.ErrDatabaseOperation, err)
	}

	logger.Info("Access audit created", zap.Int64("accessAuditID", audit.ID))
	return &audit, nil
}

func (dao *AccessAuditDAO) UpdateAccessAudit(ctx context.Context, audit model.AccessAudit) (*model.AccessAudit, error) {
	if err := dao.ValidationUtil.ValidateAccessAudit(audit); err != nil {
		return nil, fmt.Errorf("%w: %v", xaudit_errors.ErrInvalidAccessAuditData, err)
	}

	audit.UpdateDate = time.Now().UTC()
	err := dao.DB.QueryRowContext(ctx, `
		UPDATE x_access_audit SET update_time = $2, audit_type = $3, access_result = $4, access_type = $5,
			acl_enforcer = $6, agent_id = $7, client_ip = $8, client_type = $9, policy_id = $10, repo_name = $11,
			repo_type = $12, result_reason = $13, session_id = $14, event_time = $15, request_user = $16,
			action = $17, request_data = $18, resource_path = $19, resource_type = $20, seq_num = $21,
			event_id = $22, event_count = $23, event_dur_ms = $24, tags = $25
		WHERE id = $1
		RETURNING create_time`,
		audit.ID, audit.UpdateDate, audit.AuditType, audit.AccessResult, audit.AccessType,
		audit.AclEnforcer, audit.AgentID, audit.ClientIP, audit.ClientType, audit.PolicyID, audit.RepoName,
		audit.RepoType, audit.ResultReason, audit.SessionID, audit.EventTime, audit.RequestUser,
		audit.Action, audit.RequestData, audit.ResourcePath, audit.ResourceType, audit.SequenceNumber,
		audit.EventID, audit.EventCount, audit.EventDuration, audit.Tags,
	).Scan(&audit.CreateDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, xaudit_errors.ErrAccessAuditNotFound
	}
	if err != nil {
		logger.Error("Failed to update access audit", zap.Error(err), zap.Int64("accessAuditID", audit.ID))
		return nil, fmt.Errorf("%w: %v", xaudit_errors.ErrDatabaseOperation, err)
	}
	return &audit, nil
}

// DeleteAccessAudit removes an access audit. Without force a missing row is
// reported as not found.
func (dao *AccessAuditDAO) DeleteAccessAudit(ctx context.Context, id int64, force bool) error {
	res, err := dao.DB.ExecContext(ctx, "DELETE FROM x_access_audit WHERE id = $1", id)
	if err != nil {
		logger.Error("Failed to delete access audit", zap.Error(err), zap.Int64("accessAuditID", id))
		return fmt.Errorf("%w: %v", xaudit_errors.ErrDatabaseOperation, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", xaudit_errors.ErrDatabaseOperation, err)
	}
	if n == 0 && !force {
		return xaudit_errors.ErrAccessAuditNotFound
	}
	return nil
}

func (dao *AccessAuditDAO) SearchAccessAudits(ctx context.Context, criteria *model.SearchCriteria) (*model.AccessAuditList, error) {
	total, err := dao.count(ctx, criteria)
	if err != nil {
		return nil, err
	}

	q := buildWhere(criteria, AccessAuditSearchFields)
	query := "SELECT " + accessAuditColumns + " FROM x_access_audit" + q.whereSQL() +
		buildOrderBy(criteria, AccessAuditSortFields) + q.pageSQL(criteria)

	logger.Debug("Search access audits query", zap.String("query", query), zap.Any("args", q.args))
	rows, err := dao.DB.QueryContext(ctx, query, q.args...)
	if err != nil {
		logger.Error("Failed to search access audits", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", xaudit_errors.ErrDatabaseOperation, err)
	}
	defer rows.Close()

	audits := make([]*model.AccessAudit, 0)
	for rows.Next() {
		audit, err := scanAccessAudit(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", xaudit_errors.ErrDatabaseOperation, err)
		}
		audits = append(audits, audit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", xaudit_errors.ErrDatabaseOperation, err)
	}

	return &model.AccessAuditList{
		ListMeta:     model.NewListMeta(criteria, total, len(audits)),
		AccessAudits: audits,
	}, nil
}

func (dao *AccessAuditDAO) GetAccessAuditSearchCount(ctx context.Context, criteria *model.SearchCriteria) (*model.Count, error) {
	total, err := dao.count(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return &model.Count{Value: total}, nil
}

func (dao *AccessAuditDAO) count(ctx context.Context, criteria *model.SearchCriteria) (int64, error) {
	q := buildWhere(criteria, AccessAuditSearchFields)
	var total int64
	if err := dao.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM x_access_audit"+q.whereSQL(), q.args...).Scan(&total); err != nil {
		logger.Error("Failed to count access audits", zap.Error(err))
		return 0, fmt.Errorf("%w: %v", xaudit_errors.ErrDatabaseOperation, err)
	}
	return total, nil
}
