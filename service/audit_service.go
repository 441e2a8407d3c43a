package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/echo-xaudit/config"
	"github.com/dev-mohitbeniwal/echo-xaudit/dao"
	xaudit_errors "github.com/dev-mohitbeniwal/echo-xaudit/errors"
	logger "github.com/dev-mohitbeniwal/echo-xaudit/logging"
	"github.com/dev-mohitbeniwal/echo-xaudit/model"
	"github.com/dev-mohitbeniwal/echo-xaudit/search"
)

// IAuditService is the admin-only facade over transaction logs and access
// audits.
type IAuditService interface {
	CheckAdminAccess(ctx context.Context) error

	GetTrxLog(ctx context.Context, id int64) (*model.TrxLog, error)
	CreateTrxLog(ctx context.Context, trxLog model.TrxLog) (*model.TrxLog, error)
	UpdateTrxLog(ctx context.Context, trxLog model.TrxLog) (*model.TrxLog, error)
	DeleteTrxLog(ctx context.Context, id int64, force bool) error
	SearchTrxLogs(ctx context.Context, criteria *model.SearchCriteria) (*model.TrxLogList, error)
	GetTrxLogSearchCount(ctx context.Context, criteria *model.SearchCriteria) (*model.Count, error)

	GetAccessAudit(ctx context.Context, id int64) (*model.AccessAudit, error)
	CreateAccessAudit(ctx context.Context, audit model.AccessAudit) (*model.AccessAudit, error)
	UpdateAccessAudit(ctx context.Context, audit model.AccessAudit) (*model.AccessAudit, error)
	DeleteAccessAudit(ctx context.Context, id int64, force bool) error
	SearchAccessAudits(ctx context.Context, criteria *model.SearchCriteria) (*model.AccessAuditList, error)
	GetAccessAuditSearchCount(ctx context.Context, criteria *model.SearchCriteria) (*model.Count, error)
}

// AuditService checks the caller's session before every operation and
// then delegates to the relational store, or for access-audit search and
// count, to the backend selected by auditStore.
type AuditService struct {
	trxLogDAO      dao.ITrxLogDAO
	accessAuditDAO dao.IAccessAuditDAO
	searcher       search.IAccessAuditSearcher
	indexer        search.IAccessAuditIndexer
	auditStore     config.AuditStore
}

var _ IAuditService = (*AuditService)(nil)

// NewAuditService creates the facade. searcher and indexer may be nil when
// auditStore is config.AuditStoreDB.
func NewAuditService(
	trxLogDAO dao.ITrxLogDAO,
	accessAuditDAO dao.IAccessAuditDAO,
	searcher search.IAccessAuditSearcher,
	indexer search.IAccessAuditIndexer,
	auditStore config.AuditStore,
) *AuditService {
	logger.Info("Audit service initialized", zap.Stringer("auditStore", auditStore))
	return &AuditService{
		trxLogDAO:      trxLogDAO,
		accessAuditDAO: accessAuditDAO,
		searcher:       searcher,
		indexer:        indexer,
		auditStore:     auditStore,
	}
}

// CheckAdminAccess fails with an unauthorized error when ctx carries no
// session and with a forbidden error when the session is not an admin.
func (s *AuditService) CheckAdminAccess(ctx context.Context) error {
	session := model.SessionFromContext(ctx)
	if session == nil {
		logger.Warn("Audit operation without a session")
		return xaudit_errors.NewUnauthorizedError("Bad Credentials")
	}
	if !session.UserAdmin {
		logger.Warn("Audit operation denied", zap.String("loginID", session.LoginID), zap.String("userID", session.UserID))
		return xaudit_errors.NewForbiddenError(fmt.Sprintf(
			"Operation denied. LoggedInUser=%s ,isn't permitted to perform the action.", loggedInUser(session)))
	}
	return nil
}

func loggedInUser(session *model.UserSession) string {
	if session.UserID != "" {
		return session.UserID
	}
	return session.LoginID
}

func (s *AuditService) GetTrxLog(ctx context.Context, id int64) (*model.TrxLog, error) {
	if err := s.CheckAdminAccess(ctx); err != nil {
		return nil, err
	}
	return s.trxLogDAO.GetTrxLog(ctx, id)
}

func (s *AuditService) CreateTrxLog(ctx context.Context, trxLog model.TrxLog) (*model.TrxLog, error) {
	if err := s.CheckAdminAccess(ctx); err != nil {
		return nil, err
	}
	return s.trxLogDAO.CreateTrxLog(ctx, trxLog)
}

func (s *AuditService) UpdateTrxLog(ctx context.Context, trxLog model.TrxLog) (*model.TrxLog, error) {
	if err := s.CheckAdminAccess(ctx); err != nil {
		return nil, err
	}
	return s.trxLogDAO.UpdateTrxLog(ctx, trxLog)
}

func (s *AuditService) DeleteTrxLog(ctx context.Context, id int64, force bool) error {
	if err := s.CheckAdminAccess(ctx); err != nil {
		return err
	}
	return s.trxLogDAO.DeleteTrxLog(ctx, id, force)
}

func (s *AuditService) SearchTrxLogs(ctx context.Context, criteria *model.SearchCriteria) (*model.TrxLogList, error) {
	if err := s.CheckAdminAccess(ctx); err != nil {
		return nil, err
	}
	return s.trxLogDAO.SearchTrxLogs(ctx, criteria)
}

func (s *AuditService) GetTrxLogSearchCount(ctx context.Context, criteria *model.SearchCriteria) (*model.Count, error) {
	if err := s.CheckAdminAccess(ctx); err != nil {
		return nil, err
	}
	return s.trxLogDAO.GetTrxLogSearchCount(ctx, criteria)
}

func (s *AuditService) GetAccessAudit(ctx context.Context, id int64) (*model.AccessAudit, error) {
	if err := s.CheckAdminAccess(ctx); err != nil {
		return nil, err
	}
	return s.accessAuditDAO.GetAccessAudit(ctx, id)
}

// CreateAccessAudit stores audit in the relational store. With the search
// engine selected the new row is also indexed; an indexing failure is
// logged and does not fail the request.
func (s *AuditService) CreateAccessAudit(ctx context.Context, audit model.AccessAudit) (*model.AccessAudit, error) {
	if err := s.CheckAdminAccess(ctx); err != nil {
		return nil, err
	}
	created, err := s.accessAuditDAO.CreateAccessAudit(ctx, audit)
	if err != nil {
		return nil, err
	}
	s.index(ctx, created)
	return created, nil
}

func (s *AuditService) UpdateAccessAudit(ctx context.Context, audit model.AccessAudit) (*model.AccessAudit, error) {
	if err := s.CheckAdminAccess(ctx); err != nil {
		return nil, err
	}
	updated, err := s.accessAuditDAO.UpdateAccessAudit(ctx, audit)
	if err != nil {
		return nil, err
	}
	s.index(ctx, updated)
	return updated, nil
}

func (s *AuditService) DeleteAccessAudit(ctx context.Context, id int64, force bool) error {
	if err := s.CheckAdminAccess(ctx); err != nil {
		return err
	}
	return s.accessAuditDAO.DeleteAccessAudit(ctx, id, force)
}

func (s *AuditService) SearchAccessAudits(ctx context.Context, criteria *model.SearchCriteria) (*model.AccessAuditList, error) {
	if err := s.CheckAdminAccess(ctx); err != nil {
		return nil, err
	}
	if s.auditStore == config.AuditStoreSolr {
		if s.searcher == nil {
			return nil, errSearchEngineMissing
		}
		return s.searcher.SearchAccessAudits(ctx, criteria)
	}
	return s.accessAuditDAO.SearchAccessAudits(ctx, criteria)
}

func (s *AuditService) GetAccessAuditSearchCount(ctx context.Context, criteria *model.SearchCriteria) (*model.Count, error) {
	if err := s.CheckAdminAccess(ctx); err != nil {
		return nil, err
	}
	if s.auditStore == config.AuditStoreSolr {
		if s.searcher == nil {
			return nil, errSearchEngineMissing
		}
		return s.searcher.GetAccessAuditSearchCount(ctx, criteria)
	}
	return s.accessAuditDAO.GetAccessAuditSearchCount(ctx, criteria)
}

var errSearchEngineMissing = xaudit_errors.NewSystemError("Search engine is not configured", nil)

func (s *AuditService) index(ctx context.Context, audit *model.AccessAudit) {
	if s.auditStore != config.AuditStoreSolr || s.indexer == nil {
		return
	}
	if err := s.indexer.IndexAccessAudit(ctx, audit); err != nil {
		logger.Warn("Access audit stored but not indexed", zap.Error(err), zap.Int64("accessAuditID", audit.ID))
	}
}
