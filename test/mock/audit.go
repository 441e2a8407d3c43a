// test/mock/audit.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/echo-xaudit/model"
)

// MockTrxLogDAO is a mock implementation of dao.ITrxLogDAO
type MockTrxLogDAO struct {
	mock.Mock
}

func (m *MockTrxLogDAO) GetTrxLog(ctx context.Context, id int64) (*model.TrxLog, error) {
	args := m.Called(ctx, id)
	return trxLog(args.Get(0)), args.Error(1)
}

func (m *MockTrxLogDAO) CreateTrxLog(ctx context.Context, t model.TrxLog) (*model.TrxLog, error) {
	args := m.Called(ctx, t)
	return trxLog(args.Get(0)), args.Error(1)
}

func (m *MockTrxLogDAO) UpdateTrxLog(ctx context.Context, t model.TrxLog) (*model.TrxLog, error) {
	args := m.Called(ctx, t)
	return trxLog(args.Get(0)), args.Error(1)
}

func (m *MockTrxLogDAO) DeleteTrxLog(ctx context.Context, id int64, force bool) error {
	args := m.Called(ctx, id, force)
	return args.Error(0)
}

func (m *MockTrxLogDAO) SearchTrxLogs(ctx context.Context, criteria *model.SearchCriteria) (*model.TrxLogList, error) {
	args := m.Called(ctx, criteria)
	list, _ := args.Get(0).(*model.TrxLogList)
	return list, args.Error(1)
}

func (m *MockTrxLogDAO) GetTrxLogSearchCount(ctx context.Context, criteria *model.SearchCriteria) (*model.Count, error) {
	args := m.Called(ctx, criteria)
	return count(args.Get(0)), args.Error(1)
}

// MockAccessAuditDAO is a mock implementation of dao.IAccessAuditDAO
type MockAccessAuditDAO struct {
	mock.Mock
}

func (m *MockAccessAuditDAO) GetAccessAudit(ctx context.Context, id int64) (*model.AccessAudit, error) {
	args := m.Called(ctx, id)
	return accessAudit(args.Get(0)), args.Error(1)
}

func (m *MockAccessAuditDAO) CreateAccessAudit(ctx context.Context, a model.AccessAudit) (*model.AccessAudit, error) {
	args := m.Called(ctx, a)
	return accessAudit(args.Get(0)), args.Error(1)
}

func (m *MockAccessAuditDAO) UpdateAccessAudit(ctx context.Context, a model.AccessAudit) (*model.AccessAudit, error) {
	args := m.Called(ctx, a)
	return accessAudit(args.Get(0)), args.Error(1)
}

func (m *MockAccessAuditDAO) DeleteAccessAudit(ctx context.Context, id int64, force bool) error {
	args := m.Called(ctx, id, force)
	return args.Error(0)
}

func (m *MockAccessAuditDAO) SearchAccessAudits(ctx context.Context, criteria *model.SearchCriteria) (*model.AccessAuditList, error) {
	args := m.Called(ctx, criteria)
	return accessAuditList(args.Get(0)), args.Error(1)
}

func (m *MockAccessAuditDAO) GetAccessAuditSearchCount(ctx context.Context, criteria *model.SearchCriteria) (*model.Count, error) {
	args := m.Called(ctx, criteria)
	return count(args.Get(0)), args.Error(1)
}

// MockAccessAuditSearcher is a mock implementation of search.IAccessAuditSearcher
type MockAccessAuditSearcher struct {
	mock.Mock
}

func (m *MockAccessAuditSearcher) SearchAccessAudits(ctx context.Context, criteria *model.SearchCriteria) (*model.AccessAuditList, error) {
	args := m.Called(ctx, criteria)
	return accessAuditList(args.Get(0)), args.Error(1)
}

func (m *MockAccessAuditSearcher) GetAccessAuditSearchCount(ctx context.Context, criteria *model.SearchCriteria) (*model.Count, error) {
	args := m.Called(ctx, criteria)
	return count(args.Get(0)), args.Error(1)
}

// MockAccessAuditIndexer is a mock implementation of search.IAccessAuditIndexer
type MockAccessAuditIndexer struct {
	mock.Mock
}

func (m *MockAccessAuditIndexer) IndexAccessAudit(ctx context.Context, a *model.AccessAudit) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func trxLog(v any) *model.TrxLog {
	t, _ := v.(*model.TrxLog)
	return t
}

func accessAudit(v any) *model.AccessAudit {
	a, _ := v.(*model.AccessAudit)
	return a
}

func accessAuditList(v any) *model.AccessAuditList {
	l, _ := v.(*model.AccessAuditList)
	return l
}

func count(v any) *model.Count {
	c, _ := v.(*model.Count)
	return c
}
