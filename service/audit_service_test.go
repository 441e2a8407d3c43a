package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/echo-xaudit/config"
	xaudit_errors "github.com/dev-mohitbeniwal/echo-xaudit/errors"
	"github.com/dev-mohitbeniwal/echo-xaudit/model"
	"github.com/dev-mohitbeniwal/echo-xaudit/search"
	"github.com/dev-mohitbeniwal/echo-xaudit/service"
	mocks "github.com/dev-mohitbeniwal/echo-xaudit/test/mock"
)

type fixture struct {
	trxLogs  *mocks.MockTrxLogDAO
	audits   *mocks.MockAccessAuditDAO
	searcher *mocks.MockAccessAuditSearcher
	indexer  *mocks.MockAccessAuditIndexer
	svc      *service.AuditService
}

func newFixture(t *testing.T, store config.AuditStore) *fixture {
	f := &fixture{
		trxLogs:  &mocks.MockTrxLogDAO{},
		audits:   &mocks.MockAccessAuditDAO{},
		searcher: &mocks.MockAccessAuditSearcher{},
		indexer:  &mocks.MockAccessAuditIndexer{},
	}
	f.svc = service.NewAuditService(f.trxLogs, f.audits, f.searcher, f.indexer, store)
	t.Cleanup(func() {
		f.trxLogs.AssertExpectations(t)
		f.audits.AssertExpectations(t)
		f.searcher.AssertExpectations(t)
		f.indexer.AssertExpectations(t)
	})
	return f
}

func adminCtx() context.Context {
	return model.WithSession(context.Background(), &model.UserSession{UserID: "1", LoginID: "admin", UserAdmin: true})
}

func userCtx() context.Context {
	return model.WithSession(context.Background(), &model.UserSession{UserID: "42", LoginID: "alice"})
}

func TestCheckAdminAccess(t *testing.T) {
	f := newFixture(t, config.AuditStoreDB)

	err := f.svc.CheckAdminAccess(context.Background())
	var statusErr *xaudit_errors.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, "Bad Credentials", statusErr.Message)
	assert.ErrorIs(t, err, xaudit_errors.ErrUnauthorized)

	err = f.svc.CheckAdminAccess(userCtx())
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Contains(t, statusErr.Message, "LoggedInUser=42")
	assert.ErrorIs(t, err, xaudit_errors.ErrForbidden)

	assert.NoError(t, f.svc.CheckAdminAccess(adminCtx()))
}

func TestForbiddenMessageFallsBackToLoginID(t *testing.T) {
	f := newFixture(t, config.AuditStoreDB)
	ctx := model.WithSession(context.Background(), &model.UserSession{LoginID: "bob"})

	err := f.svc.CheckAdminAccess(ctx)
	assert.EqualError(t, err, "Operation denied. LoggedInUser=bob ,isn't permitted to perform the action.")
}

// Every operation must be rejected before reaching a backend. The mocks have
// no expectations, so any delegation fails the test.
func TestEveryOperationIsGuarded(t *testing.T) {
	criteria := model.NewSearchCriteria()
	ops := map[string]func(s *service.AuditService, ctx context.Context) error{
		"GetTrxLog": func(s *service.AuditService, ctx context.Context) error {
			_, err := s.GetTrxLog(ctx, 1)
			return err
		},
		"CreateTrxLog": func(s *service.AuditService, ctx context.Context) error {
			_, err := s.CreateTrxLog(ctx, model.TrxLog{})
			return err
		},
		"UpdateTrxLog": func(s *service.AuditService, ctx context.Context) error {
			_, err := s.UpdateTrxLog(ctx, model.TrxLog{})
			return err
		},
		"DeleteTrxLog": func(s *service.AuditService, ctx context.Context) error {
			return s.DeleteTrxLog(ctx, 1, false)
		},
		"SearchTrxLogs": func(s *service.AuditService, ctx context.Context) error {
			_, err := s.SearchTrxLogs(ctx, criteria)
			return err
		},
		"GetTrxLogSearchCount": func(s *service.AuditService, ctx context.Context) error {
			_, err := s.GetTrxLogSearchCount(ctx, criteria)
			return err
		},
		"GetAccessAudit": func(s *service.AuditService, ctx context.Context) error {
			_, err := s.GetAccessAudit(ctx, 1)
			return err
		},
		"CreateAccessAudit": func(s *service.AuditService, ctx context.Context) error {
			_, err := s.CreateAccessAudit(ctx, model.AccessAudit{})
			return err
		},
		"UpdateAccessAudit": func(s *service.AuditService, ctx context.Context) error {
			_, err := s.UpdateAccessAudit(ctx, model.AccessAudit{})
			return err
		},
		"DeleteAccessAudit": func(s *service.AuditService, ctx context.Context) error {
			return s.DeleteAccessAudit(ctx, 1, true)
		},
		"SearchAccessAudits": func(s *service.AuditService, ctx context.Context) error {
			_, err := s.SearchAccessAudits(ctx, criteria)
			return err
		},
		"GetAccessAuditSearchCount": func(s *service.AuditService, ctx context.Context) error {
			_, err := s.GetAccessAuditSearchCount(ctx, criteria)
			return err
		},
	}

	for _, store := range []config.AuditStore{config.AuditStoreDB, config.AuditStoreSolr} {
		f := newFixture(t, store)
		for name, op := range ops {
			assert.ErrorIs(t, op(f.svc, context.Background()), xaudit_errors.ErrUnauthorized, "%s/%s", store, name)
			assert.ErrorIs(t, op(f.svc, userCtx()), xaudit_errors.ErrForbidden, "%s/%s", store, name)
		}
	}
}

func TestTrxLogOperationsDelegate(t *testing.T) {
	f := newFixture(t, config.AuditStoreSolr)
	ctx := adminCtx()
	criteria := model.NewSearchCriteria()
	trxLog := model.TrxLog{ID: 3, Action: "update"}

	f.trxLogs.On("GetTrxLog", ctx, int64(3)).Return(&trxLog, nil).Once()
	f.trxLogs.On("CreateTrxLog", ctx, trxLog).Return(&trxLog, nil).Once()
	f.trxLogs.On("UpdateTrxLog", ctx, trxLog).Return(&trxLog, nil).Once()
	f.trxLogs.On("DeleteTrxLog", ctx, int64(3), true).Return(nil).Once()
	f.trxLogs.On("SearchTrxLogs", ctx, criteria).Return(&model.TrxLogList{TrxLogs: []*model.TrxLog{&trxLog}}, nil).Once()
	f.trxLogs.On("GetTrxLogSearchCount", ctx, criteria).Return(&model.Count{Value: 1}, nil).Once()

	got, err := f.svc.GetTrxLog(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, &trxLog, got)
	_, err = f.svc.CreateTrxLog(ctx, trxLog)
	require.NoError(t, err)
	_, err = f.svc.UpdateTrxLog(ctx, trxLog)
	require.NoError(t, err)
	require.NoError(t, f.svc.DeleteTrxLog(ctx, 3, true))
	list, err := f.svc.SearchTrxLogs(ctx, criteria)
	require.NoError(t, err)
	assert.Len(t, list.TrxLogs, 1)
	count, err := f.svc.GetTrxLogSearchCount(ctx, criteria)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Value)
}

func TestDelegateErrorsPassThroughUnchanged(t *testing.T) {
	f := newFixture(t, config.AuditStoreDB)
	ctx := adminCtx()

	f.trxLogs.On("GetTrxLog", ctx, int64(9)).Return(nil, xaudit_errors.ErrTrxLogNotFound).Once()
	_, err := f.svc.GetTrxLog(ctx, 9)
	assert.Equal(t, xaudit_errors.ErrTrxLogNotFound, err)
}

func TestAccessAuditSearchRoutesToDatabase(t *testing.T) {
	f := newFixture(t, config.AuditStoreDB)
	ctx := adminCtx()
	criteria := model.NewSearchCriteria()

	f.audits.On("SearchAccessAudits", ctx, criteria).Return(&model.AccessAuditList{}, nil).Once()
	f.audits.On("GetAccessAuditSearchCount", ctx, criteria).Return(&model.Count{Value: 5}, nil).Once()

	_, err := f.svc.SearchAccessAudits(ctx, criteria)
	require.NoError(t, err)
	count, err := f.svc.GetAccessAuditSearchCount(ctx, criteria)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count.Value)
	f.searcher.AssertNotCalled(t, "SearchAccessAudits", mock.Anything, mock.Anything)
}

func TestAccessAuditSearchRoutesToSearchEngine(t *testing.T) {
	f := newFixture(t, config.AuditStoreSolr)
	ctx := adminCtx()
	criteria := model.NewSearchCriteria()

	f.searcher.On("SearchAccessAudits", ctx, criteria).Return(&model.AccessAuditList{}, nil).Once()
	f.searcher.On("GetAccessAuditSearchCount", ctx, criteria).Return(&model.Count{Value: 7}, nil).Once()

	_, err := f.svc.SearchAccessAudits(ctx, criteria)
	require.NoError(t, err)
	count, err := f.svc.GetAccessAuditSearchCount(ctx, criteria)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count.Value)
	f.audits.AssertNotCalled(t, "SearchAccessAudits", mock.Anything, mock.Anything)
}

func TestSearchEngineMissing(t *testing.T) {
	svc := service.NewAuditService(&mocks.MockTrxLogDAO{}, &mocks.MockAccessAuditDAO{}, nil, nil, config.AuditStoreSolr)

	_, err := svc.SearchAccessAudits(adminCtx(), model.NewSearchCriteria())
	assert.ErrorIs(t, err, xaudit_errors.ErrSystem)
	_, err = svc.GetAccessAuditSearchCount(adminCtx(), model.NewSearchCriteria())
	assert.ErrorIs(t, err, xaudit_errors.ErrSystem)
}

func TestCreateAccessAuditIndexesOnlyForSearchEngine(t *testing.T) {
	audit := model.AccessAudit{RepoName: "hdfs", RequestUser: "alice"}
	stored := audit
	stored.ID = 12

	t.Run("search engine", func(t *testing.T) {
		f := newFixture(t, config.AuditStoreSolr)
		ctx := adminCtx()
		f.audits.On("CreateAccessAudit", ctx, audit).Return(&stored, nil).Once()
		f.indexer.On("IndexAccessAudit", ctx, &stored).Return(errors.New("cluster down")).Once()

		created, err := f.svc.CreateAccessAudit(ctx, audit)
		require.NoError(t, err)
		assert.Equal(t, int64(12), created.ID)
	})

	t.Run("database", func(t *testing.T) {
		f := newFixture(t, config.AuditStoreDB)
		ctx := adminCtx()
		f.audits.On("CreateAccessAudit", ctx, audit).Return(&stored, nil).Once()

		_, err := f.svc.CreateAccessAudit(ctx, audit)
		require.NoError(t, err)
		f.indexer.AssertNotCalled(t, "IndexAccessAudit", mock.Anything, mock.Anything)
	})

	t.Run("store failure skips indexing", func(t *testing.T) {
		f := newFixture(t, config.AuditStoreSolr)
		ctx := adminCtx()
		f.audits.On("CreateAccessAudit", ctx, audit).Return(nil, xaudit_errors.ErrDatabaseOperation).Once()

		_, err := f.svc.CreateAccessAudit(ctx, audit)
		assert.ErrorIs(t, err, xaudit_errors.ErrDatabaseOperation)
	})
}

func TestAccessAuditCRUDDelegates(t *testing.T) {
	f := newFixture(t, config.AuditStoreDB)
	ctx := adminCtx()
	audit := model.AccessAudit{ID: 4, RepoName: "hive"}

	f.audits.On("GetAccessAudit", ctx, int64(4)).Return(&audit, nil).Once()
	f.audits.On("UpdateAccessAudit", ctx, audit).Return(&audit, nil).Once()
	f.audits.On("DeleteAccessAudit", ctx, int64(4), false).Return(xaudit_errors.ErrAccessAuditNotFound).Once()

	got, err := f.svc.GetAccessAudit(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "hive", got.RepoName)
	_, err = f.svc.UpdateAccessAudit(ctx, audit)
	require.NoError(t, err)
	assert.ErrorIs(t, f.svc.DeleteAccessAudit(ctx, 4, false), xaudit_errors.ErrAccessAuditNotFound)
}

// recordingClient stands in for the search engine so the routing can be
// observed through the real query-translation path.
type recordingClient struct {
	queries []*search.Query
}

func (c *recordingClient) Query(_ context.Context, q *search.Query) (*search.Response, error) {
	c.queries = append(c.queries, q)
	return &search.Response{NumFound: 3}, nil
}

func TestConfiguredAuditStoreRouting(t *testing.T) {
	for _, tc := range []struct {
		store        string
		searchEngine bool
	}{
		{"solr", true},
		{"SOLR", true},
		{"elasticsearch", true},
		{"db", false},
		{"mysql", false},
	} {
		t.Run(tc.store, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			viper.Set("audit.store", tc.store)

			client := &recordingClient{}
			searcher := search.NewAccessAuditSearcher(client, search.NewUtil(search.UtilConfig{TimeZone: "UTC"}))
			dao := &mocks.MockAccessAuditDAO{}
			svc := service.NewAuditService(&mocks.MockTrxLogDAO{}, dao, searcher, nil, config.GetAuditStore())

			ctx := adminCtx()
			criteria := model.NewSearchCriteria()
			if !tc.searchEngine {
				dao.On("SearchAccessAudits", ctx, criteria).Return(&model.AccessAuditList{}, nil).Once()
			}

			_, err := svc.SearchAccessAudits(ctx, criteria)
			require.NoError(t, err)

			if tc.searchEngine {
				assert.Len(t, client.queries, 1)
			} else {
				assert.Empty(t, client.queries)
			}
			dao.AssertExpectations(t)
		})
	}
}
