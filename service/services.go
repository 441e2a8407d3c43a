// service/services.go
package service

import (
	"database/sql"

	"github.com/dev-mohitbeniwal/echo-xaudit/config"
	"github.com/dev-mohitbeniwal/echo-xaudit/dao"
	"github.com/dev-mohitbeniwal/echo-xaudit/search"
	"github.com/dev-mohitbeniwal/echo-xaudit/util"
)

type Services struct {
	Audit IAuditService
}

// InitializeServices wires the audit facade. esClient is only consulted when
// auditStore selects the search engine and may be nil otherwise.
func InitializeServices(
	db *sql.DB,
	esClient *search.ElasticsearchClient,
	searchUtil *search.Util,
	validationUtil *util.ValidationUtil,
	auditStore config.AuditStore,
) (*Services, error) {
	trxLogDAO := dao.NewTrxLogDAO(db, validationUtil)
	accessAuditDAO := dao.NewAccessAuditDAO(db, validationUtil)

	var (
		searcher search.IAccessAuditSearcher
		indexer  search.IAccessAuditIndexer
	)
	if auditStore == config.AuditStoreSolr && esClient != nil {
		searcher = search.NewAccessAuditSearcher(esClient, searchUtil)
		indexer = search.NewAccessAuditIndexer(esClient, searchUtil)
	}

	services := &Services{
		Audit: NewAuditService(trxLogDAO, accessAuditDAO, searcher, indexer, auditStore),
	}

	return services, nil
}
