// search/access_audit_indexer.go
package search

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/echo-xaudit/logging"
	"github.com/dev-mohitbeniwal/echo-xaudit/model"
)

// IAccessAuditIndexer mirrors stored access audits into the search engine.
type IAccessAuditIndexer interface {
	IndexAccessAudit(ctx context.Context, audit *model.AccessAudit) error
}

type AccessAuditIndexer struct {
	indexer Indexer
	util    *Util
}

var _ IAccessAuditIndexer = (*AccessAuditIndexer)(nil)

func NewAccessAuditIndexer(indexer Indexer, util *Util) *AccessAuditIndexer {
	return &AccessAuditIndexer{indexer: indexer, util: util}
}

// IndexAccessAudit writes audit using the same field names the searcher
// reads back. The event id is the document id, falling back to the row id.
func (i *AccessAuditIndexer) IndexAccessAudit(ctx context.Context, audit *model.AccessAudit) error {
	id := audit.EventID
	if id == "" {
		id = strconv.FormatInt(audit.ID, 10)
	}

	if err := i.indexer.Index(ctx, id, i.toDocument(audit, id)); err != nil {
		logger.Error("Failed to index access audit", zap.Error(err), zap.String("eventID", id))
		return err
	}
	return nil
}

func (i *AccessAuditIndexer) toDocument(audit *model.AccessAudit, id string) Document {
	doc := Document{
		"id":           id,
		"logType":      audit.AuditType,
		"result":       audit.AccessResult,
		"access":       audit.AccessType,
		"enforcer":     audit.AclEnforcer,
		"agent":        audit.AgentID,
		"cliIP":        audit.ClientIP,
		"cliType":      audit.ClientType,
		"policy":       audit.PolicyID,
		"repo":         audit.RepoName,
		"repoType":     audit.RepoType,
		"reason":       audit.ResultReason,
		"sess":         audit.SessionID,
		"reqUser":      audit.RequestUser,
		"action":       audit.Action,
		"reqData":      audit.RequestData,
		"resource":     audit.ResourcePath,
		"resType":      audit.ResourceType,
		"seq_num":      audit.SequenceNumber,
		"event_count":  audit.EventCount,
		"event_dur_ms": audit.EventDuration,
	}
	if !audit.EventTime.IsZero() {
		doc["evtTime"] = i.util.FormatDate(audit.EventTime)
	}
	if tags := strings.TrimSpace(audit.Tags); tags != "" {
		doc["tags"] = strings.Split(tags, ",")
	}
	return doc
}
