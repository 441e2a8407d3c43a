// search/access_audit_searcher.go
package search

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/echo-xaudit/logging"
	"github.com/dev-mohitbeniwal/echo-xaudit/model"
)

// IAccessAuditSearcher is the search-engine path for access audits.
type IAccessAuditSearcher interface {
	SearchAccessAudits(ctx context.Context, criteria *model.SearchCriteria) (*model.AccessAuditList, error)
	GetAccessAuditSearchCount(ctx context.Context, criteria *model.SearchCriteria) (*model.Count, error)
}

// AccessAuditSearchFields maps request parameters onto audit index fields.
var AccessAuditSearchFields = []model.SearchField{
	{ClientFieldName: "accessType", FieldName: "access", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "aclEnforcer", FieldName: "enforcer", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "agentId", FieldName: "agent", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "repoName", FieldName: "repo", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "sessionId", FieldName: "sess", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "requestUser", FieldName: "reqUser", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "requestData", FieldName: "reqData", DataType: model.DataTypeString, SearchType: model.SearchTypePartial},
	{ClientFieldName: "resourcePath", FieldName: "resource", DataType: model.DataTypeString, SearchType: model.SearchTypePartial},
	{ClientFieldName: "clientIP", FieldName: "cliIP", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "auditType", FieldName: "logType", DataType: model.DataTypeInteger, SearchType: model.SearchTypeFull},
	{ClientFieldName: "accessResult", FieldName: "result", DataType: model.DataTypeInteger, SearchType: model.SearchTypeFull},
	{ClientFieldName: "policyId", FieldName: "policy", DataType: model.DataTypeInteger, SearchType: model.SearchTypeFull},
	{ClientFieldName: "repoType", FieldName: "repoType", DataType: model.DataTypeInteger, SearchType: model.SearchTypeFull},
	{ClientFieldName: "resourceType", FieldName: "resType", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "reason", FieldName: "reason", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "action", FieldName: "action", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "tags", FieldName: "tags", DataType: model.DataTypeString, SearchType: model.SearchTypeFull},
	{ClientFieldName: "startDate", FieldName: "evtTime", DataType: model.DataTypeDate, SearchType: model.SearchTypeGreaterEqualThan},
	{ClientFieldName: "endDate", FieldName: "evtTime", DataType: model.DataTypeDate, SearchType: model.SearchTypeLessEqualThan},
}

// keywordSuffix names the exact-value subfield dynamic mapping adds to every
// string field. The analyzed field itself cannot be sorted on.
const keywordSuffix = ".keyword"

// AccessAuditSortFields maps sortBy values onto audit index fields.
var AccessAuditSortFields = []model.SortField{
	{ParamName: "eventTime", FieldName: "evtTime", IsDefault: true, DefaultOrder: model.SortDesc},
	{ParamName: "id", FieldName: "id" + keywordSuffix},
	{ParamName: "sequenceNumber", FieldName: "seq_num"},
	{ParamName: "policyId", FieldName: "policy"},
	{ParamName: "requestUser", FieldName: "reqUser" + keywordSuffix},
	{ParamName: "resourceType", FieldName: "resType" + keywordSuffix},
	{ParamName: "accessType", FieldName: "access" + keywordSuffix},
	{ParamName: "action", FieldName: "action" + keywordSuffix},
	{ParamName: "aclEnforcer", FieldName: "enforcer" + keywordSuffix},
}

// AccessAuditSearcher serves access-audit searches from the search engine.
type AccessAuditSearcher struct {
	client Client
	util   *Util
}

var _ IAccessAuditSearcher = (*AccessAuditSearcher)(nil)

func NewAccessAuditSearcher(client Client, util *Util) *AccessAuditSearcher {
	return &AccessAuditSearcher{client: client, util: util}
}

// SearchAccessAudits returns one page of access audits.
func (s *AccessAuditSearcher) SearchAccessAudits(ctx context.Context, criteria *model.SearchCriteria) (*model.AccessAuditList, error) {
	start := time.Now()
	response, err := s.util.SearchResources(ctx, s.client, criteria, AccessAuditSearchFields, AccessAuditSortFields)
	if err != nil {
		return nil, err
	}

	audits := make([]*model.AccessAudit, 0, len(response.Docs))
	for _, doc := range response.Docs {
		audits = append(audits, s.toAccessAudit(doc))
	}

	logger.Debug("Access audits retrieved from search engine",
		zap.Int64("numFound", response.NumFound),
		zap.Int("returned", len(audits)),
		zap.Duration("duration", time.Since(start)))

	return &model.AccessAuditList{
		ListMeta:     model.NewListMeta(criteria, response.NumFound, len(audits)),
		AccessAudits: audits,
	}, nil
}

// GetAccessAuditSearchCount returns the number of audits matching criteria
// without fetching any of them. The caller's criteria is left untouched.
func (s *AccessAuditSearcher) GetAccessAuditSearchCount(ctx context.Context, criteria *model.SearchCriteria) (*model.Count, error) {
	countCriteria := criteria.Clone()
	countCriteria.StartIndex = 0
	countCriteria.MaxRows = 0

	response, err := s.util.SearchResources(ctx, s.client, countCriteria, AccessAuditSearchFields, AccessAuditSortFields)
	if err != nil {
		return nil, err
	}
	return &model.Count{Value: response.NumFound}, nil
}

func (s *AccessAuditSearcher) toAccessAudit(doc Document) *model.AccessAudit {
	audit := &model.AccessAudit{
		AuditType:      s.util.ToInt(doc["logType"]),
		AccessResult:   s.util.ToInt(doc["result"]),
		AccessType:     stringValue(doc["access"]),
		AclEnforcer:    stringValue(doc["enforcer"]),
		AgentID:        stringValue(doc["agent"]),
		ClientIP:       stringValue(doc["cliIP"]),
		ClientType:     stringValue(doc["cliType"]),
		PolicyID:       s.util.ToLong(doc["policy"]),
		RepoName:       stringValue(doc["repo"]),
		RepoType:       s.util.ToInt(doc["repoType"]),
		ResultReason:   stringValue(doc["reason"]),
		SessionID:      stringValue(doc["sess"]),
		RequestUser:    stringValue(doc["reqUser"]),
		Action:         stringValue(doc["action"]),
		RequestData:    stringValue(doc["reqData"]),
		ResourcePath:   stringValue(doc["resource"]),
		ResourceType:   stringValue(doc["resType"]),
		SequenceNumber: s.util.ToLong(doc["seq_num"]),
		EventID:        stringValue(doc["id"]),
		EventCount:     s.util.ToLong(doc["event_count"]),
		EventDuration:  s.util.ToLong(doc["event_dur_ms"]),
		Tags:           stringValue(doc["tags"]),
	}
	if t := s.util.ToDate(doc["evtTime"]); t != nil {
		audit.EventTime = *t
	}
	return audit
}

func stringValue(value any) string {
	if value == nil {
		return ""
	}
	if values, ok := multiValues(value); ok {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = toString(v)
		}
		return strings.Join(parts, ",")
	}
	return toString(value)
}
