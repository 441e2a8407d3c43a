// model/access_audit.go
package model

import "time"

// AccessAudit is one access decision reported by an enforcement agent.
type AccessAudit struct {
	ID             int64     `json:"id"`
	CreateDate     time.Time `json:"create_date"`
	UpdateDate     time.Time `json:"update_date"`
	AuditType      int       `json:"audit_type"`
	AccessResult   int       `json:"access_result"`
	AccessType     string    `json:"access_type"`
	AclEnforcer    string    `json:"acl_enforcer"`
	AgentID        string    `json:"agent_id"`
	ClientIP       string    `json:"client_ip"`
	ClientType     string    `json:"client_type"`
	PolicyID       int64     `json:"policy_id"`
	RepoName       string    `json:"repo_name"`
	RepoType       int       `json:"repo_type"`
	ResultReason   string    `json:"result_reason"`
	SessionID      string    `json:"session_id"`
	EventTime      time.Time `json:"event_time"`
	RequestUser    string    `json:"request_user"`
	Action         string    `json:"action"`
	RequestData    string    `json:"request_data"`
	ResourcePath   string    `json:"resource_path"`
	ResourceType   string    `json:"resource_type"`
	SequenceNumber int64     `json:"sequence_number"`
	EventID        string    `json:"event_id"`
	EventCount     int64     `json:"event_count"`
	EventDuration  int64     `json:"event_duration"`
	Tags           string    `json:"tags"`
}

type AccessAuditList struct {
	ListMeta
	AccessAudits []*AccessAudit `json:"access_audits"`
}
