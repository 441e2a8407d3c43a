// model/trx_log.go
package model

import "time"

// TrxLog records a single attribute change made within an admin transaction.
type TrxLog struct {
	ID                    int64     `json:"id"`
	CreateDate            time.Time `json:"create_date"`
	UpdateDate            time.Time `json:"update_date"`
	Owner                 string    `json:"owner"`
	UpdatedBy             string    `json:"updated_by"`
	ObjectClassType       int       `json:"object_class_type"`
	ObjectID              int64     `json:"object_id"`
	ParentObjectID        int64     `json:"parent_object_id"`
	ParentObjectClassType int       `json:"parent_object_class_type"`
	ParentObjectName      string    `json:"parent_object_name"`
	ObjectName            string    `json:"object_name"`
	AttributeName         string    `json:"attribute_name"`
	PreviousValue         string    `json:"previous_value"`
	NewValue              string    `json:"new_value"`
	TransactionID         string    `json:"transaction_id"`
	Action                string    `json:"action"`
	SessionID             string    `json:"session_id"`
	RequestID             string    `json:"request_id"`
	SessionType           string    `json:"session_type"`
}

type TrxLogList struct {
	ListMeta
	TrxLogs []*TrxLog `json:"trx_logs"`
}
