// util/validation_util.go

package util

import (
	"fmt"

	"github.com/dev-mohitbeniwal/echo-xaudit/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateTrxLog(trxLog model.TrxLog) error {
	if trxLog.Action == "" {
		return fmt.Errorf("transaction log action cannot be empty")
	}
	if trxLog.ObjectClassType <= 0 {
		return fmt.Errorf("transaction log object class type must be positive")
	}
	if trxLog.ObjectID < 0 || trxLog.ParentObjectID < 0 {
		return fmt.Errorf("transaction log object ids cannot be negative")
	}
	return nil
}

func (v *ValidationUtil) ValidateAccessAudit(audit model.AccessAudit) error {
	if audit.RepoName == "" {
		return fmt.Errorf("access audit repository name cannot be empty")
	}
	if audit.RequestUser == "" {
		return fmt.Errorf("access audit request user cannot be empty")
	}
	if audit.EventTime.IsZero() {
		return fmt.Errorf("access audit event time cannot be empty")
	}
	if audit.EventCount < 0 || audit.EventDuration < 0 {
		return fmt.Errorf("access audit event count and duration cannot be negative")
	}
	return nil
}
