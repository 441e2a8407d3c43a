// errors/audit_errors.go
package errors

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrSystem       = errors.New("system error")

	ErrTrxLogNotFound    = errors.New("transaction log not found")
	ErrInvalidTrxLogData = errors.New("invalid transaction log data")

	ErrAccessAuditNotFound    = errors.New("access audit not found")
	ErrInvalidAccessAuditData = errors.New("invalid access audit data")

	ErrDatabaseOperation     = errors.New("database operation failed")
	ErrInternalServer        = errors.New("internal server error")
	ErrInvalidPagination     = errors.New("invalid pagination parameters")
	ErrInvalidSearchCriteria = errors.New("invalid search criteria")
)
