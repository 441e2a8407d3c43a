// util/http_util.go
package util

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	xaudit_errors "github.com/dev-mohitbeniwal/echo-xaudit/errors"
	logger "github.com/dev-mohitbeniwal/echo-xaudit/logging"
	"github.com/dev-mohitbeniwal/echo-xaudit/model"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.Int("status", code),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// RespondWithServiceError picks the status for an error returned by the
// audit service. Errors it does not recognise are reported with fallback.
func RespondWithServiceError(c *gin.Context, fallback string, err error) {
	code, message := StatusFor(err)
	if message == "" {
		message = fallback
	}
	RespondWithError(c, code, message, err)
}

// StatusFor maps an audit service error onto an HTTP status and a client
// message. An empty message means the caller should supply its own.
func StatusFor(err error) (int, string) {
	var statusErr *xaudit_errors.StatusError
	switch {
	case errors.As(err, &statusErr):
		return statusErr.StatusCode, statusErr.Message
	case errors.Is(err, xaudit_errors.ErrTrxLogNotFound):
		return http.StatusNotFound, "Transaction log not found"
	case errors.Is(err, xaudit_errors.ErrAccessAuditNotFound):
		return http.StatusNotFound, "Access audit not found"
	case errors.Is(err, xaudit_errors.ErrInvalidTrxLogData):
		return http.StatusBadRequest, "Invalid transaction log data"
	case errors.Is(err, xaudit_errors.ErrInvalidAccessAuditData):
		return http.StatusBadRequest, "Invalid access audit data"
	case errors.Is(err, xaudit_errors.ErrInvalidSearchCriteria), errors.Is(err, xaudit_errors.ErrInvalidPagination):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, xaudit_errors.ErrDatabaseOperation):
		return http.StatusInternalServerError, "Database operation failed"
	default:
		return http.StatusInternalServerError, ""
	}
}

// GetUserIDFromContext returns the login id of the caller, or "" when the
// request carries no session.
func GetUserIDFromContext(c *gin.Context) string {
	if session := model.SessionFromContext(c.Request.Context()); session != nil {
		return session.LoginID
	}
	return ""
}
