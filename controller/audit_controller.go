// controller/audit_controller.go
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/echo-xaudit/dao"
	xaudit_errors "github.com/dev-mohitbeniwal/echo-xaudit/errors"
	logger "github.com/dev-mohitbeniwal/echo-xaudit/logging"
	"github.com/dev-mohitbeniwal/echo-xaudit/model"
	"github.com/dev-mohitbeniwal/echo-xaudit/service"
	"github.com/dev-mohitbeniwal/echo-xaudit/util"
	helper_util "github.com/dev-mohitbeniwal/echo-xaudit/util/helper"
)

type AuditController struct {
	auditService service.IAuditService
}

func NewAuditController(auditService service.IAuditService) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AuditController) RegisterRoutes(r *gin.RouterGroup) {
	xaudit := r.Group("/xaudit")

	trxLogs := xaudit.Group("/trx_log")
	{
		trxLogs.GET("", ac.SearchTrxLogs)
		trxLogs.GET("/count", ac.CountTrxLogs)
		trxLogs.GET("/:id", ac.GetTrxLog)
		trxLogs.POST("", ac.CreateTrxLog)
		trxLogs.PUT("/:id", ac.UpdateTrxLog)
		trxLogs.DELETE("/:id", ac.DeleteTrxLog)
	}

	accessAudits := xaudit.Group("/access_audit")
	{
		accessAudits.GET("", ac.SearchAccessAudits)
		accessAudits.GET("/count", ac.CountAccessAudits)
		accessAudits.GET("/:id", ac.GetAccessAudit)
		accessAudits.POST("", ac.CreateAccessAudit)
		accessAudits.PUT("/:id", ac.UpdateAccessAudit)
		accessAudits.DELETE("/:id", ac.DeleteAccessAudit)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid id", err)
		return 0, false
	}
	return id, true
}

func parseForce(c *gin.Context) bool {
	force, err := strconv.ParseBool(c.DefaultQuery("force", "false"))
	return err == nil && force
}

// GetTrxLog endpoint
func (ac *AuditController) GetTrxLog(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	trxLog, err := ac.auditService.GetTrxLog(c.Request.Context(), id)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to retrieve transaction log", err)
		return
	}

	c.JSON(http.StatusOK, trxLog)
}

// CreateTrxLog endpoint
func (ac *AuditController) CreateTrxLog(c *gin.Context) {
	var trxLog model.TrxLog
	if err := c.ShouldBindJSON(&trxLog); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid transaction log data", err)
		return
	}
	trxLog.ID = 0
	if trxLog.Owner == "" {
		trxLog.Owner = util.GetUserIDFromContext(c)
	}

	created, err := ac.auditService.CreateTrxLog(c.Request.Context(), trxLog)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to create transaction log", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateTrxLog endpoint
func (ac *AuditController) UpdateTrxLog(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var trxLog model.TrxLog
	if err := c.ShouldBindJSON(&trxLog); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid transaction log data", err)
		return
	}
	trxLog.ID = id
	trxLog.UpdatedBy = util.GetUserIDFromContext(c)

	updated, err := ac.auditService.UpdateTrxLog(c.Request.Context(), trxLog)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to update transaction log", err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteTrxLog endpoint
func (ac *AuditController) DeleteTrxLog(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ac.auditService.DeleteTrxLog(c.Request.Context(), id, parseForce(c)); err != nil {
		util.RespondWithServiceError(c, "Failed to delete transaction log", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SearchTrxLogs endpoint
func (ac *AuditController) SearchTrxLogs(c *gin.Context) {
	criteria, err := helper_util.GetSearchCriteria(c, dao.TrxLogSearchFields)
	if err != nil {
		util.RespondWithServiceError(c, "Invalid search parameters", err)
		return
	}

	list, err := ac.auditService.SearchTrxLogs(c.Request.Context(), criteria)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to search transaction logs", err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// CountTrxLogs endpoint
func (ac *AuditController) CountTrxLogs(c *gin.Context) {
	criteria, err := helper_util.GetSearchCriteria(c, dao.TrxLogSearchFields)
	if err != nil {
		util.RespondWithServiceError(c, "Invalid search parameters", err)
		return
	}

	count, err := ac.auditService.GetTrxLogSearchCount(c.Request.Context(), criteria)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to count transaction logs", err)
		return
	}

	c.JSON(http.StatusOK, count)
}

// GetAccessAudit endpoint
func (ac *AuditController) GetAccessAudit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	audit, err := ac.auditService.GetAccessAudit(c.Request.Context(), id)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to retrieve access audit", err)
		return
	}

	c.JSON(http.StatusOK, audit)
}

// CreateAccessAudit endpoint
func (ac *AuditController) CreateAccessAudit(c *gin.Context) {
	var audit model.AccessAudit
	if err := c.ShouldBindJSON(&audit); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid access audit data", xaudit_errors.ErrInvalidAccessAuditData)
		return
	}
	audit.ID = 0

	created, err := ac.auditService.CreateAccessAudit(c.Request.Context(), audit)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to create access audit", err)
		return
	}

	logger.Debug("Access audit created via API", zap.Int64("accessAuditID", created.ID))
	c.JSON(http.StatusCreated, created)
}

// UpdateAccessAudit endpoint
func (ac *AuditController) UpdateAccessAudit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var audit model.AccessAudit
	if err := c.ShouldBindJSON(&audit); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid access audit data", xaudit_errors.ErrInvalidAccessAuditData)
		return
	}
	audit.ID = id

	updated, err := ac.auditService.UpdateAccessAudit(c.Request.Context(), audit)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to update access audit", err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteAccessAudit endpoint
func (ac *AuditController) DeleteAccessAudit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ac.auditService.DeleteAccessAudit(c.Request.Context(), id, parseForce(c)); err != nil {
		util.RespondWithServiceError(c, "Failed to delete access audit", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SearchAccessAudits endpoint. Both backends accept the same parameter
// names, so the relational descriptors define what is read from the query.
func (ac *AuditController) SearchAccessAudits(c *gin.Context) {
	criteria, err := helper_util.GetSearchCriteria(c, dao.AccessAuditSearchFields)
	if err != nil {
		util.RespondWithServiceError(c, "Invalid search parameters", err)
		return
	}

	list, err := ac.auditService.SearchAccessAudits(c.Request.Context(), criteria)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to search access audits", err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// CountAccessAudits endpoint
func (ac *AuditController) CountAccessAudits(c *gin.Context) {
	criteria, err := helper_util.GetSearchCriteria(c, dao.AccessAuditSearchFields)
	if err != nil {
		util.RespondWithServiceError(c, "Invalid search parameters", err)
		return
	}

	count, err := ac.auditService.GetAccessAuditSearchCount(c.Request.Context(), criteria)
	if err != nil {
		util.RespondWithServiceError(c, "Failed to count access audits", err)
		return
	}

	c.JSON(http.StatusOK, count)
}
