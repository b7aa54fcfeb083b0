package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/invoice_finance_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to limit reports and statements
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/limits", h.getAllLimits)
		reports.GET("/limit-tree", h.getLimitTree)
	}

	orgs := rg.Group("/organizations/:orgID")
	{
		orgs.GET("/limit-report", h.getLimitReport)
		orgs.GET("/limit-inquiry", h.getLimitInquiry)
		orgs.GET("/statement", h.getStatement)
	}
}

// getLimitReport godoc
// @Summary Limit report of an organization holding a credit limit
// @Tags reports
// @Produce json
// @Param orgID path string true "Organization ID"
// @Success 200 {object} domain.LimitReport
// @Failure 404 {object} map[string]string "No credit limit"
// @Security BearerAuth
// @Router /organizations/{orgID}/limit-report [get]
func (h *reportingHandler) getLimitReport(c *gin.Context) {
	report, err := h.reportingService.GenerateLimitReport(c.Request.Context(), c.Param("orgID"))
	if err != nil {
		writeError(c, err, "Failed to generate limit report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getLimitInquiry godoc
// @Summary Limit inquiry for any organization
// @Description A pure buyer sees only the allocations granted to it
// @Tags reports
// @Produce json
// @Param orgID path string true "Organization ID"
// @Success 200 {object} domain.LimitReport
// @Failure 404 {object} map[string]string "Organization not found"
// @Security BearerAuth
// @Router /organizations/{orgID}/limit-inquiry [get]
func (h *reportingHandler) getLimitInquiry(c *gin.Context) {
	report, err := h.reportingService.GenerateLimitInquiry(c.Request.Context(), c.Param("orgID"))
	if err != nil {
		writeError(c, err, "Failed to generate limit inquiry")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getAllLimits godoc
// @Summary Limit reports for every organization with a credit limit
// @Tags reports
// @Produce json
// @Success 200 {array} domain.LimitReport
// @Security BearerAuth
// @Router /reports/limits [get]
func (h *reportingHandler) getAllLimits(c *gin.Context) {
	reports, err := h.reportingService.GenerateAllLimitsReport(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to generate limits report")
		return
	}
	c.JSON(http.StatusOK, reports)
}

// getLimitTree godoc
// @Summary Owner facilities with their sub-allocations
// @Tags reports
// @Produce json
// @Success 200 {array} domain.LimitTreeNode
// @Security BearerAuth
// @Router /reports/limit-tree [get]
func (h *reportingHandler) getLimitTree(c *gin.Context) {
	tree, err := h.reportingService.GenerateLimitTree(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to generate limit tree")
		return
	}
	c.JSON(http.StatusOK, tree)
}

// getStatement godoc
// @Summary Account statement of an organization
// @Tags reports
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} domain.AccountStatement
// @Failure 400 {object} map[string]string "Invalid dates"
// @Security BearerAuth
// @Router /organizations/{orgID}/statement [get]
func (h *reportingHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, err := time.Parse(dateLayout, c.Query("from"))
	if err != nil {
		logger.Warn("Invalid statement start date", slog.String("from", c.Query("from")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date. Use YYYY-MM-DD"})
		return
	}
	to, err := endOfDay(c.Query("to"), time.Now().UTC())
	if err != nil {
		logger.Warn("Invalid statement end date", slog.String("to", c.Query("to")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date. Use YYYY-MM-DD"})
		return
	}
	stmt, err := h.reportingService.GenerateAccountStatement(c.Request.Context(), c.Param("orgID"), from, to)
	if err != nil {
		writeError(c, err, "Failed to generate account statement")
		return
	}
	c.JSON(http.StatusOK, stmt)
}
