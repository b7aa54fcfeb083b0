package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/invoice_finance_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_finance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// limitHandler handles HTTP requests related to credit limits and facilities.
type limitHandler struct {
	limitService portssvc.LimitSvcFacade
}

// newLimitHandler creates a new limitHandler.
func newLimitHandler(ls portssvc.LimitSvcFacade) *limitHandler {
	return &limitHandler{
		limitService: ls,
	}
}

// RegisterLimitRoutes registers routes related to credit limits.
func RegisterLimitRoutes(rg *gin.RouterGroup, limitService portssvc.LimitSvcFacade) {
	h := newLimitHandler(limitService)

	rg.POST("/credit-limits", h.createCreditLimit)
	rg.POST("/allocations", h.allocateBuyerLimit)

	orgs := rg.Group("/organizations/:orgID")
	{
		orgs.GET("/credit-limit", h.getCreditLimit)
		orgs.GET("/facilities", h.getVisibleFacilities)
		orgs.POST("/facilities", h.addFacility)
	}

	facilities := rg.Group("/facilities")
	{
		facilities.POST("/check", h.checkLimit)
		facilities.POST("/utilize", h.utilize)
		facilities.POST("/release", h.release)
	}
}

// createCreditLimit godoc
// @Summary Grant a credit limit with facilities
// @Tags limits
// @Accept json
// @Produce json
// @Param limit body dto.CreateCreditLimitRequest true "Credit limit"
// @Success 201 {object} dto.ResultResponse
// @Failure 400 {object} dto.ResultResponse "Facilities exceed the master limit"
// @Failure 409 {object} dto.ResultResponse "Credit limit already exists"
// @Security BearerAuth
// @Router /credit-limits [post]
func (h *limitHandler) createCreditLimit(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	var req dto.CreateCreditLimitRequest
	if !bindJSON(c, &req) {
		return
	}
	writeResult(c, h.limitService.CreateCreditLimitWithFacilities(c.Request.Context(), req, userID), http.StatusCreated)
}

// addFacility godoc
// @Summary Add a facility to an organization
// @Tags limits
// @Accept json
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param facility body dto.FacilityRequest true "Facility"
// @Success 201 {object} dto.ResultResponse
// @Failure 409 {object} dto.ResultResponse "Master limit exhausted or facility exists"
// @Security BearerAuth
// @Router /organizations/{orgID}/facilities [post]
func (h *limitHandler) addFacility(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	var req dto.FacilityRequest
	if !bindJSON(c, &req) {
		return
	}
	writeResult(c, h.limitService.AddFacilityToOrganization(c.Request.Context(), c.Param("orgID"), req, userID), http.StatusCreated)
}

// allocateBuyerLimit godoc
// @Summary Share part of a seller facility with a buyer
// @Tags limits
// @Accept json
// @Produce json
// @Param allocation body dto.AllocateBuyerLimitRequest true "Allocation"
// @Success 200 {object} dto.ResultResponse
// @Failure 409 {object} dto.ResultResponse "Insufficient facility capacity"
// @Security BearerAuth
// @Router /allocations [post]
func (h *limitHandler) allocateBuyerLimit(c *gin.Context) {
	userID, ok := actingUser(c)
	if !ok {
		return
	}
	var req dto.AllocateBuyerLimitRequest
	if !bindJSON(c, &req) {
		return
	}
	writeResult(c, h.limitService.AllocateBuyerLimit(c.Request.Context(), req, userID), http.StatusOK)
}

// checkLimit godoc
// @Summary Check whether a facility can absorb an amount
// @Tags limits
// @Accept json
// @Produce json
// @Param check body dto.FacilityAmountRequest true "Facility and amount"
// @Success 200 {object} dto.ResultResponse
// @Failure 409 {object} dto.ResultResponse "Insufficient capacity, with the available amount"
// @Security BearerAuth
// @Router /facilities/check [post]
func (h *limitHandler) checkLimit(c *gin.Context) {
	var req dto.FacilityAmountRequest
	if !bindJSON(c, &req) {
		return
	}
	writeResult(c, h.limitService.CheckFacilityLimit(c.Request.Context(), req.OrganizationID, req.FacilityType, req.Amount), http.StatusOK)
}

// utilize godoc
// @Summary Add utilization to a facility without a capacity check
// @Tags limits
// @Accept json
// @Produce json
// @Param utilization body dto.FacilityAmountRequest true "Facility and amount"
// @Success 200 {object} dto.ResultResponse
// @Security BearerAuth
// @Router /facilities/utilize [post]
func (h *limitHandler) utilize(c *gin.Context) {
	var req dto.FacilityAmountRequest
	if !bindJSON(c, &req) {
		return
	}
	writeResult(c, h.limitService.UpdateFacilityUtilization(c.Request.Context(), req.OrganizationID, req.FacilityType, req.Amount), http.StatusOK)
}

// release godoc
// @Summary Release utilization of a facility
// @Tags limits
// @Accept json
// @Produce json
// @Param release body dto.FacilityAmountRequest true "Facility and amount"
// @Success 200 {object} dto.ResultResponse
// @Security BearerAuth
// @Router /facilities/release [post]
func (h *limitHandler) release(c *gin.Context) {
	var req dto.FacilityAmountRequest
	if !bindJSON(c, &req) {
		return
	}
	writeResult(c, h.limitService.ReleaseFacilityUtilization(c.Request.Context(), req.OrganizationID, req.FacilityType, req.Amount), http.StatusOK)
}

// getCreditLimit godoc
// @Summary Get an organization's credit limit
// @Tags limits
// @Produce json
// @Param orgID path string true "Organization ID"
// @Success 200 {object} domain.CreditLimitInfo
// @Failure 404 {object} map[string]string "No credit limit"
// @Security BearerAuth
// @Router /organizations/{orgID}/credit-limit [get]
func (h *limitHandler) getCreditLimit(c *gin.Context) {
	info, err := h.limitService.GetCreditLimitInfo(c.Request.Context(), c.Param("orgID"))
	if err != nil {
		writeError(c, err, "Failed to retrieve credit limit")
		return
	}
	c.JSON(http.StatusOK, info)
}

// getVisibleFacilities godoc
// @Summary List the facilities visible to an organization
// @Description Own facilities plus allocations granted to the organization by sellers
// @Tags limits
// @Produce json
// @Param orgID path string true "Organization ID"
// @Success 200 {array} domain.Facility
// @Security BearerAuth
// @Router /organizations/{orgID}/facilities [get]
func (h *limitHandler) getVisibleFacilities(c *gin.Context) {
	facilities, err := h.limitService.GetVisibleFacilities(c.Request.Context(), c.Param("orgID"))
	if err != nil {
		writeError(c, err, "Failed to list facilities")
		return
	}
	c.JSON(http.StatusOK, facilities)
}
