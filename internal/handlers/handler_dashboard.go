package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// dashboardHandler handles the read-only aggregation views.
type dashboardHandler struct {
	reportingService portssvc.ReportingService
}

func newDashboardHandler(rs portssvc.ReportingService) *dashboardHandler {
	return &dashboardHandler{reportingService: rs}
}

// registerDashboardRoutes registers the aggregation routes.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newDashboardHandler(reportingService)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("", h.getDashboard)
		dashboard.GET("/bank", h.getBankDetail)
	}
}

// getDashboard godoc
// @Summary Dashboard aggregation
// @Description Monthly income/expense/net per bank plus annual cost center rollups
// @Tags dashboard
// @Produce json
// @Param month query string false "Month (YYYY-MM), defaults to current"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]interface{} "Invalid month"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, err)
		return
	}

	data, err := h.reportingService.GetDashboardData(c.Request.Context(), userID, params.Month)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, data)
}

// getBankDetail godoc
// @Summary Bank detail aggregation
// @Description Per-bank drill-down: monthly balance series, annual cost center data, monthly transactions and stats
// @Tags dashboard
// @Produce json
// @Param bankID query string true "Bank ID"
// @Param month query string false "Month (YYYY-MM), defaults to current"
// @Success 200 {object} dto.BankDetailResponse
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 404 {object} map[string]interface{} "Bank not found"
// @Security BearerAuth
// @Router /dashboard/bank [get]
func (h *dashboardHandler) getBankDetail(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var params dto.BankDetailParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBadRequest(c, err)
		return
	}

	data, err := h.reportingService.GetBankDetailData(c.Request.Context(), userID, params.BankID, params.Month)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, data)
}
