package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// costCenterHandler handles HTTP requests related to cost centers.
type costCenterHandler struct {
	costCenterService portssvc.CostCenterSvcFacade
}

func newCostCenterHandler(ccs portssvc.CostCenterSvcFacade) *costCenterHandler {
	return &costCenterHandler{costCenterService: ccs}
}

// registerCostCenterRoutes registers routes related to cost centers.
func registerCostCenterRoutes(rg *gin.RouterGroup, costCenterService portssvc.CostCenterSvcFacade) {
	h := newCostCenterHandler(costCenterService)

	costCenters := rg.Group("/cost-centers")
	{
		costCenters.POST("", h.createCostCenter)
		costCenters.GET("", h.listCostCenters)
		costCenters.GET("/:costCenterID", h.getCostCenter)
		costCenters.PUT("/:costCenterID", h.updateCostCenter)
		costCenters.DELETE("/:costCenterID", h.deleteCostCenter)
	}
}

// createCostCenter godoc
// @Summary Create a cost center
// @Description Creates a user-owned cost center
// @Tags cost-centers
// @Accept json
// @Produce json
// @Param costCenter body dto.CreateCostCenterRequest true "Cost center details"
// @Success 201 {object} dto.CostCenterResponse
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Security BearerAuth
// @Router /cost-centers [post]
func (h *costCenterHandler) createCostCenter(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateCostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	cc, err := h.costCenterService.CreateCostCenter(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, dto.ToCostCenterResponse(cc))
}

// listCostCenters godoc
// @Summary List cost centers
// @Description Retrieves the cost centers visible to the logged-in user, global ones included
// @Tags cost-centers
// @Produce json
// @Success 200 {array} dto.CostCenterResponse
// @Security BearerAuth
// @Router /cost-centers [get]
func (h *costCenterHandler) listCostCenters(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	ccs, err := h.costCenterService.ListCostCenters(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, dto.ToCostCenterResponses(ccs))
}

// getCostCenter godoc
// @Summary Get a cost center
// @Description Retrieves one cost center visible to the logged-in user
// @Tags cost-centers
// @Produce json
// @Param costCenterID path string true "Cost center ID"
// @Success 200 {object} dto.CostCenterResponse
// @Failure 404 {object} map[string]interface{} "Cost center not found"
// @Security BearerAuth
// @Router /cost-centers/{costCenterID} [get]
func (h *costCenterHandler) getCostCenter(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	cc, err := h.costCenterService.GetCostCenterByID(c.Request.Context(), userID, c.Param("costCenterID"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, dto.ToCostCenterResponse(cc))
}

// updateCostCenter godoc
// @Summary Update a cost center
// @Description Updates a cost center owned by the logged-in user. Global cost centers are read-only.
// @Tags cost-centers
// @Accept json
// @Produce json
// @Param costCenterID path string true "Cost center ID"
// @Param costCenter body dto.UpdateCostCenterRequest true "Fields to update"
// @Success 200 {object} dto.CostCenterResponse
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 404 {object} map[string]interface{} "Cost center not found"
// @Security BearerAuth
// @Router /cost-centers/{costCenterID} [put]
func (h *costCenterHandler) updateCostCenter(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateCostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	cc, err := h.costCenterService.UpdateCostCenter(c.Request.Context(), userID, c.Param("costCenterID"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, dto.ToCostCenterResponse(cc))
}

// deleteCostCenter godoc
// @Summary Delete a cost center
// @Description Removes a cost center; transactions referencing it are detached, not deleted
// @Tags cost-centers
// @Produce json
// @Param costCenterID path string true "Cost center ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Cost center not found"
// @Security BearerAuth
// @Router /cost-centers/{costCenterID} [delete]
func (h *costCenterHandler) deleteCostCenter(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	if err := h.costCenterService.DeleteCostCenter(c.Request.Context(), userID, c.Param("costCenterID")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}
