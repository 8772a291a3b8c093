package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// bankHandler handles HTTP requests related to bank accounts.
type bankHandler struct {
	bankService portssvc.BankSvcFacade
}

func newBankHandler(bs portssvc.BankSvcFacade) *bankHandler {
	return &bankHandler{bankService: bs}
}

// registerBankRoutes registers routes related to bank accounts.
func registerBankRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newBankHandler(bankService)

	banks := rg.Group("/banks")
	{
		banks.POST("", h.createBank)
		banks.GET("", h.listBanks)
		banks.GET("/:bankID", h.getBank)
		banks.PUT("/:bankID", h.updateBank)
		banks.DELETE("/:bankID", h.deleteBank)
	}
}

// createBank godoc
// @Summary Create a new bank account
// @Description Creates a bank account for the logged-in user, with an optional opening balance
// @Tags banks
// @Accept json
// @Produce json
// @Param bank body dto.CreateBankRequest true "Bank details"
// @Success 201 {object} dto.BankResponse
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 409 {object} map[string]interface{} "Bank/account pair already exists"
// @Security BearerAuth
// @Router /banks [post]
func (h *bankHandler) createBank(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	bank, err := h.bankService.CreateBank(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, dto.ToBankResponse(bank))
}

// listBanks godoc
// @Summary List bank accounts
// @Description Retrieves all bank accounts owned by the logged-in user
// @Tags banks
// @Produce json
// @Success 200 {array} dto.BankResponse
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Security BearerAuth
// @Router /banks [get]
func (h *bankHandler) listBanks(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	banks, err := h.bankService.ListBanks(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, dto.ToListBankResponse(banks))
}

// getBank godoc
// @Summary Get a bank account
// @Description Retrieves one bank account owned by the logged-in user
// @Tags banks
// @Produce json
// @Param bankID path string true "Bank ID"
// @Success 200 {object} dto.BankResponse
// @Failure 404 {object} map[string]interface{} "Bank not found"
// @Security BearerAuth
// @Router /banks/{bankID} [get]
func (h *bankHandler) getBank(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	bank, err := h.bankService.GetBankByID(c.Request.Context(), userID, c.Param("bankID"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, dto.ToBankResponse(bank))
}

// updateBank godoc
// @Summary Update a bank account
// @Description Updates a bank account's details. The balance cannot be set here.
// @Tags banks
// @Accept json
// @Produce json
// @Param bankID path string true "Bank ID"
// @Param bank body dto.UpdateBankRequest true "Fields to update"
// @Success 200 {object} dto.BankResponse
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 404 {object} map[string]interface{} "Bank not found"
// @Security BearerAuth
// @Router /banks/{bankID} [put]
func (h *bankHandler) updateBank(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	bank, err := h.bankService.UpdateBank(c.Request.Context(), userID, c.Param("bankID"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, dto.ToBankResponse(bank))
}

// deleteBank godoc
// @Summary Delete a bank account
// @Description Removes a bank account and everything recorded against it
// @Tags banks
// @Produce json
// @Param bankID path string true "Bank ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Bank not found"
// @Security BearerAuth
// @Router /banks/{bankID} [delete]
func (h *bankHandler) deleteBank(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	if err := h.bankService.DeleteBank(c.Request.Context(), userID, c.Param("bankID")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}
