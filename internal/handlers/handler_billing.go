package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/SscSPs/personal_finance_app/internal/export"
	"github.com/gin-gonic/gin"
)

// billingHandler handles HTTP requests for bills, transactions, import,
// export and statistics.
type billingHandler struct {
	billingService portssvc.BillingSvcFacade
}

func newBillingHandler(bs portssvc.BillingSvcFacade) *billingHandler {
	return &billingHandler{billingService: bs}
}

// registerBillingRoutes registers routes for bills and transactions.
func registerBillingRoutes(rg *gin.RouterGroup, billingService portssvc.BillingSvcFacade) {
	h := newBillingHandler(billingService)

	bills := rg.Group("/bills")
	{
		bills.POST("", h.addBill)
		bills.DELETE("/:billID", h.deleteBill)
	}

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/statistics", h.getStatistics)
		transactions.POST("/import", h.importTransactions)
		transactions.POST("/export", h.exportTransactions)
		transactions.DELETE("/:transactionID", h.deleteTransaction)
	}

	rg.GET("/billing", h.getBillingPage)
}

// addBill godoc
// @Summary Record a new bill
// @Description Records a bill and its linked transaction, updating the bank balance atomically
// @Tags billing
// @Accept json
// @Produce json
// @Param bill body dto.AddBillRequest true "Bill details"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 404 {object} map[string]interface{} "Bank not found"
// @Security BearerAuth
// @Router /bills [post]
func (h *billingHandler) addBill(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.AddBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	bill, err := h.billingService.AddBill(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, dto.ToBillResponse(bill))
}

// deleteBill godoc
// @Summary Delete a bill
// @Description Removes a bill and its linked transaction, reversing the balance delta
// @Tags billing
// @Produce json
// @Param billID path string true "Bill ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Bill not found"
// @Security BearerAuth
// @Router /bills/{billID} [delete]
func (h *billingHandler) deleteBill(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	if err := h.billingService.DeleteBill(c.Request.Context(), userID, c.Param("billID")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction and restores the bank balance to its recorded before value
// @Tags billing
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{transactionID} [delete]
func (h *billingHandler) deleteTransaction(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	if err := h.billingService.DeleteTransaction(c.Request.Context(), userID, c.Param("transactionID")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves a filtered, sorted, paginated page of transactions
// @Tags billing
// @Produce json
// @Param search query string false "Text search over bank, account and cost center names"
// @Param dateRange query string false "Relative range token" Enums(today, week, month, quarter, year)
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD, inclusive)"
// @Param bank query string false "Bank ID"
// @Param state query string false "State filter" Enums(Income, Expense)
// @Param costCenter query string false "Cost center ID"
// @Param minAmount query number false "Minimum amount"
// @Param maxAmount query number false "Maximum amount"
// @Param sort_field query string false "Sort column"
// @Param sort_direction query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]interface{} "Invalid filters"
// @Security BearerAuth
// @Router /transactions [get]
func (h *billingHandler) listTransactions(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var filters dto.TransactionFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		respondBadRequest(c, err)
		return
	}

	page, err := h.billingService.ListTransactions(c.Request.Context(), userID, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, page)
}

// getStatistics godoc
// @Summary Transaction statistics
// @Description Reduces the filtered transaction set to sums, counts and top categories
// @Tags billing
// @Produce json
// @Param dateRange query string false "Relative range token" Enums(today, week, month, quarter, year)
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD, inclusive)"
// @Param bank query string false "Bank ID"
// @Param state query string false "State filter" Enums(Income, Expense)
// @Success 200 {object} dto.StatisticsResponse
// @Failure 400 {object} map[string]interface{} "Invalid filters"
// @Security BearerAuth
// @Router /transactions/statistics [get]
func (h *billingHandler) getStatistics(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var filters dto.TransactionFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		respondBadRequest(c, err)
		return
	}

	stats, err := h.billingService.GetStatistics(c.Request.Context(), userID, filters)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, dto.ToStatisticsResponse(stats))
}

// importTransactions godoc
// @Summary Import transactions from a file
// @Description Parses a CSV or Excel upload and applies rows one at a time; failed rows are reported without aborting the rest
// @Tags billing
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Import file (.csv or .xlsx)"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} map[string]interface{} "Unreadable file"
// @Security BearerAuth
// @Router /transactions/import [post]
func (h *billingHandler) importTransactions(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	defer file.Close()

	var rows []dto.ImportRow
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".csv":
		rows, err = export.ParseTransactionsCSV(file)
	case ".xlsx", ".xls":
		rows, err = export.ParseTransactionsExcel(file)
	default:
		err = fmt.Errorf("unsupported file type %q", filepath.Ext(fileHeader.Filename))
	}
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := h.billingService.ImportTransactions(c.Request.Context(), userID, rows)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, result)
}

// exportTransactions godoc
// @Summary Export transactions to a file
// @Description Writes the filtered transaction set to a CSV or Excel file on the server
// @Tags billing
// @Accept json
// @Produce json
// @Param export body dto.ExportRequest true "Filters and format"
// @Success 200 {object} dto.ExportResponse
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Security BearerAuth
// @Router /transactions/export [post]
func (h *billingHandler) exportTransactions(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := h.billingService.ExportTransactions(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, result)
}

// getBillingPage godoc
// @Summary Billing page data
// @Description Bundles recent bills, recent transactions and dropdown options in one round trip
// @Tags billing
// @Produce json
// @Success 200 {object} dto.BillingPageResponse
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Security BearerAuth
// @Router /billing [get]
func (h *billingHandler) getBillingPage(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	data, err := h.billingService.GetBillingPageData(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, data)
}
