package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/personal_finance_app/internal/core/ports/services"
	"github.com/SscSPs/personal_finance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// settingsHandler handles the per-user key/value store.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{settingsService: ss}
}

// registerSettingsRoutes registers routes for user settings.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.listSettings)
		settings.PUT("", h.setSetting)
		settings.GET("/:key", h.getSetting)
		settings.DELETE("/:key", h.deleteSetting)
	}
}

// listSettings godoc
// @Summary List settings
// @Description Retrieves all stored key/value pairs for the logged-in user
// @Tags settings
// @Produce json
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) listSettings(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.ListSettings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, settings)
}

// setSetting godoc
// @Summary Store a setting
// @Description Stores a key/value pair, replacing any previous value
// @Tags settings
// @Accept json
// @Produce json
// @Param setting body dto.SetSettingRequest true "Key and value"
// @Success 200 {object} dto.SettingResponse
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Security BearerAuth
// @Router /settings [put]
func (h *settingsHandler) setSetting(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.SetSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.settingsService.SetSetting(c.Request.Context(), userID, req.Key, req.Value); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, dto.SettingResponse{Key: req.Key, Value: req.Value})
}

// getSetting godoc
// @Summary Get a setting
// @Description Retrieves one stored value by key
// @Tags settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} dto.SettingResponse
// @Failure 404 {object} map[string]interface{} "Setting not found"
// @Security BearerAuth
// @Router /settings/{key} [get]
func (h *settingsHandler) getSetting(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	key := c.Param("key")
	value, err := h.settingsService.GetSetting(c.Request.Context(), userID, key)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, dto.SettingResponse{Key: key, Value: value})
}

// deleteSetting godoc
// @Summary Delete a setting
// @Description Removes one stored key
// @Tags settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "Setting not found"
// @Security BearerAuth
// @Router /settings/{key} [delete]
func (h *settingsHandler) deleteSetting(c *gin.Context) {
	userID, ok := userIDOrAbort(c)
	if !ok {
		return
	}

	if err := h.settingsService.DeleteSetting(c.Request.Context(), userID, c.Param("key")); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{"deleted": true})
}
