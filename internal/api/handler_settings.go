package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property-admin-backend/internal/model"
	"property-admin-backend/internal/settings"
)

// GetAmenityRules returns the saved per-amenity rules.
func (h *Handler) GetAmenityRules(c *gin.Context) {
	rules, err := h.settings.AmenityRules()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rules)
}

// PutAmenityRules replaces the rules snapshot wholesale.
func (h *Handler) PutAmenityRules(c *gin.Context) {
	var rules map[string]model.AmenityRule
	if err := c.ShouldBindJSON(&rules); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.settings.SaveAmenityRules(rules); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetAutoApproval returns the auto-approval flags with an explicit
// false filled in for every live amenity that has no saved entry.
func (h *Handler) GetAutoApproval(c *gin.Context) {
	flags, err := h.settings.AutoApproval()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings.WithDefaults(flags, h.store.Amenities()))
}

// PutAutoApproval replaces the auto-approval snapshot wholesale.
func (h *Handler) PutAutoApproval(c *gin.Context) {
	var flags map[string]bool
	if err := c.ShouldBindJSON(&flags); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.settings.SaveAutoApproval(flags); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetTheme returns the saved theme, defaulting to light.
func (h *Handler) GetTheme(c *gin.Context) {
	theme, err := h.settings.Theme()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

type putThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// PutTheme saves the theme choice.
func (h *Handler) PutTheme(c *gin.Context) {
	var req putThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.settings.SaveTheme(req.Theme); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
