package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property-admin-backend/internal/store"
)

// ListResidents returns residents matching the q search term, or all of
// them when q is empty.
func (h *Handler) ListResidents(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.SearchResidents(c.Query("q")))
}

// GetResident returns a single resident.
func (h *Handler) GetResident(c *gin.Context) {
	r, ok := h.store.ResidentByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "resident not found"})
		return
	}
	c.JSON(http.StatusOK, r)
}

// DeleteResident removes a resident. Freed ids are never reissued.
func (h *Handler) DeleteResident(c *gin.Context) {
	if !h.store.RemoveResident(c.Param("id"), store.AlwaysConfirm) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resident not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
