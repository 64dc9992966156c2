package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property-admin-backend/internal/store"
)

// ListAmenities returns the live bookable amenity collection.
func (h *Handler) ListAmenities(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Amenities())
}

// ListNonBookableAmenities returns the open-access amenities. The
// collection never changes at runtime, so responses sit behind the
// cache middleware.
func (h *Handler) ListNonBookableAmenities(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.NonBookableAmenities())
}

// GetAmenity returns a single amenity.
func (h *Handler) GetAmenity(c *gin.Context) {
	a, ok := h.store.AmenityByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "amenity not found"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// DeleteAmenity removes an amenity from the live collection. The client
// confirms before calling, so the server-side confirmation always
// passes.
func (h *Handler) DeleteAmenity(c *gin.Context) {
	if !h.store.RemoveAmenity(c.Param("id"), store.AlwaysConfirm) {
		c.JSON(http.StatusNotFound, gin.H{"error": "amenity not found"})
		return
	}
	h.flushCache()
	c.Status(http.StatusNoContent)
}
