package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"property-admin-backend/internal/model"
	"property-admin-backend/internal/notification"
	"property-admin-backend/internal/store"
)

// ListReservations returns the full reservation history.
func (h *Handler) ListReservations(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Reservations())
}

// ListPendingReservations returns only the requested reservations.
func (h *Handler) ListPendingReservations(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.PendingReservations())
}

// GetReservation returns a single reservation with its amenity name
// resolved for display.
func (h *Handler) GetReservation(c *gin.Context) {
	res, ok := h.store.ReservationByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"reservation": res,
		"amenityName": h.store.AmenityName(res.AmenityID),
	})
}

// ApproveReservation moves a requested reservation to approved.
func (h *Handler) ApproveReservation(c *gin.Context) {
	h.decideReservation(c, model.ReservationApproved)
}

// DenyReservation moves a requested reservation to denied.
func (h *Handler) DenyReservation(c *gin.Context) {
	h.decideReservation(c, model.ReservationDenied)
}

func (h *Handler) decideReservation(c *gin.Context, status string) {
	res, changed, err := h.store.UpdateReservationStatus(c.Param("id"), status)
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if res.ID == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
		return
	}

	if changed && h.dispatcher != nil {
		h.dispatcher.Dispatch(notification.Decision{
			ReservationID: res.ID,
			AmenityName:   h.store.AmenityName(res.AmenityID),
			Resident:      res.Resident,
			Status:        res.Status,
		})
	}

	c.JSON(http.StatusOK, res)
}
