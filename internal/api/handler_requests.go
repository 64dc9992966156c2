package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"property-admin-backend/internal/model"
	"property-admin-backend/internal/store"
)

// ListServiceRequests returns service requests, optionally filtered by
// status.
func (h *Handler) ListServiceRequests(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusOK, h.store.ServiceRequests())
		return
	}
	if status != model.RequestActive && status != model.RequestCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be active or completed"})
		return
	}
	c.JSON(http.StatusOK, h.store.ServiceRequestsByStatus(status))
}

// GetServiceRequest returns a single service request.
func (h *Handler) GetServiceRequest(c *gin.Context) {
	req, ok := h.store.ServiceRequestByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "service request not found"})
		return
	}
	c.JSON(http.StatusOK, req)
}

// CompleteServiceRequest marks an active request completed, stamping
// today as the completion date.
func (h *Handler) CompleteServiceRequest(c *gin.Context) {
	id := c.Param("id")
	if !h.store.CompleteServiceRequest(id, time.Now()) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active service request with that id"})
		return
	}
	req, _ := h.store.ServiceRequestByID(id)
	c.JSON(http.StatusOK, req)
}

// CancelServiceRequest removes an active request outright.
func (h *Handler) CancelServiceRequest(c *gin.Context) {
	if !h.store.CancelServiceRequest(c.Param("id"), store.AlwaysConfirm) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active service request with that id"})
		return
	}
	c.Status(http.StatusNoContent)
}
