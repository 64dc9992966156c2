package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"property-admin-backend/internal/store"
)

type openAmenityDialogRequest struct {
	Mode string `json:"mode" binding:"required"`
	ID   string `json:"id"`
}

// GetAmenityDialog returns the amenity dialog state.
func (h *Handler) GetAmenityDialog(c *gin.Context) {
	c.JSON(http.StatusOK, h.amenityDlg.State())
}

// OpenAmenityDialog opens the amenity dialog. Mode "add" starts blank,
// "edit" seeds the form from an existing amenity, and "suggestion"
// accepts the banner's prefilled draft and dismisses the banner.
func (h *Handler) OpenAmenityDialog(c *gin.Context) {
	var req openAmenityDialogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Mode {
	case "add":
		h.amenityDlg.OpenAdd()
	case "edit":
		if !h.amenityDlg.OpenEdit(req.ID) {
			c.JSON(http.StatusNotFound, gin.H{"error": "amenity not found"})
			return
		}
	case "suggestion":
		h.nav.DismissSuggestion()
		h.amenityDlg.OpenSuggested()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be add, edit or suggestion"})
		return
	}
	c.JSON(http.StatusOK, h.amenityDlg.State())
}

// SetAmenityDraft stores the form's current values without committing
// them.
func (h *Handler) SetAmenityDraft(c *gin.Context) {
	var draft store.AmenityDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.amenityDlg.SetDraft(draft)
	c.JSON(http.StatusOK, h.amenityDlg.State())
}

// SubmitAmenityDialog commits the draft. A validation failure keeps the
// dialog open with the draft intact and returns 422.
func (h *Handler) SubmitAmenityDialog(c *gin.Context) {
	created, err := h.amenityDlg.Submit()
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
				"state": h.amenityDlg.State(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.flushCache()
	c.JSON(http.StatusCreated, gin.H{
		"amenity": created,
		"state":   h.amenityDlg.State(),
	})
}

// CloseAmenityDialog discards the draft and closes the dialog.
func (h *Handler) CloseAmenityDialog(c *gin.Context) {
	h.amenityDlg.Close()
	c.JSON(http.StatusOK, h.amenityDlg.State())
}

// GetResidentDialog returns the resident dialog state.
func (h *Handler) GetResidentDialog(c *gin.Context) {
	c.JSON(http.StatusOK, h.residentDlg.State())
}

// OpenResidentDialog opens the add-resident dialog with a blank form.
func (h *Handler) OpenResidentDialog(c *gin.Context) {
	h.residentDlg.Open()
	c.JSON(http.StatusOK, h.residentDlg.State())
}

// SetResidentDraft stores the form's current values without committing
// them.
func (h *Handler) SetResidentDraft(c *gin.Context) {
	var draft store.ResidentDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.residentDlg.SetDraft(draft)
	c.JSON(http.StatusOK, h.residentDlg.State())
}

// SubmitResidentDialog commits the draft, assigning the next resident
// id on success.
func (h *Handler) SubmitResidentDialog(c *gin.Context) {
	created, err := h.residentDlg.Submit()
	if err != nil {
		if errors.Is(err, store.ErrValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
				"state": h.residentDlg.State(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"resident": created,
		"state":    h.residentDlg.State(),
	})
}

// CloseResidentDialog discards the draft and closes the dialog.
func (h *Handler) CloseResidentDialog(c *gin.Context) {
	h.residentDlg.Close()
	c.JSON(http.StatusOK, h.residentDlg.State())
}
