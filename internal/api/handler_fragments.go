package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetFragment renders a named HTML fragment on demand, for clients that
// refresh a single region without a tab transition. Fragments that
// depend on a settings snapshot load it fresh.
func (h *Handler) GetFragment(c *gin.Context) {
	var (
		html string
		err  error
	)

	switch name := c.Param("name"); name {
	case "amenity-list":
		html, err = h.renderer.AmenityList()
	case "non-bookable-amenities":
		html, err = h.renderer.NonBookableList()
	case "rule-options":
		html, err = h.renderer.RuleOptions()
	case "rules-list":
		rules, rerr := h.settings.AmenityRules()
		if rerr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": rerr.Error()})
			return
		}
		html, err = h.renderer.RulesList(rules)
	case "auto-approval":
		flags, ferr := h.settings.AutoApproval()
		if ferr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": ferr.Error()})
			return
		}
		html, err = h.renderer.AutoApprovalList(flags)
	case "pending-reservations":
		html, err = h.renderer.PendingReservations()
	case "all-reservations":
		html, err = h.renderer.AllReservations()
	case "active-requests":
		html, err = h.renderer.ActiveRequests()
	case "completed-requests":
		html, err = h.renderer.CompletedRequests()
	case "residents":
		html, err = h.renderer.Residents(c.Query("q"))
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown fragment " + name})
		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
