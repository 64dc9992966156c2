package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetView returns the current navigation state.
func (h *Handler) GetView(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"state": h.nav.State()})
}

// viewResponse bundles the post-transition state with the fragments the
// transition rendered, keyed by region id.
func (h *Handler) viewResponse(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state":     h.nav.State(),
		"fragments": h.takeFragments(),
	})
}

type selectTabRequest struct {
	ID    string `json:"id" binding:"required"`
	Title string `json:"title"`
}

// SelectTab activates a top-level tab. Unknown ids leave the state as
// is; the response always reflects the state after the attempt.
func (h *Handler) SelectTab(c *gin.Context) {
	var req selectTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.nav.SelectTab(req.ID, req.Title)
	h.viewResponse(c)
}

type selectSubTabRequest struct {
	Tab string `json:"tab" binding:"required"`
	ID  string `json:"id" binding:"required"`
}

// SelectSubTab activates a sub-tab under its parent tab.
func (h *Handler) SelectSubTab(c *gin.Context) {
	var req selectSubTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.nav.SelectSubTab(req.Tab, req.ID)
	h.viewResponse(c)
}

type keyboardRequest struct {
	Context string `json:"context" binding:"required"`
	Tab     string `json:"tab"`
	Focused string `json:"focused" binding:"required"`
	Key     string `json:"key" binding:"required"`
}

// Keyboard applies a keyboard event to the sidebar or a sub-tab strip
// and reports where focus should land.
func (h *Handler) Keyboard(c *gin.Context) {
	var req keyboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		next      string
		activated bool
	)
	switch req.Context {
	case "sidebar":
		next, activated = h.nav.SidebarKey(req.Focused, req.Key)
	case "subtabs":
		next, activated = h.nav.SubTabKey(req.Tab, req.Focused, req.Key)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "context must be sidebar or subtabs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"next":      next,
		"activated": activated,
		"state":     h.nav.State(),
		"fragments": h.takeFragments(),
	})
}

// ToggleSidebar flips the mobile sidebar.
func (h *Handler) ToggleSidebar(c *gin.Context) {
	h.nav.ToggleMobileSidebar()
	c.JSON(http.StatusOK, gin.H{"state": h.nav.State()})
}

type sidebarClickRequest struct {
	ViewportWidth int  `json:"viewportWidth" binding:"required"`
	InSidebar     bool `json:"inSidebar"`
	InToggle      bool `json:"inToggle"`
}

// SidebarOutsideClick closes the mobile sidebar on a true outside click
// at mobile widths.
func (h *Handler) SidebarOutsideClick(c *gin.Context) {
	var req sidebarClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.nav.SidebarOutsideClick(req.ViewportWidth, req.InSidebar, req.InToggle)
	c.JSON(http.StatusOK, gin.H{"state": h.nav.State()})
}

// ToggleUserMenu flips the user dropdown.
func (h *Handler) ToggleUserMenu(c *gin.Context) {
	h.nav.ToggleUserMenu()
	c.JSON(http.StatusOK, gin.H{"state": h.nav.State()})
}

type userMenuClickRequest struct {
	InMenu    bool `json:"inMenu"`
	InTrigger bool `json:"inTrigger"`
}

// UserMenuOutsideClick closes the user dropdown on a true outside click.
func (h *Handler) UserMenuOutsideClick(c *gin.Context) {
	var req userMenuClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.nav.UserMenuOutsideClick(req.InMenu, req.InTrigger)
	c.JSON(http.StatusOK, gin.H{"state": h.nav.State()})
}

// OpenProfile navigates to the settings tab titled User Profile.
func (h *Handler) OpenProfile(c *gin.Context) {
	h.nav.OpenProfile()
	h.viewResponse(c)
}

// Logout closes the user menu. Session handling lives elsewhere.
func (h *Handler) Logout(c *gin.Context) {
	h.nav.Logout()
	c.JSON(http.StatusOK, gin.H{"state": h.nav.State()})
}

// ToggleSuggestion flips the amenity suggestion banner.
func (h *Handler) ToggleSuggestion(c *gin.Context) {
	h.nav.ToggleSuggestion()
	c.JSON(http.StatusOK, gin.H{"state": h.nav.State()})
}
