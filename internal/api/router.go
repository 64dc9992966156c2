package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"property-admin-backend/config"
	"property-admin-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(h *Handler, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	if len(cfg.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.CORSOrigins
		corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
		corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
		r.Use(cors.New(corsCfg))
	}

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst, cfg.RequestIPHeader)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	if h.respCache == nil {
		h.respCache = cache.New(cacheTTL, 2*cacheTTL)
	}
	caching := mw.Cache(h.respCache, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// Navigation
		api.GET("/view", h.GetView)
		api.POST("/view/tab", h.SelectTab)
		api.POST("/view/subtab", h.SelectSubTab)
		api.POST("/view/key", h.Keyboard)
		api.POST("/view/sidebar/toggle", h.ToggleSidebar)
		api.POST("/view/sidebar/outside-click", h.SidebarOutsideClick)
		api.POST("/view/user-menu/toggle", h.ToggleUserMenu)
		api.POST("/view/user-menu/outside-click", h.UserMenuOutsideClick)
		api.POST("/view/user-menu/profile", h.OpenProfile)
		api.POST("/view/user-menu/logout", h.Logout)
		api.POST("/view/suggestion/toggle", h.ToggleSuggestion)

		// Amenities
		api.GET("/amenities", h.ListAmenities)
		api.GET("/amenities/non-bookable", caching, h.ListNonBookableAmenities)
		api.GET("/amenities/:id", h.GetAmenity)
		api.DELETE("/amenities/:id", h.DeleteAmenity)

		// Reservations
		api.GET("/reservations", h.ListReservations)
		api.GET("/reservations/pending", h.ListPendingReservations)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/approve", h.ApproveReservation)
		api.POST("/reservations/:id/deny", h.DenyReservation)

		// Service requests
		api.GET("/service-requests", h.ListServiceRequests)
		api.GET("/service-requests/:id", h.GetServiceRequest)
		api.POST("/service-requests/:id/complete", h.CompleteServiceRequest)
		api.POST("/service-requests/:id/cancel", h.CancelServiceRequest)

		// Residents
		api.GET("/residents", h.ListResidents)
		api.GET("/residents/:id", h.GetResident)
		api.DELETE("/residents/:id", h.DeleteResident)

		// Dialogs
		api.GET("/dialogs/amenity", h.GetAmenityDialog)
		api.POST("/dialogs/amenity/open", h.OpenAmenityDialog)
		api.PUT("/dialogs/amenity/draft", h.SetAmenityDraft)
		api.POST("/dialogs/amenity/submit", h.SubmitAmenityDialog)
		api.POST("/dialogs/amenity/close", h.CloseAmenityDialog)
		api.GET("/dialogs/resident", h.GetResidentDialog)
		api.POST("/dialogs/resident/open", h.OpenResidentDialog)
		api.PUT("/dialogs/resident/draft", h.SetResidentDraft)
		api.POST("/dialogs/resident/submit", h.SubmitResidentDialog)
		api.POST("/dialogs/resident/close", h.CloseResidentDialog)

		// Settings snapshots
		api.GET("/settings/amenity-rules", h.GetAmenityRules)
		api.PUT("/settings/amenity-rules", h.PutAmenityRules)
		api.GET("/settings/auto-approval", h.GetAutoApproval)
		api.PUT("/settings/auto-approval", h.PutAutoApproval)
		api.GET("/settings/theme", h.GetTheme)
		api.PUT("/settings/theme", h.PutTheme)

		// Fragments
		api.GET("/fragments/:name", h.GetFragment)

		// Push subscriptions
		api.GET("/subscriptions", h.GetSubscription)
		api.PUT("/subscriptions", h.PutSubscription)
		api.DELETE("/subscriptions", h.DeleteSubscription)
		api.GET("/vapid_public_key", h.GetVAPIDPublicKey)
	}

	return r
}
