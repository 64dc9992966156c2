package api

import (
	"log"
	"sync"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"property-admin-backend/internal/modal"
	"property-admin-backend/internal/nav"
	"property-admin-backend/internal/notification"
	"property-admin-backend/internal/render"
	"property-admin-backend/internal/settings"
	"property-admin-backend/internal/store"
)

// Dispatcher hands reservation decisions to the notification workers.
type Dispatcher interface {
	Dispatch(notification.Decision)
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store       *store.Store
	settings    *settings.Store
	renderer    *render.Renderer
	nav         *nav.Controller
	amenityDlg  *modal.AmenityModal
	residentDlg *modal.ResidentModal
	dispatcher  Dispatcher
	db          *gorm.DB
	webpush     *webpush.Options
	respCache   *cache.Cache

	mu        sync.Mutex
	fragments map[string]string
}

// NewHandler creates a new API handler. The navigation controller is
// built here so tab transitions repopulate the regions they reveal.
func NewHandler(s *store.Store, set *settings.Store, db *gorm.DB, dispatcher Dispatcher, webpushOptions *webpush.Options, respCache *cache.Cache) *Handler {
	h := &Handler{
		store:       s,
		settings:    set,
		renderer:    render.New(s),
		amenityDlg:  modal.NewAmenityModal(s),
		residentDlg: modal.NewResidentModal(s),
		dispatcher:  dispatcher,
		db:          db,
		webpush:     webpushOptions,
		respCache:   respCache,
	}
	h.nav = nav.NewController(nav.Dashboard(), h.populate)
	return h
}

// populate renders the fragments a tab transition reveals. The rendered
// regions ride along on the next view response.
func (h *Handler) populate(tabID, subTabID string) {
	fragments := map[string]string{}
	put := func(region string, html string, err error) {
		if err != nil {
			log.Printf("Failed to render region %s: %v", region, err)
			return
		}
		fragments[region] = html
	}

	switch subTabID {
	case "amenity-list":
		html, err := h.renderer.AmenityList()
		put("amenity-management-list", html, err)
	case "amenity-rules":
		html, err := h.renderer.RuleOptions()
		put("rule-amenity-select", html, err)
		rules, err := h.settings.AmenityRules()
		if err != nil {
			log.Printf("Failed to load amenity rules: %v", err)
		} else {
			html, err := h.renderer.RulesList(rules)
			put("current-amenity-rules-list", html, err)
		}
		html, err = h.renderer.NonBookableList()
		put("non-bookable-amenities-list", html, err)
	case "amenity-settings":
		flags, err := h.settings.AutoApproval()
		if err != nil {
			log.Printf("Failed to load auto-approval settings: %v", err)
		} else {
			html, err := h.renderer.AutoApprovalList(flags)
			put("auto-approval-settings-list", html, err)
		}
	case "pending-reservations":
		html, err := h.renderer.PendingReservations()
		put("pending-reservations-table-body", html, err)
	case "all-reservations":
		html, err := h.renderer.AllReservations()
		put("all-reservations-table-body", html, err)
	case "active-requests":
		html, err := h.renderer.ActiveRequests()
		put("active-service-requests-table-body", html, err)
	case "completed-requests":
		html, err := h.renderer.CompletedRequests()
		put("completed-service-requests-table-body", html, err)
	}

	if subTabID == "" && tabID == "resident-management" {
		html, err := h.renderer.Residents("")
		put("resident-list-table-body", html, err)
	}

	h.mu.Lock()
	h.fragments = fragments
	h.mu.Unlock()
}

// takeFragments returns and clears the fragments the last transition
// produced.
func (h *Handler) takeFragments() map[string]string {
	h.mu.Lock()
	defer h.mu.Unlock()
	f := h.fragments
	h.fragments = nil
	if f == nil {
		f = map[string]string{}
	}
	return f
}

// flushCache drops every cached response after a mutation.
func (h *Handler) flushCache() {
	if h.respCache != nil {
		h.respCache.Flush()
	}
}
