package nav

import "sync"

// mobileBreakpoint is the viewport width (px) at or below which the
// sidebar overlays the content and outside clicks dismiss it.
const mobileBreakpoint = 992

// PopulateFunc is invoked after every transition so the view being shown
// is re-rendered from the current collections and stale renders are never
// visible. subTabID is empty when the tab owns no sub-tabs.
type PopulateFunc func(tabID, subTabID string)

// Controller is the navigation state machine. It owns which tab and
// sub-tab are active, sidebar expansion, the header title, and the
// transient chrome (mobile sidebar, user menu, suggestion banner).
// Everything shown on screen is derived from this state.
type Controller struct {
	mu  sync.Mutex
	reg *Registry

	populate PopulateFunc

	activeTab    string
	activeSubTab string
	headerTitle  string
	expanded     map[string]bool

	mobileSidebarOpen bool
	userMenuOpen      bool
	suggestionOpen    bool
}

// NewController creates a controller over the given registry. populate
// may be nil when no render pipeline is attached (tests).
func NewController(reg *Registry, populate PopulateFunc) *Controller {
	return &Controller{reg: reg, populate: populate, expanded: make(map[string]bool)}
}

// ViewState is the serializable snapshot clients reconcile the DOM from.
type ViewState struct {
	ActiveTab         string   `json:"activeTab"`
	ActiveSubTab      string   `json:"activeSubTab,omitempty"`
	HeaderTitle       string   `json:"headerTitle"`
	ExpandedTabs      []string `json:"expandedTabs"`
	VisibleRegions    []string `json:"visibleRegions"`
	MobileSidebarOpen bool     `json:"mobileSidebarOpen"`
	UserMenuOpen      bool     `json:"userMenuOpen"`
	SuggestionOpen    bool     `json:"suggestionOpen"`
}

// State returns the current snapshot.
func (c *Controller) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() ViewState {
	st := ViewState{
		ActiveTab:         c.activeTab,
		ActiveSubTab:      c.activeSubTab,
		HeaderTitle:       c.headerTitle,
		ExpandedTabs:      []string{},
		MobileSidebarOpen: c.mobileSidebarOpen,
		UserMenuOpen:      c.userMenuOpen,
		SuggestionOpen:    c.suggestionOpen,
	}
	for _, t := range c.reg.Tabs() {
		if c.expanded[t.ID] {
			st.ExpandedTabs = append(st.ExpandedTabs, t.ID)
		}
	}
	if tab, ok := c.reg.Tab(c.activeTab); ok {
		st.VisibleRegions = append(st.VisibleRegions, tab.Region)
		if sub, ok := c.reg.SubTab(c.activeTab, c.activeSubTab); ok {
			st.VisibleRegions = append(st.VisibleRegions, sub.Region)
		}
	}
	return st
}

// SelectTab makes tabID the only active tab. The header title is the
// given one, or derived from the id when empty. Tabs owning sub-tabs
// expand and auto-activate their first sub-tab; tabs without sub-tabs
// show only their own region. Unknown ids are a silent no-op. Any open
// suggestion banner is dismissed on every transition.
func (c *Controller) SelectTab(tabID, title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectTabLocked(tabID, title)
}

func (c *Controller) selectTabLocked(tabID, title string) {
	if _, ok := c.reg.Tab(tabID); !ok {
		return
	}

	c.suggestionOpen = false
	c.activeTab = tabID
	c.activeSubTab = ""
	c.expanded = make(map[string]bool)
	if title != "" {
		c.headerTitle = title
	} else {
		c.headerTitle = FormatTitle(tabID)
	}

	if first, ok := c.reg.FirstSubTab(tabID); ok {
		c.selectSubTabLocked(tabID, first.ID)
		return
	}
	c.dispatchPopulate(tabID, "")
}

// SelectSubTab makes subID the active sub-tab of parentID, re-asserting
// the parent as the active, expanded sidebar entry and setting the header
// title from the sub-tab id. Unknown parent or sub ids are a silent
// no-op. Invoking it twice in a row yields the same state as once.
func (c *Controller) SelectSubTab(parentID, subID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectSubTabLocked(parentID, subID)
}

func (c *Controller) selectSubTabLocked(parentID, subID string) {
	if _, ok := c.reg.SubTab(parentID, subID); !ok {
		return
	}
	c.activeTab = parentID
	c.activeSubTab = subID
	c.expanded = map[string]bool{parentID: true}
	c.headerTitle = FormatTitle(subID)
	c.dispatchPopulate(parentID, subID)
}

func (c *Controller) dispatchPopulate(tabID, subTabID string) {
	if c.populate != nil {
		c.populate(tabID, subTabID)
	}
}

// --- Mobile sidebar ---

// ToggleMobileSidebar flips the hamburger-menu state and reports the new
// open state.
func (c *Controller) ToggleMobileSidebar() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mobileSidebarOpen = !c.mobileSidebarOpen
	return c.mobileSidebarOpen
}

// SidebarOutsideClick closes the mobile sidebar when a click lands
// outside both the sidebar and its toggle on a narrow viewport.
func (c *Controller) SidebarOutsideClick(viewportWidth int, inSidebar, inToggle bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if viewportWidth <= mobileBreakpoint && c.mobileSidebarOpen && !inSidebar && !inToggle {
		c.mobileSidebarOpen = false
	}
}

// --- User menu ---

// ToggleUserMenu flips the user dropdown and reports the new open state.
func (c *Controller) ToggleUserMenu() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userMenuOpen = !c.userMenuOpen
	return c.userMenuOpen
}

// UserMenuOutsideClick closes the dropdown when a click lands outside the
// menu and its trigger.
func (c *Controller) UserMenuOutsideClick(inMenu, inTrigger bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !inMenu && !inTrigger {
		c.userMenuOpen = false
	}
}

// OpenProfile routes the profile entry to the generic settings tab and
// closes the menu.
func (c *Controller) OpenProfile() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userMenuOpen = false
	c.selectTabLocked("settings", "User Profile")
}

// Logout only closes the menu. There is no session to terminate.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userMenuOpen = false
}

// --- Suggestion banner ---

// ToggleSuggestion flips the suggestion banner and reports the new state.
func (c *Controller) ToggleSuggestion() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.suggestionOpen = !c.suggestionOpen
	return c.suggestionOpen
}

// DismissSuggestion hides the suggestion banner.
func (c *Controller) DismissSuggestion() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.suggestionOpen = false
}
