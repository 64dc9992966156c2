package nav

import "strings"

// SubTab is a second-level view inside a tab, bound to its own region.
type SubTab struct {
	ID     string `json:"id"`
	Region string `json:"region"`
}

// Tab is a top-level view bound to a content region, optionally owning a
// strip of sub-tabs.
type Tab struct {
	ID      string   `json:"id"`
	Region  string   `json:"region"`
	SubTabs []SubTab `json:"subTabs,omitempty"`
}

// Registry is the static description of every view the dashboard has.
// The markup layer supplies matching element ids; the registry is the
// single source the controller navigates by.
type Registry struct {
	tabs  []Tab
	index map[string]int
}

// NewRegistry builds a registry from an ordered tab list.
func NewRegistry(tabs []Tab) *Registry {
	r := &Registry{tabs: tabs, index: make(map[string]int, len(tabs))}
	for i, t := range tabs {
		r.index[t.ID] = i
	}
	return r
}

// Dashboard returns the registry for the admin dashboard's view tree.
func Dashboard() *Registry {
	return NewRegistry([]Tab{
		{ID: "home", Region: "home-tab-content"},
		{ID: "amenities", Region: "amenities-tab-content", SubTabs: []SubTab{
			{ID: "amenity-list", Region: "amenity-list-sub-tab-content"},
			{ID: "amenity-rules", Region: "amenity-rules-sub-tab-content"},
			{ID: "amenity-settings", Region: "amenity-settings-sub-tab-content"},
		}},
		{ID: "reservations", Region: "reservations-tab-content", SubTabs: []SubTab{
			{ID: "pending-reservations", Region: "pending-reservations-sub-tab-content"},
			{ID: "all-reservations", Region: "all-reservations-sub-tab-content"},
		}},
		{ID: "service-requests", Region: "service-requests-tab-content", SubTabs: []SubTab{
			{ID: "active-requests", Region: "active-requests-sub-tab-content"},
			{ID: "completed-requests", Region: "completed-requests-sub-tab-content"},
		}},
		{ID: "resident-management", Region: "resident-management-tab-content"},
		{ID: "announcements", Region: "announcements-tab-content"},
		{ID: "settings", Region: "settings-tab-content"},
	})
}

// Tabs returns the tabs in sidebar order.
func (r *Registry) Tabs() []Tab {
	return r.tabs
}

// Tab looks up a tab by id.
func (r *Registry) Tab(id string) (Tab, bool) {
	i, ok := r.index[id]
	if !ok {
		return Tab{}, false
	}
	return r.tabs[i], true
}

// SubTab looks up a sub-tab under a parent tab.
func (r *Registry) SubTab(parentID, subID string) (SubTab, bool) {
	parent, ok := r.Tab(parentID)
	if !ok {
		return SubTab{}, false
	}
	for _, st := range parent.SubTabs {
		if st.ID == subID {
			return st, true
		}
	}
	return SubTab{}, false
}

// FirstSubTab returns the first declared sub-tab of a tab, if any.
func (r *Registry) FirstSubTab(parentID string) (SubTab, bool) {
	parent, ok := r.Tab(parentID)
	if !ok || len(parent.SubTabs) == 0 {
		return SubTab{}, false
	}
	return parent.SubTabs[0], true
}

// FormatTitle turns a tab or sub-tab id into a header title: hyphens
// become spaces and each word is capitalized.
func FormatTitle(id string) string {
	words := strings.Split(strings.ReplaceAll(id, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
