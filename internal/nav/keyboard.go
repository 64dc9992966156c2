package nav

// Keyboard keys the sidebar and sub-tab strips react to. Values match the
// browser's KeyboardEvent.key.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyEnter      = "Enter"
	KeySpace      = " "
)

// SidebarKey handles keyboard navigation among the top-level sidebar
// entries. ArrowDown/ArrowUp move focus circularly without activating;
// Enter/Space activate the focused entry. It returns the id that should
// hold focus and whether an activation happened.
func (c *Controller) SidebarKey(focused, key string) (next string, activated bool) {
	tabs := c.reg.Tabs()
	idx := -1
	for i, t := range tabs {
		if t.ID == focused {
			idx = i
			break
		}
	}
	if idx == -1 {
		return focused, false
	}

	switch key {
	case KeyArrowDown:
		return tabs[(idx+1)%len(tabs)].ID, false
	case KeyArrowUp:
		return tabs[(idx-1+len(tabs))%len(tabs)].ID, false
	case KeyEnter, KeySpace:
		c.SelectTab(focused, "")
		return focused, true
	}
	return focused, false
}

// SubTabKey handles keyboard navigation within a tab's sub-tab strip.
// Unlike the vertical sidebar, ArrowRight/ArrowLeft both move focus and
// immediately activate the neighbor, wrapping circularly; Enter/Space
// activate the focused sub-tab in place.
func (c *Controller) SubTabKey(parentID, focused, key string) (next string, activated bool) {
	parent, ok := c.reg.Tab(parentID)
	if !ok || len(parent.SubTabs) == 0 {
		return focused, false
	}
	idx := -1
	for i, st := range parent.SubTabs {
		if st.ID == focused {
			idx = i
			break
		}
	}
	if idx == -1 {
		return focused, false
	}

	switch key {
	case KeyArrowRight:
		next = parent.SubTabs[(idx+1)%len(parent.SubTabs)].ID
		c.SelectSubTab(parentID, next)
		return next, true
	case KeyArrowLeft:
		next = parent.SubTabs[(idx-1+len(parent.SubTabs))%len(parent.SubTabs)].ID
		c.SelectSubTab(parentID, next)
		return next, true
	case KeyEnter, KeySpace:
		c.SelectSubTab(parentID, focused)
		return focused, true
	}
	return focused, false
}
