// Package modal holds the dialog state machines backing the amenity and
// resident forms. A modal keeps its draft while open so a failed submit
// leaves the operator's input intact; only a successful submit or an
// explicit cancel discards it.
package modal

import (
	"strconv"
	"sync"

	"property-admin-backend/internal/model"
	"property-admin-backend/internal/store"
)

// Amenity modal modes.
const (
	ModeAdd  = "add"
	ModeEdit = "edit"
)

// SuggestionDraft is the prefill applied when the operator accepts the
// amenity suggestion banner.
func SuggestionDraft() store.AmenityDraft {
	return store.AmenityDraft{
		Name:        "Co-working Space",
		Description: "Modern co-working space with high-speed internet and comfortable seating.",
		Capacity:    "20",
		IconClass:   "uil uil-laptop",
	}
}

// AmenityState is the serializable snapshot of the amenity dialog.
type AmenityState struct {
	Open     bool               `json:"open"`
	Mode     string             `json:"mode,omitempty"`
	TargetID string             `json:"targetId,omitempty"`
	Draft    store.AmenityDraft `json:"draft"`
	Error    string             `json:"error,omitempty"`
}

// AmenityModal drives the add/edit amenity dialog against a store.
type AmenityModal struct {
	mu    sync.Mutex
	store *store.Store
	state AmenityState
}

func NewAmenityModal(s *store.Store) *AmenityModal {
	return &AmenityModal{store: s}
}

// State returns the current snapshot.
func (m *AmenityModal) State() AmenityState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// OpenAdd opens the dialog with an empty draft.
func (m *AmenityModal) OpenAdd() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = AmenityState{Open: true, Mode: ModeAdd}
}

// OpenSuggested opens the dialog in add mode prefilled with the
// suggestion banner's draft.
func (m *AmenityModal) OpenSuggested() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = AmenityState{Open: true, Mode: ModeAdd, Draft: SuggestionDraft()}
}

// OpenEdit opens the dialog in edit mode seeded from the stored amenity.
// Unknown ids leave the dialog closed and report false.
func (m *AmenityModal) OpenEdit(id string) bool {
	a, ok := m.store.AmenityByID(id)
	if !ok {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = AmenityState{
		Open:     true,
		Mode:     ModeEdit,
		TargetID: a.ID,
		Draft: store.AmenityDraft{
			Name:        a.Name,
			Description: a.Description,
			Capacity:    strconv.Itoa(a.Capacity),
			ImageURL:    a.ImageURL,
			IconClass:   a.IconClass,
		},
	}
	return true
}

// SetDraft replaces the working draft with the operator's current form
// values. Ignored while the dialog is closed.
func (m *AmenityModal) SetDraft(d store.AmenityDraft) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.state.Open {
		return
	}
	m.state.Draft = d
	m.state.Error = ""
}

// Submit commits the draft. On success the dialog closes and the draft
// is cleared; on validation failure it stays open with the draft and the
// error message retained so the operator can correct the form.
func (m *AmenityModal) Submit() (model.Amenity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.state.Open {
		return model.Amenity{}, store.ErrValidation
	}

	var (
		created model.Amenity
		err     error
	)
	switch m.state.Mode {
	case ModeEdit:
		err = m.store.UpdateAmenity(m.state.TargetID, m.state.Draft)
		if err == nil {
			created, _ = m.store.AmenityByID(m.state.TargetID)
		}
	default:
		created, err = m.store.AddAmenity(m.state.Draft)
	}
	if err != nil {
		m.state.Error = err.Error()
		return model.Amenity{}, err
	}
	m.state = AmenityState{}
	return created, nil
}

// Close discards the draft and closes the dialog.
func (m *AmenityModal) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = AmenityState{}
}

// ResidentState is the serializable snapshot of the resident dialog.
type ResidentState struct {
	Open  bool                `json:"open"`
	Draft store.ResidentDraft `json:"draft"`
	Error string              `json:"error,omitempty"`
}

// ResidentModal drives the add-resident dialog.
type ResidentModal struct {
	mu    sync.Mutex
	store *store.Store
	state ResidentState
}

func NewResidentModal(s *store.Store) *ResidentModal {
	return &ResidentModal{store: s}
}

func (m *ResidentModal) State() ResidentState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *ResidentModal) Open() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = ResidentState{Open: true}
}

func (m *ResidentModal) SetDraft(d store.ResidentDraft) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.state.Open {
		return
	}
	m.state.Draft = d
	m.state.Error = ""
}

func (m *ResidentModal) Submit() (model.Resident, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.state.Open {
		return model.Resident{}, store.ErrValidation
	}
	created, err := m.store.AddResident(m.state.Draft)
	if err != nil {
		m.state.Error = err.Error()
		return model.Resident{}, err
	}
	m.state = ResidentState{}
	return created, nil
}

func (m *ResidentModal) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = ResidentState{}
}
