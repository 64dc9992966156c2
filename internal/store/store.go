package store

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"property-admin-backend/internal/ident"
	"property-admin-backend/internal/model"
)

// unknownAmenityName is shown when a reservation references an amenity
// that was deleted or never existed.
const unknownAmenityName = "Unknown Amenity"

// Store owns the in-memory collections for every dashboard entity type.
// The HTTP layer is concurrent, so all access goes through the mutex even
// though individual operations are simple slice edits.
type Store struct {
	mu sync.RWMutex

	amenities   []model.Amenity
	bookable    []model.Amenity // snapshot frozen at construction
	nonBookable []model.Amenity

	reservations []model.Reservation
	requests     []model.ServiceRequest
	residents    []model.Resident

	// Monotonic: survives deletions so resident ids are never reused.
	residentSeq int
}

// New creates a store seeded with the given collections. The bookable
// snapshot is copied from the initial amenity list and never changes
// afterwards, no matter how the live list is edited.
func New(amenities, nonBookable []model.Amenity, reservations []model.Reservation, requests []model.ServiceRequest, residents []model.Resident) *Store {
	return &Store{
		amenities:    append([]model.Amenity(nil), amenities...),
		bookable:     append([]model.Amenity(nil), amenities...),
		nonBookable:  append([]model.Amenity(nil), nonBookable...),
		reservations: append([]model.Reservation(nil), reservations...),
		requests:     append([]model.ServiceRequest(nil), requests...),
		residents:    append([]model.Resident(nil), residents...),
		residentSeq:  len(residents),
	}
}

// --- Amenities ---

// AmenityDraft carries the form fields for creating or editing an amenity.
// Capacity stays a string here; validation parses it.
type AmenityDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    string `json:"capacity"`
	ImageURL    string `json:"imageUrl"`
	IconClass   string `json:"iconClass"`
}

func validateAmenityDraft(d AmenityDraft) (int, error) {
	if strings.TrimSpace(d.Name) == "" {
		return 0, fmt.Errorf("%w: amenity name is required", ErrValidation)
	}
	capacity, err := strconv.Atoi(strings.TrimSpace(d.Capacity))
	if err != nil || capacity < 1 {
		return 0, fmt.Errorf("%w: capacity must be a positive number", ErrValidation)
	}
	return capacity, nil
}

// Amenities returns a copy of the live amenity collection.
func (s *Store) Amenities() []model.Amenity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Amenity(nil), s.amenities...)
}

// BookableAmenities returns the frozen snapshot taken at construction.
// The amenity-rules listing resolves names against this snapshot, so rules
// for later-deleted amenities still display.
func (s *Store) BookableAmenities() []model.Amenity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Amenity(nil), s.bookable...)
}

// NonBookableAmenities returns the open-access amenities. These carry no
// capacity or booking semantics.
func (s *Store) NonBookableAmenities() []model.Amenity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Amenity(nil), s.nonBookable...)
}

// AmenityByID looks up a live amenity.
func (s *Store) AmenityByID(id string) (model.Amenity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.amenities {
		if a.ID == id {
			return a, true
		}
	}
	return model.Amenity{}, false
}

// AmenityName resolves an amenity id for display, falling back to
// "Unknown Amenity" for dangling references.
func (s *Store) AmenityName(id string) string {
	if a, ok := s.AmenityByID(id); ok {
		return a.Name
	}
	return unknownAmenityName
}

// AddAmenity validates the draft and appends a new amenity. The id is a
// slug of the name, suffixed on collision so ids stay unique.
func (s *Store) AddAmenity(d AmenityDraft) (model.Amenity, error) {
	capacity, err := validateAmenityDraft(d)
	if err != nil {
		return model.Amenity{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := ident.UniqueSlug(d.Name, func(candidate string) bool {
		for _, a := range s.amenities {
			if a.ID == candidate {
				return true
			}
		}
		return false
	})

	amenity := model.Amenity{
		ID:          id,
		Name:        d.Name,
		Description: d.Description,
		Capacity:    capacity,
		ImageURL:    d.ImageURL,
		IconClass:   d.IconClass,
	}
	s.amenities = append(s.amenities, amenity)
	return amenity, nil
}

// UpdateAmenity overwrites the fields of an existing amenity. The draft is
// validated before anything is written, so a failed update leaves the
// record untouched. An unknown id is a silent no-op.
func (s *Store) UpdateAmenity(id string, d AmenityDraft) error {
	capacity, err := validateAmenityDraft(d)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.amenities {
		if s.amenities[i].ID == id {
			s.amenities[i].Name = d.Name
			s.amenities[i].Description = d.Description
			s.amenities[i].Capacity = capacity
			s.amenities[i].ImageURL = d.ImageURL
			s.amenities[i].IconClass = d.IconClass
			return nil
		}
	}
	return nil
}

// RemoveAmenity deletes an amenity when the confirmation capability
// agrees. Reservations referencing it are left alone; they render as
// "Unknown Amenity" from then on.
func (s *Store) RemoveAmenity(id string, confirm ConfirmFunc) bool {
	if !confirm("amenity", id) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.amenities[:0]
	removed := false
	for _, a := range s.amenities {
		if a.ID == id {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	s.amenities = kept
	return removed
}

// --- Reservations ---

// Reservations returns a copy of every reservation.
func (s *Store) Reservations() []model.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Reservation(nil), s.reservations...)
}

// PendingReservations returns reservations still awaiting a decision.
func (s *Store) PendingReservations() []model.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var pending []model.Reservation
	for _, r := range s.reservations {
		if r.Status == model.ReservationRequested {
			pending = append(pending, r)
		}
	}
	return pending
}

// ReservationByID looks up a reservation.
func (s *Store) ReservationByID(id string) (model.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reservations {
		if r.ID == id {
			return r, true
		}
	}
	return model.Reservation{}, false
}

// UpdateReservationStatus moves a requested reservation to approved or
// denied. Those are the only transitions; anything else is rejected, and
// an unknown id or an already-decided reservation is a no-op. The updated
// reservation and whether a change happened are returned so callers can
// fan out notifications.
func (s *Store) UpdateReservationStatus(id, status string) (model.Reservation, bool, error) {
	if status != model.ReservationApproved && status != model.ReservationDenied {
		return model.Reservation{}, false, fmt.Errorf("%w: invalid reservation status %q", ErrValidation, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reservations {
		if s.reservations[i].ID != id {
			continue
		}
		if s.reservations[i].Status != model.ReservationRequested {
			return s.reservations[i], false, nil
		}
		s.reservations[i].Status = status
		return s.reservations[i], true, nil
	}
	return model.Reservation{}, false, nil
}

// --- Service requests ---

// ServiceRequests returns a copy of every service request.
func (s *Store) ServiceRequests() []model.ServiceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ServiceRequest(nil), s.requests...)
}

// ServiceRequestsByStatus filters service requests by their exact status.
func (s *Store) ServiceRequestsByStatus(status string) []model.ServiceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.ServiceRequest
	for _, r := range s.requests {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// ServiceRequestByID looks up a service request.
func (s *Store) ServiceRequestByID(id string) (model.ServiceRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.requests {
		if r.ID == id {
			return r, true
		}
	}
	return model.ServiceRequest{}, false
}

// CompleteServiceRequest marks an active request completed and stamps the
// completion date. Completed is terminal; an unknown id is a no-op.
func (s *Store) CompleteServiceRequest(id string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID != id {
			continue
		}
		if s.requests[i].Status != model.RequestActive {
			return false
		}
		s.requests[i].Status = model.RequestCompleted
		s.requests[i].CompletionDate = now.Format("2006-01-02")
		return true
	}
	return false
}

// CancelServiceRequest removes a request outright when confirmed. There is
// no cancelled status: cancellation is deletion, regardless of the
// request's prior state.
func (s *Store) CancelServiceRequest(id string, confirm ConfirmFunc) bool {
	if !confirm("service-request", id) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.requests[:0]
	removed := false
	for _, r := range s.requests {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	s.requests = kept
	return removed
}

// --- Residents ---

// ResidentDraft carries the form fields for registering a resident.
type ResidentDraft struct {
	Name       string `json:"name"`
	Unit       string `json:"unit"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	MoveInDate string `json:"moveInDate"`
}

// Residents returns a copy of every resident.
func (s *Store) Residents() []model.Resident {
	return s.SearchResidents("")
}

// SearchResidents returns residents whose name, unit, or email contains
// the term, case-insensitively. An empty term matches everyone.
func (s *Store) SearchResidents(term string) []model.Resident {
	term = strings.ToLower(term)
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Resident
	for _, r := range s.residents {
		if strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.Unit), term) ||
			strings.Contains(strings.ToLower(r.Email), term) {
			out = append(out, r)
		}
	}
	return out
}

// ResidentByID looks up a resident.
func (s *Store) ResidentByID(id string) (model.Resident, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.residents {
		if r.ID == id {
			return r, true
		}
	}
	return model.Resident{}, false
}

// AddResident validates the draft and appends a new resident with the next
// sequential id.
func (s *Store) AddResident(d ResidentDraft) (model.Resident, error) {
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Unit) == "" ||
		strings.TrimSpace(d.Email) == "" || strings.TrimSpace(d.MoveInDate) == "" {
		return model.Resident{}, fmt.Errorf("%w: full name, unit, email, and move-in date are required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.residentSeq++
	resident := model.Resident{
		ID:         ident.ResidentID(s.residentSeq),
		Name:       d.Name,
		Unit:       d.Unit,
		Email:      d.Email,
		Phone:      d.Phone,
		MoveInDate: d.MoveInDate,
	}
	s.residents = append(s.residents, resident)
	return resident, nil
}

// RemoveResident deletes a resident when confirmed.
func (s *Store) RemoveResident(id string, confirm ConfirmFunc) bool {
	if !confirm("resident", id) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.residents[:0]
	removed := false
	for _, r := range s.residents {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	s.residents = kept
	return removed
}
