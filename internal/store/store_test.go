package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-admin-backend/internal/model"
)

func TestAddAmenity(t *testing.T) {
	testCases := []struct {
		name       string
		draft      AmenityDraft
		expectedID string
		expectErr  bool
	}{
		{
			name:       "Valid amenity",
			draft:      AmenityDraft{Name: "Co-working Space", Description: "Modern co-working space.", Capacity: "20"},
			expectedID: "co-working-space",
		},
		{
			name:      "Missing name",
			draft:     AmenityDraft{Capacity: "10"},
			expectErr: true,
		},
		{
			name:      "Non-numeric capacity",
			draft:     AmenityDraft{Name: "Gym", Capacity: "lots"},
			expectErr: true,
		},
		{
			name:      "Zero capacity",
			draft:     AmenityDraft{Name: "Gym", Capacity: "0"},
			expectErr: true,
		},
		{
			name:      "Negative capacity",
			draft:     AmenityDraft{Name: "Gym", Capacity: "-3"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSeeded()
			before := len(s.Amenities())

			amenity, err := s.AddAmenity(tc.draft)
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrValidation)
				assert.Len(t, s.Amenities(), before, "failed create must not mutate the collection")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedID, amenity.ID)
			assert.Len(t, s.Amenities(), before+1)
		})
	}
}

func TestAddAmenity_SlugCollision(t *testing.T) {
	s := NewSeeded()

	// "Sauna" already exists in the seed data under id "sauna".
	amenity, err := s.AddAmenity(AmenityDraft{Name: "Sauna", Capacity: "6"})
	require.NoError(t, err)
	assert.Equal(t, "sauna-2", amenity.ID)

	amenity, err = s.AddAmenity(AmenityDraft{Name: "Sauna", Capacity: "6"})
	require.NoError(t, err)
	assert.Equal(t, "sauna-3", amenity.ID)
}

func TestUpdateAmenity(t *testing.T) {
	s := NewSeeded()

	err := s.UpdateAmenity("sauna", AmenityDraft{Name: "Dry Sauna", Description: "Renovated.", Capacity: "6"})
	require.NoError(t, err)
	updated, ok := s.AmenityByID("sauna")
	require.True(t, ok)
	assert.Equal(t, "Dry Sauna", updated.Name)
	assert.Equal(t, 6, updated.Capacity)

	// Validation failure leaves the record untouched.
	err = s.UpdateAmenity("sauna", AmenityDraft{Name: "", Capacity: "6"})
	assert.ErrorIs(t, err, ErrValidation)
	unchanged, _ := s.AmenityByID("sauna")
	assert.Equal(t, "Dry Sauna", unchanged.Name)

	// Unknown id is a silent no-op.
	assert.NoError(t, s.UpdateAmenity("no-such-amenity", AmenityDraft{Name: "X", Capacity: "1"}))
}

func TestRemoveAmenity(t *testing.T) {
	s := NewSeeded()

	assert.True(t, s.RemoveAmenity("sauna", AlwaysConfirm))
	_, ok := s.AmenityByID("sauna")
	assert.False(t, ok)

	// The frozen bookable snapshot still contains it.
	var found bool
	for _, a := range s.BookableAmenities() {
		if a.ID == "sauna" {
			found = true
		}
	}
	assert.True(t, found, "bookable snapshot must not shrink on delete")

	// A refusing confirmation leaves the collection alone.
	refuse := func(kind, id string) bool { return false }
	assert.False(t, s.RemoveAmenity("spa", refuse))
	_, ok = s.AmenityByID("spa")
	assert.True(t, ok)
}

func TestAmenityName_DanglingReference(t *testing.T) {
	s := NewSeeded()
	// res002 references "gym", which is not in the amenity collection.
	assert.Equal(t, "Unknown Amenity", s.AmenityName("gym"))
	assert.Equal(t, "Swimming Pool", s.AmenityName("swimming-pool"))
}

func TestUpdateReservationStatus(t *testing.T) {
	testCases := []struct {
		name          string
		id            string
		status        string
		expectChanged bool
		expectErr     bool
	}{
		{
			name:          "Approve a requested reservation",
			id:            "res001",
			status:        model.ReservationApproved,
			expectChanged: true,
		},
		{
			name:          "Deny a requested reservation",
			id:            "res004",
			status:        model.ReservationDenied,
			expectChanged: true,
		},
		{
			name:   "Already approved is a no-op",
			id:     "res002",
			status: model.ReservationDenied,
		},
		{
			name:   "Unknown id is a no-op",
			id:     "res999",
			status: model.ReservationApproved,
		},
		{
			name:      "Requested is not a valid target",
			id:        "res001",
			status:    model.ReservationRequested,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSeeded()
			res, changed, err := s.UpdateReservationStatus(tc.id, tc.status)
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectChanged, changed)
			if tc.expectChanged {
				assert.Equal(t, tc.status, res.Status)
			}
		})
	}
}

func TestUpdateReservationStatus_MovesBetweenLists(t *testing.T) {
	s := NewSeeded()

	_, changed, err := s.UpdateReservationStatus("res001", model.ReservationApproved)
	require.NoError(t, err)
	require.True(t, changed)

	for _, r := range s.PendingReservations() {
		assert.NotEqual(t, "res001", r.ID, "approved reservation must leave the pending list")
	}

	var inAll bool
	for _, r := range s.Reservations() {
		if r.ID == "res001" {
			inAll = true
			assert.Equal(t, model.ReservationApproved, r.Status)
		}
	}
	assert.True(t, inAll)
}

func TestCompleteServiceRequest(t *testing.T) {
	s := NewSeeded()
	now := time.Date(2025, 7, 10, 15, 0, 0, 0, time.UTC)

	assert.True(t, s.CompleteServiceRequest("SR001", now))
	req, ok := s.ServiceRequestByID("SR001")
	require.True(t, ok)
	assert.Equal(t, model.RequestCompleted, req.Status)
	assert.Equal(t, "2025-07-10", req.CompletionDate)

	// Completed is terminal.
	assert.False(t, s.CompleteServiceRequest("SR001", now.Add(24*time.Hour)))
	req, _ = s.ServiceRequestByID("SR001")
	assert.Equal(t, "2025-07-10", req.CompletionDate)

	assert.False(t, s.CompleteServiceRequest("SR999", now))
}

func TestCancelServiceRequest(t *testing.T) {
	s := NewSeeded()

	// Cancellation is a hard delete, regardless of status.
	assert.True(t, s.CancelServiceRequest("SR003", AlwaysConfirm))
	_, ok := s.ServiceRequestByID("SR003")
	assert.False(t, ok)
	assert.Empty(t, filterByID(s.ServiceRequestsByStatus(model.RequestCompleted), "SR003"))
	assert.Empty(t, filterByID(s.ServiceRequestsByStatus(model.RequestActive), "SR003"))

	assert.False(t, s.CancelServiceRequest("SR999", AlwaysConfirm))
}

func filterByID(requests []model.ServiceRequest, id string) []model.ServiceRequest {
	var out []model.ServiceRequest
	for _, r := range requests {
		if r.ID == id {
			out = append(out, r)
		}
	}
	return out
}

func TestSearchResidents(t *testing.T) {
	testCases := []struct {
		name     string
		term     string
		expected []string
	}{
		{
			name:     "Empty term matches everyone",
			term:     "",
			expected: []string{"R001", "R002", "R003", "R004", "R005"},
		},
		{
			name:     "Name match is case-insensitive",
			term:     "bob",
			expected: []string{"R002"},
		},
		{
			name:     "Unit match",
			term:     "402",
			expected: []string{"R004"},
		},
		{
			name:     "Email match",
			term:     "CHARLIE@",
			expected: []string{"R003"},
		},
		{
			name:     "No match",
			term:     "zzz",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSeeded()
			got := s.SearchResidents(tc.term)
			var ids []string
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tc.expected, ids)
		})
	}
}

func TestAddResident(t *testing.T) {
	s := NewSeeded()

	resident, err := s.AddResident(ResidentDraft{Name: "Eve Adams", Unit: "602", Email: "eve@example.com", MoveInDate: "2025-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "R006", resident.ID)

	_, err = s.AddResident(ResidentDraft{Name: "No Email", Unit: "603", MoveInDate: "2025-01-01"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestResidentIDsNotReusedAfterDelete(t *testing.T) {
	s := NewSeeded()

	require.True(t, s.RemoveResident("R005", AlwaysConfirm))
	resident, err := s.AddResident(ResidentDraft{Name: "Eve Adams", Unit: "602", Email: "eve@example.com", MoveInDate: "2025-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "R006", resident.ID, "sequence must not shrink after deletions")
}
