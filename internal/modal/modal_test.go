package modal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-admin-backend/internal/store"
)

func TestAmenityModal_AddFlow(t *testing.T) {
	s := store.NewSeeded()
	m := NewAmenityModal(s)

	m.OpenAdd()
	m.SetDraft(store.AmenityDraft{Name: "Rooftop Garden", Description: "Open-air garden.", Capacity: "15", IconClass: "uil uil-trees"})

	created, err := m.Submit()
	require.NoError(t, err)
	assert.Equal(t, "rooftop-garden", created.ID)

	st := m.State()
	assert.False(t, st.Open, "successful submit closes the dialog")
	assert.Equal(t, store.AmenityDraft{}, st.Draft, "successful submit clears the draft")

	_, ok := s.AmenityByID("rooftop-garden")
	assert.True(t, ok)
}

func TestAmenityModal_ValidationKeepsDraft(t *testing.T) {
	s := store.NewSeeded()
	m := NewAmenityModal(s)

	draft := store.AmenityDraft{Name: "Rooftop Garden", Capacity: "lots"}
	m.OpenAdd()
	m.SetDraft(draft)

	_, err := m.Submit()
	require.ErrorIs(t, err, store.ErrValidation)

	st := m.State()
	assert.True(t, st.Open, "failed submit keeps the dialog open")
	assert.Equal(t, draft, st.Draft, "failed submit keeps the draft intact")
	assert.NotEmpty(t, st.Error)

	// Correcting the form clears the error and lets the submit through.
	draft.Capacity = "15"
	m.SetDraft(draft)
	assert.Empty(t, m.State().Error)
	_, err = m.Submit()
	assert.NoError(t, err)
}

func TestAmenityModal_EditFlow(t *testing.T) {
	s := store.NewSeeded()
	m := NewAmenityModal(s)

	require.True(t, m.OpenEdit("sauna"))
	st := m.State()
	assert.Equal(t, ModeEdit, st.Mode)
	assert.Equal(t, "sauna", st.TargetID)
	assert.Equal(t, "Sauna", st.Draft.Name, "edit opens seeded from the stored amenity")
	assert.Equal(t, "4", st.Draft.Capacity)

	st.Draft.Capacity = "6"
	m.SetDraft(st.Draft)
	updated, err := m.Submit()
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Capacity)
	assert.Equal(t, "sauna", updated.ID, "editing never changes the id")
	assert.False(t, m.State().Open)
}

func TestAmenityModal_OpenEditUnknown(t *testing.T) {
	m := NewAmenityModal(store.NewSeeded())
	assert.False(t, m.OpenEdit("no-such-amenity"))
	assert.False(t, m.State().Open)
}

func TestAmenityModal_CloseDiscardsDraft(t *testing.T) {
	m := NewAmenityModal(store.NewSeeded())
	m.OpenAdd()
	m.SetDraft(store.AmenityDraft{Name: "Scrapped"})
	m.Close()

	assert.Equal(t, AmenityState{}, m.State())
	_, err := m.Submit()
	assert.Error(t, err, "submit on a closed dialog is rejected")
}

func TestAmenityModal_OpenSuggested(t *testing.T) {
	s := store.NewSeeded()
	m := NewAmenityModal(s)

	m.OpenSuggested()
	st := m.State()
	assert.True(t, st.Open)
	assert.Equal(t, ModeAdd, st.Mode)
	assert.Equal(t, "Co-working Space", st.Draft.Name)
	assert.Equal(t, "20", st.Draft.Capacity)
	assert.Equal(t, "uil uil-laptop", st.Draft.IconClass)

	created, err := m.Submit()
	require.NoError(t, err)
	assert.Equal(t, "co-working-space", created.ID)
}

func TestResidentModal(t *testing.T) {
	s := store.NewSeeded()
	m := NewResidentModal(s)

	m.Open()
	m.SetDraft(store.ResidentDraft{Name: "Frank Green", Unit: "Apt 601"})
	_, err := m.Submit()
	require.ErrorIs(t, err, store.ErrValidation)
	assert.True(t, m.State().Open)
	assert.Equal(t, "Frank Green", m.State().Draft.Name)

	m.SetDraft(store.ResidentDraft{Name: "Frank Green", Unit: "Apt 601", Email: "frank@example.com", MoveInDate: "2024-03-01"})
	created, err := m.Submit()
	require.NoError(t, err)
	assert.Equal(t, "R006", created.ID)
	assert.False(t, m.State().Open)
}
