package store

import "property-admin-backend/internal/model"

// NewSeeded creates a store populated with the building's sample data.
func NewSeeded() *Store {
	return New(seedBookableAmenities(), seedNonBookableAmenities(), seedReservations(), seedServiceRequests(), seedResidents())
}

func seedBookableAmenities() []model.Amenity {
	return []model.Amenity{
		{ID: "basketball", Name: "Basketball Court", Description: "Outdoor court for basketball.", Capacity: 10, IconClass: "uil uil-basketball"},
		{ID: "tennis", Name: "Tennis Court", Description: "Outdoor court for tennis.", Capacity: 4, IconClass: "uil uil-tennis-ball"},
		{ID: "table-tennis", Name: "Table Tennis Room", Description: "Indoor room with ping pong tables.", Capacity: 8, IconClass: "uil uil-table-tennis"},
		{ID: "squash", Name: "Squash Court", Description: "Indoor court for squash.", Capacity: 2},
		{ID: "snooker-pool", Name: "Snooker/Pool Table", Description: "Recreation room with snooker and pool tables.", Capacity: 6, IconClass: "uil uil-bill"},
		{ID: "party-room", Name: "Party Room", Description: "Versatile space for private events.", Capacity: 50, IconClass: "uil uil-glass-martini"},
		{ID: "guest-suite", Name: "Guest Suite", Description: "Private suite for overnight guests.", Capacity: 2, IconClass: "uil uil-bed"},
		{ID: "swimming-pool", Name: "Swimming Pool", Description: "Large outdoor pool with lifeguard", Capacity: 50, ImageURL: "http://googleusercontent.com/img/pool_amenity.jpg", IconClass: "uil uil-swimmer"},
		{ID: "sauna", Name: "Sauna", Description: "Relaxing dry heat sauna.", Capacity: 4, IconClass: "uil uil-temperature-half"},
		{ID: "spa", Name: "Spa", Description: "Full-service spa for relaxation.", Capacity: 8, IconClass: "uil uil-spa"},
		{ID: "jacuzzi", Name: "Jacuzzi", Description: "Hot tub for relaxation.", Capacity: 6},
		{ID: "bbq-area", Name: "BBQ Area", Description: "Outdoor grilling stations with seating.", Capacity: 20, IconClass: "uil uil-fire"},
		{ID: "party-hall", Name: "Party Hall", Description: "Large hall for major events, with specific capacity.", Capacity: 100, IconClass: "uil uil-users-alt"},
	}
}

func seedNonBookableAmenities() []model.Amenity {
	return []model.Amenity{
		{ID: "children-park", Name: "Children Park", Description: "Outdoor play area for children.", IconClass: "uil uil-trees"},
		{ID: "dog-park", Name: "Dog Park", Description: "Fenced area for dogs to play.", IconClass: "uil uil-dog"},
	}
}

func seedReservations() []model.Reservation {
	return []model.Reservation{
		{ID: "res001", AmenityID: "swimming-pool", Resident: "Alice Smith", Unit: "101", Date: "2025-07-15", Time: "10:00-11:00", Status: model.ReservationRequested},
		{ID: "res002", AmenityID: "gym", Resident: "Bob Johnson", Unit: "203", Date: "2025-07-16", Time: "14:00-15:00", Status: model.ReservationApproved},
		{ID: "res003", AmenityID: "party-room", Resident: "Charlie Brown", Unit: "305", Date: "2025-07-20", Time: "18:00-22:00", Status: model.ReservationDenied},
		{ID: "res004", AmenityID: "basketball", Resident: "Diana Prince", Unit: "402", Date: "2025-07-18", Time: "09:00-10:00", Status: model.ReservationRequested},
		{ID: "res005", AmenityID: "tennis", Resident: "Clark Kent", Unit: "501", Date: "2025-07-22", Time: "11:00-12:00", Status: model.ReservationApproved},
	}
}

func seedServiceRequests() []model.ServiceRequest {
	return []model.ServiceRequest{
		{ID: "SR001", Resident: "Alice Smith", Unit: "101", Issue: "Leaky Faucet", Status: model.RequestActive, SubmittedDate: "2025-07-01"},
		{ID: "SR002", Resident: "Bob Johnson", Unit: "203", Issue: "Broken A/C", Status: model.RequestActive, SubmittedDate: "2025-07-03"},
		{ID: "SR003", Resident: "Charlie Brown", Unit: "305", Issue: "Lobby Light Out", Status: model.RequestCompleted, SubmittedDate: "2025-06-25", CompletionDate: "2025-06-27"},
		{ID: "SR004", Resident: "Diana Prince", Unit: "402", Issue: "Elevator Malfunction", Status: model.RequestActive, SubmittedDate: "2025-07-05"},
		{ID: "SR005", Resident: "Clark Kent", Unit: "501", Issue: "Gym Equipment Repair", Status: model.RequestCompleted, SubmittedDate: "2025-06-20", CompletionDate: "2025-06-22"},
	}
}

func seedResidents() []model.Resident {
	return []model.Resident{
		{ID: "R001", Name: "Alice Smith", Unit: "101", Email: "alice@example.com", Phone: "111-222-3333", MoveInDate: "2023-01-15"},
		{ID: "R002", Name: "Bob Johnson", Unit: "203", Email: "bob@example.com", Phone: "444-555-6666", MoveInDate: "2022-05-20"},
		{ID: "R003", Name: "Charlie Brown", Unit: "305", Email: "charlie@example.com", Phone: "777-888-9999", MoveInDate: "2024-03-10"},
		{ID: "R004", Name: "Diana Prince", Unit: "402", Email: "diana@example.com", Phone: "123-456-7890", MoveInDate: "2023-08-01"},
		{ID: "R005", Name: "Clark Kent", Unit: "501", Email: "clark@example.com", Phone: "987-654-3210", MoveInDate: "2022-11-11"},
	}
}
