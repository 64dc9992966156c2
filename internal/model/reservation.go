package model

// Reservation statuses. Stored lowercase; capitalized only for display.
const (
	ReservationRequested = "requested"
	ReservationApproved  = "approved"
	ReservationDenied    = "denied"
)

// Reservation represents a booking request for an amenity. AmenityID is a
// soft reference: it may point at an amenity that was deleted or never
// existed, in which case views show "Unknown Amenity".
type Reservation struct {
	ID        string `json:"id"`
	AmenityID string `json:"amenityId"`
	Resident  string `json:"resident"`
	Unit      string `json:"unit"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
}
