package model

// Resident represents a person living in the building.
type Resident struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Unit       string `json:"unit"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	MoveInDate string `json:"moveInDate"`
}
