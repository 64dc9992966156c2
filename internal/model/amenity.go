package model

// Amenity represents a shared facility residents can use.
type Amenity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	ImageURL    string `json:"imageUrl"`
	IconClass   string `json:"iconClass"`
}

// AmenityRule holds the booking rules configured for one amenity.
type AmenityRule struct {
	AllowFriends bool   `json:"allowFriends"`
	Timing       string `json:"timing"`
}
