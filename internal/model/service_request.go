package model

// Service request statuses. There is no cancelled status: cancellation
// removes the request outright.
const (
	RequestActive    = "active"
	RequestCompleted = "completed"
)

// ServiceRequest represents a maintenance issue reported by a resident.
type ServiceRequest struct {
	ID             string `json:"id"`
	Resident       string `json:"resident"`
	Unit           string `json:"unit"`
	Issue          string `json:"issue"`
	Status         string `json:"status"`
	SubmittedDate  string `json:"submittedDate"`
	CompletionDate string `json:"completionDate"`
}
