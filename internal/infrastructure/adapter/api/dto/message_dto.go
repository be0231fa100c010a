package dto

// MessageResponse represents a plain acknowledgement for write operations
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Message string `json:"message"`
}
