package dto

// RegisterRequest represents the API request for registering a user
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse represents the API response for a successful registration
type RegisterResponse struct {
	Message string `json:"message"`
	ID      uint64 `json:"id"`
}

// LoginRequest represents the API request for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents the API response for a successful login.
// The password hash is never part of any response.
type LoginResponse struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
}
